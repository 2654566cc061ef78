package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Remove an item from the catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	it, err := itemByArgs(a, args[0], args[1])
	if err != nil {
		return err
	}

	if err := a.catalog.Delete(it); err != nil {
		return err
	}
	fmt.Printf("Deleted %s #%d: %s\n", it.Kind, it.ID, it.Title)
	return nil
}
