package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <kind> <id> <action>",
	Short: "Change an item's lifecycle status",
	Long: `Apply a lifecycle action to an item. Actions:

  plan       back to the planned pile
  start      mark as in progress
  complete   mark as completed

Examples:
  mediacat status Book 3 start
  mediacat status Movie 7 complete`,
	Args: cobra.ExactArgs(3),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	it, err := itemByArgs(a, args[0], args[1])
	if err != nil {
		return err
	}

	if err := a.catalog.ChangeStatus(it, args[2]); err != nil {
		return err
	}

	if jsonOutput {
		printJSON(it)
		return nil
	}
	fmt.Printf("%s #%d: %s is now %s\n", it.Kind, it.ID, it.Title, it.Status.Label())
	return nil
}
