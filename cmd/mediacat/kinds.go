package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/media"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported media kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			printJSON(media.Kinds())
			return nil
		}
		for _, k := range media.Kinds() {
			fmt.Println(k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
