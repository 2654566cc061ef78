package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/events"
)

var historyCmd = &cobra.Command{
	Use:   "history [kind id]",
	Short: "Show catalog change history",
	Long: `Show recorded catalog events, newest first. With a kind and id,
shows the full history of that item oldest first.

Examples:
  mediacat history
  mediacat history --limit 50
  mediacat history Book 3`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Maximum events to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("history takes either no arguments or a kind and an id")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var evs []events.RawEvent
	if len(args) == 2 {
		it, err := itemByArgs(a, args[0], args[1])
		if err != nil {
			return err
		}
		evs, err = a.events.ForEntity(string(it.Kind), it.ID)
		if err != nil {
			return err
		}
	} else {
		limit, _ := cmd.Flags().GetInt("limit")
		evs, err = a.events.Recent(limit)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		printJSON(evs)
		return nil
	}
	if len(evs) == 0 {
		fmt.Println("No events.")
		return nil
	}
	for _, e := range evs {
		fmt.Printf("%s  %-20s %s #%d\n",
			e.OccurredAt.Format("2006-01-02 15:04:05"), e.EventType, e.EntityType, e.EntityID)
	}
	return nil
}
