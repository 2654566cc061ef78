package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/media"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Long: `List catalog items, optionally filtered by kind and status.

Examples:
  mediacat list
  mediacat list --kind Movie
  mediacat list --kind Book --status InProgress`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("kind", media.KindAll, "Filter by kind (Book, Movie, Game, Music, All)")
	listCmd.Flags().String("status", "", "Filter by status (Planned, InProgress, Completed)")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	kind, _ := cmd.Flags().GetString("kind")
	items, err := a.catalog.FilterByKind(kind)
	if err != nil {
		return fmt.Errorf("unknown kind %q, expected one of %v or All", kind, a.catalog.Kinds())
	}

	if statusArg, _ := cmd.Flags().GetString("status"); statusArg != "" {
		want, err := media.ParseStatusStrict(statusArg)
		if err != nil {
			return err
		}
		filtered := items[:0]
		for _, it := range items {
			if it.Status == want {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No items.")
		return nil
	}
	printItems(items)
	return nil
}

func printItems(items []*media.Item) {
	fmt.Printf("%-5s %-6s %-40s %-6s %-12s %s\n", "ID", "KIND", "TITLE", "YEAR", "STATUS", "DETAIL")
	for _, it := range items {
		fmt.Printf("%-5d %-6s %-40s %-6d %-12s %s\n",
			it.ID, it.Kind, truncate(it.Title, 40), it.Year, it.Status.Label(), itemDetail(it))
	}
}

func itemDetail(it *media.Item) string {
	switch it.Kind {
	case media.KindBook:
		return it.Author
	case media.KindMovie:
		return it.Director
	case media.KindGame:
		return it.Platform
	case media.KindMusic:
		return it.Artist
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
