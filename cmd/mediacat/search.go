package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search the catalog",
	Long: `Search the catalog by title, genre, author or director.

With --fuzzy, titles are matched by similarity instead of substring,
so typos like "alein" still find "Alien".`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("fuzzy", false, "Rank by title similarity")
	searchCmd.Flags().Int("limit", 10, "Maximum fuzzy suggestions")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if fuzzy, _ := cmd.Flags().GetBool("fuzzy"); fuzzy {
		limit, _ := cmd.Flags().GetInt("limit")
		suggestions := a.catalog.Suggest(args[0], limit)

		if jsonOutput {
			printJSON(suggestions)
			return nil
		}
		if len(suggestions) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, s := range suggestions {
			fmt.Printf("%5.2f  %s #%d: %s (%d)\n",
				s.Score, s.Item.Kind, s.Item.ID, s.Item.Title, s.Item.Year)
		}
		return nil
	}

	items := a.catalog.Search(args[0])
	if jsonOutput {
		printJSON(items)
		return nil
	}
	if len(items) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	printItems(items)
	return nil
}
