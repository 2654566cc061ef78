package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/media"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <title>",
	Short: "Look a movie up on OMDb",
	Long: `Look a movie up on OMDb and print what was found.

With --save, the result is applied to an existing movie in the
catalog and its poster is downloaded.

Examples:
  mediacat lookup "Blade Runner" --year 1982
  mediacat lookup "Blade Runner" --save 7`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Int("year", 0, "Release year hint")
	lookupCmd.Flags().Int64("save", 0, "Apply the result to the movie with this id")
	lookupCmd.Flags().Bool("refresh", false, "Drop the cached result and query OMDb again")
}

func runLookup(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := a.metadataService()
	year, _ := cmd.Flags().GetInt("year")

	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		if err := svc.Forget(cmd.Context(), args[0], year); err != nil {
			return err
		}
	}

	result, err := svc.Lookup(cmd.Context(), args[0], year)
	if err != nil {
		return err
	}

	saveID, _ := cmd.Flags().GetInt64("save")
	if saveID > 0 {
		it := a.catalog.Get(media.KindMovie, saveID)
		if it == nil {
			return fmt.Errorf("no Movie with id %d", saveID)
		}
		if err := svc.Enrich(cmd.Context(), it, a.cfg.Covers.Dir); err != nil {
			return err
		}
		if err := a.catalog.Update(it); err != nil {
			return err
		}
		fmt.Printf("Updated Movie #%d from OMDb (%s)\n", it.ID, it.IMDBID)
		return nil
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}
	fmt.Printf("%s (%s)\n", result.Title, result.Year)
	fmt.Printf("  Director: %s\n", result.Director)
	fmt.Printf("  Actors:   %s\n", result.Actors)
	fmt.Printf("  Genre:    %s\n", result.Genre)
	fmt.Printf("  Runtime:  %s\n", result.Runtime)
	fmt.Printf("  IMDb:     %s (%s)\n", result.IMDBID, result.IMDBRating)
	fmt.Printf("  %s\n", result.Plot)
	return nil
}
