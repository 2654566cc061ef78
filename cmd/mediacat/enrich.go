package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/media"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich all movies from OMDb",
	Long: `Look every movie in the catalog up on OMDb, fill in plot, cast,
ratings and posters, and persist the results. Movies OMDb does not
know are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	svc := a.metadataService()
	if pruned, err := svc.PruneCache(cmd.Context()); err != nil {
		return err
	} else if pruned > 0 {
		a.log.Debug("pruned expired lookups", "count", pruned)
	}

	items := a.catalog.Items()
	enriched, missed, err := svc.EnrichAll(cmd.Context(), items, a.cfg.Covers.Dir)
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.Kind != media.KindMovie || it.IMDBID == "" {
			continue
		}
		if err := a.catalog.Update(it); err != nil {
			return fmt.Errorf("save %s #%d: %w", it.Kind, it.ID, err)
		}
	}

	fmt.Printf("Enriched %d movie(s), %d not found\n", enriched, missed)
	return nil
}
