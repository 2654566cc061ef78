package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/audiotag"
	"github.com/mediacat/mediacat/internal/catalog"
	"github.com/mediacat/mediacat/internal/media"
)

var importMusicCmd = &cobra.Command{
	Use:   "import-music <file>...",
	Short: "Import local audio files as music items",
	Long: `Import audio files into the catalog as one atomic batch. Embedded
tags fill in title, artist, album, genre and year; untagged files fall
back to the filename and "Unknown Artist". Track length is estimated
from the file size unless --minutes overrides it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImportMusic,
}

func init() {
	rootCmd.AddCommand(importMusicCmd)
	importMusicCmd.Flags().Int("minutes", 0, "Track length in minutes, overrides the estimate")
	importMusicCmd.Flags().String("artist", "", "Artist for files without an artist tag")
}

func runImportMusic(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	minutes, _ := cmd.Flags().GetInt("minutes")
	artist, _ := cmd.Flags().GetString("artist")

	items := make([]*media.Item, 0, len(args))
	for _, path := range args {
		it, err := musicItemFromFile(a.catalog, path, minutes, artist)
		if err != nil {
			return err
		}
		items = append(items, it)
	}

	if err := a.catalog.AddAll(items); err != nil {
		return err
	}

	for _, it := range items {
		fmt.Printf("Imported Music #%d: %s", it.ID, it.Title)
		if it.Artist != "" {
			fmt.Printf(" by %s", it.Artist)
		}
		fmt.Println()
	}
	return nil
}

// musicItemFromFile builds an addable music item from an audio file:
// probed tags first, then filename and flag fallbacks for the fields
// validation requires.
func musicItemFromFile(cat *catalog.Catalog, path string, minutes int, artist string) (*media.Item, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	it, err := cat.Create(string(media.KindMusic))
	if err != nil {
		return nil, err
	}

	audiotag.Probe(abs).Apply(it)
	it.FilePath = abs

	if it.Title == "" {
		base := filepath.Base(abs)
		it.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if minutes > 0 {
		it.Duration = time.Duration(minutes) * time.Minute
	}
	if it.Duration == 0 {
		return nil, fmt.Errorf("cannot determine track length of %s, pass --minutes", path)
	}
	if it.Artist == "" {
		it.Artist = artist
	}
	if it.Artist == "" {
		it.Artist = "Unknown Artist"
	}
	return it, nil
}
