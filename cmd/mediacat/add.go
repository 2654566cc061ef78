package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mediacat/mediacat/internal/media"
)

var addCmd = &cobra.Command{
	Use:   "add <kind> <title>",
	Short: "Add an item to the catalog",
	Long: `Add a new item to the catalog. Kind is one of Book, Movie, Game or Music.

Examples:
  mediacat add Book "The Name of the Wind" --author "Patrick Rothfuss" --year 2007
  mediacat add Movie "Blade Runner" --year 1982 --director "Ridley Scott"
  mediacat add Game "Alien: Isolation" --platform PC
  mediacat add Music "Paranoid Android" --artist Radiohead --format flac`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().Int("year", 0, "Release year (default: current year)")
	addCmd.Flags().String("genre", "", "Genre")
	addCmd.Flags().Int("rating", 0, "Personal rating 0-5")

	addCmd.Flags().String("author", "", "Author (books)")
	addCmd.Flags().Int("pages", 0, "Page count (books)")
	addCmd.Flags().String("isbn", "", "ISBN (books)")

	addCmd.Flags().String("director", "", "Director (movies)")
	addCmd.Flags().Int("minutes", 0, "Duration in minutes (movies, music)")
	addCmd.Flags().String("studio", "", "Studio (movies)")

	addCmd.Flags().String("platform", "", "Platform (games)")
	addCmd.Flags().String("developer", "", "Developer (games)")
	addCmd.Flags().Int("hours", 0, "Play time in hours (games)")

	addCmd.Flags().String("artist", "", "Artist (music)")
	addCmd.Flags().String("album", "", "Album (music)")
	addCmd.Flags().String("format", "", "File format (music, default mp3)")
	addCmd.Flags().String("file", "", "Local file path (music)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	it, err := a.catalog.Create(args[0])
	if err != nil {
		return fmt.Errorf("unknown kind %q, expected one of %v", args[0], a.catalog.Kinds())
	}
	it.Title = args[1]

	flags := cmd.Flags()
	if v, _ := flags.GetInt("year"); v != 0 {
		it.Year = v
	}
	it.Genre, _ = flags.GetString("genre")
	it.Rating, _ = flags.GetInt("rating")

	it.Author, _ = flags.GetString("author")
	it.PageCount, _ = flags.GetInt("pages")
	it.ISBN, _ = flags.GetString("isbn")

	it.Director, _ = flags.GetString("director")
	if v, _ := flags.GetInt("minutes"); v > 0 {
		it.Duration = time.Duration(v) * time.Minute
	}
	it.Studio, _ = flags.GetString("studio")

	it.Platform, _ = flags.GetString("platform")
	it.Developer, _ = flags.GetString("developer")
	it.PlayTimeHours, _ = flags.GetInt("hours")

	it.Artist, _ = flags.GetString("artist")
	it.Album, _ = flags.GetString("album")
	if v, _ := flags.GetString("format"); v != "" {
		it.Format = v
	}
	it.FilePath, _ = flags.GetString("file")

	if err := a.catalog.Add(it); err != nil {
		return err
	}

	if jsonOutput {
		printJSON(it)
		return nil
	}
	fmt.Printf("Added %s #%d: %s (%d)\n", it.Kind, it.ID, it.Title, it.Year)
	return nil
}

func itemByArgs(a *app, kindArg, idArg string) (*media.Item, error) {
	kind, err := media.ParseKind(kindArg)
	if err != nil {
		return nil, fmt.Errorf("unknown kind %q, expected one of %v", kindArg, media.Kinds())
	}
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %s", idArg)
	}
	it := a.catalog.Get(kind, id)
	if it == nil {
		return nil, fmt.Errorf("no %s with id %d", kind, id)
	}
	return it, nil
}
