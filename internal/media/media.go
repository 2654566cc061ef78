// Package media defines catalog items, their kinds, lifecycle status,
// and per-kind validation rules.
package media

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is the discriminant of an Item. The kind set is closed: all
// dispatch is by switch, never by subtyping.
type Kind string

const (
	KindBook  Kind = "Book"
	KindMovie Kind = "Movie"
	KindGame  Kind = "Game"
	KindMusic Kind = "Music"
)

// KindAll is the filter sentinel that matches every kind.
const KindAll = "All"

// Field limits shared by validation and the database schema.
const (
	MinYear       = 1800
	MaxTitleLen   = 200
	MaxGenreLen   = 100
	MaxRating     = 5
	MaxPersonLen  = 100
	MaxISBNLen    = 20
	MaxPlatform   = 50
	MaxPlayHours  = 10000
	MaxPageCount  = 10000
	MaxFormatLen  = 10
	MaxPathLen    = 500
)

// Item is a single catalog entry. It is a tagged variant: Kind selects
// which of the kind-specific field groups is meaningful; the rest stay
// at their zero values.
type Item struct {
	ID        int64
	Kind      Kind
	Title     string
	Year      int
	Genre     string
	Rating    int
	Status    Status
	AddedAt   time.Time
	CoverPath string

	// Book fields.
	Author    string
	PageCount int
	ISBN      string

	// Movie fields. Duration doubles as the music track length.
	Director   string
	Duration   time.Duration
	Studio     string
	Plot       string
	Actors     string
	IMDBID     string
	IMDBRating string

	// Game fields.
	Platform      string
	Developer     string
	PlayTimeHours int

	// Music fields.
	Artist        string
	Album         string
	Format        string
	FilePath      string
	FileSizeBytes int64
}

// Validate reports why the item cannot be persisted, or nil if it can.
func (i *Item) Validate() error {
	var errs []string

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, "title is required")
	}
	if len(i.Title) > MaxTitleLen {
		errs = append(errs, fmt.Sprintf("title exceeds %d characters", MaxTitleLen))
	}
	maxYear := time.Now().Year() + 5
	if i.Year < MinYear || i.Year > maxYear {
		errs = append(errs, fmt.Sprintf("year must be between %d and %d", MinYear, maxYear))
	}
	if len(i.Genre) > MaxGenreLen {
		errs = append(errs, fmt.Sprintf("genre exceeds %d characters", MaxGenreLen))
	}
	if i.Rating < 0 || i.Rating > MaxRating {
		errs = append(errs, fmt.Sprintf("rating must be between 0 and %d", MaxRating))
	}

	switch i.Kind {
	case KindBook:
		if strings.TrimSpace(i.Author) == "" {
			errs = append(errs, "author is required")
		}
		if len(i.Author) > MaxPersonLen {
			errs = append(errs, fmt.Sprintf("author exceeds %d characters", MaxPersonLen))
		}
		if i.PageCount <= 0 || i.PageCount > MaxPageCount {
			errs = append(errs, fmt.Sprintf("page count must be between 1 and %d", MaxPageCount))
		}
		if len(i.ISBN) > MaxISBNLen {
			errs = append(errs, fmt.Sprintf("isbn exceeds %d characters", MaxISBNLen))
		}
	case KindMovie:
		if strings.TrimSpace(i.Director) == "" {
			errs = append(errs, "director is required")
		}
		if len(i.Director) > MaxPersonLen {
			errs = append(errs, fmt.Sprintf("director exceeds %d characters", MaxPersonLen))
		}
		if i.Duration <= 0 {
			errs = append(errs, "duration is required")
		}
		if len(i.Studio) > MaxPersonLen {
			errs = append(errs, fmt.Sprintf("studio exceeds %d characters", MaxPersonLen))
		}
	case KindGame:
		if strings.TrimSpace(i.Platform) == "" {
			errs = append(errs, "platform is required")
		}
		if len(i.Platform) > MaxPlatform {
			errs = append(errs, fmt.Sprintf("platform exceeds %d characters", MaxPlatform))
		}
		if strings.TrimSpace(i.Developer) == "" {
			errs = append(errs, "developer is required")
		}
		if len(i.Developer) > MaxPersonLen {
			errs = append(errs, fmt.Sprintf("developer exceeds %d characters", MaxPersonLen))
		}
		if i.PlayTimeHours < 0 || i.PlayTimeHours > MaxPlayHours {
			errs = append(errs, fmt.Sprintf("play time must be between 0 and %d hours", MaxPlayHours))
		}
	case KindMusic:
		if strings.TrimSpace(i.Artist) == "" {
			errs = append(errs, "artist is required")
		}
		if len(i.Artist) > MaxPersonLen {
			errs = append(errs, fmt.Sprintf("artist exceeds %d characters", MaxPersonLen))
		}
		if len(i.Album) > MaxPersonLen {
			errs = append(errs, fmt.Sprintf("album exceeds %d characters", MaxPersonLen))
		}
		if i.Duration <= 0 {
			errs = append(errs, "duration is required")
		}
		if len(i.Format) > MaxFormatLen {
			errs = append(errs, fmt.Sprintf("format exceeds %d characters", MaxFormatLen))
		}
		if strings.TrimSpace(i.FilePath) == "" {
			errs = append(errs, "file path is required")
		}
		if len(i.FilePath) > MaxPathLen {
			errs = append(errs, fmt.Sprintf("file path exceeds %d characters", MaxPathLen))
		}
		if i.FileSizeBytes < 0 {
			errs = append(errs, "file size cannot be negative")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown kind %q", i.Kind))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// IsValid reports whether the item passes validation.
func (i *Item) IsValid() bool { return i.Validate() == nil }
