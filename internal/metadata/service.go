package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/mediacat/mediacat/internal/media"
	"github.com/mediacat/mediacat/internal/omdb"
)

// enrichConcurrency bounds parallel OMDb calls during bulk enrichment.
const enrichConcurrency = 4

var trailingYear = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

// Service provides cached OMDb lookups and applies the results to
// catalog items.
type Service struct {
	client *omdb.Client
	cache  *LookupCache
	log    *slog.Logger
}

// NewService creates a new metadata service.
func NewService(client *omdb.Client, cache *LookupCache, log *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Lookup finds a movie by title, retrying progressively looser queries:
// title with year, title stripped of a trailing "(yyyy)" suffix, and
// finally title alone. The first hit wins; omdb.ErrNotFound is returned
// only when every variant misses.
func (s *Service) Lookup(ctx context.Context, title string, year int) (*omdb.Result, error) {
	if result, ok := s.cache.Get(ctx, title, year); ok {
		if s.log != nil {
			s.log.Debug("cache hit for lookup", "title", title, "year", year)
		}
		return result, nil
	}

	result, err := s.lookup(ctx, title, year)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, title, year, result); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache lookup", "title", title, "error", err)
		}
	}
	return result, nil
}

// Forget drops the cached result for a query so the next Lookup hits
// the API again.
func (s *Service) Forget(ctx context.Context, title string, year int) error {
	return s.cache.Delete(ctx, title, year)
}

// PruneCache removes expired cached lookups.
func (s *Service) PruneCache(ctx context.Context) (int64, error) {
	return s.cache.Prune(ctx)
}

func (s *Service) lookup(ctx context.Context, title string, year int) (*omdb.Result, error) {
	stripped := trailingYear.ReplaceAllString(title, "")

	type query struct {
		title string
		year  int
	}
	variants := []query{
		{title, year},
		{stripped, year},
		{title, 0},
	}

	seen := make(map[string]bool)
	for _, v := range variants {
		k := fmt.Sprintf("%s|%d", v.title, v.year)
		if seen[k] {
			continue
		}
		seen[k] = true

		result, err := s.client.Search(ctx, v.title, v.year)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, omdb.ErrNotFound) {
			return nil, err
		}
		if s.log != nil {
			s.log.Debug("lookup variant missed", "title", v.title, "year", v.year)
		}
	}
	return nil, omdb.ErrNotFound
}

// Apply copies a lookup result onto a movie item. Title and year set by
// the user are kept; descriptive fields are overwritten.
func Apply(r *omdb.Result, it *media.Item) {
	it.Plot = r.Plot
	it.Actors = r.Actors
	it.IMDBID = r.IMDBID
	if r.IMDBRating != "" && r.IMDBRating != "N/A" {
		it.IMDBRating = r.IMDBRating
	}
	if it.Director == "" && r.Director != "N/A" {
		it.Director = r.Director
	}
	if it.Genre == "" && r.Genre != "N/A" {
		it.Genre = r.Genre
	}
	if it.Duration == 0 {
		it.Duration = r.RuntimeDuration()
	}
	if it.Year == 0 {
		it.Year = r.YearInt()
	}
}

// Enrich looks a movie item up and applies the result, downloading the
// poster into coversDir when one is available.
func (s *Service) Enrich(ctx context.Context, it *media.Item, coversDir string) error {
	if it.Kind != media.KindMovie {
		return fmt.Errorf("enrich: %q is not a movie", it.Title)
	}

	result, err := s.Lookup(ctx, it.Title, it.Year)
	if err != nil {
		return err
	}
	Apply(result, it)

	if it.CoverPath == "" {
		path, err := s.client.DownloadPoster(ctx, result, coversDir)
		if err != nil {
			if s.log != nil {
				s.log.Warn("poster download failed", "title", it.Title, "error", err)
			}
		} else if path != "" {
			it.CoverPath = path
		}
	}
	return nil
}

// EnrichAll enriches every movie in items concurrently. Items that no
// variant can find are skipped and counted as misses; other API errors
// abort the whole run.
func (s *Service) EnrichAll(ctx context.Context, items []*media.Item, coversDir string) (enriched, missed int, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	results := make(chan bool, len(items))
	for _, it := range items {
		if it.Kind != media.KindMovie {
			continue
		}
		g.Go(func() error {
			err := s.Enrich(ctx, it, coversDir)
			if errors.Is(err, omdb.ErrNotFound) {
				if s.log != nil {
					s.log.Info("no metadata found", "title", it.Title, "year", it.Year)
				}
				results <- false
				return nil
			}
			if err != nil {
				return err
			}
			results <- true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	close(results)
	for ok := range results {
		if ok {
			enriched++
		} else {
			missed++
		}
	}
	return enriched, missed, nil
}
