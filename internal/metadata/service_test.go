package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediacat/mediacat/internal/media"
	"github.com/mediacat/mediacat/internal/omdb"
)

// fakeOMDb records every (t, y) query and answers from a fixed table.
type fakeOMDb struct {
	mu      sync.Mutex
	queries []string
	answers map[string]string
}

func (f *fakeOMDb) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("t") + "|" + r.URL.Query().Get("y")

	f.mu.Lock()
	f.queries = append(f.queries, key)
	body, ok := f.answers[key]
	f.mu.Unlock()

	if !ok {
		body = `{"Response":"False","Error":"Movie not found!"}`
	}
	w.Write([]byte(body))
}

func movieJSON(title string, year int) string {
	return fmt.Sprintf(`{
		"Response": "True",
		"Title": %q,
		"Year": "%d",
		"Genre": "Sci-Fi",
		"Director": "Ridley Scott",
		"Actors": "Harrison Ford",
		"Plot": "Replicants.",
		"Runtime": "117 min",
		"Poster": "N/A",
		"imdbRating": "8.1",
		"imdbID": "tt0083658"
	}`, title, year)
}

func newTestService(t *testing.T, fake *fakeOMDb) *Service {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	// Zero client-side TTL so every Lookup variant reaches the fake.
	client := omdb.NewClient("test-key",
		omdb.WithBaseURL(server.URL),
		omdb.WithCacheTTL(-time.Second))
	cache, _ := setupTestCache(t)
	return NewService(client, cache, nil)
}

func TestLookup_FirstVariantHits(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{
		"Blade Runner|1982": movieJSON("Blade Runner", 1982),
	}}
	svc := newTestService(t, fake)

	result, err := svc.Lookup(context.Background(), "Blade Runner", 1982)
	require.NoError(t, err)
	assert.Equal(t, "Blade Runner", result.Title)
	assert.Equal(t, []string{"Blade Runner|1982"}, fake.queries)
}

func TestLookup_StrippedTitleVariant(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{
		"Blade Runner|1982": movieJSON("Blade Runner", 1982),
	}}
	svc := newTestService(t, fake)

	result, err := svc.Lookup(context.Background(), "Blade Runner (1982)", 1982)
	require.NoError(t, err)
	assert.Equal(t, "tt0083658", result.IMDBID)
	assert.Equal(t, []string{
		"Blade Runner (1982)|1982",
		"Blade Runner|1982",
	}, fake.queries)
}

func TestLookup_YearlessFallback(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{
		"Blade Runner|": movieJSON("Blade Runner", 1982),
	}}
	svc := newTestService(t, fake)

	result, err := svc.Lookup(context.Background(), "Blade Runner", 1983)
	require.NoError(t, err)
	assert.Equal(t, "Blade Runner", result.Title)
	assert.Equal(t, []string{
		"Blade Runner|1983",
		"Blade Runner|",
	}, fake.queries)
}

func TestLookup_AllVariantsMiss(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{}}
	svc := newTestService(t, fake)

	_, err := svc.Lookup(context.Background(), "No Such Film (2001)", 2001)
	assert.ErrorIs(t, err, omdb.ErrNotFound)
	assert.Len(t, fake.queries, 3)
}

func TestLookup_DuplicateVariantsSkipped(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{}}
	svc := newTestService(t, fake)

	// No year suffix and no year: variants collapse to a single query.
	_, err := svc.Lookup(context.Background(), "Blade Runner", 0)
	assert.ErrorIs(t, err, omdb.ErrNotFound)
	assert.Equal(t, []string{"Blade Runner|"}, fake.queries)
}

func TestLookup_CachesResult(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{
		"Blade Runner|1982": movieJSON("Blade Runner", 1982),
	}}
	svc := newTestService(t, fake)

	for i := 0; i < 2; i++ {
		_, err := svc.Lookup(context.Background(), "Blade Runner", 1982)
		require.NoError(t, err)
	}
	assert.Len(t, fake.queries, 1, "second lookup should come from the cache")
}

func TestForget(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{
		"Blade Runner|1982": movieJSON("Blade Runner", 1982),
	}}
	svc := newTestService(t, fake)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "Blade Runner", 1982)
	require.NoError(t, err)
	require.NoError(t, svc.Forget(ctx, "Blade Runner", 1982))

	_, err = svc.Lookup(ctx, "Blade Runner", 1982)
	require.NoError(t, err)
	assert.Len(t, fake.queries, 2, "a forgotten lookup must hit the API again")
}

func TestApply(t *testing.T) {
	result := &omdb.Result{
		Title:      "Blade Runner",
		Year:       "1982",
		Genre:      "Sci-Fi",
		Director:   "Ridley Scott",
		Actors:     "Harrison Ford",
		Plot:       "Replicants.",
		Runtime:    "117 min",
		IMDBRating: "8.1",
		IMDBID:     "tt0083658",
	}

	it := &media.Item{Kind: media.KindMovie, Title: "Blade Runner"}
	Apply(result, it)

	assert.Equal(t, "Replicants.", it.Plot)
	assert.Equal(t, "Harrison Ford", it.Actors)
	assert.Equal(t, "tt0083658", it.IMDBID)
	assert.Equal(t, "8.1", it.IMDBRating)
	assert.Equal(t, "Ridley Scott", it.Director)
	assert.Equal(t, "Sci-Fi", it.Genre)
	assert.Equal(t, 117*time.Minute, it.Duration)
	assert.Equal(t, 1982, it.Year)
}

func TestApply_KeepsUserFields(t *testing.T) {
	result := &omdb.Result{
		Director:   "Ridley Scott",
		Genre:      "Sci-Fi",
		Runtime:    "117 min",
		Year:       "1982",
		IMDBRating: "N/A",
	}

	it := &media.Item{
		Kind:     media.KindMovie,
		Director: "Someone Else",
		Genre:    "Drama",
		Duration: 90 * time.Minute,
		Year:     1990,
	}
	Apply(result, it)

	assert.Equal(t, "Someone Else", it.Director)
	assert.Equal(t, "Drama", it.Genre)
	assert.Equal(t, 90*time.Minute, it.Duration)
	assert.Equal(t, 1990, it.Year)
	assert.Empty(t, it.IMDBRating)
}

func TestEnrich_RejectsNonMovies(t *testing.T) {
	svc := newTestService(t, &fakeOMDb{})

	it := &media.Item{Kind: media.KindBook, Title: "Dune"}
	err := svc.Enrich(context.Background(), it, t.TempDir())
	assert.Error(t, err)
}

func TestEnrichAll(t *testing.T) {
	fake := &fakeOMDb{answers: map[string]string{
		"Blade Runner|1982": movieJSON("Blade Runner", 1982),
		"Alien|1979":        movieJSON("Alien", 1979),
	}}
	svc := newTestService(t, fake)

	items := []*media.Item{
		{Kind: media.KindMovie, Title: "Blade Runner", Year: 1982},
		{Kind: media.KindMovie, Title: "Alien", Year: 1979},
		{Kind: media.KindMovie, Title: "Totally Unknown", Year: 2030},
		{Kind: media.KindBook, Title: "Dune"},
	}

	enriched, missed, err := svc.EnrichAll(context.Background(), items, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2, enriched)
	assert.Equal(t, 1, missed)

	assert.Equal(t, "tt0083658", items[0].IMDBID)
	assert.Equal(t, "tt0083658", items[1].IMDBID)
	assert.Empty(t, items[2].IMDBID)
	assert.Empty(t, items[3].IMDBID, "books are not enriched")
}
