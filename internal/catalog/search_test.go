package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediacat/mediacat/internal/media"
)

func seedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, _ := newTestCatalog(t)

	book, err := c.Create("Book")
	require.NoError(t, err)
	book.Title = "The Name of the Wind"
	book.Author = "Patrick Rothfuss"
	book.Genre = "Fantasy"
	book.PageCount = 662
	require.NoError(t, c.Add(book))

	movie, err := c.Create("Movie")
	require.NoError(t, err)
	movie.Title = "Alien"
	movie.Director = "Ridley Scott"
	movie.Genre = "Horror"
	movie.Year = 1979
	movie.Duration = 117 * time.Minute
	require.NoError(t, c.Add(movie))

	game, err := c.Create("Game")
	require.NoError(t, err)
	game.Title = "Alien: Isolation"
	game.Platform = "PC"
	game.Developer = "Creative Assembly"
	game.Year = 2014
	require.NoError(t, c.Add(game))

	return c
}

func TestSearch_BlankReturnsAllInOrder(t *testing.T) {
	c := seedCatalog(t)

	all := c.Search("")
	require.Len(t, all, 3)
	assert.Equal(t, c.Items(), all)

	// Whitespace-only behaves like empty.
	assert.Equal(t, all, c.Search("   "))
}

func TestSearch_ByField(t *testing.T) {
	c := seedCatalog(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"alien", []string{"Alien", "Alien: Isolation"}},   // title, case-insensitive
		{"fantasy", []string{"The Name of the Wind"}},      // genre
		{"rothfuss", []string{"The Name of the Wind"}},     // book author
		{"ridley", []string{"Alien"}},                      // movie director
		{"creative", nil},                                  // game developer is not searchable
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := c.Search(tt.query)
		var titles []string
		for _, it := range got {
			titles = append(titles, it.Title)
		}
		assert.Equal(t, tt.want, titles, "query %q", tt.query)
	}
}

func TestSearch_SubsetOfAll(t *testing.T) {
	c := seedCatalog(t)
	all := c.Search("")

	for _, q := range []string{"alien", "the", "scott", "x"} {
		for _, it := range c.Search(q) {
			assert.Contains(t, all, it, "Search(%q) returned an item outside the collection", q)
		}
	}
}

func TestSearch_ReturnsIndependentSlice(t *testing.T) {
	c := seedCatalog(t)

	snapshot := c.Search("")
	require.NoError(t, c.Delete(snapshot[0]))

	// The snapshot still holds three entries; the catalog has two.
	assert.Len(t, snapshot, 3)
	assert.Equal(t, 2, c.Len())
}

func TestFilterByKind(t *testing.T) {
	c := seedCatalog(t)

	all, err := c.FilterByKind("All")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	books, err := c.FilterByKind("Book")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, media.KindBook, books[0].Kind)

	music, err := c.FilterByKind("Music")
	require.NoError(t, err)
	assert.Empty(t, music)

	_, err = c.FilterByKind("Podcast")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSuggest(t *testing.T) {
	c := seedCatalog(t)

	// Typo that substring search cannot serve.
	assert.Empty(t, c.Search("Alein"))

	got := c.Suggest("Alein", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Alien", got[0].Item.Title)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score, "suggestions must be ranked")
	}
	for _, s := range got {
		assert.GreaterOrEqual(t, s.Score, suggestFloor)
	}
}

func TestSuggest_Limit(t *testing.T) {
	c := seedCatalog(t)
	got := c.Suggest("alien", 1)
	assert.Len(t, got, 1)
}

func TestSuggest_BlankQuery(t *testing.T) {
	c := seedCatalog(t)
	assert.Nil(t, c.Suggest("  ", 5))
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Léon: The Professional", "leon the professional"},
		{"Spy & Family", "spy and family"},
		{"  Weird   spacing ", "weird spacing"},
		{"Don't Look Up!", "don t look up"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeTitle(tt.in), "normalizeTitle(%q)", tt.in)
	}
}
