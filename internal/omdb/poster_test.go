package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosterFilename(t *testing.T) {
	withID := &Result{IMDBID: "tt0083658", Poster: "https://x/p.png?v=1"}
	assert.Equal(t, "movie_tt0083658.png", PosterFilename(withID))

	noID := &Result{Title: "Blade Runner", Poster: "https://x/p"}
	name := PosterFilename(noID)
	assert.True(t, filepath.Ext(name) == ".jpg")
	assert.Contains(t, name, "movie_")

	// Same title, different casing: same file.
	assert.Equal(t, name, PosterFilename(&Result{Title: "  blade runner ", Poster: "https://x/p"}))
}

func TestDownloadPoster(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	client := NewClient("test-key")
	result := &Result{IMDBID: "tt0083658", Poster: server.URL + "/poster.jpg"}

	path, err := client.DownloadPoster(context.Background(), result, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "movie_tt0083658.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	// Second call skips the download entirely.
	again, err := client.DownloadPoster(context.Background(), result, dir)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, 1, calls)
}

func TestDownloadPoster_NoArt(t *testing.T) {
	client := NewClient("test-key")

	path, err := client.DownloadPoster(context.Background(), &Result{Poster: "N/A"}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestDownloadPoster_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-key")
	result := &Result{IMDBID: "tt1", Poster: server.URL + "/gone.jpg"}

	_, err := client.DownloadPoster(context.Background(), result, t.TempDir())
	assert.Error(t, err)
}
