package omdb

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PosterFilename derives a stable local filename for a result's poster.
// Results with an IMDb id use it directly, anything else falls back to a
// hash of the title so repeated downloads land on the same file.
func PosterFilename(r *Result) string {
	ext := posterExt(r.Poster)
	if r.IMDBID != "" {
		return "movie_" + r.IMDBID + ext
	}
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(r.Title))))
	return "movie_" + hex.EncodeToString(sum[:8]) + ext
}

func posterExt(posterURL string) string {
	if i := strings.IndexByte(posterURL, '?'); i >= 0 {
		posterURL = posterURL[:i]
	}
	ext := strings.ToLower(path.Ext(posterURL))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	}
	return ".jpg"
}

// DownloadPoster fetches a result's poster into dir and returns the local
// path. The download is idempotent: if the target file already exists it
// is kept as is. Results without usable art return an empty path and no
// error.
func (c *Client) DownloadPoster(ctx context.Context, r *Result, dir string) (string, error) {
	if !r.HasPoster() {
		return "", nil
	}

	dest := filepath.Join(dir, PosterFilename(r))
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create poster dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Poster, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch poster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch poster: %s", resp.Status)
	}

	tmp, err := os.CreateTemp(dir, ".poster-*")
	if err != nil {
		return "", fmt.Errorf("create poster file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write poster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write poster: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("write poster: %w", err)
	}
	return dest, nil
}
