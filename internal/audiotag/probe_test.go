package audiotag

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mediacat/mediacat/internal/media"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProbe_UntaggedFile(t *testing.T) {
	path := writeFile(t, "track.mp3", []byte("not really audio"))

	info := Probe(path)
	if info.Format != "mp3" {
		t.Errorf("Format = %q, want mp3", info.Format)
	}
	if info.SizeBytes != int64(len("not really audio")) {
		t.Errorf("SizeBytes = %d", info.SizeBytes)
	}
	if info.Title != "" || info.Artist != "" {
		t.Errorf("unreadable tags should stay empty, got %+v", info)
	}
}

func TestProbe_EstimatesDuration(t *testing.T) {
	// 192 kbit/s nominal for mp3: 240000 bytes = 1920000 bits = 10s.
	path := writeFile(t, "track.mp3", make([]byte, 240000))

	info := Probe(path)
	if info.Duration != 10*time.Second {
		t.Errorf("Duration = %v, want 10s", info.Duration)
	}
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		format string
		size   int64
		want   time.Duration
	}{
		{"mp3", 240000, 10 * time.Second},
		{"flac", 900 * 1000 / 8 * 60, time.Minute},
		{"txt", 240000, 0},
		{"", 240000, 0},
		{"mp3", 0, 0},
	}
	for _, tt := range tests {
		if got := estimateDuration(tt.format, tt.size); got != tt.want {
			t.Errorf("estimateDuration(%q, %d) = %v, want %v", tt.format, tt.size, got, tt.want)
		}
	}
}

func TestProbe_MissingFile(t *testing.T) {
	info := Probe(filepath.Join(t.TempDir(), "nope.flac"))
	if info.Format != "flac" {
		t.Errorf("Format = %q, want flac", info.Format)
	}
	if info.SizeBytes != 0 {
		t.Errorf("SizeBytes = %d, want 0", info.SizeBytes)
	}
}

func TestProbe_UnknownExtension(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("x"))
	if got := Probe(path).Format; got != "" {
		t.Errorf("Format = %q, want empty", got)
	}
}

func TestApply(t *testing.T) {
	info := Info{
		Title:     "Paranoid Android",
		Artist:    "Radiohead",
		Album:     "OK Computer",
		Genre:     "Rock",
		Year:      1997,
		Format:    "flac",
		SizeBytes: 42,
		Duration:  6 * time.Minute,
	}

	it := &media.Item{Kind: media.KindMusic, Format: "mp3"}
	info.Apply(it)

	if it.Duration != 6*time.Minute {
		t.Errorf("Duration = %v, want 6m", it.Duration)
	}

	if it.Title != "Paranoid Android" || it.Artist != "Radiohead" {
		t.Errorf("tags not applied: %+v", it)
	}
	if it.Album != "OK Computer" || it.Genre != "Rock" || it.Year != 1997 {
		t.Errorf("tags not applied: %+v", it)
	}
	if it.Format != "flac" {
		t.Errorf("Format = %q, want flac", it.Format)
	}
	if it.FileSizeBytes != 42 {
		t.Errorf("FileSizeBytes = %d", it.FileSizeBytes)
	}
}

func TestApply_KeepsUserFields(t *testing.T) {
	info := Info{Title: "From Tag", Year: 1997}

	it := &media.Item{Kind: media.KindMusic, Title: "My Title", Year: 2001}
	info.Apply(it)

	if it.Title != "My Title" {
		t.Errorf("Title = %q, user value should win", it.Title)
	}
	if it.Year != 2001 {
		t.Errorf("Year = %d, user value should win", it.Year)
	}
}
