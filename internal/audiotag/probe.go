// Package audiotag reads embedded metadata from local audio files.
package audiotag

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"

	"github.com/mediacat/mediacat/internal/media"
)

// Info holds what could be read from an audio file. Fields the file does
// not carry stay at their zero values; probing never fails.
type Info struct {
	Title     string
	Artist    string
	Album     string
	Genre     string
	Year      int
	Format    string
	SizeBytes int64
	Duration  time.Duration
}

// Probe inspects the file at path. Unreadable or untagged files still
// yield the format (from the extension) and size when available.
func Probe(path string) Info {
	info := Info{Format: formatFromExt(path)}

	if st, err := os.Stat(path); err == nil {
		info.SizeBytes = st.Size()
	}
	info.Duration = estimateDuration(info.Format, info.SizeBytes)

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	info.Title = m.Title()
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Genre = m.Genre()
	info.Year = m.Year()
	return info
}

// Apply copies probed values onto a music item without clobbering
// anything the user already set.
func (info Info) Apply(it *media.Item) {
	if it.Title == "" && info.Title != "" {
		it.Title = info.Title
	}
	if it.Artist == "" && info.Artist != "" {
		it.Artist = info.Artist
	}
	if it.Album == "" && info.Album != "" {
		it.Album = info.Album
	}
	if it.Genre == "" && info.Genre != "" {
		it.Genre = info.Genre
	}
	if it.Year == 0 && info.Year != 0 {
		it.Year = info.Year
	}
	if info.Format != "" {
		it.Format = info.Format
	}
	if info.SizeBytes > 0 {
		it.FileSizeBytes = info.SizeBytes
	}
	if it.Duration == 0 && info.Duration > 0 {
		it.Duration = info.Duration
	}
}

func formatFromExt(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "mp3", "flac", "ogg", "m4a", "wav", "aac":
		return ext
	}
	return ""
}

// Nominal bitrates (kbit/s) per format. The tag reader does not expose
// a track length, so length is estimated from file size at the format's
// nominal bitrate.
var nominalKbps = map[string]int64{
	"mp3":  192,
	"aac":  160,
	"m4a":  160,
	"ogg":  160,
	"flac": 900,
	"wav":  1411,
}

func estimateDuration(format string, sizeBytes int64) time.Duration {
	kbps, ok := nominalKbps[format]
	if !ok || sizeBytes <= 0 {
		return 0
	}
	seconds := sizeBytes * 8 / (kbps * 1000)
	return time.Duration(seconds) * time.Second
}
