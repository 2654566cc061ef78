// Package omdb provides a client for the OMDb movie database API.
package omdb

import (
	"strconv"
	"strings"
	"time"
)

// Result represents an OMDb title lookup response.
type Result struct {
	Response   string `json:"Response"` // "True" or "False"
	Error      string `json:"Error,omitempty"`
	Title      string `json:"Title"`
	Year       string `json:"Year"` // "1982", sometimes "1982–1984"
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Runtime    string `json:"Runtime"` // "117 min"
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	IMDBID     string `json:"imdbID"`
}

// Found reports whether the response carries a title.
func (r *Result) Found() bool { return r.Response == "True" }

// YearInt parses the release year leniently: the first run of digits
// wins, out-of-range values yield 0.
func (r *Result) YearInt() int {
	digits := strings.TrimFunc(r.Year, func(c rune) bool { return c < '0' || c > '9' })
	if i := strings.IndexFunc(digits, func(c rune) bool { return c < '0' || c > '9' }); i >= 0 {
		digits = digits[:i]
	}
	year, err := strconv.Atoi(digits)
	if err != nil || year < 1800 || year > time.Now().Year()+5 {
		return 0
	}
	return year
}

// RuntimeDuration parses the "117 min" runtime form, or 0.
func (r *Result) RuntimeDuration() time.Duration {
	fields := strings.Fields(r.Runtime)
	if len(fields) == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}

// HasPoster reports whether the result carries a usable poster URL.
// OMDb uses "N/A" and nopicture placeholders for missing art.
func (r *Result) HasPoster() bool {
	return r.Poster != "" && r.Poster != "N/A" && !strings.Contains(r.Poster, "nopicture")
}
