// Package metadata enriches catalog items from external metadata APIs.
package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mediacat/mediacat/internal/omdb"
)

// Cached lookups outlive the process; 7 days keeps repeat enrich runs
// off the API without letting ratings go too stale.
const lookupTTL = 7 * 24 * time.Hour

const keyPrefixLookup = "omdb:lookup:"

// LookupCache persists OMDb lookup results in SQLite, keyed by the
// query that produced them.
type LookupCache struct {
	db *sql.DB
}

// NewLookupCache creates a lookup cache on the given database.
func NewLookupCache(db *sql.DB) *LookupCache {
	return &LookupCache{db: db}
}

// lookupKey normalizes the query so "Blade Runner" and " blade runner "
// share an entry.
func lookupKey(title string, year int) string {
	return fmt.Sprintf("%s%s|%d", keyPrefixLookup, strings.ToLower(strings.TrimSpace(title)), year)
}

// Get returns the cached result for a query. Absent, expired, and
// unreadable entries all read as misses.
func (c *LookupCache) Get(ctx context.Context, title string, year int) (*omdb.Result, bool) {
	var value string
	var expiresAt time.Time

	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM metadata_cache WHERE key = ?", lookupKey(title, year),
	).Scan(&value, &expiresAt)

	if err != nil || time.Now().After(expiresAt) {
		return nil, false
	}

	var result omdb.Result
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Set stores a lookup result for lookupTTL.
func (c *LookupCache) Set(ctx context.Context, title string, year int, result *omdb.Result) error {
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO metadata_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		lookupKey(title, year), string(value), time.Now().Add(lookupTTL),
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete drops the cached result for a query, forcing the next lookup
// back to the API.
func (c *LookupCache) Delete(ctx context.Context, title string, year int) error {
	_, err := c.db.ExecContext(ctx,
		"DELETE FROM metadata_cache WHERE key = ?", lookupKey(title, year))
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Prune removes expired lookup entries, leaving other cache namespaces
// alone. Returns the number of entries removed.
func (c *LookupCache) Prune(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM metadata_cache WHERE key LIKE ? AND expires_at < ?",
		keyPrefixLookup+"%", time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}
