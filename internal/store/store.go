// Package store persists catalog items in SQLite, one table per kind.
package store

import (
	"database/sql"
	"fmt"

	"github.com/mediacat/mediacat/internal/media"
	"github.com/mediacat/mediacat/internal/migrations"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Store provides access to catalog data.
type Store struct {
	db *sql.DB
}

// NewStore creates a new catalog store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the schema. Safe to call on an existing database.
func (s *Store) Init() error {
	if _, err := s.db.Exec(migrations.InitialSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// tableFor maps a kind to its table name.
func tableFor(kind media.Kind) (string, error) {
	switch kind {
	case media.KindBook:
		return "books", nil
	case media.KindMovie:
		return "movies", nil
	case media.KindGame:
		return "games", nil
	case media.KindMusic:
		return "music", nil
	default:
		return "", fmt.Errorf("no table for kind %q: %w", kind, media.ErrUnknownKind)
	}
}
