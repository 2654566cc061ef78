package store

import (
	"fmt"
	"time"

	"github.com/mediacat/mediacat/internal/media"
)

func insertItem(q querier, it *media.Item) error {
	if it.AddedAt.IsZero() {
		it.AddedAt = time.Now()
	}
	// Timestamps are stored as naive UTC.
	it.AddedAt = it.AddedAt.UTC()

	switch it.Kind {
	case media.KindBook:
		return insertBook(q, it)
	case media.KindMovie:
		return insertMovie(q, it)
	case media.KindGame:
		return insertGame(q, it)
	case media.KindMusic:
		return insertMusic(q, it)
	default:
		return fmt.Errorf("insert: %w: %q", media.ErrUnknownKind, it.Kind)
	}
}

// Insert writes a new item to its kind's table and sets the assigned ID
// on the struct. AddedAt defaults to now (UTC) when unset.
func (s *Store) Insert(it *media.Item) error { return insertItem(s.db, it) }

// Insert writes a new item within a transaction.
func (t *Tx) Insert(it *media.Item) error { return insertItem(t.tx, it) }

// InsertAll writes a batch of items in one transaction: either every
// item lands or none do.
func (s *Store) InsertAll(items []*media.Item) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := tx.Insert(it); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func updateItem(q querier, it *media.Item) error {
	switch it.Kind {
	case media.KindBook:
		return updateBook(q, it)
	case media.KindMovie:
		return updateMovie(q, it)
	case media.KindGame:
		return updateGame(q, it)
	case media.KindMusic:
		return updateMusic(q, it)
	default:
		return fmt.Errorf("update: %w: %q", media.ErrUnknownKind, it.Kind)
	}
}

// Update rewrites an existing item.
// Returns ErrNotFound if no row with the item's ID exists.
func (s *Store) Update(it *media.Item) error { return updateItem(s.db, it) }

func deleteItem(q querier, it *media.Item) error {
	table, err := tableFor(it.Kind)
	if err != nil {
		return err
	}
	if _, err := q.Exec("DELETE FROM "+table+" WHERE id = ?", it.ID); err != nil {
		return fmt.Errorf("delete %s %d: %w", it.Kind, it.ID, mapSQLiteError(err))
	}
	return nil
}

// Delete removes an item's row.
// This operation is idempotent - no error is returned if the row does not exist.
func (s *Store) Delete(it *media.Item) error { return deleteItem(s.db, it) }

func loadAll(q querier) ([]*media.Item, error) {
	var items []*media.Item
	loaders := []func(querier) ([]*media.Item, error){
		listBooks, listMovies, listGames, listMusic,
	}
	for _, load := range loaders {
		batch, err := load(q)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// LoadAll returns every item from every kind's table, ordered by kind
// (Book, Movie, Game, Music) then by ID within a kind.
func (s *Store) LoadAll() ([]*media.Item, error) { return loadAll(s.db) }
