package store

import (
	"fmt"

	"github.com/mediacat/mediacat/internal/media"
)

func insertBook(q querier, it *media.Item) error {
	result, err := q.Exec(`
		INSERT INTO books (title, year, genre, rating, status, added_at, cover_path, author, page_count, isbn)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.AddedAt, it.CoverPath,
		it.Author, it.PageCount, it.ISBN,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	it.ID = id
	return nil
}

func updateBook(q querier, it *media.Item) error {
	result, err := q.Exec(`
		UPDATE books SET title = ?, year = ?, genre = ?, rating = ?, status = ?, cover_path = ?,
			author = ?, page_count = ?, isbn = ?
		WHERE id = ?`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.CoverPath,
		it.Author, it.PageCount, it.ISBN, it.ID,
	)
	if err != nil {
		return fmt.Errorf("update book %d: %w", it.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update book %d: %w", it.ID, ErrNotFound)
	}
	return nil
}

func listBooks(q querier) ([]*media.Item, error) {
	rows, err := q.Query(`
		SELECT id, title, year, genre, rating, status, added_at, cover_path, author, page_count, isbn
		FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*media.Item
	for rows.Next() {
		it := &media.Item{Kind: media.KindBook}
		var status string
		if err := rows.Scan(&it.ID, &it.Title, &it.Year, &it.Genre, &it.Rating, &status,
			&it.AddedAt, &it.CoverPath, &it.Author, &it.PageCount, &it.ISBN); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		it.Status = media.ParseStatus(status)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return items, nil
}
