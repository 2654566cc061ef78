package store

import (
	"fmt"
	"time"

	"github.com/mediacat/mediacat/internal/media"
)

func insertMusic(q querier, it *media.Item) error {
	result, err := q.Exec(`
		INSERT INTO music (title, year, genre, rating, status, added_at, cover_path,
			artist, album, duration_secs, format, file_path, file_size_bytes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.AddedAt, it.CoverPath,
		it.Artist, it.Album, int64(it.Duration/time.Second), it.Format, it.FilePath, it.FileSizeBytes,
	)
	if err != nil {
		return fmt.Errorf("insert music: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	it.ID = id
	return nil
}

func updateMusic(q querier, it *media.Item) error {
	result, err := q.Exec(`
		UPDATE music SET title = ?, year = ?, genre = ?, rating = ?, status = ?, cover_path = ?,
			artist = ?, album = ?, duration_secs = ?, format = ?, file_path = ?, file_size_bytes = ?
		WHERE id = ?`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.CoverPath,
		it.Artist, it.Album, int64(it.Duration/time.Second), it.Format, it.FilePath, it.FileSizeBytes,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("update music %d: %w", it.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update music %d: %w", it.ID, ErrNotFound)
	}
	return nil
}

func listMusic(q querier) ([]*media.Item, error) {
	rows, err := q.Query(`
		SELECT id, title, year, genre, rating, status, added_at, cover_path,
			artist, album, duration_secs, format, file_path, file_size_bytes
		FROM music ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list music: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*media.Item
	for rows.Next() {
		it := &media.Item{Kind: media.KindMusic}
		var status string
		var durationSecs int64
		if err := rows.Scan(&it.ID, &it.Title, &it.Year, &it.Genre, &it.Rating, &status,
			&it.AddedAt, &it.CoverPath, &it.Artist, &it.Album, &durationSecs,
			&it.Format, &it.FilePath, &it.FileSizeBytes); err != nil {
			return nil, fmt.Errorf("scan music: %w", err)
		}
		it.Status = media.ParseStatus(status)
		it.Duration = time.Duration(durationSecs) * time.Second
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate music: %w", err)
	}
	return items, nil
}
