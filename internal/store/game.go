package store

import (
	"fmt"

	"github.com/mediacat/mediacat/internal/media"
)

func insertGame(q querier, it *media.Item) error {
	result, err := q.Exec(`
		INSERT INTO games (title, year, genre, rating, status, added_at, cover_path, platform, developer, play_time_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.AddedAt, it.CoverPath,
		it.Platform, it.Developer, it.PlayTimeHours,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	it.ID = id
	return nil
}

func updateGame(q querier, it *media.Item) error {
	result, err := q.Exec(`
		UPDATE games SET title = ?, year = ?, genre = ?, rating = ?, status = ?, cover_path = ?,
			platform = ?, developer = ?, play_time_hours = ?
		WHERE id = ?`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.CoverPath,
		it.Platform, it.Developer, it.PlayTimeHours, it.ID,
	)
	if err != nil {
		return fmt.Errorf("update game %d: %w", it.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update game %d: %w", it.ID, ErrNotFound)
	}
	return nil
}

func listGames(q querier) ([]*media.Item, error) {
	rows, err := q.Query(`
		SELECT id, title, year, genre, rating, status, added_at, cover_path, platform, developer, play_time_hours
		FROM games ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*media.Item
	for rows.Next() {
		it := &media.Item{Kind: media.KindGame}
		var status string
		if err := rows.Scan(&it.ID, &it.Title, &it.Year, &it.Genre, &it.Rating, &status,
			&it.AddedAt, &it.CoverPath, &it.Platform, &it.Developer, &it.PlayTimeHours); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		it.Status = media.ParseStatus(status)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return items, nil
}
