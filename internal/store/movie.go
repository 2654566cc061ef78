package store

import (
	"fmt"
	"time"

	"github.com/mediacat/mediacat/internal/media"
)

func insertMovie(q querier, it *media.Item) error {
	result, err := q.Exec(`
		INSERT INTO movies (title, year, genre, rating, status, added_at, cover_path,
			director, duration_secs, studio, plot, actors, imdb_id, imdb_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.AddedAt, it.CoverPath,
		it.Director, int64(it.Duration/time.Second), it.Studio, it.Plot, it.Actors, it.IMDBID, it.IMDBRating,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	it.ID = id
	return nil
}

func updateMovie(q querier, it *media.Item) error {
	result, err := q.Exec(`
		UPDATE movies SET title = ?, year = ?, genre = ?, rating = ?, status = ?, cover_path = ?,
			director = ?, duration_secs = ?, studio = ?, plot = ?, actors = ?, imdb_id = ?, imdb_rating = ?
		WHERE id = ?`,
		it.Title, it.Year, it.Genre, it.Rating, it.Status.Name(), it.CoverPath,
		it.Director, int64(it.Duration/time.Second), it.Studio, it.Plot, it.Actors, it.IMDBID, it.IMDBRating,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("update movie %d: %w", it.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update movie %d: %w", it.ID, ErrNotFound)
	}
	return nil
}

func listMovies(q querier) ([]*media.Item, error) {
	rows, err := q.Query(`
		SELECT id, title, year, genre, rating, status, added_at, cover_path,
			director, duration_secs, studio, plot, actors, imdb_id, imdb_rating
		FROM movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*media.Item
	for rows.Next() {
		it := &media.Item{Kind: media.KindMovie}
		var status string
		var durationSecs int64
		if err := rows.Scan(&it.ID, &it.Title, &it.Year, &it.Genre, &it.Rating, &status,
			&it.AddedAt, &it.CoverPath, &it.Director, &durationSecs, &it.Studio,
			&it.Plot, &it.Actors, &it.IMDBID, &it.IMDBRating); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		it.Status = media.ParseStatus(status)
		it.Duration = time.Duration(durationSecs) * time.Second
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return items, nil
}
