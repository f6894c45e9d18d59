package sqlite

import (
	"context"
	"fmt"

	"songvault/internal/models"
)

const songColumns = `id, title, artist, album, genre, duration, like_count, created_at`

// CreateSong inserts a new song row.
func (s *Store) CreateSong(ctx context.Context, song *models.Song) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO songs (id, title, artist, album, genre, duration, like_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, song.ID, song.Title, song.Artist, song.Album, song.Genre, song.Duration, song.LikeCount, song.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

// GetSong returns the song with the given id.
func (s *Store) GetSong(ctx context.Context, id string) (*models.Song, error) {
	return scanSong(s.db.QueryRowContext(ctx, `
		SELECT `+songColumns+`
		FROM songs
		WHERE id = ?
	`, id))
}

// ListSongs returns all songs ordered by creation time.
func (s *Store) ListSongs(ctx context.Context) ([]*models.Song, error) {
	return s.querySongs(ctx, `
		SELECT `+songColumns+`
		FROM songs
		ORDER BY created_at, id
	`)
}

// UpdateSong overwrites the stored song row by id.
func (s *Store) UpdateSong(ctx context.Context, song *models.Song) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET title = ?, artist = ?, album = ?, genre = ?, duration = ?, like_count = ?
		WHERE id = ?
	`, song.Title, song.Artist, song.Album, song.Genre, song.Duration, song.LikeCount, song.ID)
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	return affectedOrNotFound(res)
}

// DeleteSong removes the song with the given id.
func (s *Store) DeleteSong(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	return affectedOrNotFound(res)
}

// SearchSongs returns songs whose title or artist contains term,
// case-insensitively.
func (s *Store) SearchSongs(ctx context.Context, term string) ([]*models.Song, error) {
	pattern := "%" + term + "%"
	return s.querySongs(ctx, `
		SELECT `+songColumns+`
		FROM songs
		WHERE LOWER(title) LIKE LOWER(?) OR LOWER(artist) LIKE LOWER(?)
		ORDER BY created_at, id
	`, pattern, pattern)
}

// SongsByGenre returns songs whose genre matches exactly, ignoring case.
func (s *Store) SongsByGenre(ctx context.Context, genre string) ([]*models.Song, error) {
	return s.querySongs(ctx, `
		SELECT `+songColumns+`
		FROM songs
		WHERE LOWER(genre) = LOWER(?)
		ORDER BY created_at, id
	`, genre)
}

// TopLikedSongs returns up to n songs ordered by like count descending,
// ties broken by insertion order.
func (s *Store) TopLikedSongs(ctx context.Context, n int) ([]*models.Song, error) {
	return s.querySongs(ctx, `
		SELECT `+songColumns+`
		FROM songs
		ORDER BY like_count DESC, created_at, id
		LIMIT ?
	`, n)
}

func (s *Store) querySongs(ctx context.Context, query string, args ...any) ([]*models.Song, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}

func scanSong(row rowScanner) (*models.Song, error) {
	var song models.Song
	err := row.Scan(&song.ID, &song.Title, &song.Artist, &song.Album, &song.Genre,
		&song.Duration, &song.LikeCount, &song.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "scan song")
	}
	return &song, nil
}
