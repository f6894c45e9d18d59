package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"songvault/internal/models"
)

const playlistColumns = `id, name, description, owner_id, song_ids, created_at, updated_at`

// CreatePlaylist inserts a new playlist row.
func (s *Store) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	songIDs, err := marshalIDs(playlist.SongIDs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO playlists (id, name, description, owner_id, song_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, playlist.ID, playlist.Name, playlist.Description, playlist.OwnerID,
		songIDs, playlist.CreatedAt, playlist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert playlist: %w", err)
	}
	return nil
}

// GetPlaylist returns the playlist with the given id.
func (s *Store) GetPlaylist(ctx context.Context, id string) (*models.Playlist, error) {
	return scanPlaylist(s.db.QueryRowContext(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		WHERE id = ?
	`, id))
}

// ListPlaylists returns all playlists ordered by creation time.
func (s *Store) ListPlaylists(ctx context.Context) ([]*models.Playlist, error) {
	return s.queryPlaylists(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		ORDER BY created_at, id
	`)
}

// PlaylistsByOwner returns the playlists owned by ownerID.
func (s *Store) PlaylistsByOwner(ctx context.Context, ownerID string) ([]*models.Playlist, error) {
	return s.queryPlaylists(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, ownerID)
}

// UpdatePlaylist overwrites the stored playlist row by id.
func (s *Store) UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	songIDs, err := marshalIDs(playlist.SongIDs)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE playlists
		SET name = ?, description = ?, song_ids = ?, updated_at = ?
		WHERE id = ?
	`, playlist.Name, playlist.Description, songIDs, playlist.UpdatedAt, playlist.ID)
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	return affectedOrNotFound(res)
}

// DeletePlaylist removes the playlist with the given id.
func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return affectedOrNotFound(res)
}

func (s *Store) queryPlaylists(ctx context.Context, query string, args ...any) ([]*models.Playlist, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*models.Playlist
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}

func scanPlaylist(row rowScanner) (*models.Playlist, error) {
	var (
		playlist models.Playlist
		songIDs  string
	)
	err := row.Scan(&playlist.ID, &playlist.Name, &playlist.Description, &playlist.OwnerID,
		&songIDs, &playlist.CreatedAt, &playlist.UpdatedAt)
	if err != nil {
		return nil, notFoundOr(err, "scan playlist")
	}
	if err := json.Unmarshal([]byte(songIDs), &playlist.SongIDs); err != nil {
		return nil, fmt.Errorf("unmarshal song ids: %w", err)
	}
	return &playlist, nil
}
