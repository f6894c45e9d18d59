package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"songvault/internal/models"
)

const playlistColumns = `id, name, description, owner_id, song_ids, created_at, updated_at`

// CreatePlaylist inserts a new playlist document.
func (s *Store) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	songIDs, err := json.Marshal(emptyIfNil(playlist.SongIDs))
	if err != nil {
		return fmt.Errorf("marshal song ids: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO playlists (id, name, description, owner_id, song_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
	`, playlist.ID, playlist.Name, playlist.Description, playlist.OwnerID,
		string(songIDs), playlist.CreatedAt, playlist.UpdatedAt)
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
		WHERE id = $1
	`, id))
}

// ListPlaylists returns all playlists in store order.
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
		WHERE owner_id = $1
		ORDER BY created_at, id
	`, ownerID)
}

// UpdatePlaylist overwrites the stored playlist document by id.
func (s *Store) UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	songIDs, err := json.Marshal(emptyIfNil(playlist.SongIDs))
	if err != nil {
		return fmt.Errorf("marshal song ids: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE playlists
		SET name = $1, description = $2, song_ids = $3::jsonb, updated_at = $4
		WHERE id = $5
	`, playlist.Name, playlist.Description, string(songIDs), playlist.UpdatedAt, playlist.ID)
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlaylist removes the playlist with the given id.
func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
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
		songIDs  []byte
	)
	err := row.Scan(&playlist.ID, &playlist.Name, &playlist.Description, &playlist.OwnerID,
		&songIDs, &playlist.CreatedAt, &playlist.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan playlist: %w", err)
	}
	if err := json.Unmarshal(songIDs, &playlist.SongIDs); err != nil {
		return nil, fmt.Errorf("unmarshal song ids: %w", err)
	}
	return &playlist, nil
}
