// Package playlists implements the playlist manager: lifecycle, the
// playlist-contains-songs relation and the owner-only authorization rule
// that guards every mutation.
package playlists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"songvault/internal/models"
)

var (
	// ErrNotOwner is returned when a playlist mutation is requested by
	// anyone but the playlist's owner. Admins get no bypass here: the
	// ownership rule is exact-match.
	ErrNotOwner = errors.New("you can only modify your own playlists")
	// ErrSongAlreadyInPlaylist rejects adding a song twice.
	ErrSongAlreadyInPlaylist = errors.New("song already exists in playlist")
	// ErrSongNotInPlaylist rejects removing a song that is not there.
	ErrSongNotInPlaylist = errors.New("song not found in playlist")
)

// Store describes the persistence operations required by the playlist
// manager. Creating a playlist verifies its owner and adding a song verifies
// the song, so user and song lookups are part of the contract.
type Store interface {
	CreatePlaylist(ctx context.Context, playlist *models.Playlist) error
	GetPlaylist(ctx context.Context, id string) (*models.Playlist, error)
	ListPlaylists(ctx context.Context) ([]*models.Playlist, error)
	PlaylistsByOwner(ctx context.Context, ownerID string) ([]*models.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error
	DeletePlaylist(ctx context.Context, id string) error

	GetUser(ctx context.Context, id string) (*models.User, error)
	GetSong(ctx context.Context, id string) (*models.Song, error)
}

// UpdateParams carries the fields a playlist update may overwrite. Owner and
// song list are untouched by this path.
type UpdateParams struct {
	Name        string
	Description string
}

// Service owns playlist workflows.
type Service struct {
	store Store
	log   zerolog.Logger
	newID func() string
	now   func() time.Time
}

// New wires a Service backed by the provided Store.
func New(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   logger,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new, empty playlist for the given owner.
func (s *Service) Create(ctx context.Context, name, description, ownerID string) (*models.Playlist, error) {
	if _, err := s.store.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	now := s.now()
	playlist := &models.Playlist{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		SongIDs:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := playlist.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	s.log.Info().Str("playlist_id", playlist.ID).Str("owner_id", ownerID).Str("name", playlist.Name).Msg("playlist created")
	return playlist, nil
}

// Get returns the playlist with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.Playlist, error) {
	return s.store.GetPlaylist(ctx, id)
}

// List returns all playlists in store order.
func (s *Service) List(ctx context.Context) ([]*models.Playlist, error) {
	return s.store.ListPlaylists(ctx)
}

// ListForUser returns the playlists owned by ownerID. The owner must exist.
func (s *Service) ListForUser(ctx context.Context, ownerID string) ([]*models.Playlist, error) {
	if _, err := s.store.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.store.PlaylistsByOwner(ctx, ownerID)
}

// Update overwrites a playlist's name and description and refreshes the
// updated timestamp. An empty name keeps the current one. Only the owner may
// update.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams, requestingUserID string) (*models.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, id, requestingUserID)
	if err != nil {
		return nil, err
	}

	if params.Name != "" {
		playlist.Name = params.Name
	}
	playlist.Description = params.Description
	playlist.UpdatedAt = s.now()
	if err := playlist.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	s.log.Info().Str("playlist_id", playlist.ID).Str("name", playlist.Name).Msg("playlist updated")
	return playlist, nil
}

// Delete removes a playlist. Only the owner may delete. Once deleted, every
// later reference resolves to not-found.
func (s *Service) Delete(ctx context.Context, id string, requestingUserID string) error {
	playlist, err := s.ownedPlaylist(ctx, id, requestingUserID)
	if err != nil {
		return err
	}

	if err := s.store.DeletePlaylist(ctx, playlist.ID); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	s.log.Info().Str("playlist_id", playlist.ID).Str("name", playlist.Name).Msg("playlist deleted")
	return nil
}

// AddSong appends a song to the playlist. The song must exist, the caller
// must own the playlist, and the song must not already be in it.
func (s *Service) AddSong(ctx context.Context, playlistID, songID, requestingUserID string) (*models.Playlist, error) {
	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	song, err := s.store.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != requestingUserID {
		s.log.Warn().Str("playlist_id", playlistID).Str("user_id", requestingUserID).Msg("playlist mutation rejected")
		return nil, ErrNotOwner
	}
	if playlist.ContainsSong(songID) {
		return nil, ErrSongAlreadyInPlaylist
	}

	playlist.AddSong(songID)
	playlist.UpdatedAt = s.now()
	if err := s.store.UpdatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("persist playlist: %w", err)
	}
	s.log.Info().Str("playlist_id", playlistID).Str("song_id", songID).
		Str("title", song.Title).Int("song_count", playlist.SongCount()).Msg("song added to playlist")
	return playlist, nil
}

// RemoveSong removes a song from the playlist. The caller must own the
// playlist and the song must currently be in it; the song itself does not
// need to exist anymore.
func (s *Service) RemoveSong(ctx context.Context, playlistID, songID, requestingUserID string) (*models.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, playlistID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !playlist.ContainsSong(songID) {
		return nil, ErrSongNotInPlaylist
	}

	playlist.RemoveSong(songID)
	playlist.UpdatedAt = s.now()
	if err := s.store.UpdatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("persist playlist: %w", err)
	}
	s.log.Info().Str("playlist_id", playlistID).Str("song_id", songID).
		Int("song_count", playlist.SongCount()).Msg("song removed from playlist")
	return playlist, nil
}

func (s *Service) ownedPlaylist(ctx context.Context, id, requestingUserID string) (*models.Playlist, error) {
	playlist, err := s.store.GetPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != requestingUserID {
		s.log.Warn().Str("playlist_id", id).Str("user_id", requestingUserID).Msg("playlist mutation rejected")
		return nil, ErrNotOwner
	}
	return playlist, nil
}
