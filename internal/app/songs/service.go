// Package songs implements the song catalog: admin-gated lifecycle, search,
// popularity ranking and the like toggle that keeps the liked-songs relation
// consistent across the user and song documents.
package songs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"songvault/internal/models"
)

// ErrAdminOnly is returned when a song mutation is requested by a caller
// without the admin role.
var ErrAdminOnly = errors.New("only admins can modify songs")

// DefaultMostLikedLimit caps the popularity ranking when no limit is given.
const DefaultMostLikedLimit = 10

// Store describes the persistence operations required by the song catalog.
// ToggleLike touches the user document too, so the user accessors are part
// of the contract.
type Store interface {
	CreateSong(ctx context.Context, song *models.Song) error
	GetSong(ctx context.Context, id string) (*models.Song, error)
	ListSongs(ctx context.Context) ([]*models.Song, error)
	UpdateSong(ctx context.Context, song *models.Song) error
	DeleteSong(ctx context.Context, id string) error
	SearchSongs(ctx context.Context, term string) ([]*models.Song, error)
	SongsByGenre(ctx context.Context, genre string) ([]*models.Song, error)
	TopLikedSongs(ctx context.Context, n int) ([]*models.Song, error)

	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// UpdateParams carries the fields a song update may overwrite. The like
// counter and identifier are never touched by this path.
type UpdateParams struct {
	Title    string
	Artist   string
	Album    string
	Genre    string
	Duration int
}

// Service owns song catalog workflows.
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

// Create adds a song to the catalog. Only admins may create songs. The like
// count starts at the supplied value (normally zero).
func (s *Service) Create(ctx context.Context, candidate *models.Song, requestingUserID string) (*models.Song, error) {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	song := candidate.Clone()
	if err := song.Validate(); err != nil {
		return nil, err
	}

	song.ID = s.newID()
	song.CreatedAt = s.now()

	if err := s.store.CreateSong(ctx, song); err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}
	s.log.Info().Str("song_id", song.ID).Str("title", song.Title).Str("artist", song.Artist).Msg("song created")
	return song, nil
}

// Get returns the song with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.Song, error) {
	return s.store.GetSong(ctx, id)
}

// List returns all songs in store order.
func (s *Service) List(ctx context.Context) ([]*models.Song, error) {
	return s.store.ListSongs(ctx)
}

// Update overwrites the descriptive fields of an existing song. Empty params
// keep the current value. Only admins may update songs.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams, requestingUserID string) (*models.Song, error) {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	song, err := s.store.GetSong(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != "" {
		song.Title = params.Title
	}
	if params.Artist != "" {
		song.Artist = params.Artist
	}
	if params.Album != "" {
		song.Album = params.Album
	}
	if params.Genre != "" {
		song.Genre = params.Genre
	}
	if params.Duration != 0 {
		song.Duration = params.Duration
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateSong(ctx, song); err != nil {
		return nil, fmt.Errorf("update song: %w", err)
	}
	s.log.Info().Str("song_id", song.ID).Str("title", song.Title).Msg("song updated")
	return song, nil
}

// Delete removes a song from the catalog. Only admins may delete songs.
// References from playlists and liked-song sets are left behind on purpose.
func (s *Service) Delete(ctx context.Context, id string, requestingUserID string) error {
	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return err
	}

	if _, err := s.store.GetSong(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteSong(ctx, id); err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	s.log.Info().Str("song_id", id).Msg("song deleted")
	return nil
}

// Search returns songs whose title or artist contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) ([]*models.Song, error) {
	return s.store.SearchSongs(ctx, term)
}

// MostLiked returns the songs ranked by like count descending, capped at
// limit. A non-positive limit falls back to DefaultMostLikedLimit.
func (s *Service) MostLiked(ctx context.Context, limit int) ([]*models.Song, error) {
	if limit <= 0 {
		limit = DefaultMostLikedLimit
	}
	return s.store.TopLikedSongs(ctx, limit)
}

// ByGenre returns songs whose genre matches exactly, ignoring case.
func (s *Service) ByGenre(ctx context.Context, genre string) ([]*models.Song, error) {
	return s.store.SongsByGenre(ctx, genre)
}

// ToggleLike flips the liked state of the song for the given user: liking
// adds the song id to the user's set and increments the song's counter,
// unliking does the reverse. The user document is persisted first, then the
// song; the two writes are independent, so a failure between them leaves the
// counter and the set briefly divergent (no cross-document transaction is
// available).
func (s *Service) ToggleLike(ctx context.Context, songID, userID string) (*models.Song, error) {
	song, err := s.store.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasLikedSong(songID) {
		user.UnlikeSong(songID)
		song.DecrementLikeCount()
		s.log.Info().Str("song_id", songID).Str("user_id", userID).Msg("song unliked")
	} else {
		user.LikeSong(songID)
		song.IncrementLikeCount()
		s.log.Info().Str("song_id", songID).Str("user_id", userID).Msg("song liked")
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("persist liked songs: %w", err)
	}
	if err := s.store.UpdateSong(ctx, song); err != nil {
		return nil, fmt.Errorf("persist like count: %w", err)
	}
	return song, nil
}

func (s *Service) requireAdmin(ctx context.Context, userID string) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil || !user.IsAdmin() {
		s.log.Warn().Str("user_id", userID).Msg("song mutation rejected")
		return ErrAdminOnly
	}
	return nil
}
