// Package httpapi exposes the catalog over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"songvault/internal/app/playlists"
	"songvault/internal/app/songs"
	"songvault/internal/app/users"
	"songvault/internal/auth"
	"songvault/internal/models"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Create(ctx context.Context, candidate *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, params users.UpdateParams) (*models.User, error)
	LikedSongs(ctx context.Context, id string) ([]string, error)
}

// SongService coordinates catalog and like workflows.
type SongService interface {
	Create(ctx context.Context, candidate *models.Song, requestingUserID string) (*models.Song, error)
	Get(ctx context.Context, id string) (*models.Song, error)
	List(ctx context.Context) ([]*models.Song, error)
	Update(ctx context.Context, id string, params songs.UpdateParams, requestingUserID string) (*models.Song, error)
	Delete(ctx context.Context, id string, requestingUserID string) error
	Search(ctx context.Context, term string) ([]*models.Song, error)
	MostLiked(ctx context.Context, limit int) ([]*models.Song, error)
	ByGenre(ctx context.Context, genre string) ([]*models.Song, error)
	ToggleLike(ctx context.Context, songID, userID string) (*models.Song, error)
}

// PlaylistService coordinates playlist operations.
type PlaylistService interface {
	Create(ctx context.Context, name, description, ownerID string) (*models.Playlist, error)
	Get(ctx context.Context, id string) (*models.Playlist, error)
	List(ctx context.Context) ([]*models.Playlist, error)
	ListForUser(ctx context.Context, ownerID string) ([]*models.Playlist, error)
	Update(ctx context.Context, id string, params playlists.UpdateParams, requestingUserID string) (*models.Playlist, error)
	Delete(ctx context.Context, id string, requestingUserID string) error
	AddSong(ctx context.Context, playlistID, songID, requestingUserID string) (*models.Playlist, error)
	RemoveSong(ctx context.Context, playlistID, songID, requestingUserID string) (*models.Playlist, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	songs     SongService
	playlists PlaylistService
	tokens    *auth.Issuer
	log       zerolog.Logger
}

// New configures a Server over the given services.
func New(users UserService, songs SongService, playlists PlaylistService, tokens *auth.Issuer, logger zerolog.Logger) *Server {
	return &Server{
		users:     users,
		songs:     songs,
		playlists: playlists,
		tokens:    tokens,
		log:       logger.With().Str("component", "httpapi").Logger(),
	}
}

// Routes mounts all handlers and returns the root handler with middleware
// applied.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	api.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/username/{username}", s.handleGetUserByUsername).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", s.handleUpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/liked-songs", s.handleLikedSongs).Methods(http.MethodGet)

	api.HandleFunc("/songs", s.handleCreateSong).Methods(http.MethodPost)
	api.HandleFunc("/songs", s.handleListSongs).Methods(http.MethodGet)
	api.HandleFunc("/songs/search", s.handleSearchSongs).Methods(http.MethodGet)
	api.HandleFunc("/songs/popular", s.handlePopularSongs).Methods(http.MethodGet)
	api.HandleFunc("/songs/genre/{genre}", s.handleSongsByGenre).Methods(http.MethodGet)
	api.HandleFunc("/songs/{id}", s.handleGetSong).Methods(http.MethodGet)
	api.HandleFunc("/songs/{id}", s.handleUpdateSong).Methods(http.MethodPut)
	api.HandleFunc("/songs/{id}", s.handleDeleteSong).Methods(http.MethodDelete)
	api.HandleFunc("/songs/{id}/like", s.handleToggleLike).Methods(http.MethodPost)

	api.HandleFunc("/playlists", s.handleCreatePlaylist).Methods(http.MethodPost)
	api.HandleFunc("/playlists", s.handleListPlaylists).Methods(http.MethodGet)
	api.HandleFunc("/playlists/user/{userId}", s.handlePlaylistsForUser).Methods(http.MethodGet)
	api.HandleFunc("/playlists/{id}", s.handleGetPlaylist).Methods(http.MethodGet)
	api.HandleFunc("/playlists/{id}", s.handleUpdatePlaylist).Methods(http.MethodPut)
	api.HandleFunc("/playlists/{id}", s.handleDeletePlaylist).Methods(http.MethodDelete)
	api.HandleFunc("/playlists/{id}/songs/{songId}", s.handleAddPlaylistSong).Methods(http.MethodPost)
	api.HandleFunc("/playlists/{id}/songs/{songId}", s.handleRemovePlaylistSong).Methods(http.MethodDelete)

	var handler http.Handler = r
	handler = Recovery(s.log)(handler)
	handler = RequestLogging(s.log)(handler)
	return handler
}
