// Package memstore provides an in-memory entity store. It backs service
// tests and the demo mode of the server; it mirrors the Postgres store's
// contract, including its sentinel errors.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"songvault/internal/models"
	"songvault/internal/store"
)

// Store keeps all entities in process memory, cloning on every read and
// write so callers never alias internal state.
type Store struct {
	mu sync.RWMutex

	users     map[string]*models.User
	songs     map[string]*models.Song
	playlists map[string]*models.Playlist

	// insertion order, so listings are deterministic
	userOrder     []string
	songOrder     []string
	playlistOrder []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:     make(map[string]*models.User),
		songs:     make(map[string]*models.Song),
		playlists: make(map[string]*models.Playlist),
	}
}

// CreateUser inserts a user, enforcing username and email uniqueness.
func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return store.ErrDuplicateKey
		}
	}
	s.users[user.ID] = user.Clone()
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user.Clone(), nil
}

// GetUserByUsername returns the user with the given username.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user.Clone(), nil
		}
	}
	return nil, store.ErrNotFound
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id].Clone())
	}
	return users, nil
}

// UpdateUser overwrites the stored user by id, enforcing uniqueness against
// other users.
func (s *Store) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	for id, existing := range s.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username || existing.Email == user.Email {
			return store.ErrDuplicateKey
		}
	}
	s.users[user.ID] = user.Clone()
	return nil
}

// UsernameExists reports whether a user with the given username exists.
func (s *Store) UsernameExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// EmailExists reports whether a user with the given email exists.
func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// CreateSong inserts a song.
func (s *Store) CreateSong(_ context.Context, song *models.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.songs[song.ID] = song.Clone()
	s.songOrder = append(s.songOrder, song.ID)
	return nil
}

// GetSong returns the song with the given id.
func (s *Store) GetSong(_ context.Context, id string) (*models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	song, ok := s.songs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return song.Clone(), nil
}

// ListSongs returns all songs in insertion order.
func (s *Store) ListSongs(_ context.Context) ([]*models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	songs := make([]*models.Song, 0, len(s.songOrder))
	for _, id := range s.songOrder {
		songs = append(songs, s.songs[id].Clone())
	}
	return songs, nil
}

// UpdateSong overwrites the stored song by id.
func (s *Store) UpdateSong(_ context.Context, song *models.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.songs[song.ID]; !ok {
		return store.ErrNotFound
	}
	s.songs[song.ID] = song.Clone()
	return nil
}

// DeleteSong removes the song with the given id.
func (s *Store) DeleteSong(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.songs[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.songs, id)
	s.songOrder = removeID(s.songOrder, id)
	return nil
}

// SearchSongs returns songs whose title or artist contains term,
// case-insensitively, in insertion order.
func (s *Store) SearchSongs(_ context.Context, term string) ([]*models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	var matches []*models.Song
	for _, id := range s.songOrder {
		song := s.songs[id]
		if strings.Contains(strings.ToLower(song.Title), needle) ||
			strings.Contains(strings.ToLower(song.Artist), needle) {
			matches = append(matches, song.Clone())
		}
	}
	return matches, nil
}

// SongsByGenre returns songs whose genre matches exactly, ignoring case.
func (s *Store) SongsByGenre(_ context.Context, genre string) ([]*models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*models.Song
	for _, id := range s.songOrder {
		song := s.songs[id]
		if strings.EqualFold(song.Genre, genre) {
			matches = append(matches, song.Clone())
		}
	}
	return matches, nil
}

// TopLikedSongs returns up to n songs ordered by like count descending.
// Ties keep insertion order.
func (s *Store) TopLikedSongs(_ context.Context, n int) ([]*models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	songs := make([]*models.Song, 0, len(s.songOrder))
	for _, id := range s.songOrder {
		songs = append(songs, s.songs[id].Clone())
	}
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].LikeCount > songs[j].LikeCount
	})
	if len(songs) > n {
		songs = songs[:n]
	}
	return songs, nil
}

// CreatePlaylist inserts a playlist.
func (s *Store) CreatePlaylist(_ context.Context, playlist *models.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playlists[playlist.ID] = playlist.Clone()
	s.playlistOrder = append(s.playlistOrder, playlist.ID)
	return nil
}

// GetPlaylist returns the playlist with the given id.
func (s *Store) GetPlaylist(_ context.Context, id string) (*models.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist, ok := s.playlists[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return playlist.Clone(), nil
}

// ListPlaylists returns all playlists in insertion order.
func (s *Store) ListPlaylists(_ context.Context) ([]*models.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlists := make([]*models.Playlist, 0, len(s.playlistOrder))
	for _, id := range s.playlistOrder {
		playlists = append(playlists, s.playlists[id].Clone())
	}
	return playlists, nil
}

// PlaylistsByOwner returns the playlists owned by ownerID in insertion order.
func (s *Store) PlaylistsByOwner(_ context.Context, ownerID string) ([]*models.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var playlists []*models.Playlist
	for _, id := range s.playlistOrder {
		if s.playlists[id].OwnerID == ownerID {
			playlists = append(playlists, s.playlists[id].Clone())
		}
	}
	return playlists, nil
}

// UpdatePlaylist overwrites the stored playlist by id.
func (s *Store) UpdatePlaylist(_ context.Context, playlist *models.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[playlist.ID]; !ok {
		return store.ErrNotFound
	}
	s.playlists[playlist.ID] = playlist.Clone()
	return nil
}

// DeletePlaylist removes the playlist with the given id.
func (s *Store) DeletePlaylist(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.playlists, id)
	s.playlistOrder = removeID(s.playlistOrder, id)
	return nil
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
