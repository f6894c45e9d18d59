package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"songvault/internal/models"
	"songvault/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &models.User{
		ID:         "u1",
		Username:   "listener",
		Email:      "listener@example.com",
		Role:       models.RoleUser,
		LikedSongs: []string{"s1", "s2"},
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := s.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Username != "listener" || len(got.LikedSongs) != 2 || got.LikedSongs[1] != "s2" {
		t.Fatalf("round trip lost data: %+v", got)
	}

	byName, err := s.GetUserByUsername(ctx, "listener")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != "u1" {
		t.Fatalf("expected u1, got %s", byName.ID)
	}

	if _, err := s.GetUser(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUserUniqueViolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.User{ID: "u1", Username: "listener", Email: "l@example.com", Role: models.RoleUser, CreatedAt: time.Now()}
	if err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("create user: %v", err)
	}

	dup := &models.User{ID: "u2", Username: "listener", Email: "other@example.com", Role: models.RoleUser, CreatedAt: time.Now()}
	if err := s.CreateUser(ctx, dup); !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected duplicate-key error, got %v", err)
	}
}

func TestUpdateUserPersistsLikedSongs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &models.User{ID: "u1", Username: "listener", Email: "l@example.com", Role: models.RoleUser, CreatedAt: time.Now()}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user.LikeSong("s1")
	if err := s.UpdateUser(ctx, user); err != nil {
		t.Fatalf("update user: %v", err)
	}

	got, err := s.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !got.HasLikedSong("s1") {
		t.Fatalf("liked song not persisted: %v", got.LikedSongs)
	}

	missing := &models.User{ID: "ghost", Username: "ghost", Email: "g@example.com", Role: models.RoleUser}
	if err := s.UpdateUser(ctx, missing); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSongSearchAndRanking(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []*models.Song{
		{ID: "s1", Title: "Perfect", Artist: "Ed Sheeran", Genre: "Soft Rock", Duration: 423, LikeCount: 150, CreatedAt: base},
		{ID: "s2", Title: "Baarishein", Artist: "Anuv Jain", Genre: "Soft Rock", Duration: 391, LikeCount: 120, CreatedAt: base.Add(time.Second)},
		{ID: "s3", Title: "Shape of You", Artist: "Ed Sheeran", Genre: "Pop", Duration: 263, LikeCount: 200, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, song := range seed {
		if err := s.CreateSong(ctx, song); err != nil {
			t.Fatalf("create song: %v", err)
		}
	}

	results, err := s.SearchSongs(ctx, "sheeran")
	if err != nil {
		t.Fatalf("search songs: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}

	byGenre, err := s.SongsByGenre(ctx, "soft rock")
	if err != nil {
		t.Fatalf("songs by genre: %v", err)
	}
	if len(byGenre) != 2 {
		t.Fatalf("expected 2 soft rock songs, got %d", len(byGenre))
	}

	top, err := s.TopLikedSongs(ctx, 2)
	if err != nil {
		t.Fatalf("top liked: %v", err)
	}
	if len(top) != 2 || top[0].ID != "s3" || top[1].ID != "s1" {
		t.Fatalf("unexpected ranking: %v", top)
	}
}

func TestPlaylistRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	playlist := &models.Playlist{
		ID:        "p1",
		Name:      "Travelling",
		OwnerID:   "u1",
		SongIDs:   []string{"s1", "s2", "s5"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreatePlaylist(ctx, playlist); err != nil {
		t.Fatalf("create playlist: %v", err)
	}

	got, err := s.GetPlaylist(ctx, "p1")
	if err != nil {
		t.Fatalf("get playlist: %v", err)
	}
	if got.SongCount() != 3 || got.SongIDs[2] != "s5" {
		t.Fatalf("song ids lost in round trip: %v", got.SongIDs)
	}

	got.RemoveSong("s2")
	got.UpdatedAt = now.Add(time.Minute)
	if err := s.UpdatePlaylist(ctx, got); err != nil {
		t.Fatalf("update playlist: %v", err)
	}

	updated, err := s.GetPlaylist(ctx, "p1")
	if err != nil {
		t.Fatalf("get playlist: %v", err)
	}
	if updated.SongCount() != 2 || updated.SongIDs[0] != "s1" || updated.SongIDs[1] != "s5" {
		t.Fatalf("expected s1,s5 after removal, got %v", updated.SongIDs)
	}

	owned, err := s.PlaylistsByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("playlists by owner: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("expected 1 playlist for u1, got %d", len(owned))
	}

	if err := s.DeletePlaylist(ctx, "p1"); err != nil {
		t.Fatalf("delete playlist: %v", err)
	}
	if _, err := s.GetPlaylist(ctx, "p1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}
