package memstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"songvault/internal/models"
	"songvault/internal/store"
)

func TestUserUniqueness(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := &models.User{ID: "u1", Username: "listener", Email: "listener@example.com", Role: models.RoleUser}
	if err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("create user: %v", err)
	}

	dupName := &models.User{ID: "u2", Username: "listener", Email: "other@example.com", Role: models.RoleUser}
	if err := s.CreateUser(ctx, dupName); !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected duplicate-key for username, got %v", err)
	}
	dupMail := &models.User{ID: "u3", Username: "other", Email: "listener@example.com", Role: models.RoleUser}
	if err := s.CreateUser(ctx, dupMail); !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected duplicate-key for email, got %v", err)
	}
}

func TestReadsReturnClones(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &models.User{ID: "u1", Username: "listener", Email: "l@example.com", Role: models.RoleUser, LikedSongs: []string{"s1"}}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := s.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	got.LikedSongs[0] = "mutated"
	got.Username = "mutated"

	again, err := s.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get user again: %v", err)
	}
	if again.Username != "listener" || again.LikedSongs[0] != "s1" {
		t.Fatalf("stored state aliased by a read: %+v", again)
	}

	// Mutating the caller's struct after a write must not leak in either.
	user.Username = "changed-after-write"
	final, err := s.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if final.Username != "listener" {
		t.Fatalf("stored state aliased by a write: %+v", final)
	}
}

func TestListUsersInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := &models.User{
			ID:       fmt.Sprintf("u%d", i),
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Role:     models.RoleUser,
		}
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("create user %d: %v", i, err)
		}
	}

	all, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	for i, u := range all {
		if u.ID != fmt.Sprintf("u%d", i) {
			t.Fatalf("listing out of insertion order at %d: %s", i, u.ID)
		}
	}
}

func TestSongLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	song := &models.Song{ID: "s1", Title: "Perfect", Artist: "Ed Sheeran", Genre: "Pop", Duration: 423}
	if err := s.CreateSong(ctx, song); err != nil {
		t.Fatalf("create song: %v", err)
	}

	song.LikeCount = 3
	if err := s.UpdateSong(ctx, song); err != nil {
		t.Fatalf("update song: %v", err)
	}
	got, err := s.GetSong(ctx, "s1")
	if err != nil {
		t.Fatalf("get song: %v", err)
	}
	if got.LikeCount != 3 {
		t.Fatalf("update not persisted, like count %d", got.LikeCount)
	}

	if err := s.DeleteSong(ctx, "s1"); err != nil {
		t.Fatalf("delete song: %v", err)
	}
	if _, err := s.GetSong(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if err := s.DeleteSong(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestSearchSongsCaseInsensitive(t *testing.T) {
	s := New()
	ctx := context.Background()

	seed := []*models.Song{
		{ID: "s1", Title: "Perfect", Artist: "Ed Sheeran", Duration: 423},
		{ID: "s2", Title: "Baarishein", Artist: "Anuv Jain", Duration: 391},
	}
	for _, song := range seed {
		if err := s.CreateSong(ctx, song); err != nil {
			t.Fatalf("create song: %v", err)
		}
	}

	results, err := s.SearchSongs(ctx, "PERF")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "s1" {
		t.Fatalf("expected s1 for case-insensitive title match, got %v", results)
	}

	results, err = s.SearchSongs(ctx, "jain")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "s2" {
		t.Fatalf("expected s2 for artist match, got %v", results)
	}
}

func TestTopLikedSongsRanking(t *testing.T) {
	s := New()
	ctx := context.Background()

	likes := []int{5, 20, 10, 1}
	for i, n := range likes {
		song := &models.Song{ID: fmt.Sprintf("s%d", i), Title: fmt.Sprintf("t%d", i), Artist: "a", Duration: 60, LikeCount: n}
		if err := s.CreateSong(ctx, song); err != nil {
			t.Fatalf("create song: %v", err)
		}
	}

	top, err := s.TopLikedSongs(ctx, 2)
	if err != nil {
		t.Fatalf("top liked: %v", err)
	}
	if len(top) != 2 || top[0].ID != "s1" || top[1].ID != "s2" {
		t.Fatalf("expected s1,s2 ranking, got %v", top)
	}
}

func TestPlaylistsByOwner(t *testing.T) {
	s := New()
	ctx := context.Background()

	seed := []*models.Playlist{
		{ID: "p1", Name: "Travelling", OwnerID: "u1"},
		{ID: "p2", Name: "Sleeping", OwnerID: "u2"},
		{ID: "p3", Name: "Workout Mix", OwnerID: "u1"},
	}
	for _, p := range seed {
		if err := s.CreatePlaylist(ctx, p); err != nil {
			t.Fatalf("create playlist: %v", err)
		}
	}

	owned, err := s.PlaylistsByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("playlists by owner: %v", err)
	}
	if len(owned) != 2 || owned[0].ID != "p1" || owned[1].ID != "p3" {
		t.Fatalf("expected p1,p3 for u1, got %v", owned)
	}

	none, err := s.PlaylistsByOwner(ctx, "nobody")
	if err != nil {
		t.Fatalf("playlists by owner: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no playlists for unknown owner, got %d", len(none))
	}
}
