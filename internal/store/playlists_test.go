package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"songvault/internal/models"
)

func TestCreatePlaylistMarshalsSongIDs(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	playlist := &models.Playlist{
		ID:        "p1",
		Name:      "Travelling",
		OwnerID:   "u1",
		SongIDs:   []string{"s1", "s2"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlists")).
		WithArgs("p1", "Travelling", "", "u1", `["s1","s2"]`, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.CreatePlaylist(context.Background(), playlist); err != nil {
		t.Fatalf("create playlist: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetPlaylistDecodesSongIDs(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "owner_id", "song_ids", "created_at", "updated_at"}).
		AddRow("p1", "Travelling", "90s Bollywood", "u1", []byte(`["s1","s2","s5"]`), now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM playlists")).
		WithArgs("p1").
		WillReturnRows(rows)

	playlist, err := s.GetPlaylist(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get playlist: %v", err)
	}
	if playlist.SongCount() != 3 || playlist.SongIDs[2] != "s5" {
		t.Fatalf("song ids not decoded: %v", playlist.SongIDs)
	}
}

func TestPlaylistsByOwnerFilters(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "owner_id", "song_ids", "created_at", "updated_at"}).
		AddRow("p1", "Travelling", "", "u1", []byte(`[]`), now, now).
		AddRow("p3", "Workout Mix", "", "u1", []byte(`[]`), now, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1")).
		WithArgs("u1").
		WillReturnRows(rows)

	owned, err := s.PlaylistsByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("playlists by owner: %v", err)
	}
	if len(owned) != 2 || owned[1].Name != "Workout Mix" {
		t.Fatalf("unexpected playlists: %v", owned)
	}
}

func TestUpdatePlaylistNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE playlists")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdatePlaylist(context.Background(), &models.Playlist{ID: "missing", Name: "x", OwnerID: "u1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
