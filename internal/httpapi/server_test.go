package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"songvault/internal/app/playlists"
	"songvault/internal/app/songs"
	"songvault/internal/app/users"
	"songvault/internal/auth"
	"songvault/internal/models"
	"songvault/internal/store"
)

type stubUserService struct {
	user    *models.User
	users   []*models.User
	liked   []string
	err     error
	lastGet string
}

func (s *stubUserService) Create(_ context.Context, candidate *models.User) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) Get(_ context.Context, id string) (*models.User, error) {
	s.lastGet = id
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) List(context.Context) ([]*models.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Update(_ context.Context, id string, _ users.UpdateParams) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) LikedSongs(context.Context, string) ([]string, error) {
	return s.liked, s.err
}

type stubSongService struct {
	song          *models.Song
	songs         []*models.Song
	err           error
	lastRequester string
	lastToggled   string
}

func (s *stubSongService) Create(_ context.Context, _ *models.Song, requestingUserID string) (*models.Song, error) {
	s.lastRequester = requestingUserID
	if s.err != nil {
		return nil, s.err
	}
	return s.song, nil
}

func (s *stubSongService) Get(context.Context, string) (*models.Song, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.song, nil
}

func (s *stubSongService) List(context.Context) ([]*models.Song, error) {
	return s.songs, s.err
}

func (s *stubSongService) Update(_ context.Context, _ string, _ songs.UpdateParams, requestingUserID string) (*models.Song, error) {
	s.lastRequester = requestingUserID
	if s.err != nil {
		return nil, s.err
	}
	return s.song, nil
}

func (s *stubSongService) Delete(_ context.Context, _ string, requestingUserID string) error {
	s.lastRequester = requestingUserID
	return s.err
}

func (s *stubSongService) Search(context.Context, string) ([]*models.Song, error) {
	return s.songs, s.err
}

func (s *stubSongService) MostLiked(context.Context, int) ([]*models.Song, error) {
	return s.songs, s.err
}

func (s *stubSongService) ByGenre(context.Context, string) ([]*models.Song, error) {
	return s.songs, s.err
}

func (s *stubSongService) ToggleLike(_ context.Context, songID, userID string) (*models.Song, error) {
	s.lastToggled = songID
	s.lastRequester = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.song, nil
}

type stubPlaylistService struct {
	playlist      *models.Playlist
	playlists     []*models.Playlist
	err           error
	lastRequester string
}

func (s *stubPlaylistService) Create(_ context.Context, name, description, ownerID string) (*models.Playlist, error) {
	s.lastRequester = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return s.playlist, nil
}

func (s *stubPlaylistService) Get(context.Context, string) (*models.Playlist, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.playlist, nil
}

func (s *stubPlaylistService) List(context.Context) ([]*models.Playlist, error) {
	return s.playlists, s.err
}

func (s *stubPlaylistService) ListForUser(context.Context, string) ([]*models.Playlist, error) {
	return s.playlists, s.err
}

func (s *stubPlaylistService) Update(_ context.Context, _ string, _ playlists.UpdateParams, requestingUserID string) (*models.Playlist, error) {
	s.lastRequester = requestingUserID
	if s.err != nil {
		return nil, s.err
	}
	return s.playlist, nil
}

func (s *stubPlaylistService) Delete(_ context.Context, _ string, requestingUserID string) error {
	s.lastRequester = requestingUserID
	return s.err
}

func (s *stubPlaylistService) AddSong(_ context.Context, _, _, requestingUserID string) (*models.Playlist, error) {
	s.lastRequester = requestingUserID
	if s.err != nil {
		return nil, s.err
	}
	return s.playlist, nil
}

func (s *stubPlaylistService) RemoveSong(_ context.Context, _, _, requestingUserID string) (*models.Playlist, error) {
	s.lastRequester = requestingUserID
	if s.err != nil {
		return nil, s.err
	}
	return s.playlist, nil
}

func newTestServer(usersSvc *stubUserService, songsSvc *stubSongService, playlistsSvc *stubPlaylistService) *Server {
	if usersSvc == nil {
		usersSvc = &stubUserService{}
	}
	if songsSvc == nil {
		songsSvc = &stubSongService{}
	}
	if playlistsSvc == nil {
		playlistsSvc = &stubPlaylistService{}
	}
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return New(usersSvc, songsSvc, playlistsSvc, issuer, zerolog.Nop())
}

func TestGetSongNotFoundMapsTo404(t *testing.T) {
	srv := newTestServer(nil, &stubSongService{err: store.ErrNotFound}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/songs/missing", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateSongAdminOnlyMapsTo403(t *testing.T) {
	srv := newTestServer(nil, &stubSongService{err: songs.ErrAdminOnly}, nil)

	body := bytes.NewBufferString(`{"title":"x","artist":"y","duration":100}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs?userId=regular", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAddPlaylistSongConflictMapsTo409(t *testing.T) {
	srv := newTestServer(nil, nil, &stubPlaylistService{err: playlists.ErrSongAlreadyInPlaylist})

	req := httptest.NewRequest(http.MethodPost, "/api/playlists/p1/songs/s1?userId=owner", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestCreateUserValidationMapsTo400(t *testing.T) {
	srv := newTestServer(&stubUserService{err: &models.ValidationError{Field: "username", Message: "too short"}}, nil, nil)

	body := bytes.NewBufferString(`{"username":"ab","email":"ab@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateUserDuplicateMapsTo409(t *testing.T) {
	srv := newTestServer(&stubUserService{err: store.ErrDuplicateKey}, nil, nil)

	body := bytes.NewBufferString(`{"username":"listener","email":"l@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestToggleLikePassesIdentity(t *testing.T) {
	songSvc := &stubSongService{song: &models.Song{ID: "s1", Title: "Perfect", LikeCount: 1}}
	srv := newTestServer(nil, songSvc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/songs/s1/like?userId=listener", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if songSvc.lastToggled != "s1" || songSvc.lastRequester != "listener" {
		t.Fatalf("identity not forwarded: song %q user %q", songSvc.lastToggled, songSvc.lastRequester)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	userSvc := &stubUserService{user: &models.User{ID: "u1", Username: "listener", Role: models.RoleUser}}
	srv := newTestServer(userSvc, nil, nil)

	body := bytes.NewBufferString(`{"username":"listener"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token in the login response")
	}

	claims, err := srv.tokens.Parse(resp.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UID != "u1" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestBearerTokenOverridesUserIDParam(t *testing.T) {
	songSvc := &stubSongService{song: &models.Song{ID: "s1"}}
	srv := newTestServer(nil, songSvc, nil)

	token, err := srv.tokens.Issue("token-user", "user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/songs/s1/like?userId=param-user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if songSvc.lastRequester != "token-user" {
		t.Fatalf("expected bearer identity to win, got %q", songSvc.lastRequester)
	}
}

func TestInvalidBearerTokenMapsTo401(t *testing.T) {
	srv := newTestServer(nil, &stubSongService{song: &models.Song{ID: "s1"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/songs/s1/like", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestDeletePlaylistForbiddenMapsTo403(t *testing.T) {
	srv := newTestServer(nil, nil, &stubPlaylistService{err: playlists.ErrNotOwner})

	req := httptest.NewRequest(http.MethodDelete, "/api/playlists/p1?userId=intruder", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
