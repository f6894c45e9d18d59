package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"songvault/internal/app/playlists"
	"songvault/internal/app/songs"
	"songvault/internal/auth"
	"songvault/internal/models"
	"songvault/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already out; nothing left to salvage.
		return
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates service errors into HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, songs.ErrAdminOnly), errors.Is(err, playlists.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, store.ErrDuplicateKey),
		errors.Is(err, playlists.ErrSongAlreadyInPlaylist),
		errors.Is(err, playlists.ErrSongNotInPlaylist):
		return http.StatusConflict
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
