package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"songvault/internal/app/songs"
	"songvault/internal/models"

	"github.com/gorilla/mux"
)

type songRequest struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var payload songRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	song, err := s.songs.Create(r.Context(), &models.Song{
		Title:    payload.Title,
		Artist:   payload.Artist,
		Album:    payload.Album,
		Genre:    payload.Genre,
		Duration: payload.Duration,
	}, requester)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, song)
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	list, err := s.songs.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Song{"songs": list})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.songs.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var payload songRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	song, err := s.songs.Update(r.Context(), mux.Vars(r)["id"], songs.UpdateParams{
		Title:    payload.Title,
		Artist:   payload.Artist,
		Album:    payload.Album,
		Genre:    payload.Genre,
		Duration: payload.Duration,
	}, requester)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.songs.Delete(r.Context(), mux.Vars(r)["id"], requester); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearchSongs(w http.ResponseWriter, r *http.Request) {
	list, err := s.songs.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Song{"songs": list})
}

func (s *Server) handlePopularSongs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	list, err := s.songs.MostLiked(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Song{"songs": list})
}

func (s *Server) handleSongsByGenre(w http.ResponseWriter, r *http.Request) {
	list, err := s.songs.ByGenre(r.Context(), mux.Vars(r)["genre"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Song{"songs": list})
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	song, err := s.songs.ToggleLike(r.Context(), mux.Vars(r)["id"], requester)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}
