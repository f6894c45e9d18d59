package httpapi

import (
	"encoding/json"
	"net/http"

	"songvault/internal/app/playlists"
	"songvault/internal/models"

	"github.com/gorilla/mux"
)

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}

type updatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var payload createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ownerID := payload.OwnerID
	if requester, err := s.requestingUserID(r); err != nil {
		s.writeError(w, r, err)
		return
	} else if requester != "" {
		ownerID = requester
	}
	playlist, err := s.playlists.Create(r.Context(), payload.Name, payload.Description, ownerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, playlist)
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	list, err := s.playlists.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Playlist{"playlists": list})
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := s.playlists.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handlePlaylistsForUser(w http.ResponseWriter, r *http.Request) {
	list, err := s.playlists.ListForUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Playlist{"playlists": list})
}

func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var payload updatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	playlist, err := s.playlists.Update(r.Context(), mux.Vars(r)["id"], playlists.UpdateParams{
		Name:        payload.Name,
		Description: payload.Description,
	}, requester)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.playlists.Delete(r.Context(), mux.Vars(r)["id"], requester); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddPlaylistSong(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	vars := mux.Vars(r)
	playlist, err := s.playlists.AddSong(r.Context(), vars["id"], vars["songId"], requester)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleRemovePlaylistSong(w http.ResponseWriter, r *http.Request) {
	requester, err := s.requestingUserID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	vars := mux.Vars(r)
	playlist, err := s.playlists.RemoveSong(r.Context(), vars["id"], vars["songId"], requester)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}
