package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"songvault/internal/auth"
	"songvault/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// handleLogin exchanges a username for a signed token. There is no password
// credential; identity works the same way as the console login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	user, err := s.users.GetByUsername(r.Context(), strings.TrimSpace(payload.Username))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// requestingUserID resolves the caller's identity. A bearer token wins over
// the userId query parameter; the parameter is kept for clients that do not
// authenticate.
func (s *Server) requestingUserID(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		claims, err := s.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return "", auth.ErrInvalidToken
		}
		return claims.UID, nil
	}
	return r.URL.Query().Get("userId"), nil
}
