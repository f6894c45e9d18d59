package models

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"
)

// Role controls which catalog operations a user may perform.
type Role string

const (
	// RoleUser is the default role for new accounts.
	RoleUser Role = "user"
	// RoleAdmin unlocks song lifecycle mutations.
	RoleAdmin Role = "admin"
)

// ParseRole maps free-form input onto a known Role.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", &ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", raw)}
	}
}

// User is an account that can like songs and own playlists.
// LikedSongs holds song IDs and is treated as a set: no duplicates, order irrelevant.
type User struct {
	ID         string    `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Email      string    `json:"email" db:"email"`
	Role       Role      `json:"role" db:"role"`
	LikedSongs []string  `json:"liked_songs" db:"liked_songs"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasLikedSong reports whether songID is in the user's liked set.
func (u *User) HasLikedSong(songID string) bool {
	return slices.Contains(u.LikedSongs, songID)
}

// LikeSong adds songID to the liked set if not already present.
func (u *User) LikeSong(songID string) {
	if !u.HasLikedSong(songID) {
		u.LikedSongs = append(u.LikedSongs, songID)
	}
}

// UnlikeSong removes songID from the liked set.
func (u *User) UnlikeSong(songID string) {
	u.LikedSongs = slices.DeleteFunc(u.LikedSongs, func(id string) bool {
		return id == songID
	})
}

// Clone returns a deep copy so callers cannot alias stored state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	if len(u.LikedSongs) > 0 {
		clone.LikedSongs = make([]string, len(u.LikedSongs))
		copy(clone.LikedSongs, u.LikedSongs)
	}
	return &clone
}

// Validate checks the field constraints on the user.
func (u *User) Validate() error {
	username := strings.TrimSpace(u.Username)
	if username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < 3 || len(username) > 20 {
		return &ValidationError{Field: "username", Message: "username must be between 3 and 20 characters"}
	}
	email := strings.TrimSpace(u.Email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "email must be a valid address"}
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return &ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", u.Role)}
	}
	return nil
}
