package models

import (
	"strings"
	"time"
)

// Song is a catalog track. LikeCount is derived state: it tracks how many
// users hold this song in their liked set and is maintained by the like
// toggle, not enforced by the store.
type Song struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Artist    string    `json:"artist" db:"artist"`
	Album     string    `json:"album,omitempty" db:"album"`
	Genre     string    `json:"genre,omitempty" db:"genre"`
	Duration  int       `json:"duration" db:"duration"`
	LikeCount int       `json:"like_count" db:"like_count"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IncrementLikeCount bumps the derived like counter.
func (s *Song) IncrementLikeCount() {
	s.LikeCount++
}

// DecrementLikeCount lowers the derived like counter, floored at zero.
func (s *Song) DecrementLikeCount() {
	if s.LikeCount > 0 {
		s.LikeCount--
	}
}

// Clone returns a copy of the song.
func (s *Song) Clone() *Song {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// Validate checks the field constraints on the song.
func (s *Song) Validate() error {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return &ValidationError{Field: "title", Message: "song title is required"}
	}
	if len(title) > 100 {
		return &ValidationError{Field: "title", Message: "title must be between 1 and 100 characters"}
	}
	artist := strings.TrimSpace(s.Artist)
	if artist == "" {
		return &ValidationError{Field: "artist", Message: "artist name is required"}
	}
	if len(artist) > 50 {
		return &ValidationError{Field: "artist", Message: "artist name must be between 1 and 50 characters"}
	}
	if len(s.Album) > 50 {
		return &ValidationError{Field: "album", Message: "album name must not exceed 50 characters"}
	}
	if len(s.Genre) > 30 {
		return &ValidationError{Field: "genre", Message: "genre must not exceed 30 characters"}
	}
	if s.Duration < 1 || s.Duration > 3600 {
		return &ValidationError{Field: "duration", Message: "duration must be between 1 and 3600 seconds"}
	}
	if s.LikeCount < 0 {
		return &ValidationError{Field: "like_count", Message: "like count cannot be negative"}
	}
	return nil
}
