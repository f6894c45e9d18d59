package models

import (
	"slices"
	"strings"
	"time"
)

// Playlist is an ordered, duplicate-free list of song IDs owned by a single
// user. OwnerID is set at creation and never changes. Song and owner
// references are not cascaded: deleting a referenced entity leaves the ID
// behind.
type Playlist struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	SongIDs     []string  `json:"song_ids" db:"song_ids"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ContainsSong reports whether songID is already in the playlist.
func (p *Playlist) ContainsSong(songID string) bool {
	return slices.Contains(p.SongIDs, songID)
}

// AddSong appends songID unless it is already present.
func (p *Playlist) AddSong(songID string) {
	if !p.ContainsSong(songID) {
		p.SongIDs = append(p.SongIDs, songID)
	}
}

// RemoveSong deletes songID from the playlist, preserving the order of the
// remaining entries.
func (p *Playlist) RemoveSong(songID string) {
	p.SongIDs = slices.DeleteFunc(p.SongIDs, func(id string) bool {
		return id == songID
	})
}

// SongCount returns the number of songs in the playlist.
func (p *Playlist) SongCount() int {
	return len(p.SongIDs)
}

// Clone returns a deep copy of the playlist.
func (p *Playlist) Clone() *Playlist {
	if p == nil {
		return nil
	}
	clone := *p
	if len(p.SongIDs) > 0 {
		clone.SongIDs = make([]string, len(p.SongIDs))
		copy(clone.SongIDs, p.SongIDs)
	}
	return &clone
}

// Validate checks the field constraints on the playlist.
func (p *Playlist) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "playlist name is required"}
	}
	if len(name) > 50 {
		return &ValidationError{Field: "name", Message: "playlist name must be between 1 and 50 characters"}
	}
	if len(p.Description) > 200 {
		return &ValidationError{Field: "description", Message: "description must not exceed 200 characters"}
	}
	if strings.TrimSpace(p.OwnerID) == "" {
		return &ValidationError{Field: "owner_id", Message: "owner is required"}
	}
	return nil
}
