// Package demo seeds a sample catalog for local development.
package demo

import (
	"context"
	"fmt"
	"time"

	"songvault/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store is the slice of the persistence surface seeding needs. Both the
// Postgres and the SQLite store satisfy it.
type Store interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateSong(ctx context.Context, song *models.Song) error
	CreatePlaylist(ctx context.Context, playlist *models.Playlist) error
}

// Seed loads the sample catalog into an empty store. A store that already
// holds users is left untouched.
func Seed(ctx context.Context, dataStore Store, logger zerolog.Logger) error {
	existing, err := dataStore.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("check existing users: %w", err)
	}
	if len(existing) > 0 {
		logger.Info().Msg("store already populated, skipping demo data")
		return nil
	}

	now := time.Now().UTC()

	newUser := func(username, email string, role models.Role) *models.User {
		return &models.User{
			ID:         uuid.NewString(),
			Username:   username,
			Email:      email,
			Role:       role,
			LikedSongs: []string{},
			CreatedAt:  now,
		}
	}
	admin := newUser("admin", "admin@musicapp.com", models.RoleAdmin)
	virat := newUser("viratkohli", "virat18@example.com", models.RoleUser)
	anushka := newUser("anushka", "anushka@example.com", models.RoleUser)

	newSong := func(title, artist, album, genre string, duration, likes int) *models.Song {
		return &models.Song{
			ID:        uuid.NewString(),
			Title:     title,
			Artist:    artist,
			Album:     album,
			Genre:     genre,
			Duration:  duration,
			LikeCount: likes,
			CreatedAt: now,
		}
	}
	songs := []*models.Song{
		newSong("Perfect", "Ed Sheeran", "Deluxe", "Soft Rock", 423, 150),
		newSong("Baarishein", "Anuv Jain", "Baarishein", "Soft Rock", 391, 120),
		newSong("Shape of You", "Ed Sheeran", "÷ (Divide)", "Pop", 263, 200),
		newSong("Arz Kiya Hai", "Anuv Jain", "Coke Studio Bharat", "Indian Pop", 294, 180),
		newSong("Dawood", "Sidhu Moosewala", "PBX1", "HIP-HOP", 356, 95),
		newSong("7 years", "Lukas Graham", "7 years", "Pop", 200, 250),
	}

	virat.LikedSongs = []string{songs[0].ID, songs[2].ID, songs[5].ID}
	anushka.LikedSongs = []string{songs[1].ID, songs[3].ID}

	newPlaylist := func(name, description string, owner *models.User, songIDs ...string) *models.Playlist {
		return &models.Playlist{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			OwnerID:     owner.ID,
			SongIDs:     songIDs,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	playlistSeeds := []*models.Playlist{
		newPlaylist("Travelling", "90s Bollywood", virat, songs[0].ID, songs[1].ID, songs[4].ID),
		newPlaylist("Sleeping", "Modern pop favorites", anushka, songs[2].ID, songs[3].ID, songs[5].ID),
		newPlaylist("Workout Mix", "High energy songs for workouts", virat, songs[2].ID, songs[5].ID),
	}

	for _, u := range []*models.User{admin, virat, anushka} {
		if err := dataStore.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	for _, s := range songs {
		if err := dataStore.CreateSong(ctx, s); err != nil {
			return fmt.Errorf("seed song %s: %w", s.Title, err)
		}
	}
	for _, p := range playlistSeeds {
		if err := dataStore.CreatePlaylist(ctx, p); err != nil {
			return fmt.Errorf("seed playlist %s: %w", p.Name, err)
		}
	}

	logger.Info().
		Int("users", 3).
		Int("songs", len(songs)).
		Int("playlists", len(playlistSeeds)).
		Msg("demo data loaded")
	return nil
}
