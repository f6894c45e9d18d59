// Package users implements the user directory: account lifecycle and the
// user-side view of the liked-songs relation.
package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"songvault/internal/models"
	"songvault/internal/store"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UpdateParams carries the fields a user update may overwrite. Identifier,
// liked songs and creation time are never touched by this path.
type UpdateParams struct {
	Username string
	Email    string
	Role     models.Role
}

// Service owns user workflows.
type Service struct {
	store Store
	log   zerolog.Logger
	newID func() string
	now   func() time.Time
}

// New wires a Service backed by the provided Store. Identifier generation and
// the clock default to uuid and wall time; tests override the fields directly.
func New(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   logger,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a new user. The username and email must be unused; the
// role defaults to the regular user role when unset.
func (s *Service) Create(ctx context.Context, candidate *models.User) (*models.User, error) {
	user := candidate.Clone()
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if taken, err := s.store.UsernameExists(ctx, user.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if taken {
		s.log.Warn().Str("username", user.Username).Msg("username already exists")
		return nil, fmt.Errorf("username %q: %w", user.Username, store.ErrDuplicateKey)
	}
	if taken, err := s.store.EmailExists(ctx, user.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		s.log.Warn().Str("email", user.Email).Msg("email already exists")
		return nil, fmt.Errorf("email %q: %w", user.Email, store.ErrDuplicateKey)
	}

	user.ID = s.newID()
	user.CreatedAt = s.now()
	if user.LikedSongs == nil {
		user.LikedSongs = []string{}
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// GetByUsername returns the user with the given username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.store.GetUserByUsername(ctx, username)
}

// List returns all users in store order.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// Update overwrites username, email and role of an existing user. Empty
// params keep the current value. A username or email already held by a
// different user is rejected.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(params.Username)
	if username == "" {
		username = user.Username
	}
	email := strings.TrimSpace(params.Email)
	if email == "" {
		email = user.Email
	}
	role := params.Role
	if role == "" {
		role = user.Role
	}

	if username != user.Username {
		if taken, err := s.store.UsernameExists(ctx, username); err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		} else if taken {
			return nil, fmt.Errorf("username %q: %w", username, store.ErrDuplicateKey)
		}
	}
	if email != user.Email {
		if taken, err := s.store.EmailExists(ctx, email); err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		} else if taken {
			return nil, fmt.Errorf("email %q: %w", email, store.ErrDuplicateKey)
		}
	}

	user.Username = username
	user.Email = email
	user.Role = role
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user updated")
	return user, nil
}

// LikedSongs returns the liked-song ids for the given user.
func (s *Service) LikedSongs(ctx context.Context, id string) ([]string, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.LikedSongs, nil
}
