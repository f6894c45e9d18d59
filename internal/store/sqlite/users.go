package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"songvault/internal/models"
	"songvault/internal/store"
)

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	liked, err := marshalIDs(user.LikedSongs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, role, liked_songs, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, user.ID, user.Username, user.Email, string(user.Role), liked, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicateKey
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, role, liked_songs, created_at
		FROM users
		WHERE id = ?
	`, id))
}

// GetUserByUsername returns the user with the given username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, role, liked_songs, created_at
		FROM users
		WHERE username = ?
	`, username))
}

// ListUsers returns all users ordered by creation time.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, email, role, liked_songs, created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites the stored user row by id.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	liked, err := marshalIDs(user.LikedSongs)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET username = ?, email = ?, role = ?, liked_songs = ?
		WHERE id = ?
	`, user.Username, user.Email, string(user.Role), liked, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicateKey
		}
		return fmt.Errorf("update user: %w", err)
	}
	return affectedOrNotFound(res)
}

// UsernameExists reports whether a user with the given username exists.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

// EmailExists reports whether a user with the given email exists.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user  models.User
		role  string
		liked string
	)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &role, &liked, &user.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "scan user")
	}
	user.Role = models.Role(role)
	if err := json.Unmarshal([]byte(liked), &user.LikedSongs); err != nil {
		return nil, fmt.Errorf("unmarshal liked songs: %w", err)
	}
	return &user, nil
}

func marshalIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("marshal id list: %w", err)
	}
	return string(raw), nil
}
