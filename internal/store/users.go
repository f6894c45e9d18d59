package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"songvault/internal/models"
)

// CreateUser inserts a new user document.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	liked, err := json.Marshal(emptyIfNil(user.LikedSongs))
	if err != nil {
		return fmt.Errorf("marshal liked songs: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, role, liked_songs, created_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6)
	`, user.ID, user.Username, user.Email, string(user.Role), string(liked), user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, role, liked_songs, created_at
		FROM users
		WHERE id = $1
	`, id))
}

// GetUserByUsername returns the user with the given username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, role, liked_songs, created_at
		FROM users
		WHERE username = $1
	`, username))
}

// ListUsers returns all users in store order.
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
		user, err := s.scanUser(rows)
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

// UpdateUser overwrites the stored user document by id.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	liked, err := json.Marshal(emptyIfNil(user.LikedSongs))
	if err != nil {
		return fmt.Errorf("marshal liked songs: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET username = $1, email = $2, role = $3, liked_songs = $4::jsonb
		WHERE id = $5
	`, user.Username, user.Email, string(user.Role), string(liked), user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UsernameExists reports whether a user with the given username exists.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.userFieldExists(ctx, "username", username)
}

// EmailExists reports whether a user with the given email exists.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userFieldExists(ctx, "email", email)
}

func (s *Store) userFieldExists(ctx context.Context, field, value string) (bool, error) {
	var exists bool
	// field is one of the fixed column names above, never caller input.
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1)`, field)
	if err := s.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s exists: %w", field, err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanUser(row rowScanner) (*models.User, error) {
	var (
		user  models.User
		role  string
		liked []byte
	)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &role, &liked, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.Role = models.Role(role)
	if err := json.Unmarshal(liked, &user.LikedSongs); err != nil {
		return nil, fmt.Errorf("unmarshal liked songs: %w", err)
	}
	return &user, nil
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
