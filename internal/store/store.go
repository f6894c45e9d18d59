package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey signals a unique constraint violation on username or email.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store provides entity persistence backed by Postgres. Each entity lives in
// its own document-style row; there are no cross-table transactions and no
// foreign keys between entities, so stale references are possible after
// deletes.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id          TEXT PRIMARY KEY,
	username    TEXT NOT NULL UNIQUE,
	email       TEXT NOT NULL UNIQUE,
	role        TEXT NOT NULL,
	liked_songs JSONB NOT NULL DEFAULT '[]',
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS songs (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	artist     TEXT NOT NULL,
	album      TEXT NOT NULL DEFAULT '',
	genre      TEXT NOT NULL DEFAULT '',
	duration   INTEGER NOT NULL,
	like_count INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS playlists (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	owner_id    TEXT NOT NULL,
	song_ids    JSONB NOT NULL DEFAULT '[]',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_playlists_owner ON playlists (owner_id);
CREATE INDEX IF NOT EXISTS idx_songs_like_count ON songs (like_count DESC);
`

// EnsureSchema creates the tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
