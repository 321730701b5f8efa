package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/painel/painel-backend/pkg/database"
)

// PostgresStore keeps each artifact as a bytea row of snapshot_artifacts
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a new postgres artifact store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the artifact table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshot_artifacts (
			name TEXT PRIMARY KEY,
			payload BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create snapshot_artifacts: %w", err)
	}
	return nil
}

// Health pings the database
func (s *PostgresStore) Health(ctx context.Context) map[string]string {
	return s.db.Health(ctx)
}

// Exists reports whether a row for name exists
func (s *PostgresStore) Exists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM snapshot_artifacts WHERE name = $1)`

	var exists bool
	if err := s.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("check artifact %s: %w", name, err)
	}
	return exists, nil
}

// Load returns the stored payload for name
func (s *PostgresStore) Load(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT payload FROM snapshot_artifacts WHERE name = $1`

	var payload []byte
	err := s.db.GetContext(ctx, &payload, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load artifact %s: %w", name, err)
	}
	return payload, nil
}

const upsertArtifact = `
	INSERT INTO snapshot_artifacts (name, payload, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
`

// Store upserts the payload for name
func (s *PostgresStore) Store(ctx context.Context, name string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertArtifact, name, data); err != nil {
		return fmt.Errorf("store artifact %s: %w", name, err)
	}
	return nil
}

// StoreAll upserts every artifact in a single transaction
func (s *PostgresStore) StoreAll(ctx context.Context, artifacts []Artifact) error {
	return s.db.Transaction(ctx, func(tx *sqlx.Tx) error {
		for _, a := range artifacts {
			if _, err := tx.ExecContext(ctx, upsertArtifact, a.Name, a.Data); err != nil {
				return fmt.Errorf("store artifact %s: %w", a.Name, err)
			}
		}
		return nil
	})
}

// Delete removes the row for name
func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM snapshot_artifacts WHERE name = $1`

	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("delete artifact %s: %w", name, err)
	}
	return nil
}
