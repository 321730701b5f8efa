package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/painel/painel-backend/pkg/database"
	"github.com/painel/painel-backend/pkg/logger"
)

var (
	// Global test container (shared across all integration tests)
	globalContainer *PostgresContainer
	globalDB        *sqlx.DB
	containerOnce   sync.Once
	containerErr    error
)

// IntegrationSuite provides a base for integration tests with real PostgreSQL
type IntegrationSuite struct {
	Container *PostgresContainer
	RawDB     *sqlx.DB
	DB        *database.DB
	Logger    *logger.Logger
}

// NewIntegrationSuite returns a suite backed by the shared container,
// starting it on first use.
//
// Usage:
//
//	if testing.Short() {
//	    t.Skip("skipping integration test")
//	}
//	suite, err := testutil.NewIntegrationSuite(ctx)
//	require.NoError(t, err)
//	defer suite.Cleanup(ctx)
func NewIntegrationSuite(ctx context.Context) (*IntegrationSuite, error) {
	container, db, err := getOrCreateContainer(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Nop()
	return &IntegrationSuite{
		Container: container,
		RawDB:     db,
		DB:        database.Wrap(db, log),
		Logger:    log,
	}, nil
}

// getOrCreateContainer returns the shared test container
func getOrCreateContainer(ctx context.Context) (*PostgresContainer, *sqlx.DB, error) {
	containerOnce.Do(func() {
		globalContainer, containerErr = NewPostgresContainer(ctx)
		if containerErr != nil {
			return
		}
		globalDB, containerErr = globalContainer.Connect(ctx)
	})

	return globalContainer, globalDB, containerErr
}

// Truncate empties the given tables
func (s *IntegrationSuite) Truncate(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := s.RawDB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// Cleanup drops the tables the dashboard creates.
// Note: the container is shared, so it is not terminated here.
func (s *IntegrationSuite) Cleanup(ctx context.Context) error {
	_, err := s.RawDB.ExecContext(ctx, "DROP TABLE IF EXISTS snapshot_artifacts")
	return err
}

// TerminateContainer terminates the shared container.
// Only call this in TestMain after all tests have completed.
func TerminateContainer(ctx context.Context) {
	if globalContainer != nil {
		globalContainer.Terminate(ctx)
	}
}
