package repository

import (
	"context"
	"fmt"

	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/database"
	"github.com/painel/painel-backend/pkg/logger"
)

// OpenStore builds the artifact store selected by cfg. The returned close
// function releases the backend's resources.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (ArtifactStore, func() error, error) {
	switch cfg.Snapshot.Backend {
	case config.SnapshotBackendFile:
		log.Info().Str("dir", cfg.Snapshot.Dir).Msg("using file snapshot store")
		return NewFileStore(cfg.Snapshot.Dir), func() error { return nil }, nil

	case config.SnapshotBackendPostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store := NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info().Msg("using postgres snapshot store")
		return store, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}
