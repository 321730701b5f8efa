package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/pkg/logger"
)

// DatasetGenerator produces a complete dataset
type DatasetGenerator interface {
	Generate(ctx context.Context) (*domain.Dataset, error)
}

// Notifier is told about every regenerated snapshot
type Notifier interface {
	SnapshotGenerated(ctx context.Context, ds *domain.Dataset, took time.Duration) error
}

// SnapshotCache loads the persisted artifact set or regenerates all of it.
// A partially present set is treated the same as an absent one.
type SnapshotCache struct {
	store     ArtifactStore
	generator DatasetGenerator
	notifier  Notifier
	logger    *logger.Logger
}

// NewSnapshotCache creates a new snapshot cache
func NewSnapshotCache(store ArtifactStore, generator DatasetGenerator, log *logger.Logger) *SnapshotCache {
	return &SnapshotCache{
		store:     store,
		generator: generator,
		logger:    log.WithComponent("snapshot_cache"),
	}
}

// WithNotifier sets the notifier called after each regeneration
func (c *SnapshotCache) WithNotifier(n Notifier) *SnapshotCache {
	c.notifier = n
	return c
}

// Missing returns the names of the artifacts not present in the store
func (c *SnapshotCache) Missing(ctx context.Context) ([]string, error) {
	var missing []string
	for _, name := range domain.ArtifactNames {
		ok, err := c.store.Exists(ctx, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// LoadOrGenerate returns the persisted dataset when all nine artifacts
// exist. Otherwise it regenerates and persists the entire set.
func (c *SnapshotCache) LoadOrGenerate(ctx context.Context) (*domain.Dataset, error) {
	missing, err := c.Missing(ctx)
	if err != nil {
		return nil, fmt.Errorf("check snapshot: %w", err)
	}

	if len(missing) > 0 {
		c.logger.Info().Strs("missing", missing).Msg("snapshot incomplete, regenerating all artifacts")
		return c.Regenerate(ctx)
	}

	return c.Load(ctx)
}

// Load decodes every artifact. Schema drift fails with ErrSchemaMismatch.
func (c *SnapshotCache) Load(ctx context.Context) (*domain.Dataset, error) {
	started := time.Now()
	var ds domain.Dataset

	for _, name := range domain.ArtifactNames {
		data, err := c.store.Load(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		if err := decodeArtifact(&ds, name, data); err != nil {
			c.logger.Error().Err(err).Str("artifact", name).Msg("failed to decode artifact")
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
	}

	c.logger.Info().
		Int("sales", len(ds.Sales)).
		Dur("duration", time.Since(started)).
		Msg("snapshot loaded")

	return &ds, nil
}

// Regenerate builds a fresh dataset and persists all nine artifacts,
// regardless of what the store already holds.
func (c *SnapshotCache) Regenerate(ctx context.Context) (*domain.Dataset, error) {
	started := time.Now()

	ds, err := c.generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := encodeDataset(ds)
	if err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	if batch, ok := c.store.(BatchStore); ok {
		if err := batch.StoreAll(ctx, artifacts); err != nil {
			return nil, fmt.Errorf("persist snapshot: %w", err)
		}
	} else {
		for _, a := range artifacts {
			if err := c.store.Store(ctx, a.Name, a.Data); err != nil {
				return nil, fmt.Errorf("persist snapshot: %w", err)
			}
		}
	}

	took := time.Since(started)
	c.logger.Info().
		Int("artifacts", len(artifacts)).
		Dur("duration", took).
		Msg("snapshot regenerated")

	if c.notifier != nil {
		if err := c.notifier.SnapshotGenerated(ctx, ds, took); err != nil {
			c.logger.Warn().Err(err).Msg("failed to publish snapshot event")
		}
	}

	return ds, nil
}
