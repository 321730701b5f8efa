// Package repository persists the generated dataset as nine named
// artifacts and reloads it. The snapshot cache on top of the stores is
// all-or-nothing: a missing artifact means the whole set is regenerated.
package repository

import (
	"context"
	"errors"
)

var (
	// ErrArtifactNotFound is returned by Load for a name with no stored artifact.
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrSchemaMismatch is returned when a stored artifact's columns differ
	// from the expected row type.
	ErrSchemaMismatch = errors.New("artifact schema mismatch")
)

// ArtifactStore is a write-once blob store keyed by artifact name
type ArtifactStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	Load(ctx context.Context, name string) ([]byte, error)
	Store(ctx context.Context, name string, data []byte) error
}

// Artifact is an encoded table ready to persist
type Artifact struct {
	Name string
	Data []byte
}

// BatchStore is implemented by stores that can persist a whole artifact set
// in one step.
type BatchStore interface {
	StoreAll(ctx context.Context, artifacts []Artifact) error
}

// HealthChecker is implemented by stores that can report their status
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}
