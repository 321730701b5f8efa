package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	store := NewFileStore(dir)

	ok, err := store.Exists(ctx, "sales")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Load(ctx, "sales")
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	require.NoError(t, store.Store(ctx, "sales", []byte("v1")))
	require.NoError(t, store.Store(ctx, "sales", []byte("v2")))

	ok, err = store.Exists(ctx, "sales")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := store.Load(ctx, "sales")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
	assert.FileExists(t, filepath.Join(dir, "sales.parquet"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	require.NoError(t, store.Delete(ctx, "sales"))
	require.NoError(t, store.Delete(ctx, "sales"))
	ok, err = store.Exists(ctx, "sales")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_DirectoryIsNotAnArtifact(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sales.parquet"), 0o755))

	ok, err := NewFileStore(dir).Exists(ctx, "sales")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileStore(t.TempDir()).Store(ctx, "sales", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenStore_File(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Snapshot: config.SnapshotConfig{Backend: config.SnapshotBackendFile, Dir: dir}}

	store, closeFn, err := OpenStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	fs, ok := store.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, dir, fs.Dir())
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Snapshot: config.SnapshotConfig{Backend: "s3"}}

	_, _, err := OpenStore(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestFileStore_Health(t *testing.T) {
	dir := t.TempDir()

	status := NewFileStore(filepath.Join(dir, "data")).Health(context.Background())
	assert.Equal(t, "up", status["status"])
	assert.Equal(t, "not created yet", status["note"])

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.Equal(t, "down", NewFileStore(file).Health(context.Background())["status"])
}
