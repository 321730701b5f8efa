package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const artifactExt = ".parquet"

// FileStore keeps each artifact as a parquet file in a directory
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir. The directory is created
// on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the store's directory
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file path of the named artifact
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+artifactExt)
}

// Health reports whether the store directory is usable. A directory not
// created yet is fine; it appears on first write.
func (s *FileStore) Health(ctx context.Context) map[string]string {
	status := map[string]string{"status": "up", "dir": s.dir}

	info, err := os.Stat(s.dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		status["note"] = "not created yet"
	case err != nil:
		status["status"] = "down"
		status["error"] = err.Error()
	case !info.IsDir():
		status["status"] = "down"
		status["error"] = "not a directory"
	}
	return status
}

// Exists reports whether the named artifact file exists
func (s *FileStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat artifact %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

// Load reads the named artifact file
func (s *FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return data, nil
}

// Store writes the named artifact through a temporary file and a rename, so
// readers never see a half-written file.
func (s *FileStore) Store(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close artifact %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("rename artifact %s: %w", name, err)
	}
	return nil
}

// Delete removes the named artifact. Deleting a missing artifact is not an error.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.Path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete artifact %s: %w", name, err)
	}
	return nil
}
