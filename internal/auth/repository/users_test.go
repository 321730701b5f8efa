package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUsers(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewUserRepository(t *testing.T) {
	path := writeUsers(t, `[
		{"username": "admin", "name": "Administrador", "password_hash": "$2a$10$x"},
		{"username": "Ana", "name": "Ana Silva", "password_hash": "$2a$10$y"}
	]`)

	repo, err := NewUserRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())

	u, err := repo.GetByUsername("  ANA ")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", u.Name)

	_, err = repo.GetByUsername("bruno")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewUserRepository_Errors(t *testing.T) {
	_, err := NewUserRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = NewUserRepository(writeUsers(t, `{"username": "admin"}`))
	assert.Error(t, err)
}

func TestUserRepository_Reload(t *testing.T) {
	path := writeUsers(t, `[{"username": "admin"}]`)
	repo, err := NewUserRepository(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"username": "admin"}, {"username": "ana"}]`), 0o600))
	require.NoError(t, repo.Reload())
	assert.Equal(t, 2, repo.Count())
}

func TestUserRepository_UpsertAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "users.json")

	repo, err := OpenOrCreateUserRepository(path)
	require.NoError(t, err)
	assert.Zero(t, repo.Count())

	repo.Upsert(User{Username: "bruno", Name: "Bruno"})
	repo.Upsert(User{Username: "admin", Name: "Admin"})
	repo.Upsert(User{Username: "ADMIN", Name: "Administrador"})
	require.NoError(t, repo.Save())

	reloaded, err := NewUserRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Count())

	u, err := reloaded.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "Administrador", u.Name)
}
