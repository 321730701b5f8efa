package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// ErrUserNotFound is returned when no user has the given username
var ErrUserNotFound = errors.New("user not found")

// User is one entry of the users file
type User struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

// UserRepository reads dashboard users from a JSON file
type UserRepository struct {
	mu    sync.RWMutex
	path  string
	users map[string]User
}

// NewUserRepository loads the users file at path
func NewUserRepository(path string) (*UserRepository, error) {
	r := &UserRepository{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenOrCreateUserRepository loads the users file at path, starting empty
// when it does not exist yet
func OpenOrCreateUserRepository(path string) (*UserRepository, error) {
	r, err := NewUserRepository(path)
	if errors.Is(err, os.ErrNotExist) {
		return &UserRepository{path: path, users: map[string]User{}}, nil
	}
	return r, err
}

// NewUserRepositoryFromUsers builds a repository over an in-memory list
func NewUserRepositoryFromUsers(users []User) *UserRepository {
	r := &UserRepository{}
	r.users = index(users)
	return r
}

// Reload re-reads the users file
func (r *UserRepository) Reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to read users file: %w", err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return fmt.Errorf("failed to parse users file %s: %w", r.path, err)
	}

	r.mu.Lock()
	r.users = index(users)
	r.mu.Unlock()
	return nil
}

// GetByUsername looks a user up, ignoring case and surrounding spaces
func (r *UserRepository) GetByUsername(username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[normalize(username)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// Upsert adds a user or replaces the one with the same username
func (r *UserRepository) Upsert(u User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[normalize(u.Username)] = u
}

// Save writes the users back to the file, sorted by username
func (r *UserRepository) Save() error {
	r.mu.RLock()
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	r.mu.RUnlock()

	slices.SortFunc(users, func(a, b User) int { return strings.Compare(normalize(a.Username), normalize(b.Username)) })

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create users directory: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return os.Rename(tmp, r.path)
}

// Count returns the number of users
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func index(users []User) map[string]User {
	m := make(map[string]User, len(users))
	for _, u := range users {
		m[normalize(u.Username)] = u
	}
	return m
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
