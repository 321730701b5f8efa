// Package session keeps per-session dashboard state (login, active tab,
// pagination and last filter) in an explicit store, so concurrent sessions
// never share mutable state.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/painel/painel-backend/internal/dashboard/domain"
)

// ErrNotFound is returned for unknown or expired sessions
var ErrNotFound = errors.New("session not found")

const minSweepInterval = time.Second

// Dashboard tabs
const (
	TabSales       = "vendas"
	TabInventory   = "estoque"
	TabJournal     = "jornada"
	TabEmployees   = "colaboradores"
	TabCashFlow    = "fluxo"
	TabIndicators  = "indicadores"
	TabProduction  = "producao"
	TabLogistics   = "logistica"
	DefaultTab     = TabSales
	defaultPerPage = 50
)

// Tabs lists every dashboard tab
var Tabs = []string{TabSales, TabInventory, TabJournal, TabEmployees, TabCashFlow, TabIndicators, TabProduction, TabLogistics}

// Context is the state of one dashboard session
type Context struct {
	ID        string             `json:"id"`
	Username  string             `json:"username"`
	LoggedIn  bool               `json:"logged_in"`
	ActiveTab string             `json:"active_tab"`
	Page      int                `json:"page"`
	PerPage   int                `json:"per_page"`
	Filter    *domain.FilterSpec `json:"filter,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	LastSeen  time.Time          `json:"last_seen"`
}

func (c Context) clone() Context {
	if c.Filter != nil {
		f := *c.Filter
		f.Regions = slices.Clone(f.Regions)
		f.Products = slices.Clone(f.Products)
		f.Categories = slices.Clone(f.Categories)
		c.Filter = &f
	}
	return c
}

// Store holds sessions in memory. Sessions idle for longer than the TTL
// expire.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Context
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a new in-memory session store with the given TTL
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Context),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create opens a logged-in session for username
func (s *Store) Create(username string) Context {
	now := s.now()
	c := &Context{
		ID:        uuid.New().String(),
		Username:  username,
		LoggedIn:  true,
		ActiveTab: DefaultTab,
		Page:      1,
		PerPage:   defaultPerPage,
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[c.ID] = c
	return c.clone()
}

// Get returns a copy of the session and marks it as seen
func (s *Store) Get(id string) (Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[id]
	if !ok {
		return Context{}, ErrNotFound
	}
	if s.expired(c) {
		delete(s.sessions, id)
		return Context{}, ErrNotFound
	}
	c.LastSeen = s.now()
	return c.clone(), nil
}

// Update applies fn to the stored session and returns the result
func (s *Store) Update(id string, fn func(*Context)) (Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[id]
	if !ok || s.expired(c) {
		delete(s.sessions, id)
		return Context{}, ErrNotFound
	}
	fn(c)
	c.LastSeen = s.now()
	return c.clone(), nil
}

// Delete removes a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of stored sessions, expired ones included
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Run removes expired sessions periodically until ctx is done. The sweep
// interval is half the TTL, never below minSweepInterval.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(max(s.ttl/2, minSweepInterval))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.sessions {
		if s.expired(c) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) expired(c *Context) bool {
	return s.now().Sub(c.LastSeen) > s.ttl
}

type contextKey struct{}

// WithContext attaches a session to ctx
func WithContext(ctx context.Context, c Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the session attached to ctx
func FromContext(ctx context.Context) (Context, bool) {
	c, ok := ctx.Value(contextKey{}).(Context)
	return c, ok
}
