package state

import (
	"sync"
	"time"
)

const (
	DefaultAuthor   = "Tutorial User"
	DefaultEmail    = "tutorial@example.com"
	DefaultRepoPath = "/tutorial"
)

// Session holds one learner's simulated repository
type Session struct {
	ID        string
	Repo      *Repository
	Author    string
	Email     string
	RepoPath  string // shown by "git init"
	CreatedAt time.Time
	mu        sync.RWMutex
}

// SessionDefaults configures every session a manager creates.
type SessionDefaults struct {
	Author   string
	Email    string
	RepoPath string
	Clock    func() time.Time
	Seed     []SeedFile
}

func (d SessionDefaults) withDefaults() SessionDefaults {
	if d.Author == "" {
		d.Author = DefaultAuthor
	}
	if d.Email == "" {
		d.Email = DefaultEmail
	}
	if d.RepoPath == "" {
		d.RepoPath = DefaultRepoPath
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

// SessionManager handles concurrent access to sessions
type SessionManager struct {
	sessions map[string]*Session
	defaults SessionDefaults
	mu       sync.RWMutex
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	return NewSessionManagerWith(SessionDefaults{})
}

// NewSessionManagerWith creates a session manager whose sessions use d.
// Empty fields fall back to the package defaults.
func NewSessionManagerWith(d SessionDefaults) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		defaults: d.withDefaults(),
	}
}

// NewSession creates a standalone session that no manager tracks.
func NewSession(id string, d SessionDefaults) *Session {
	d = d.withDefaults()
	opts := []Option{WithClock(d.Clock)}
	if d.Seed != nil {
		opts = append(opts, WithSeed(d.Seed))
	}
	return &Session{
		ID:        id,
		Repo:      NewRepository(opts...),
		Author:    d.Author,
		Email:     d.Email,
		RepoPath:  d.RepoPath,
		CreatedAt: d.Clock(),
	}
}

// CreateSession initializes a new session, or returns the existing one with that ID
func (sm *SessionManager) CreateSession(id string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, exists := sm.sessions[id]; exists {
		return s, nil
	}

	s := NewSession(id, sm.defaults)
	sm.sessions[id] = s
	return s, nil
}

// GetSession retrieves a session by ID
func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, ok := sm.sessions[id]
	return s, ok
}

// DeleteSession forgets a session.
func (sm *SessionManager) DeleteSession(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// SetDefaults changes the defaults used for sessions created from now on.
func (sm *SessionManager) SetDefaults(d SessionDefaults) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if d.Clock == nil {
		d.Clock = sm.defaults.Clock
	}
	sm.defaults = d.withDefaults()
}

// Lock locks the session for writing
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock unlocks the session
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// RLock locks the session for reading
func (s *Session) RLock() {
	s.mu.RLock()
}

// RUnlock unlocks the session for reading
func (s *Session) RUnlock() {
	s.mu.RUnlock()
}
