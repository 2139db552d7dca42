package git

import (
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

// Aliases so command handlers only need to import this package.

type Session = state.Session
type SessionManager = state.SessionManager
type Commit = state.Commit

// NewSessionManager creates a new session manager
// Wrapper around state.NewSessionManager
func NewSessionManager() *SessionManager {
	return state.NewSessionManager()
}
