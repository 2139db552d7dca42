package integration_test

import (
	"context"
	"testing"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	_ "github.com/AyaPK/interactive-git-tutorial/internal/git/commands"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

var testSessionManager = git.NewSessionManager()

// newSession returns a fresh managed session named after the test.
func newSession(t *testing.T) string {
	t.Helper()
	id := t.Name()
	testSessionManager.DeleteSession(id)
	if _, err := testSessionManager.CreateSession(id); err != nil {
		t.Fatalf("create session: %v", err)
	}
	t.Cleanup(func() { testSessionManager.DeleteSession(id) })
	return id
}

// exec runs one line in the session and returns its result record.
func exec(t *testing.T, sessionID, line string) git.Result {
	t.Helper()
	s, ok := testSessionManager.GetSession(sessionID)
	if !ok {
		t.Fatalf("session %s not found", sessionID)
	}
	res, _ := git.Run(context.Background(), s, line)
	return res
}

// script runs every line and fails on the first unsuccessful one.
func script(t *testing.T, sessionID string, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if res := exec(t, sessionID, line); !res.Success {
			t.Fatalf("%q failed: %s", line, res.Output)
		}
	}
}

func graph(t *testing.T, sessionID string) *state.GraphState {
	t.Helper()
	gs, err := testSessionManager.GetGraphState(sessionID)
	if err != nil {
		t.Fatalf("graph state: %v", err)
	}
	return gs
}
