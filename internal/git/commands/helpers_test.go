package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

const testRemoteURL = "https://github.com/tutorial/repo.git"

func newTestSession(t *testing.T) *git.Session {
	t.Helper()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return state.NewSession(t.Name(), state.SessionDefaults{
		Clock: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	})
}

// run executes one input line and fails the test if it produced no record.
func run(t *testing.T, s *git.Session, line string) git.Result {
	t.Helper()
	res, ok := git.Run(context.Background(), s, line)
	if !ok {
		t.Fatalf("%q produced no output record", line)
	}
	return res
}

// mustRun executes each line and fails the test on the first unsuccessful one.
func mustRun(t *testing.T, s *git.Session, lines ...string) git.Result {
	t.Helper()
	var res git.Result
	for _, line := range lines {
		res = run(t, s, line)
		if !res.Success {
			t.Fatalf("%q failed: %s", line, res.Output)
		}
	}
	return res
}

// mustFail executes line and fails the test if it succeeded.
func mustFail(t *testing.T, s *git.Session, line string) string {
	t.Helper()
	res := run(t, s, line)
	if res.Success {
		t.Fatalf("%q unexpectedly succeeded: %s", line, res.Output)
	}
	return res.Output
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain %q, got:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
	}
}

// newRepoWithCommit returns an initialized session with README.md committed.
func newRepoWithCommit(t *testing.T) *git.Session {
	t.Helper()
	s := newTestSession(t)
	mustRun(t, s, "git init", "git add README.md", `git commit -m "first"`)
	return s
}
