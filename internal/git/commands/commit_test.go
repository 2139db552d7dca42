package commands

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitCommand(t *testing.T) {
	t.Run("root commit", func(t *testing.T) {
		s := newTestSession(t)
		res := mustRun(t, s, "git init", "git add README.md", `git commit -m "first commit"`)

		head := s.Repo.CurrentHead()
		require.NotEmpty(t, head)
		assert.Equal(t, fmt.Sprintf("[main (root-commit) %s] first commit\n 1 file(s) changed", head), res.Output)
		assert.Empty(t, s.Repo.Staged())

		c, ok := s.Repo.Commit(head)
		require.True(t, ok)
		assert.Empty(t, c.Parents)
		assert.Equal(t, "Tutorial User", c.Author)
		assert.Equal(t, "first commit", c.Message)
	})

	t.Run("child commit links prior head", func(t *testing.T) {
		s := newRepoWithCommit(t)
		prior := s.Repo.CurrentHead()
		res := mustRun(t, s, "git add app.js", "git commit -m 'second'")

		head := s.Repo.CurrentHead()
		assert.Equal(t, fmt.Sprintf("[main %s] second\n 1 file(s) changed", head), res.Output)
		c, _ := s.Repo.Commit(head)
		assert.Equal(t, []string{prior}, c.Parents)
	})

	t.Run("nothing staged", func(t *testing.T) {
		s := newRepoWithCommit(t)
		before := len(s.Repo.Commits())
		for _, line := range []string{`git commit -m "msg"`, "git commit"} {
			out := mustFail(t, s, line)
			assert.Equal(t, "nothing to commit, working tree clean", out)
		}
		assert.Len(t, s.Repo.Commits(), before)
	})

	t.Run("missing message", func(t *testing.T) {
		s := newTestSession(t)
		mustRun(t, s, "git init", "git add .")
		for _, line := range []string{"git commit", "git commit -m", `git commit -m ""`} {
			out := mustFail(t, s, line)
			assert.Equal(t, "Aborting commit due to empty commit message.\nUse: git commit -m \"Your commit message\"", out, line)
		}
		assert.Len(t, s.Repo.Staged(), 2, "aborted commit keeps the staging area")
		assert.Empty(t, s.Repo.Commits())
	})

	t.Run("combined flags", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mustRun(t, s, "echo edit >> README.md")
		require.True(t, s.Repo.IsModified("README.md"))

		res := mustRun(t, s, `git commit -am "edit readme"`)
		assertContains(t, res.Output, "] edit readme\n 1 file(s) changed")
		assert.Empty(t, s.Repo.Modified())
		assert.Equal(t, []string{"app.js"}, s.Repo.Working(), "untracked files are not committed by -a")
	})

	t.Run("-a without message does not stage", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mustRun(t, s, "echo edit >> README.md")
		mustFail(t, s, "git commit -a")
		assert.True(t, s.Repo.IsModified("README.md"))
		assert.Empty(t, s.Repo.Staged())
	})
}
