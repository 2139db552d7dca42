package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

// divergedSession has main and feature each one commit past their fork point.
func divergedSession(t *testing.T) *git.Session {
	t.Helper()
	s := newRepoWithCommit(t)
	mustRun(t, s,
		"git checkout -b feature",
		"touch feature.txt",
		"git add feature.txt",
		`git commit -m "feature work"`,
		"git checkout main",
		"git add app.js",
		`git commit -m "main work"`,
	)
	return s
}

func TestMergeCommand(t *testing.T) {
	t.Run("records merge commit", func(t *testing.T) {
		s := divergedSession(t)
		mainHead, featureHead := s.Repo.Head("main"), s.Repo.Head("feature")
		before := len(s.Repo.Commits())

		res := mustRun(t, s, "git merge feature")
		assert.Equal(t, "Merge branch 'feature' into main\n\nAuto-merging files\nMerge completed successfully", res.Output)

		require.Len(t, s.Repo.Commits(), before+1)
		merge, ok := s.Repo.Commit(s.Repo.Head("main"))
		require.True(t, ok)
		assert.Equal(t, state.MergeCommit, merge.Kind())
		assert.Equal(t, []string{mainHead, featureHead}, merge.Parents)
		assert.Empty(t, merge.Files)
		assert.Equal(t, featureHead, s.Repo.Head("feature"))
	})

	t.Run("log after merge includes both lines of work on main", func(t *testing.T) {
		s := divergedSession(t)
		mustRun(t, s, "git merge feature")
		out := mustRun(t, s, "git log --oneline").Output
		assertContains(t, out, "Merge branch 'feature' into main")
		assertContains(t, out, "main work")
		assertNotContains(t, out, "feature work")
	})

	t.Run("unknown branch", func(t *testing.T) {
		s := newRepoWithCommit(t)
		assert.Equal(t, "merge: ghost - not something we can merge", mustFail(t, s, "git merge ghost"))
	})

	t.Run("missing argument", func(t *testing.T) {
		s := newRepoWithCommit(t)
		assert.Equal(t, "Please specify a branch to merge", mustFail(t, s, "git merge"))
	})

	t.Run("self merge", func(t *testing.T) {
		s := newRepoWithCommit(t)
		before := len(s.Repo.Commits())
		assert.Equal(t, "Already up to date.", mustRun(t, s, "git merge main").Output)
		assert.Len(t, s.Repo.Commits(), before)
	})

	t.Run("branch at the same commit", func(t *testing.T) {
		s := newRepoWithCommit(t)
		head := s.Repo.CurrentHead()
		mustRun(t, s, "git branch feature")

		assert.Equal(t, "Already up to date.", mustRun(t, s, "git merge feature").Output)
		assert.Len(t, s.Repo.Commits(), 1)
		assert.Equal(t, head, s.Repo.CurrentHead())
		assertNotContains(t, mustRun(t, s, "git log").Output, "Merge")
	})

	t.Run("branch already merged", func(t *testing.T) {
		s := divergedSession(t)
		mustRun(t, s, "git merge feature")
		before := len(s.Repo.Commits())

		assert.Equal(t, "Already up to date.", mustRun(t, s, "git merge feature").Output)
		assert.Len(t, s.Repo.Commits(), before)
	})

	t.Run("current branch without commits", func(t *testing.T) {
		s := newTestSession(t)
		mustRun(t, s, "git init", "git checkout -b feature", "git add README.md", `git commit -m "first"`, "git checkout main")

		assert.Equal(t, "fatal: your current branch 'main' does not have any commits yet", mustFail(t, s, "git merge feature"))
		assert.Empty(t, s.Repo.Head("main"))
	})
}

func TestRebaseCommand(t *testing.T) {
	s := divergedSession(t)
	mustRun(t, s, "git checkout feature")
	before := s.Repo.Snapshot()

	res := mustRun(t, s, "git rebase main")
	assert.Equal(t, "Rebasing feature onto main\n\nSuccessfully rebased and updated refs/heads/feature", res.Output)
	assert.Equal(t, before.Commits, s.Repo.Snapshot().Commits, "rebase never rewrites history")
	assert.Equal(t, before.BranchHeads, s.Repo.Snapshot().BranchHeads)

	assert.Equal(t, "Please specify a branch to rebase onto", mustFail(t, s, "git rebase"))
}
