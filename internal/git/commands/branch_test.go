package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchCommand(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		s := newRepoWithCommit(t)
		assert.Equal(t, "* main", mustRun(t, s, "git branch").Output)

		res := mustRun(t, s, "git branch feature")
		assert.Empty(t, res.Output, "creation prints nothing")
		assert.Equal(t, "* main\n  feature", mustRun(t, s, "git branch").Output)
	})

	t.Run("fork copies head", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mainHead := s.Repo.Head("main")
		mustRun(t, s, "git branch feature", "git checkout feature")

		assert.Equal(t, "feature", s.Repo.CurrentBranch())
		assert.Equal(t, mainHead, s.Repo.Head("feature"))
		assert.Equal(t, mainHead, s.Repo.BranchBase("feature"))
		assert.Equal(t, "main", s.Repo.BranchParent("feature"))
	})

	t.Run("duplicate", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mustRun(t, s, "git branch feature")
		assert.Equal(t, "fatal: A branch named 'feature' already exists.", mustFail(t, s, "git branch feature"))
		assert.Equal(t, []string{"main", "feature"}, s.Repo.Branches())
	})

	t.Run("invalid name", func(t *testing.T) {
		s := newRepoWithCommit(t)
		assert.Equal(t, "fatal: 'a..b' is not a valid branch name.", mustFail(t, s, "git branch a..b"))
	})

	t.Run("remote branches", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mustRun(t, s, "git branch feature", "git remote add origin "+testRemoteURL)

		assert.Equal(t, "  origin/main", mustRun(t, s, "git branch -r").Output)
		assert.Equal(t, "* main\n  feature\n  remotes/origin/main", mustRun(t, s, "git branch -a").Output)
	})
}

func TestCheckoutCommand(t *testing.T) {
	t.Run("switch", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mustRun(t, s, "git branch feature")
		assert.Equal(t, "Switched to branch 'feature'", mustRun(t, s, "git checkout feature").Output)
		assert.Equal(t, "Already on 'feature'", mustRun(t, s, "git checkout feature").Output)
	})

	t.Run("unknown branch", func(t *testing.T) {
		s := newRepoWithCommit(t)
		assert.Equal(t, "error: pathspec 'nope' did not match any file(s) known to git", mustFail(t, s, "git checkout nope"))
		assert.Equal(t, "main", s.Repo.CurrentBranch())
	})

	t.Run("create and switch", func(t *testing.T) {
		s := newRepoWithCommit(t)
		head := s.Repo.CurrentHead()
		assert.Equal(t, "Switched to a new branch 'feature'", mustRun(t, s, "git checkout -b feature").Output)
		assert.Equal(t, "feature", s.Repo.CurrentBranch())
		assert.Equal(t, head, s.Repo.Head("feature"))
	})

	t.Run("create existing fails", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mustRun(t, s, "git branch feature")
		assert.Equal(t, "fatal: a branch named 'feature' already exists", mustFail(t, s, "git checkout -b feature"))
		assert.Equal(t, "main", s.Repo.CurrentBranch())
	})

	t.Run("usage errors", func(t *testing.T) {
		s := newRepoWithCommit(t)
		assert.Equal(t, "Please specify a branch name to checkout", mustFail(t, s, "git checkout"))
		assert.Equal(t, "error: switch `b' requires a value", mustFail(t, s, "git checkout -b"))
	})

	t.Run("commits land on the checked out branch", func(t *testing.T) {
		s := newRepoWithCommit(t)
		mainHead := s.Repo.Head("main")
		mustRun(t, s, "git checkout -b feature", "git add app.js", `git commit -m "feature work"`)

		assert.Equal(t, mainHead, s.Repo.Head("main"))
		assert.NotEqual(t, mainHead, s.Repo.Head("feature"))
	})
}
