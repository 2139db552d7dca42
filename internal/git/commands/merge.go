package commands

// merge.go - Simulated Git Merge Command
//
// Joins another branch into the current one by recording a merge commit.
// File contents are never combined; the merge only links the two histories.
// A branch whose head is already in the current history merges as a no-op.

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("merge", func() git.Command { return &MergeCommand{} })
}

type MergeCommand struct{}

// Ensure MergeCommand implements git.Command
var _ git.Command = (*MergeCommand)(nil)

func (c *MergeCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}
	if len(args) < 2 {
		return "", errors.New("Please specify a branch to merge")
	}

	repo := s.Repo
	other := args[1]
	current := repo.CurrentBranch()

	if !repo.HasBranch(other) {
		return "", fmt.Errorf("merge: %s - not something we can merge", other)
	}

	message := fmt.Sprintf("Merge branch '%s' into %s", other, current)
	_, err := repo.RecordMerge(other, message, git.GetDefaultSignature(s))
	switch {
	case errors.Is(err, state.ErrAlreadyUpToDate):
		return "Already up to date.", nil
	case errors.Is(err, state.ErrNoCommits):
		return "", fmt.Errorf("fatal: your current branch '%s' does not have any commits yet", current)
	case err != nil:
		return "", err
	}
	return message + "\n\nAuto-merging files\nMerge completed successfully", nil
}

func (c *MergeCommand) Help() string {
	return `usage: git merge <branch>

Join the history of <branch> into the current branch with a merge commit.
`
}
