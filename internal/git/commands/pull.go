package commands

// pull.go - Simulated Git Pull Command
//
// Fast-forwards the current branch to origin's remote-tracking branch.
// Diverged histories are refused rather than merged.

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("pull", func() git.Command { return &PullCommand{} })
}

type PullCommand struct{}

// Ensure PullCommand implements git.Command
var _ git.Command = (*PullCommand)(nil)

var (
	errNoPullDestination = errors.New("fatal: No configured pull destination.\nPlease specify the remote repository with git remote add")
	errCannotFastForward = errors.New("hint: Your local branch and the remote have diverged.\nfatal: Not possible to fast-forward, aborting.")
)

func (c *PullCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}

	repo := s.Repo
	if !repo.RemoteConnected() {
		return "", errNoPullDestination
	}

	branch := repo.CurrentBranch()
	ref := state.RemoteRef(state.DefaultRemote, branch)
	remoteHead := repo.RemoteHead(ref)
	local := repo.CurrentHead()

	if remoteHead == "" || remoteHead == local || repo.IsAncestor(remoteHead, local) {
		return "Already up to date.", nil
	}
	if !repo.IsAncestor(local, remoteHead) {
		return "", errCannotFastForward
	}

	if err := repo.FastForward(remoteHead); err != nil {
		return "", err
	}
	return fmt.Sprintf("From %s\n * branch            %s     -> FETCH_HEAD\nUpdating %s..%s\nFast-forward",
		repo.RemoteURL(state.DefaultRemote), branch, shortHash(local), remoteHead), nil
}

func (c *PullCommand) Help() string {
	return `usage: git pull

Bring the current branch up to date with its copy on origin.
Only fast-forward updates are performed.
`
}
