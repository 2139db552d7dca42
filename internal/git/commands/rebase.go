package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("rebase", func() git.Command { return &RebaseCommand{} })
}

// RebaseCommand only reports what a rebase would do. The commit graph is
// left exactly as it was.
type RebaseCommand struct{}

// Ensure RebaseCommand implements git.Command
var _ git.Command = (*RebaseCommand)(nil)

func (c *RebaseCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if len(args) < 2 {
		return "", errors.New("Please specify a branch to rebase onto")
	}

	current := s.Repo.CurrentBranch()
	return fmt.Sprintf("Rebasing %s onto %s\n\nSuccessfully rebased and updated refs/heads/%s", current, args[1], current), nil
}

func (c *RebaseCommand) Help() string {
	return `usage: git rebase <branch>

Reapply the commits of the current branch on top of <branch>.
`
}
