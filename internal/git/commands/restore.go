package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("restore", func() git.Command { return &RestoreCommand{} })
}

type RestoreCommand struct{}

// Ensure RestoreCommand implements git.Command
var _ git.Command = (*RestoreCommand)(nil)

type RestoreOptions struct {
	Staged bool
	Files  []string
}

func (c *RestoreCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}

	opts := &RestoreOptions{}
	for _, arg := range args[1:] {
		if arg == "--staged" || arg == "-S" {
			opts.Staged = true
			continue
		}
		opts.Files = append(opts.Files, arg)
	}
	if len(opts.Files) == 0 {
		return "", errors.New("fatal: you must specify path(s) to restore")
	}
	opts.Files = uniquePaths(opts.Files)

	repo := s.Repo
	for _, f := range opts.Files {
		ok := repo.IsModified(f)
		if opts.Staged {
			ok = repo.IsStaged(f)
		}
		if !ok {
			return "", fmt.Errorf("error: pathspec '%s' did not match any file(s) known to git", f)
		}
	}

	for _, f := range opts.Files {
		var err error
		if opts.Staged {
			err = repo.Unstage(f)
		} else {
			err = repo.DiscardChanges(f)
		}
		if err != nil {
			return "", err
		}
	}
	return "", nil
}

func (c *RestoreCommand) Help() string {
	return `usage: git restore [--staged] <file>...

Options:
    --staged          move staged files back out of the staging area
    <file>            without --staged, discard local changes to a tracked file
`
}
