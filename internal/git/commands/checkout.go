package commands

// checkout.go - Simulated Git Checkout Command
//
// Switches the current branch, or creates one and switches to it with -b.

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("checkout", func() git.Command { return &CheckoutCommand{} })
}

type CheckoutCommand struct{}

// Ensure CheckoutCommand implements git.Command
var _ git.Command = (*CheckoutCommand)(nil)

type CheckoutOptions struct {
	NewBranch string
	Create    bool
	Target    string
}

func (c *CheckoutCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}

	opts, err := c.parseArgs(args)
	if err != nil {
		return "", err
	}
	if opts.Create {
		return c.createAndSwitch(s.Repo, opts.NewBranch)
	}
	return c.switchTo(s.Repo, opts.Target)
}

func (c *CheckoutCommand) parseArgs(args []string) (*CheckoutOptions, error) {
	opts := &CheckoutOptions{}
	for i := 1; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-b":
			if i+1 >= len(args) {
				return nil, errors.New("error: switch `b' requires a value")
			}
			opts.Create = true
			opts.NewBranch = args[i+1]
			i++
		default:
			if opts.Target == "" {
				opts.Target = arg
			}
		}
	}
	if !opts.Create && opts.Target == "" {
		return nil, errors.New("Please specify a branch name to checkout")
	}
	return opts, nil
}

func (c *CheckoutCommand) createAndSwitch(repo *state.Repository, name string) (string, error) {
	err := repo.CreateBranch(name)
	switch {
	case errors.Is(err, state.ErrBranchExists):
		return "", fmt.Errorf("fatal: a branch named '%s' already exists", name)
	case errors.Is(err, state.ErrInvalidBranchName):
		return "", fmt.Errorf("fatal: '%s' is not a valid branch name.", name)
	case err != nil:
		return "", err
	}
	if err := repo.SwitchBranch(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to a new branch '%s'", name), nil
}

func (c *CheckoutCommand) switchTo(repo *state.Repository, name string) (string, error) {
	if name == repo.CurrentBranch() {
		return fmt.Sprintf("Already on '%s'", name), nil
	}
	if err := repo.SwitchBranch(name); err != nil {
		if errors.Is(err, state.ErrBranchNotFound) {
			return "", fmt.Errorf("error: pathspec '%s' did not match any file(s) known to git", name)
		}
		return "", err
	}
	return fmt.Sprintf("Switched to branch '%s'", name), nil
}

func (c *CheckoutCommand) Help() string {
	return `📘 GIT-CHECKOUT (1)                                     Git Manual

 💡 DESCRIPTION
    Switch to another branch. With -b, create the branch at the
    current commit first and then switch to it.

 📋 SYNOPSIS
    git checkout <branch>
    git checkout -b <new-branch>

 🛠  EXAMPLES
    1. Start work on a feature branch
       $ git checkout -b feature
`
}
