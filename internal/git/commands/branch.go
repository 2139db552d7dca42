package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("branch", func() git.Command { return &BranchCommand{} })
}

type BranchCommand struct{}

// Ensure BranchCommand implements git.Command
var _ git.Command = (*BranchCommand)(nil)

func (c *BranchCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	// supported flags: -r, -a, --help
	var (
		remoteMode bool
		allMode    bool
		helpMode   bool
		branchName string
	)

	for _, arg := range args[1:] {
		switch arg {
		case "--help", "-h":
			helpMode = true
		case "-r", "--remotes":
			remoteMode = true
		case "-a", "--all":
			allMode = true
		default:
			if strings.HasPrefix(arg, "-") {
				return "", fmt.Errorf("error: unknown option `%s'", strings.TrimLeft(arg, "-"))
			}
			if branchName == "" {
				branchName = arg
			}
		}
	}

	if helpMode {
		return c.Help(), nil
	}
	if branchName == "" || remoteMode || allMode {
		return c.listBranches(s.Repo, remoteMode, allMode), nil
	}
	return "", c.createBranch(s.Repo, branchName)
}

func (c *BranchCommand) listBranches(repo *state.Repository, remote, all bool) string {
	var lines []string
	if !remote || all {
		for _, b := range repo.Branches() {
			marker := "  "
			if b == repo.CurrentBranch() {
				marker = "* "
			}
			lines = append(lines, marker+b)
		}
	}
	if remote || all {
		prefix := "  "
		if all {
			prefix = "  remotes/"
		}
		for _, rb := range repo.RemoteBranches() {
			lines = append(lines, prefix+rb)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *BranchCommand) createBranch(repo *state.Repository, name string) error {
	err := repo.CreateBranch(name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, state.ErrBranchExists):
		return fmt.Errorf("fatal: A branch named '%s' already exists.", name)
	case errors.Is(err, state.ErrInvalidBranchName):
		return fmt.Errorf("fatal: '%s' is not a valid branch name.", name)
	default:
		return err
	}
}

func (c *BranchCommand) Help() string {
	return `📘 GIT-BRANCH (1)                                       Git Manual

 💡 DESCRIPTION
    List branches, or create a new one at the current commit.
    Creating a branch does not switch to it.

 📋 SYNOPSIS
    git branch
    git branch <name>
    git branch -r | -a

 ⚙️  COMMON OPTIONS
    -r, --remotes
        List the remote-tracking branches.
    -a, --all
        List both local and remote-tracking branches.
`
}
