package commands

// shell_mv.go - Shell Command: Rename File
//
// This is a SHELL COMMAND (not a git command).
// Renames a file wherever it currently lives (working tree or staging area).

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterShellCommand("mv", func() git.Command { return &MvCommand{} })
}

type MvCommand struct{}

// Ensure MvCommand implements git.Command
var _ git.Command = (*MvCommand)(nil)

type MvOptions struct {
	Old string
	New string
}

func (c *MvCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	opts, err := c.parseArgs(args)
	if err != nil {
		return "", err
	}

	repo := s.Repo
	if !repo.FileExists(opts.Old) {
		return "", fmt.Errorf("mv: cannot stat '%s': No such file", opts.Old)
	}
	if !state.ValidFileName(opts.New) {
		return "", fmt.Errorf("mv: cannot move '%s' to '%s': Is a directory", opts.Old, opts.New)
	}
	if repo.FileExists(opts.New) {
		return "", fmt.Errorf("mv: cannot move '%s' to '%s': File exists", opts.Old, opts.New)
	}
	if err := repo.RenameFile(opts.Old, opts.New); err != nil {
		return "", err
	}
	return fmt.Sprintf("Renamed '%s' to '%s'", opts.Old, opts.New), nil
}

func (c *MvCommand) parseArgs(args []string) (*MvOptions, error) {
	if len(args) < 3 || args[1] == "" || args[2] == "" {
		return nil, errors.New("mv: usage: mv <old> <new>")
	}
	return &MvOptions{Old: args[1], New: args[2]}, nil
}

func (c *MvCommand) Help() string {
	return "usage: mv <old> <new>\n\nRename a file."
}
