package commands

// shell_touch.go - Shell Command: Create File
//
// This is a SHELL COMMAND (not a git command).
// Creates a new, empty, untracked file.

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterShellCommand("touch", func() git.Command { return &TouchCommand{} })
}

type TouchCommand struct{}

// Ensure TouchCommand implements git.Command
var _ git.Command = (*TouchCommand)(nil)

type TouchOptions struct {
	Files []string
}

func (c *TouchCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	opts, err := c.parseArgs(args)
	if err != nil {
		return "", err
	}
	return c.executeTouch(s, opts)
}

func (c *TouchCommand) parseArgs(args []string) (*TouchOptions, error) {
	cmdArgs := args[1:]
	if len(cmdArgs) == 0 {
		return nil, errors.New("touch: missing file operand")
	}
	return &TouchOptions{Files: cmdArgs}, nil
}

func (c *TouchCommand) executeTouch(s *git.Session, opts *TouchOptions) (string, error) {
	repo := s.Repo
	for i, name := range opts.Files {
		if !state.ValidFileName(name) {
			return "", fmt.Errorf("touch: cannot touch '%s': Is a directory", name)
		}
		if repo.FileExists(name) || slices.Contains(opts.Files[:i], name) {
			return "", fmt.Errorf("touch: '%s' already exists", name)
		}
	}

	created := make([]string, 0, len(opts.Files))
	for _, name := range opts.Files {
		if err := repo.AddFile(name); err != nil {
			return "", err
		}
		created = append(created, fmt.Sprintf("Created file '%s'", name))
	}
	return strings.Join(created, "\n"), nil
}

func (c *TouchCommand) Help() string {
	return `📘 TOUCH (1)                                            Shell Manual

 💡 DESCRIPTION
    Create a new empty file. The file starts out untracked.

 📋 SYNOPSIS
    touch <file>...

 🛠  EXAMPLES
    1. Create a new file
       $ touch notes.txt
`
}
