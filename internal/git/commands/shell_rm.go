package commands

// shell_rm.go - Shell Command: Remove File
//
// This is a SHELL COMMAND (not a git command).
// Deletes a working or staged file. History is untouched.

import (
	"context"
	"errors"
	"fmt"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterShellCommand("rm", func() git.Command { return &ShellRmCommand{} })
}

type ShellRmCommand struct{}

// Ensure ShellRmCommand implements git.Command
var _ git.Command = (*ShellRmCommand)(nil)

func (c *ShellRmCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if len(args) < 2 {
		return "", errors.New("rm: missing file operand")
	}

	name := args[1]
	repo := s.Repo
	if !repo.InWorking(name) && !repo.IsStaged(name) {
		return "", fmt.Errorf("rm: cannot remove '%s': No such file", name)
	}
	if err := repo.DeleteFile(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted file '%s'", name), nil
}

func (c *ShellRmCommand) Help() string {
	return "usage: rm <file>\n\nDelete a file from the working tree."
}
