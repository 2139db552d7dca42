package commands

// shell_ls.go - Shell Command: List Files
//
// This is a SHELL COMMAND (not a git command).
// Lists the files in the working tree and staging area.

import (
	"context"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterShellCommand("ls", func() git.Command { return &LsCommand{} })
}

type LsCommand struct{}

// Ensure LsCommand implements git.Command
var _ git.Command = (*LsCommand)(nil)

func (c *LsCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	files := s.Repo.ListFiles()
	if len(files) == 0 {
		return "(no files)", nil
	}
	return strings.Join(files, "\n"), nil
}

func (c *LsCommand) Help() string {
	return "usage: ls\n\nList directory contents."
}
