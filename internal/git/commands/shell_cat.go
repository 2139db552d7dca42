package commands

// shell_cat.go - Shell Command: Print File
//
// This is a SHELL COMMAND (not a git command).

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterShellCommand("cat", func() git.Command { return &CatCommand{} })
}

type CatCommand struct{}

// Ensure CatCommand implements git.Command
var _ git.Command = (*CatCommand)(nil)

func (c *CatCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	if len(args) < 2 {
		return "", errors.New("cat: missing file operand")
	}

	var parts []string
	for _, name := range args[1:] {
		content, err := s.Repo.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("cat: %s: No such file or directory", name)
		}
		parts = append(parts, strings.TrimSuffix(content, "\n"))
	}
	return strings.Join(parts, "\n"), nil
}

func (c *CatCommand) Help() string {
	return "usage: cat <file>...\n\nPrint file contents."
}
