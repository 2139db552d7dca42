package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("rm", func() git.Command { return &RmCommand{} })
}

// RmCommand is "git rm": it removes a tracked file from the working tree and
// the staging area. Untracked files are deleted with the shell rm instead.
type RmCommand struct{}

// Ensure RmCommand implements git.Command
var _ git.Command = (*RmCommand)(nil)

func (c *RmCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}

	var files []string
	for _, arg := range args[1:] {
		switch arg {
		case "-f", "--force", "-r":
		default:
			files = append(files, arg)
		}
	}
	if len(files) == 0 {
		return "", errors.New("usage: git rm <file>...")
	}
	files = uniquePaths(files)

	// Validate every path before removing any.
	repo := s.Repo
	for _, f := range files {
		if !repo.FileExists(f) {
			return "", fmt.Errorf("fatal: pathspec '%s' did not match any files", f)
		}
		if !repo.IsTracked(f) {
			return "", fmt.Errorf("error: '%s' has no changes recorded in any commit\n(use 'rm %s' to delete an untracked file)", f, f)
		}
	}

	lines := make([]string, 0, len(files))
	for _, f := range files {
		if err := repo.RemoveTracked(f); err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("rm '%s'", f))
	}
	return strings.Join(lines, "\n"), nil
}

func (c *RmCommand) Help() string {
	return `usage: git rm <file>...

Remove files from the working tree and from the index.
`
}
