package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

// Shared utilities for commands

var errNotARepo = errors.New("fatal: not a git repository (or any of the parent directories): .git")

// gitDateFormat is the layout git log uses for the Date: line.
const gitDateFormat = "Mon Jan 2 15:04:05 2006 -0700"

func requireRepo(s *git.Session) error {
	if !s.Repo.Initialized() {
		return errNotARepo
	}
	return nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func shortHash(hash string) string {
	if hash == "" {
		return "0000000"
	}
	return hash
}

func formatDate(t time.Time) string {
	return t.Format(gitDateFormat)
}

func pathspecError(names []string) error {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("fatal: pathspec '%s' did not match any files", name))
	}
	return errors.New(strings.Join(lines, "\n"))
}

// uniquePaths drops repeated operands, keeping the first occurrence of each.
func uniquePaths(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}
