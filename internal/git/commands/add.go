package commands

// add.go - Simulated Git Add Command
//
// Moves files from the working set into the staging area for the next commit.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("add", func() git.Command { return &AddCommand{} })
}

type AddCommand struct{}

// Ensure AddCommand implements git.Command
var _ git.Command = (*AddCommand)(nil)

type AddOptions struct {
	All   bool
	Files []string
}

func (c *AddCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}

	opts, err := c.parseArgs(args)
	if err != nil {
		return "", err
	}
	return c.executeAdd(s, opts)
}

func (c *AddCommand) parseArgs(args []string) (*AddOptions, error) {
	opts := &AddOptions{}
	for _, arg := range args[1:] {
		switch arg {
		case ".", "-A", "--all":
			opts.All = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("error: unknown option `%s'", strings.TrimLeft(arg, "-"))
			}
			opts.Files = append(opts.Files, arg)
		}
	}
	if !opts.All && len(opts.Files) == 0 {
		return nil, errors.New("Nothing specified, nothing added.\nMaybe you wanted to say 'git add .'?")
	}
	opts.Files = uniquePaths(opts.Files)
	return opts, nil
}

func (c *AddCommand) executeAdd(s *git.Session, opts *AddOptions) (string, error) {
	repo := s.Repo

	var added, unmatched []string
	if opts.All {
		added = repo.StageAll()
	} else {
		for _, f := range opts.Files {
			switch {
			case repo.InWorking(f):
				if err := repo.Stage(f); err != nil {
					return "", err
				}
				added = append(added, f)
			case repo.IsStaged(f), repo.IsTracked(f):
				// already staged or unchanged since the last commit
			default:
				unmatched = append(unmatched, f)
			}
		}
	}

	if len(added) == 0 {
		if len(unmatched) > 0 {
			return "", pathspecError(unmatched)
		}
		return "No files added to staging area.", nil
	}

	var sb strings.Builder
	for _, f := range unmatched {
		sb.WriteString(fmt.Sprintf("warning: pathspec '%s' did not match any files\n", f))
	}
	sb.WriteString(fmt.Sprintf("Added %d file(s) to staging area:\n  %s", len(added), strings.Join(added, "\n  ")))
	return sb.String(), nil
}

func (c *AddCommand) Help() string {
	return `usage: git add [options] [--] <pathspec>...

Options:
    .                 add all changes in the working tree
    <file>            add specific file

Add file contents to the index (staging area).
`
}
