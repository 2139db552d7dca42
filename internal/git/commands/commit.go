package commands

// commit.go - Simulated Git Commit Command
//
// Records the staged files as a new commit on the current branch.
// Supports -m (message) and -a (stage modified tracked files first).

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("commit", func() git.Command { return &CommitCommand{} })
}

type CommitCommand struct{}

// Ensure CommitCommand implements git.Command
var _ git.Command = (*CommitCommand)(nil)

type CommitOptions struct {
	Message string
	All     bool
}

var (
	errNothingToCommit = errors.New("nothing to commit, working tree clean")
	errEmptyMessage    = errors.New("Aborting commit due to empty commit message.\nUse: git commit -m \"Your commit message\"")
)

func (c *CommitCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
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
	return c.executeCommit(s, opts)
}

// parseArgs accepts combined short flags: any flag containing 'm' takes the
// next argument as the message, any containing 'a' stages modified files.
func (c *CommitCommand) parseArgs(args []string) (*CommitOptions, error) {
	opts := &CommitOptions{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--all":
			opts.All = true
		case arg == "--message":
			if i+1 < len(args) {
				opts.Message = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--message="):
			opts.Message = strings.TrimPrefix(arg, "--message=")
		case strings.HasPrefix(arg, "--"):
			return nil, fmt.Errorf("error: unknown option `%s'", strings.TrimPrefix(arg, "--"))
		case strings.HasPrefix(arg, "-"):
			if strings.Contains(arg, "a") {
				opts.All = true
			}
			if strings.Contains(arg, "m") && i+1 < len(args) {
				opts.Message = args[i+1]
				i++
			}
		default:
			return nil, fmt.Errorf("error: pathspec '%s' did not match any file(s) known to git", arg)
		}
	}
	return opts, nil
}

func (c *CommitCommand) executeCommit(s *git.Session, opts *CommitOptions) (string, error) {
	repo := s.Repo

	pending := len(repo.Staged())
	if opts.All {
		pending += len(repo.Modified())
	}
	if pending == 0 {
		return "", errNothingToCommit
	}
	if strings.TrimSpace(opts.Message) == "" {
		return "", errEmptyMessage
	}

	if opts.All {
		repo.StageModified()
	}
	commit, err := repo.RecordCommit(opts.Message, git.GetDefaultSignature(s))
	if err != nil {
		if errors.Is(err, state.ErrNothingStaged) {
			return "", errNothingToCommit
		}
		return "", err
	}

	root := ""
	if commit.Kind() == state.RootCommit {
		root = " (root-commit)"
	}
	return fmt.Sprintf("[%s%s %s] %s\n %d file(s) changed", commit.Branch, root, commit.Hash, commit.Message, len(commit.Files)), nil
}

func (c *CommitCommand) Help() string {
	return `📘 GIT-COMMIT (1)                                       Git Manual

 💡 DESCRIPTION
    Record the staged files as a new commit on the current branch.

 📋 SYNOPSIS
    git commit -m <message>
    git commit -am <message>

 ⚙️  COMMON OPTIONS
    -m <message>
        Use the given message as the commit message.
    -a, --all
        Stage every modified tracked file before committing.

 🛠  EXAMPLES
    1. Commit staged changes
       $ git commit -m "Add README"
`
}
