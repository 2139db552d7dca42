package commands

// log.go - Simulated Git Log Command
//
// Shows the commits recorded on a branch that are reachable from its head,
// newest first. Accepts a local branch or a remote-tracking name such as
// origin/main.

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("log", func() git.Command { return &LogCommand{} })
}

type LogCommand struct{}

// Ensure LogCommand implements git.Command
var _ git.Command = (*LogCommand)(nil)

type LogOptions struct {
	Oneline bool
	Ref     string
}

func (c *LogCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.RLock()
	defer s.RUnlock()

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

	repo := s.Repo
	head, branch, err := resolveLogRef(repo, opts.Ref)
	if err != nil {
		return "", err
	}
	if head == "" {
		return "", fmt.Errorf("fatal: your current branch '%s' does not have any commits yet", branch)
	}

	decorations := decorate(repo)
	var entries []string
	for _, commit := range repo.History(head, branch) {
		if opts.Oneline {
			entries = append(entries, formatOneline(commit, decorations[commit.Hash]))
		} else {
			entries = append(entries, formatCommit(commit, decorations[commit.Hash]))
		}
	}
	if len(entries) == 0 {
		return emptyHistoryNotice(repo, branch), nil
	}
	sep := "\n\n"
	if opts.Oneline {
		sep = "\n"
	}
	return strings.Join(entries, sep), nil
}

func (c *LogCommand) parseArgs(args []string) (*LogOptions, error) {
	opts := &LogOptions{}
	for _, arg := range args[1:] {
		switch {
		case arg == "--oneline":
			opts.Oneline = true
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("fatal: unrecognized argument: %s", arg)
		case opts.Ref == "":
			opts.Ref = arg
		}
	}
	return opts, nil
}

// resolveLogRef returns the head to walk from and the branch whose commits are shown.
func resolveLogRef(repo *state.Repository, ref string) (head, branch string, err error) {
	switch {
	case ref == "" || ref == "HEAD":
		return repo.CurrentHead(), repo.CurrentBranch(), nil
	case repo.HasBranch(ref):
		return repo.Head(ref), ref, nil
	case repo.HasRemoteBranch(ref):
		_, name, _ := strings.Cut(ref, "/")
		return repo.RemoteHead(ref), name, nil
	}
	return "", "", fmt.Errorf("fatal: ambiguous argument '%s': unknown revision or path not in the working tree.", ref)
}

// emptyHistoryNotice explains a branch that has no commits of its own yet;
// its history is the branch it was forked from.
func emptyHistoryNotice(repo *state.Repository, branch string) string {
	notice := fmt.Sprintf("No commits on branch '%s' yet.", branch)
	if parent := repo.BranchParent(branch); parent != "" {
		notice += fmt.Sprintf(" Its history continues on '%s' (git log %s).", parent, parent)
	}
	return notice
}

// decorate maps commit hashes to the refs pointing at them, HEAD first.
func decorate(repo *state.Repository) map[string][]string {
	out := make(map[string][]string)
	current := repo.CurrentBranch()
	if h := repo.CurrentHead(); h != "" {
		out[h] = append(out[h], "HEAD -> "+current)
	}
	for _, b := range repo.Branches() {
		if h := repo.Head(b); h != "" && b != current {
			out[h] = append(out[h], b)
		}
	}
	for _, rb := range repo.RemoteBranches() {
		if h := repo.RemoteHead(rb); h != "" {
			out[h] = append(out[h], rb)
		}
	}
	return out
}

func decoration(refs []string) string {
	if len(refs) == 0 {
		return ""
	}
	return " (" + strings.Join(refs, ", ") + ")"
}

func formatCommit(c state.Commit, refs []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("commit %s%s\n", c.Hash, decoration(refs)))
	if c.Kind() == state.MergeCommit {
		sb.WriteString(fmt.Sprintf("Merge: %s\n", strings.Join(c.Parents, " ")))
	}
	author := &object.Signature{Name: c.Author, Email: c.Email}
	sb.WriteString(fmt.Sprintf("Author: %s\n", author.String()))
	sb.WriteString(fmt.Sprintf("Date:   %s\n\n", formatDate(c.Timestamp)))
	sb.WriteString("    " + c.Message)
	return sb.String()
}

func formatOneline(c state.Commit, refs []string) string {
	return fmt.Sprintf("%s%s %s", c.Hash, decoration(refs), c.Message)
}

func (c *LogCommand) Help() string {
	return `📘 GIT-LOG (1)                                          Git Manual

 💡 DESCRIPTION
    Show the commit history of the current branch, newest first.

 📋 SYNOPSIS
    git log [--oneline] [<branch> | <remote>/<branch>]

 ⚙️  COMMON OPTIONS
    --oneline
        Show each commit on a single line.

 🛠  EXAMPLES
    1. Compare with what origin has
       $ git log origin/main
`
}
