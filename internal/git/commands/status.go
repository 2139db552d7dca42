package commands

// status.go - Simulated Git Status Command
//
// Summarizes the staged, modified and untracked files of the working tree
// and where the current branch stands relative to its remote-tracking branch.

import (
	"context"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("status", func() git.Command { return &StatusCommand{} })
}

type StatusCommand struct{}

// Ensure StatusCommand implements git.Command
var _ git.Command = (*StatusCommand)(nil)

func (c *StatusCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}
	return renderStatus(s.Repo), nil
}

func renderStatus(repo *state.Repository) string {
	branch := repo.CurrentBranch()
	header := []string{fmt.Sprintf("On branch %s", branch)}
	if repo.CurrentHead() == "" {
		header = append(header, "", "No commits yet")
	} else if line := upstreamLine(repo); line != "" {
		header = append(header, line)
	}
	sections := []string{strings.Join(header, "\n")}

	staged := repo.Staged()
	if len(staged) > 0 {
		lines := []string{
			"Changes to be committed:",
			`  (use "git restore --staged <file>..." to unstage)`,
		}
		for _, f := range staged {
			label := "new file:"
			if repo.IsTracked(f) {
				label = "modified:"
			}
			lines = append(lines, fmt.Sprintf("\t%-12s%s", label, f))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	modified := repo.Modified()
	if len(modified) > 0 {
		lines := []string{
			"Changes not staged for commit:",
			`  (use "git add <file>..." to update what will be committed)`,
			`  (use "git restore <file>..." to discard changes in working directory)`,
		}
		for _, f := range modified {
			lines = append(lines, fmt.Sprintf("\t%-12s%s", "modified:", f))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	var untracked []string
	for _, f := range repo.Working() {
		if !repo.IsModified(f) {
			untracked = append(untracked, f)
		}
	}
	if len(untracked) > 0 {
		lines := []string{
			"Untracked files:",
			`  (use "git add <file>..." to include in what will be committed)`,
		}
		for _, f := range untracked {
			lines = append(lines, "\t"+f)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	switch {
	case len(staged) == 0 && len(modified) == 0 && len(untracked) == 0:
		sections = append(sections, "nothing to commit, working tree clean")
	case len(staged) > 0:
		sections = append(sections, `Use "git add" to stage more changes, or "git commit" to record the staged ones.`)
	case len(modified) > 0:
		sections = append(sections, `no changes added to commit (use "git add" and/or "git commit -a")`)
	default:
		sections = append(sections, `nothing added to commit but untracked files present (use "git add" to track)`)
	}
	return strings.Join(sections, "\n\n")
}

// upstreamLine compares the current branch with origin's copy of it.
func upstreamLine(repo *state.Repository) string {
	if !repo.RemoteConnected() {
		return ""
	}
	ref := state.RemoteRef(state.DefaultRemote, repo.CurrentBranch())
	remote := repo.RemoteHead(ref)
	if remote == "" {
		return ""
	}
	local := repo.CurrentHead()

	ahead := repo.AheadCount(local, remote)
	behind := repo.AheadCount(remote, local)
	switch {
	case ahead == 0 && behind == 0:
		return fmt.Sprintf("Your branch is up to date with '%s'.", ref)
	case behind == 0:
		return fmt.Sprintf("Your branch is ahead of '%s' by %d commit(s).\n  (use \"git push\" to publish your local commits)", ref, ahead)
	case ahead == 0:
		return fmt.Sprintf("Your branch is behind '%s' by %d commit(s), and can be fast-forwarded.\n  (use \"git pull\" to update your local branch)", ref, behind)
	default:
		return fmt.Sprintf("Your branch and '%s' have diverged,\nand have %d and %d different commits each, respectively.", ref, ahead, behind)
	}
}

func (c *StatusCommand) Help() string {
	return `usage: git status

Show the working tree status: staged changes, unstaged changes to tracked
files, and untracked files.
`
}
