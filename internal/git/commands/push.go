package commands

// push.go - Simulated Git Push Command
//
// Publishes the current branch by moving origin's remote-tracking branch to
// the local head. Only fast-forward updates are accepted.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("push", func() git.Command { return &PushCommand{} })
}

type PushCommand struct{}

// Ensure PushCommand implements git.Command
var _ git.Command = (*PushCommand)(nil)

type PushOptions struct {
	Remote      string
	Branch      string
	SetUpstream bool
}

var errNoPushDestination = errors.New("fatal: No configured push destination.\nPlease specify the remote repository with git remote add")

func (c *PushCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}
	if err := requireRepo(s); err != nil {
		return "", err
	}
	if !s.Repo.RemoteConnected() {
		return "", errNoPushDestination
	}

	opts, err := c.parseArgs(s.Repo, args)
	if err != nil {
		return "", err
	}
	return c.executePush(s.Repo, opts)
}

func (c *PushCommand) parseArgs(repo *state.Repository, args []string) (*PushOptions, error) {
	opts := &PushOptions{Remote: state.DefaultRemote, Branch: repo.CurrentBranch()}
	var positional []string
	for _, arg := range args[1:] {
		switch arg {
		case "-u", "--set-upstream":
			opts.SetUpstream = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("error: unknown option `%s'", strings.TrimLeft(arg, "-"))
			}
			positional = append(positional, arg)
		}
	}
	if len(positional) > 0 {
		opts.Remote = positional[0]
	}
	if len(positional) > 1 {
		opts.Branch = positional[1]
	}

	if repo.RemoteURL(opts.Remote) == "" {
		return nil, fmt.Errorf("fatal: '%s' does not appear to be a git repository\nfatal: Could not read from remote repository.", opts.Remote)
	}
	return opts, nil
}

func (c *PushCommand) executePush(repo *state.Repository, opts *PushOptions) (string, error) {
	url := repo.RemoteURL(opts.Remote)
	head := repo.Head(opts.Branch)
	if head == "" {
		return "", fmt.Errorf("error: src refspec %s does not match any\nerror: failed to push some refs to '%s'", opts.Branch, url)
	}

	ref := state.RemoteRef(opts.Remote, opts.Branch)
	remoteHead := repo.RemoteHead(ref)
	if remoteHead == head {
		return "Everything up-to-date", nil
	}
	if !repo.IsAncestor(remoteHead, head) {
		return "", fmt.Errorf("To %s\n ! [rejected]        %s -> %s (fetch first)\nerror: failed to push some refs to '%s'\nhint: Updates were rejected because the remote contains work that you do\nhint: not have locally. Use 'git pull' before pushing again.",
			url, opts.Branch, opts.Branch, url)
	}

	if err := repo.SetRemoteHead(ref, head); err != nil {
		return "", err
	}

	lines := []string{fmt.Sprintf("To %s", url)}
	if remoteHead == "" {
		lines = append(lines, fmt.Sprintf(" * [new branch]      %s -> %s", opts.Branch, opts.Branch))
	} else {
		lines = append(lines, fmt.Sprintf("   %s..%s  %s -> %s", remoteHead, head, opts.Branch, opts.Branch))
	}
	if opts.SetUpstream {
		lines = append(lines, fmt.Sprintf("branch '%s' set up to track '%s'.", opts.Branch, ref))
	}
	return strings.Join(lines, "\n"), nil
}

func (c *PushCommand) Help() string {
	return `📘 GIT-PUSH (1)                                         Git Manual

 💡 DESCRIPTION
    Publish your local commits to the remote repository.
    The push is rejected if the remote has commits you have not pulled.

 📋 SYNOPSIS
    git push [-u] [<remote> [<branch>]]

 🛠  EXAMPLES
    1. Publish the current branch
       $ git push -u origin main
`
}
