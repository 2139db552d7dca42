package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterCommand("remote", func() git.Command { return &RemoteCommand{} })
}

type RemoteCommand struct{}

// Ensure RemoteCommand implements git.Command
var _ git.Command = (*RemoteCommand)(nil)

var errRemoteUsage = errors.New("Usage: git remote add origin <url>")

func (c *RemoteCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}

	repo := s.Repo
	if len(args) < 2 {
		return strings.Join(repo.Remotes(), "\n"), nil
	}

	switch args[1] {
	case "-v", "--verbose":
		var lines []string
		for _, name := range repo.Remotes() {
			url := repo.RemoteURL(name)
			lines = append(lines, fmt.Sprintf("%s\t%s (fetch)", name, url), fmt.Sprintf("%s\t%s (push)", name, url))
		}
		return strings.Join(lines, "\n"), nil
	case "add":
		if len(args) < 4 || args[2] != state.DefaultRemote {
			return "", errRemoteUsage
		}
		return c.addRemote(repo, args[2], args[3])
	default:
		return "", errRemoteUsage
	}
}

func (c *RemoteCommand) addRemote(repo *state.Repository, name, url string) (string, error) {
	cfg := &config.RemoteConfig{Name: name, URLs: []string{url}}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("fatal: invalid remote '%s': %v", name, err)
	}
	if _, err := transport.NewEndpoint(url); err != nil {
		return "", fmt.Errorf("fatal: '%s' is not a valid remote URL", url)
	}

	repo.ConnectRemote(name, url)
	return "Remote repository added successfully.", nil
}

func (c *RemoteCommand) Help() string {
	return `usage: git remote
   or: git remote -v
   or: git remote add origin <url>

Manage the set of tracked repositories.
`
}
