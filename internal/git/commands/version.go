package commands

import (
	"context"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("version", func() git.Command { return &VersionCommand{} })
}

// Version is the simulator version reported by "git version".
const Version = "2.47.1 (interactive tutorial)"

type VersionCommand struct{}

// Ensure VersionCommand implements git.Command
var _ git.Command = (*VersionCommand)(nil)

func (c *VersionCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	return "git version " + Version, nil
}

func (c *VersionCommand) Help() string {
	return `📘 GIT-VERSION (1)                                      Git Manual

 💡 DESCRIPTION
    Show the version of the simulated git.

 📋 SYNOPSIS
    git version
`
}
