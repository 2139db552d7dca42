package commands

import (
	"context"
	"fmt"
	"path"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("init", func() git.Command { return &InitCommand{} })
}

type InitCommand struct{}

// Ensure InitCommand implements git.Command
var _ git.Command = (*InitCommand)(nil)

func (c *InitCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if wantsHelp(args) {
		return c.Help(), nil
	}

	gitDir := path.Join(s.RepoPath, ".git") + "/"
	if !s.Repo.Init() {
		return fmt.Sprintf("Reinitialized existing Git repository in %s", gitDir), nil
	}
	return fmt.Sprintf("Initialized empty Git repository in %s", gitDir), nil
}

func (c *InitCommand) Help() string {
	return `📘 GIT-INIT (1)                                         Git Manual

 💡 DESCRIPTION
    Create an empty Git repository in the tutorial project.
    Running it again is safe: the repository is only reinitialized.

 📋 SYNOPSIS
    git init
`
}
