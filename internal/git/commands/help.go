package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

func init() {
	git.RegisterCommand("help", func() git.Command { return &HelpCommand{} })
	git.RegisterShellCommand("help", func() git.Command { return &HelpCommand{} })
}

type HelpCommand struct{}

// Ensure HelpCommand implements git.Command
var _ git.Command = (*HelpCommand)(nil)

// helpEntry is one line of the command reference.
type helpEntry struct {
	Usage string
	Desc  string
}

type helpSection struct {
	Title   string
	Entries []helpEntry
}

var reference = []helpSection{
	{"Available Commands", []helpEntry{
		{"help", "Show this help message"},
		{"clear", "Clear the terminal"},
		{"ls", "List files in the project"},
		{"touch <file>", "Create an empty file"},
		{"mv <old> <new>", "Rename a file"},
		{"rm <file>", "Delete a file"},
		{"cat <file>", "Show the contents of a file"},
		{"echo <text> > <file>", "Write text to a file (>> appends)"},
	}},
	{"Git Commands", []helpEntry{
		{"git init", "Initialize a new Git repository"},
		{"git status", "Show the working tree status"},
		{"git add <file>", "Add files to the staging area"},
		{"git add .", "Add all files to staging area"},
		{`git commit -m "msg"`, "Commit staged changes"},
		{"git restore --staged <file>", "Unstage a file"},
		{"git rm <file>", "Remove a tracked file"},
		{"git log", "Show commit history"},
		{"git branch", "List, create, or delete branches"},
		{"git checkout <branch>", "Switch to a branch"},
		{"git checkout -b <branch>", "Create a branch and switch to it"},
		{"git merge <branch>", "Merge a branch into current branch"},
		{"git rebase <branch>", "Rebase current branch onto another"},
		{"git remote add origin <url>", "Add remote repository"},
		{"git remote -v", "Show remote repositories"},
		{"git push", "Push changes to remote repository"},
		{"git pull", "Pull changes from remote repository"},
	}},
}

// ReferenceText is the static command reference shared by "help" and "git help".
func ReferenceText() string {
	width := 0
	for _, sec := range reference {
		for _, e := range sec.Entries {
			width = max(width, len(e.Usage))
		}
	}

	var sb strings.Builder
	for i, sec := range reference {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(sec.Title + ":")
		for _, e := range sec.Entries {
			sb.WriteString(fmt.Sprintf("\n  %-*s - %s", width, e.Usage, e.Desc))
		}
	}
	return sb.String()
}

func (c *HelpCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	if len(args) > 1 {
		if helpStr, err := git.GetCommandHelp(args[1]); err == nil {
			return helpStr, nil
		}
		return fmt.Sprintf("git help: unknown command '%s'\n\n%s", args[1], ReferenceText()), nil
	}
	return ReferenceText(), nil
}

func (c *HelpCommand) Help() string {
	return `📘 GIT-HELP (1)                                         Git Manual

 💡 DESCRIPTION
    Show the commands this tutorial understands.
    With a command name, show the manual page for that git command.

 📋 SYNOPSIS
    help
    git help [<command>]
`
}
