package commands

// shell_echo.go - Shell Command: Echo
//
// This is a SHELL COMMAND (not a git command).
// Prints its arguments, or writes them to a file with > (replace) or >> (append).
// Writing to a committed file marks it as modified.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func init() {
	git.RegisterShellCommand("echo", func() git.Command { return &EchoCommand{} })
}

type EchoCommand struct{}

// Ensure EchoCommand implements git.Command
var _ git.Command = (*EchoCommand)(nil)

type EchoOptions struct {
	Text   string
	File   string
	Append bool
}

var errRedirectTarget = errors.New("echo: syntax error near unexpected token `newline'")

func (c *EchoCommand) Execute(ctx context.Context, s *git.Session, args []string) (string, error) {
	s.Lock()
	defer s.Unlock()

	opts, err := c.parseArgs(args)
	if err != nil {
		return "", err
	}
	if opts.File == "" {
		return opts.Text, nil
	}
	if !state.ValidFileName(opts.File) {
		return "", fmt.Errorf("echo: %s: Is a directory", opts.File)
	}
	if err := s.Repo.WriteFile(opts.File, opts.Text+"\n", opts.Append); err != nil {
		return "", err
	}
	return "", nil
}

// parseArgs splits the words before a > or >> from the file after it.
// The operator may stand alone or be attached to the file name (">notes.txt").
func (c *EchoCommand) parseArgs(args []string) (*EchoOptions, error) {
	opts := &EchoOptions{}
	var words []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		op, rest := "", ""
		switch {
		case strings.HasPrefix(arg, ">>"):
			op, rest = ">>", arg[2:]
		case strings.HasPrefix(arg, ">"):
			op, rest = ">", arg[1:]
		default:
			words = append(words, arg)
			continue
		}

		opts.Append = op == ">>"
		switch {
		case rest != "":
			opts.File = rest
		case i+1 < len(args):
			opts.File = args[i+1]
		default:
			return nil, errRedirectTarget
		}
		break
	}
	opts.Text = strings.Join(words, " ")
	return opts, nil
}

func (c *EchoCommand) Help() string {
	return "usage: echo <text> [> <file> | >> <file>]\n\nPrint text, or write it to a file."
}
