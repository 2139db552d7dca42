package git

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Command defines the interface for all git and shell commands
type Command interface {
	Execute(ctx context.Context, session *Session, args []string) (string, error)
	Help() string
}

// CommandFactory allows creating new instances of commands
type CommandFactory func() Command

// Namespace tells which registry a parsed line dispatches to.
type Namespace int

const (
	ShellNamespace Namespace = iota // ls, touch, help, ...
	GitNamespace                    // git <subcommand>
)

var (
	registry      = make(map[string]CommandFactory)
	shellRegistry = make(map[string]CommandFactory)
)

// RegisterCommand registers a git subcommand factory
func RegisterCommand(name string, factory CommandFactory) {
	registry[name] = factory
}

// RegisterShellCommand registers a top-level command that is not part of git
func RegisterShellCommand(name string, factory CommandFactory) {
	shellRegistry[name] = factory
}

// Result is what the interpreter hands back for every processed line.
type Result struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
}

var (
	ErrMissingGitCommand = errors.New("git: missing command\nUsage: git <command> [<args>]")
)

// Dispatch runs a git subcommand. args[0] is the subcommand name.
func Dispatch(ctx context.Context, session *Session, cmdName string, args []string) (string, error) {
	factory, ok := registry[cmdName]
	if !ok {
		return "", fmt.Errorf("git: '%s' is not a git command. See 'git --help'.", cmdName)
	}
	return factory().Execute(ctx, session, args)
}

// DispatchShell runs a top-level command. args[0] is the command name.
func DispatchShell(ctx context.Context, session *Session, cmdName string, args []string) (string, error) {
	factory, ok := shellRegistry[cmdName]
	if !ok {
		return "", fmt.Errorf("Command not found: %s. Type 'help' for available commands.", cmdName)
	}
	return factory().Execute(ctx, session, args)
}

// GetSupportedCommands returns all registered git subcommands, sorted
func GetSupportedCommands() []string {
	return sortedKeys(registry)
}

// GetShellCommands returns all registered top-level commands, sorted
func GetShellCommands() []string {
	return sortedKeys(shellRegistry)
}

func sortedKeys(m map[string]CommandFactory) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetCommandHelp returns the help string for a git subcommand
func GetCommandHelp(name string) (string, error) {
	factory, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("command not found")
	}
	return factory().Help(), nil
}

var tokenPattern = regexp.MustCompile(`"([^"]*)"|'([^']*)'|[^\s]+`)

// Tokenize splits input on whitespace, keeping double- or single-quoted
// substrings together as one token without their quotes.
func Tokenize(input string) []string {
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(input, -1) {
		switch {
		case m[2] >= 0:
			tokens = append(tokens, input[m[2]:m[3]])
		case m[4] >= 0:
			tokens = append(tokens, input[m[4]:m[5]])
		default:
			tokens = append(tokens, input[m[0]:m[1]])
		}
	}
	return tokens
}

// ParseCommand parses the raw input and returns the namespace, the resolved
// command name and its arguments. The returned args slice always starts with
// the resolved command name (args[0] == cmdName). A bare "git" yields an
// empty name in GitNamespace.
func ParseCommand(input string) (Namespace, string, []string) {
	parts := Tokenize(strings.TrimSpace(input))
	if len(parts) == 0 {
		return ShellNamespace, "", nil
	}

	if parts[0] != "git" {
		return ShellNamespace, parts[0], parts
	}
	if len(parts) == 1 {
		return GitNamespace, "", nil
	}

	switch parts[1] {
	case "-v", "--version":
		return GitNamespace, "version", []string{"version"}
	case "-h", "--help":
		return GitNamespace, "help", []string{"help"}
	}
	return GitNamespace, parts[1], parts[1:]
}

// IsClear reports whether input only asks the terminal to clear itself.
func IsClear(input string) bool {
	switch strings.TrimSpace(input) {
	case "clear", "cls":
		return true
	}
	return false
}

// Run interprets one input line against the session. It returns false when
// the line produces no output record: blank input, or clear/cls.
func Run(ctx context.Context, s *Session, input string) (Result, bool) {
	ns, name, args := ParseCommand(input)
	if ns == ShellNamespace && (name == "" || IsClear(name)) {
		return Result{}, false
	}

	var (
		out string
		err error
	)
	switch {
	case ns == GitNamespace && name == "":
		err = ErrMissingGitCommand
	case ns == GitNamespace:
		out, err = Dispatch(ctx, s, name, args)
	default:
		out, err = DispatchShell(ctx, s, name, args)
	}

	log.Debug().Str("session", s.ID).Str("cmd", name).Bool("success", err == nil).Msg("dispatched")
	if err != nil {
		return Result{Output: err.Error(), Success: false}, true
	}
	return Result{Output: out, Success: true}, true
}
