package main

import (
	"slices"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

// builtins are accepted at the prompt without being registered commands.
var builtins = []string{"git", "clear", "cls", "exit", "quit"}

// completeCommand is the terminal's tab handler. It completes the first word
// from the shell commands and the word after "git" from the git subcommands.
// Only the end of the line is completed.
func completeCommand(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' || pos != len(line) {
		return "", 0, false
	}

	head, word := "", line
	var candidates []string
	if rest, ok := strings.CutPrefix(line, "git "); ok {
		word = strings.TrimLeft(rest, " ")
		head = line[:len(line)-len(word)]
		candidates = git.GetSupportedCommands()
	} else {
		candidates = append(git.GetShellCommands(), builtins...)
	}
	if strings.Contains(word, " ") {
		return "", 0, false
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) && !slices.Contains(matches, c) {
			matches = append(matches, c)
		}
	}

	var completed string
	switch len(matches) {
	case 0:
		return "", 0, false
	case 1:
		completed = matches[0] + " "
	default:
		completed = commonPrefix(matches)
		if len(completed) <= len(word) {
			return "", 0, false
		}
	}
	newLine := head + completed
	return newLine, len(newLine), true
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
