package main

import (
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiClear = "\033[H\033[2J"
)

// termStyle colors output only when stdout is a terminal.
type termStyle struct {
	useColors bool
}

func newTermStyle() *termStyle {
	return &termStyle{
		useColors: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (t *termStyle) colorize(code, text string) string {
	if !t.useColors || text == "" {
		return text
	}
	return code + text + ansiReset
}

func (t *termStyle) result(output string, success bool) string {
	if success {
		return output
	}
	return t.colorize(ansiRed, output)
}
