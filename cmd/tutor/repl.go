package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/progress"
)

// lineReader yields one input line per call and io.EOF at the end.
type lineReader interface {
	ReadLine() (string, error)
}

// repl feeds each line through the interpreter until exit, quit or EOF.
func repl(ctx context.Context, s *git.Session, in lineReader, out io.Writer, style *termStyle, tracker *progress.Tracker) error {
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}

		res, ok := git.Run(ctx, s, line)
		if !ok {
			if _, name, _ := git.ParseCommand(line); git.IsClear(name) && style.useColors {
				fmt.Fprint(out, ansiClear)
			}
			continue
		}
		if res.Output != "" {
			fmt.Fprintln(out, style.result(res.Output, res.Success))
		}
		if tracker != nil {
			for _, e := range tracker.Observe(line, res.Output) {
				fmt.Fprintln(out, style.colorize(ansiGreen, e.Message))
			}
		}
	}
}
