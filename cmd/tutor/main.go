package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/AyaPK/interactive-git-tutorial/internal/config"
	_ "github.com/AyaPK/interactive-git-tutorial/internal/git/commands" // Register commands
	"github.com/AyaPK/interactive-git-tutorial/internal/logging"
	"github.com/AyaPK/interactive-git-tutorial/internal/progress"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

const prompt = "$ "

// scannerReader reads lines from a non-interactive input.
type scannerReader struct {
	sc *bufio.Scanner
}

func (r scannerReader) ReadLine() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

// newLocalSession applies the configured logging and returns the single
// session the REPL drives.
func newLocalSession(cfg *config.Config) *state.Session {
	logging.Setup(cfg.Log.Level, cfg.Log.Pretty)
	return state.NewSession("local", state.SessionDefaults{
		Author:   cfg.Tutorial.Author,
		Email:    cfg.Tutorial.Email,
		RepoPath: cfg.Tutorial.RepoPath,
	})
}

func main() {
	lessonID := flag.String("lesson", "", "lesson ID to track (requires tutorial.lesson_dir)")
	flag.Parse()

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	session := newLocalSession(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	style := newTermStyle()

	var out io.Writer = os.Stdout
	var in lineReader = scannerReader{sc: bufio.NewScanner(os.Stdin)}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to enter raw mode")
		}
		defer term.Restore(fd, oldState)

		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, style.colorize(ansiCyan, prompt))
		if w, h, err := term.GetSize(fd); err == nil {
			_ = t.SetSize(w, h)
		}
		t.AutoCompleteCallback = completeCommand
		in, out = t, t
	}

	var tracker *progress.Tracker
	if *lessonID != "" && cfg.Tutorial.LessonDir != "" {
		lesson, err := progress.NewLoader(cfg.Tutorial.LessonDir).LoadLesson(*lessonID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load lesson")
		}
		tracker = progress.NewTracker(cfg.Tutorial.NotificationDelay, func(e progress.Event) {
			fmt.Fprintln(out, style.colorize(ansiGreen, e.Message))
		})
		tracker.SetObjectives(lesson.Objectives)
		defer tracker.Stop()
		fmt.Fprintln(out, style.colorize(ansiCyan, lesson.Title))
	}

	fmt.Fprintln(out, "Type 'help' for available commands, 'exit' to leave.")
	if err := repl(ctx, session, in, out, style, tracker); err != nil {
		log.Error().Err(err).Msg("input error")
	}
}
