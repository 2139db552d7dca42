package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AyaPK/interactive-git-tutorial/internal/config"
	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	_ "github.com/AyaPK/interactive-git-tutorial/internal/git/commands" // Register commands
	"github.com/AyaPK/interactive-git-tutorial/internal/logging"
	"github.com/AyaPK/interactive-git-tutorial/internal/progress"
	"github.com/AyaPK/interactive-git-tutorial/internal/server"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

func main() {
	path := config.Path()
	cfg, err := config.Load(path)
	if err != nil {
		logging.Setup("info", true)
		log.Fatal().Err(err).Str("path", path).Msg("failed to load config")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Core Dependencies
	sessionManager := git.NewSessionManager()
	sessionManager.SetDefaults(sessionDefaults(cfg))

	opts := server.Options{
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		RemoteURL:         cfg.Tutorial.RemoteURL,
		NotificationDelay: cfg.Tutorial.NotificationDelay,
	}
	if cfg.Tutorial.LessonDir != "" {
		opts.Lessons = progress.NewLoader(cfg.Tutorial.LessonDir)
	}
	srv := server.NewServer(sessionManager, opts)

	go func() {
		err := config.Watch(ctx, path, func(next *config.Config) {
			logging.SetLevel(next.Log.Level)
			sessionManager.SetDefaults(sessionDefaults(next))
			srv.SetNotificationDelay(next.Tutorial.NotificationDelay)
		})
		if err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func sessionDefaults(cfg *config.Config) state.SessionDefaults {
	return state.SessionDefaults{
		Author:   cfg.Tutorial.Author,
		Email:    cfg.Tutorial.Email,
		RepoPath: cfg.Tutorial.RepoPath,
	}
}
