package server

import (
	"encoding/json"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/progress"
)

// Options configures a Server. The zero value is usable.
type Options struct {
	// AllowedOrigins lists browser origins allowed for CORS and the
	// terminal WebSocket. Empty allows any origin.
	AllowedOrigins []string
	// RemoteURL is suggested to new sessions for "git remote add origin".
	RemoteURL string
	// NotificationDelay is the pause before a lesson completion notice.
	NotificationDelay time.Duration
	// Lessons serves /api/lessons when set.
	Lessons *progress.Loader
}

type Server struct {
	SessionManager *git.SessionManager
	Mux            *http.ServeMux
	opts           Options
	delay          atomic.Int64
}

func NewServer(sm *git.SessionManager, opts Options) *Server {
	if opts.NotificationDelay == 0 {
		opts.NotificationDelay = progress.DefaultDelay
	}
	s := &Server{
		SessionManager: sm,
		Mux:            http.NewServeMux(),
		opts:           opts,
	}
	s.delay.Store(int64(opts.NotificationDelay))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Mux.HandleFunc("/ping", s.handlePing)
	s.Mux.HandleFunc("/api/session/init", s.handleInitSession)
	s.Mux.HandleFunc("/api/command", s.handleExecCommand)
	s.Mux.HandleFunc("/api/state", s.handleGetGraphState)
	s.Mux.HandleFunc("/api/remote/simulate-commit", s.handleSimulateRemoteCommit)
	s.Mux.HandleFunc("/api/lessons", s.handleListLessons)
	s.Mux.HandleFunc("/ws/terminal", s.handleTerminalWebSocket)
}

// SetNotificationDelay changes the delay used by terminals opened from now on.
func (s *Server) SetNotificationDelay(d time.Duration) {
	s.delay.Store(int64(d))
}

func (s *Server) notificationDelay() time.Duration {
	return time.Duration(s.delay.Load())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" && s.originAllowed(origin) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.Mux.ServeHTTP(w, r)
}

func (s *Server) originAllowed(origin string) bool {
	return len(s.opts.AllowedOrigins) == 0 || slices.Contains(s.opts.AllowedOrigins, origin)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "pong"})
}

func (s *Server) handleInitSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := uuid.NewString()
	if _, err := s.SessionManager.CreateSession(sessionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info().Str("session", sessionID).Msg("session created")

	resp := map[string]string{
		"status":    "session created",
		"sessionId": sessionID,
	}
	if s.opts.RemoteURL != "" {
		resp["remoteUrl"] = s.opts.RemoteURL
	}
	writeJSON(w, resp)
}

func (s *Server) handleGetGraphState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId required", http.StatusBadRequest)
		return
	}

	// Sessions live in memory; recreate after a restart like the command endpoint does.
	if _, err := s.SessionManager.CreateSession(sessionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	state, err := s.SessionManager.GetGraphState(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, state)
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.opts.Lessons == nil {
		writeJSON(w, []*progress.Lesson{})
		return
	}

	lessons, err := s.opts.Lessons.ListLessons()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lessons == nil {
		lessons = []*progress.Lesson{}
	}
	writeJSON(w, lessons)
}
