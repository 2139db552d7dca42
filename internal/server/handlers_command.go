package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
)

type CommandRequest struct {
	SessionID string `json:"sessionId"`
	Command   string `json:"command"`
}

// CommandResponse is either a command result or a clear signal.
type CommandResponse struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
	Clear   bool   `json:"clear,omitempty"`
}

func (s *Server) handleExecCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "sessionId required", http.StatusBadRequest)
		return
	}

	session, err := s.session(req.SessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info().Str("session", req.SessionID).Str("cmd", req.Command).Msg("command received")
	writeJSON(w, execute(r, session, req.Command))
}

// session returns the named session, recreating it when the server has
// restarted since the client obtained the ID.
func (s *Server) session(id string) (*git.Session, error) {
	if session, ok := s.SessionManager.GetSession(id); ok {
		return session, nil
	}
	log.Warn().Str("session", id).Msg("session not found, recreating")
	return s.SessionManager.CreateSession(id)
}

func execute(r *http.Request, session *git.Session, line string) CommandResponse {
	res, ok := git.Run(r.Context(), session, line)
	if !ok {
		_, name, _ := git.ParseCommand(line)
		return CommandResponse{Success: true, Clear: git.IsClear(name)}
	}
	return CommandResponse{Output: res.Output, Success: res.Success}
}
