package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/state"
)

type SimulateCommitRequest struct {
	SessionID string `json:"sessionId"`
	Branch    string `json:"branch"`
	Message   string `json:"message"`
}

// handleSimulateRemoteCommit records a commit on a remote-tracking branch as
// if a collaborator had pushed it, giving "git pull" something to bring in.
func (s *Server) handleSimulateRemoteCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulateCommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "sessionId required", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		req.Message = "Simulated commit from team member"
	}

	session, ok := s.SessionManager.GetSession(req.SessionID)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	commit, err := simulateCommit(session, req.Branch, req.Message)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, state.ErrRemoteNotFound) || errors.Is(err, state.ErrNotInitialized) {
			status = http.StatusConflict
		}
		http.Error(w, fmt.Sprintf("failed to simulate commit: %v", err), status)
		return
	}

	log.Info().Str("session", req.SessionID).Str("hash", commit.Hash).Msg("simulated remote commit")
	writeJSON(w, map[string]string{"status": "ok", "hash": commit.Hash})
}

func simulateCommit(session *git.Session, branch, message string) (state.Commit, error) {
	session.Lock()
	defer session.Unlock()

	repo := session.Repo
	if !repo.Initialized() {
		return state.Commit{}, state.ErrNotInitialized
	}
	if branch == "" {
		branch = repo.CurrentBranch()
	}
	return repo.RecordRemoteCommit(state.DefaultRemote, branch, message, git.CollaboratorSignature(session))
}
