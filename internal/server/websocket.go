package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/AyaPK/interactive-git-tutorial/internal/git"
	"github.com/AyaPK/interactive-git-tutorial/internal/progress"
)

// WSMessage is a message from the terminal client.
type WSMessage struct {
	Type       string               `json:"type"` // "command", "objectives"
	Data       string               `json:"data,omitempty"`
	Objectives []progress.Objective `json:"objectives,omitempty"`
}

// WSOutputMessage is a message to the terminal client.
type WSOutputMessage struct {
	Type    string `json:"type"` // "result", "clear", "objective", "complete", "error"
	Output  string `json:"output,omitempty"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}
}

// handleTerminalWebSocket runs commands for one session over a WebSocket and
// reports lesson progress as the learner completes objectives.
func (s *Server) handleTerminalWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId required", http.StatusBadRequest)
		return
	}
	session, err := s.session(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// The tracker's timer goroutine writes too, so writes are serialized.
	var writeMu sync.Mutex
	send := func(msg WSOutputMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Str("session", sessionID).Msg("terminal write failed")
		}
	}

	tracker := progress.NewTracker(s.notificationDelay(), func(e progress.Event) {
		send(WSOutputMessage{Type: string(e.Kind), Message: e.Message})
	})
	defer tracker.Stop()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			send(WSOutputMessage{Type: "error", Message: "invalid message"})
			continue
		}

		switch msg.Type {
		case "objectives":
			tracker.SetObjectives(msg.Objectives)
		case "command":
			log.Info().Str("session", sessionID).Str("cmd", msg.Data).Msg("command received")
			res, ok := git.Run(r.Context(), session, msg.Data)
			if !ok {
				if _, name, _ := git.ParseCommand(msg.Data); git.IsClear(name) {
					send(WSOutputMessage{Type: "clear"})
				}
				continue
			}
			send(WSOutputMessage{Type: "result", Output: res.Output, Success: res.Success})
			for _, e := range tracker.Observe(msg.Data, res.Output) {
				send(WSOutputMessage{Type: string(e.Kind), Message: e.Message})
			}
		default:
			send(WSOutputMessage{Type: "error", Message: "unknown message type: " + msg.Type})
		}
	}
}
