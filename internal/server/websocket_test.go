package server

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyaPK/interactive-git-tutorial/internal/progress"
)

func dialTerminal(t *testing.T, url, sessionID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws/terminal?sessionId=" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) WSOutputMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg WSOutputMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestTerminalWebSocket(t *testing.T) {
	ts, _ := newTestServer(t, Options{NotificationDelay: 100 * time.Millisecond})
	id := initSession(t, ts)
	conn := dialTerminal(t, ts.URL, id)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "objectives", Objectives: []progress.Objective{
		{Title: "Initialize a repository", CommandIncludes: "git init", OutputIncludes: "Initialized empty"},
		{Title: "Stage everything", CommandIncludes: "git add", OutputIncludes: "Added 2 file(s)"},
	}}))

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "command", Data: "git status"}))
	msg := readMessage(t, conn)
	assert.Equal(t, "result", msg.Type)
	assert.False(t, msg.Success)
	assert.Equal(t, "fatal: not a git repository (or any of the parent directories): .git", msg.Output)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "command", Data: "git init"}))
	assert.Equal(t, "result", readMessage(t, conn).Type)
	msg = readMessage(t, conn)
	assert.Equal(t, "objective", msg.Type)
	assert.Equal(t, "✅ Objective complete: Initialize a repository", msg.Message)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "command", Data: "git add ."}))
	assert.True(t, readMessage(t, conn).Success)
	assert.Equal(t, "objective", readMessage(t, conn).Type)
	msg = readMessage(t, conn)
	assert.Equal(t, "complete", msg.Type)
	assert.Equal(t, "🎉 Sub-lesson complete!", msg.Message)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "command", Data: "clear"}))
	assert.Equal(t, "clear", readMessage(t, conn).Type)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "bogus"}))
	assert.Equal(t, "error", readMessage(t, conn).Type)
}

func TestTerminalWebSocketRequiresSession(t *testing.T) {
	ts, _ := newTestServer(t, Options{})
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/terminal"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 400, resp.StatusCode)
}
