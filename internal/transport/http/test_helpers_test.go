package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/akulagin/codeshare-server/internal/config"
	"github.com/akulagin/codeshare-server/internal/core"
	"github.com/akulagin/codeshare-server/internal/store"
	"github.com/akulagin/codeshare-server/internal/store/sqlite"
)

type testEnv struct {
	ts        *httptest.Server
	sessions  *core.SessionManager
	directory store.Directory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	directory, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { directory.Close() })

	logger := zerolog.New(nil)
	sessions := core.NewSessionManager(&logger)

	cfg := config.Default()
	cfg.Addr = ":0"

	server := NewServer(sessions, directory, &cfg, &logger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, sessions: sessions, directory: directory}
}

func (e *testEnv) wsURL(roomID string) string {
	return strings.Replace(e.ts.URL, "http", "ws", 1) + "/ws/" + roomID
}

// dialRoom connects to a room and completes the raw-nickname handshake.
func dialRoom(t *testing.T, ctx context.Context, env *testEnv, roomID, nickname string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.Dial(ctx, env.wsURL(roomID), nil)
	if err != nil {
		t.Fatalf("dial %s: %v", nickname, err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })

	if err := conn.Write(ctx, websocket.MessageText, []byte(nickname)); err != nil {
		t.Fatalf("handshake %s: %v", nickname, err)
	}
	return conn
}

func strp(s string) *string {
	return &s
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}
