// File: server/e2e_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/lguibr/flipper/bollywood"
	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/highscore"
	"github.com/lguibr/flipper/utils"
)

type e2eSetup struct {
	engine  *bollywood.Engine
	server  *httptest.Server
	wsURL   string
	scores  *highscore.Store
	session *bollywood.PID
}

func setupE2E(t *testing.T, cfg utils.Config) e2eSetup {
	t.Helper()
	engine := bollywood.NewEngine()
	cache := game.NewStateCache()
	scores := highscore.NewStore(nil, cfg.HighScoreLimit)

	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))
	sessionPID := engine.Spawn(bollywood.NewProps(game.NewSessionActorProducer(engine, game.SessionOptions{
		Config:      cfg,
		Seed:        21,
		Broadcaster: broadcasterPID,
		Cache:       cache,
		Recorder:    scores,
	})))
	require.NotNil(t, sessionPID)

	mux := http.NewServeMux()
	New(engine, sessionPID, broadcasterPID, cache, scores).Routes(mux)
	s := httptest.NewServer(mux)

	t.Cleanup(func() {
		s.Close()
		engine.Shutdown(2 * time.Second)
	})
	return e2eSetup{
		engine:  engine,
		server:  s,
		wsURL:   "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		scores:  scores,
		session: sessionPID,
	}
}

// waitForState reads messages until a state message satisfies condition.
func waitForState(t *testing.T, ws *websocket.Conn, timeout time.Duration, condition func(game.Snapshot) bool) (game.Snapshot, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last game.Snapshot
	for time.Now().Before(deadline) {
		if err := ws.SetReadDeadline(time.Now().Add(time.Second)); err != nil {
			return last, false
		}
		var raw json.RawMessage
		if err := websocket.JSON.Receive(ws, &raw); err != nil {
			t.Logf("Error reading while waiting for state: %v", err)
			return last, false
		}
		var header game.MessageHeader
		if json.Unmarshal(raw, &header) != nil || header.MessageType != "state" {
			continue
		}
		var msg game.StateMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		last = msg.State
		if condition(last) {
			return last, true
		}
	}
	return last, false
}

func TestE2E_LaunchFlipAndPause(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GameTickPeriod = 5 * time.Millisecond
	setup := setupE2E(t, cfg)

	ws, err := websocket.Dial(setup.wsURL, "", "http://localhost/")
	require.NoError(t, err)
	defer ws.Close()

	_, ok := waitForState(t, ws, 5*time.Second, func(s game.Snapshot) bool { return s.State.IsPlaying })
	require.True(t, ok, "should receive a running game")

	require.NoError(t, websocket.JSON.Send(ws, game.ClientInput{Type: "launch", DurationMs: 500}))
	launched, ok := waitForState(t, ws, 5*time.Second, func(s game.Snapshot) bool { return s.Ball.Launched && len(s.Ball.Trail) > 0 })
	require.True(t, ok, "ball should be launched")
	assert.Less(t, launched.Ball.Vy, 0.0)

	require.NoError(t, websocket.JSON.Send(ws, game.ClientInput{Type: "flipper", Side: "left", Active: true}))
	flipped, ok := waitForState(t, ws, 5*time.Second, func(s game.Snapshot) bool { return s.Flippers[game.Left].IsActive })
	require.True(t, ok)
	assert.False(t, flipped.Flippers[game.Right].IsActive)

	require.NoError(t, websocket.JSON.Send(ws, game.ClientInput{Type: "pause"}))
	paused, ok := waitForState(t, ws, 5*time.Second, func(s game.Snapshot) bool { return s.State.IsPaused })
	require.True(t, ok)

	resp, err := http.Get(setup.server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	var polled game.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&polled))
	assert.True(t, polled.State.IsPaused)
	assert.Equal(t, paused.Tick, polled.Tick, "paused session should not advance")
}

func TestE2E_TwoClientsShareTheTable(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GameTickPeriod = 5 * time.Millisecond
	setup := setupE2E(t, cfg)

	first, err := websocket.Dial(setup.wsURL, "", "http://localhost/")
	require.NoError(t, err)
	defer first.Close()
	second, err := websocket.Dial(setup.wsURL, "", "http://localhost/")
	require.NoError(t, err)
	defer second.Close()

	_, ok := waitForState(t, second, 5*time.Second, func(s game.Snapshot) bool { return s.State.IsPlaying })
	require.True(t, ok)

	require.NoError(t, websocket.JSON.Send(first, game.ClientInput{Type: "flipper", Side: "right", Active: true}))
	_, ok = waitForState(t, second, 5*time.Second, func(s game.Snapshot) bool { return s.Flippers[game.Right].IsActive })
	assert.True(t, ok, "input from one client should be visible to the other")
}
