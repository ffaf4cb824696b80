// File: game/messages.go
package game

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/net/websocket"
)

// --- WebSocket Messages (Client <-> Server) ---

// MessageHeader identifies an outbound message after decoding.
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// StateMessage carries a full table snapshot.
type StateMessage struct {
	MessageType string   `json:"messageType"` // "state"
	State       Snapshot `json:"state"`
}

// EventMessage carries one simulation event.
type EventMessage struct {
	MessageType string `json:"messageType"` // "event"
	Event       Event  `json:"event"`
}

// GameOverMessage signals that both players are out of lives.
type GameOverMessage struct {
	MessageType string       `json:"messageType"` // "gameOver"
	Scores      [Players]int `json:"scores"`
	Winner      int          `json:"winner"` // 0 on a tie
}

// ClientInput is the command a client sends over the socket.
type ClientInput struct {
	Type       string `json:"type"` // flipper, charge, release, launch, restart, pause
	Side       string `json:"side,omitempty"`
	Active     bool   `json:"active,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
}

// ParseInput decodes a raw client command into a session actor message.
func ParseInput(data []byte) (interface{}, error) {
	var input ClientInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return input.Message()
}

// Message maps the command onto the session actor message it stands for.
func (in ClientInput) Message() (interface{}, error) {
	switch in.Type {
	case "flipper":
		side, err := ParseSide(in.Side)
		if err != nil {
			return nil, err
		}
		return FlipperInput{Side: side, Active: in.Active}, nil
	case "charge":
		return ChargeStart{}, nil
	case "release":
		return ChargeRelease{}, nil
	case "launch":
		return LaunchRequest{Duration: time.Duration(in.DurationMs) * time.Millisecond}, nil
	case "restart":
		return RestartCommand{}, nil
	case "pause":
		return TogglePauseCommand{}, nil
	}
	return nil, fmt.Errorf("%w: type %q", ErrUnknownInput, in.Type)
}

// --- SessionActor Messages ---

// Tick advances the simulation by one frame.
type Tick struct{}

type FlipperInput struct {
	Side   Side
	Active bool
}

type ChargeStart struct{}

type ChargeRelease struct{}

// LaunchRequest launches with the power a charge held for Duration would reach.
type LaunchRequest struct {
	Duration time.Duration
}

type RestartCommand struct{}

type TogglePauseCommand struct{}

// internalMutateTestMsg lets tests arrange simulation state inside the actor.
type internalMutateTestMsg struct {
	Mutate func(sim *Simulation)
}

// --- BroadcasterActor Messages ---

// AddClient tells the Broadcaster to start sending updates to a new connection.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient tells the Broadcaster to stop sending updates to a connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastStateCommand sends the latest snapshot to every client.
type BroadcastStateCommand struct {
	State Snapshot
}

// BroadcastEventsCommand sends each event, in order, to every client.
type BroadcastEventsCommand struct {
	Events []Event
}
