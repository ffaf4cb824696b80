// File: game/broadcaster_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/lguibr/flipper/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor fans session output out to every subscribed connection.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	selfPID *bollywood.PID
}

func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
		}

	case RemoveClient:
		if msg.Conn != nil {
			delete(a.clients, msg.Conn)
		}

	case BroadcastStateCommand:
		a.broadcast(StateMessage{MessageType: "state", State: msg.State})

	case BroadcastEventsCommand:
		for _, event := range msg.Events {
			a.broadcast(EventMessage{MessageType: "event", Event: event})
		}

	case GameOverMessage:
		fmt.Printf("Broadcaster %s: Game over, notifying %d clients.\n", a.selfPID, len(a.clients))
		a.broadcast(msg)

	case bollywood.Stopping:
		fmt.Printf("Broadcaster %s: Stopping. Closing %d connections.\n", a.selfPID, len(a.clients))
		for conn := range a.clients {
			_ = conn.Close()
		}
		a.clients = make(map[*websocket.Conn]bool)

	case bollywood.Stopped:

	default:
		fmt.Printf("BroadcasterActor %s: Received unknown message type: %T\n", a.selfPID, msg)
	}
}

// broadcast sends v to every client, dropping the ones whose connection is gone.
func (a *BroadcasterActor) broadcast(v interface{}) {
	for ws := range a.clients {
		err := websocket.JSON.Send(ws, v)
		if err == nil {
			continue
		}
		if isClosedConnError(err) {
			delete(a.clients, ws)
			continue
		}
		fmt.Printf("ERROR: BroadcasterActor %s: Failed to write to client %s: %v\n", a.selfPID, ws.RemoteAddr(), err)
	}
}

func isClosedConnError(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "EOF") ||
		strings.Contains(errStr, "write: connection timed out")
}
