// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/lguibr/flipper/game"
	"golang.org/x/net/websocket"
)

// HandleSubscribe registers the connection with the broadcaster and forwards the
// client's commands to the session.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.RemoteAddr().String()
		fmt.Printf("HandleSubscribe: New connection from %s\n", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe/readLoop for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		engine, sessionPID := s.GetEngine(), s.GetSessionPID()
		if engine == nil || sessionPID == nil {
			fmt.Printf("HandleSubscribe: Server engine or session PID is nil. Closing connection %s.\n", connectionAddr)
			return
		}

		engine.Send(s.broadcasterPID, game.AddClient{Conn: ws}, nil)
		defer engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)

		s.readLoop(ws)
		fmt.Printf("HandleSubscribe: readLoop finished for %s.\n", connectionAddr)
	}
}

// readLoop decodes client commands until the connection fails. Malformed or
// unknown commands are logged and skipped.
func (s *Server) readLoop(conn *websocket.Conn) {
	connectionAddr := conn.RemoteAddr().String()

	for {
		var data []byte
		if err := websocket.Message.Receive(conn, &data); err != nil {
			if !isClosedError(err) {
				fmt.Printf("ReadLoop: Error receiving from %s: %v\n", connectionAddr, err)
			}
			return
		}

		msg, err := game.ParseInput(data)
		if err != nil {
			fmt.Printf("ReadLoop: Ignoring command from %s: %v\n", connectionAddr, err)
			continue
		}
		s.GetEngine().Send(s.GetSessionPID(), msg, nil)
	}
}

func isClosedError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "use of closed network connection") ||
		strings.Contains(err.Error(), "connection reset by peer")
}

// HandleGetSit serves the latest snapshot of the table.
func (s *Server) HandleGetSit() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("PANIC recovered in HandleGetSit: %v\nStack trace:\n%s\n", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(s.cache.Load()); err != nil {
			fmt.Println("Error writing HTTP game state:", err)
		}
	}
}

// HandleHighScores lists the table on GET and clears it on DELETE.
func (s *Server) HandleHighScores() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.scores == nil {
			http.Error(w, "High scores unavailable", http.StatusServiceUnavailable)
			return
		}

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(s.scores.List()); err != nil {
				fmt.Println("Error writing high scores:", err)
			}
		case http.MethodDelete:
			if err := s.scores.Clear(); err != nil {
				fmt.Printf("HandleHighScores: Failed to clear: %v\n", err)
				http.Error(w, "Failed to clear high scores", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Allow", "GET, DELETE")
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}
}
