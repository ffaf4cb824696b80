// File: server/server.go
package server

import (
	"net/http"

	"github.com/lguibr/flipper/bollywood"
	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/highscore"
	"golang.org/x/net/websocket"
)

// ScoreTable is the high-score collaborator behind /highscores.
type ScoreTable interface {
	List() []highscore.Entry
	Clear() error
}

// Server exposes the shared session over HTTP and websocket.
type Server struct {
	engine         *bollywood.Engine
	sessionPID     *bollywood.PID
	broadcasterPID *bollywood.PID
	cache          *game.StateCache
	scores         ScoreTable
}

func New(engine *bollywood.Engine, sessionPID, broadcasterPID *bollywood.PID, cache *game.StateCache, scores ScoreTable) *Server {
	return &Server{
		engine:         engine,
		sessionPID:     sessionPID,
		broadcasterPID: broadcasterPID,
		cache:          cache,
		scores:         scores,
	}
}

func (s *Server) GetEngine() *bollywood.Engine {
	return s.engine
}

func (s *Server) GetSessionPID() *bollywood.PID {
	return s.sessionPID
}

// Routes registers every endpoint on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.HandleGetSit())
	mux.HandleFunc("/highscores", s.HandleHighScores())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
}
