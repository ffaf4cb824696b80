// File: game/state.go
package game

import (
	"fmt"
	"time"
)

const (
	PlayerOne = 1
	PlayerTwo = 2
	Players   = 2
)

// LaunchCharge tracks power accumulated while the launch input is held.
type LaunchCharge struct {
	Charging  bool      `json:"charging"`
	Power     float64   `json:"power"`
	StartedAt time.Time `json:"-"`
}

func (c *LaunchCharge) Clear() {
	c.Charging = false
	c.Power = 0
	c.StartedAt = time.Time{}
}

type GameState struct {
	CurrentPlayer int          `json:"currentPlayer"`
	Scores        [Players]int `json:"scores"`
	Lives         [Players]int `json:"lives"`
	IsPlaying     bool         `json:"isPlaying"`
	IsPaused      bool         `json:"isPaused"`
	Charge        LaunchCharge `json:"charge"`
}

func NewGameState(initialLives int) *GameState {
	state := &GameState{}
	state.Reset(initialLives)
	state.IsPlaying = false
	return state
}

// Reset starts a fresh game with player one up.
func (s *GameState) Reset(initialLives int) {
	s.IsPlaying = true
	s.IsPaused = false
	s.CurrentPlayer = PlayerOne
	s.Scores = [Players]int{}
	s.Lives = [Players]int{initialLives, initialLives}
	s.Charge.Clear()
}

// slot converts a 1-based player number into an array index. Any other value is a
// programming error.
func slot(player int) int {
	if player < PlayerOne || player > PlayerTwo {
		panic(fmt.Sprintf("game: player index %d out of range", player))
	}
	return player - 1
}

func (s *GameState) Score(player int) int {
	return s.Scores[slot(player)]
}

func (s *GameState) LivesOf(player int) int {
	return s.Lives[slot(player)]
}

func (s *GameState) SetLives(player, lives int) {
	s.Lives[slot(player)] = lives
}

// AddScore credits the current player and returns their new total.
func (s *GameState) AddScore(points int) int {
	index := slot(s.CurrentPlayer)
	s.Scores[index] += points
	return s.Scores[index]
}

// LoseLife takes a life from the current player and returns what is left.
func (s *GameState) LoseLife() int {
	index := slot(s.CurrentPlayer)
	if s.Lives[index] > 0 {
		s.Lives[index]--
	}
	return s.Lives[index]
}

func Other(player int) int {
	if slot(player) == 0 {
		return PlayerTwo
	}
	return PlayerOne
}

// Winner returns the leading player, or 0 on a tie.
func (s *GameState) Winner() int {
	switch {
	case s.Scores[0] > s.Scores[1]:
		return PlayerOne
	case s.Scores[1] > s.Scores[0]:
		return PlayerTwo
	}
	return 0
}
