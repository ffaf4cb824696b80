// File: game/simulation.go
package game

import (
	"math/rand"
	"time"

	"github.com/lguibr/flipper/utils"
)

// Simulation owns one table: the ball, both flippers, the bumpers and the game
// state. It is not safe for concurrent use; exactly one goroutine may drive it.
type Simulation struct {
	cfg      utils.Config
	clock    utils.Clock
	rng      *rand.Rand
	listener Listener

	State    *GameState
	Ball     *Ball
	Flippers []*Flipper // Indexed by Side
	Bumpers  []*Bumper

	tick              uint64
	flipperScoredTick [2]uint64
	flipperHasScored  [2]bool
}

// NewSimulation builds the default table. Nil collaborators fall back to the system
// clock, a clock-seeded random source and a listener that drops every event.
func NewSimulation(cfg utils.Config, clock utils.Clock, rng *rand.Rand, listener Listener) *Simulation {
	if clock == nil {
		clock = utils.SystemClock()
	}
	if rng == nil {
		rng = utils.NewRandom(0)
	}
	if listener == nil {
		listener = NopListener{}
	}

	return &Simulation{
		cfg:      cfg,
		clock:    clock,
		rng:      rng,
		listener: listener,
		State:    NewGameState(cfg.InitialLives),
		Ball:     NewBall(cfg.LaunchX, cfg.LaunchY, cfg.BallRadius, cfg.TrailLength),
		Flippers: []*Flipper{NewFlipper(cfg, Left), NewFlipper(cfg, Right)},
		Bumpers:  NewBumpers(cfg),
	}
}

func (s *Simulation) Config() utils.Config {
	return s.cfg
}

func (s *Simulation) Flipper(side Side) *Flipper {
	return s.Flippers[side]
}

// Ticks returns how many steps actually ran.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Step advances the table by one frame. It does nothing and returns false unless a
// game is running and not paused. dt only matters when the config enables time
// scaling; otherwise every call is one reference frame.
func (s *Simulation) Step(dt time.Duration) bool {
	if !s.State.IsPlaying || s.State.IsPaused {
		return false
	}
	s.tick++

	now := s.clock.Now()
	s.updateCharge(now)
	s.stepBall(s.scale(dt), now)
	for _, flipper := range s.Flippers {
		flipper.Update()
	}
	for _, bumper := range s.Bumpers {
		bumper.Update(now)
	}
	return true
}

func (s *Simulation) scale(dt time.Duration) float64 {
	if !s.cfg.TimeScaled || dt <= 0 {
		return 1
	}
	return float64(dt) / float64(utils.ReferenceFrame)
}

func (s *Simulation) stepBall(scale float64, now time.Time) {
	ball := s.Ball
	if !ball.Launched {
		return
	}

	ball.Integrate(s.cfg, scale)

	ball.CollideWalls(s.cfg)
	s.checkBumperCollisions(now)
	s.checkFlipperCollisions()

	if ball.IsLost(s.cfg.Height, s.cfg.LostMargin) {
		s.handleBallLost()
	}
}

// checkBumperCollisions separates the ball from each bumper at its radius at contact
// time. The hit then swells the bumper, so the ball sits inside the pulsed radius
// until it moves on; the kick carries it clear on the next frame.
func (s *Simulation) checkBumperCollisions(now time.Time) {
	for _, bumper := range s.Ball.CollideBumpers(s.Bumpers, s.cfg.BumperKick, now) {
		s.addScore(s.cfg.BumperPoints)
		s.listener.BumperHit(bumper.ID)
	}
}

func (s *Simulation) checkFlipperCollisions() {
	for _, flipper := range s.Ball.CollideFlippers(s.Flippers) {
		s.listener.FlipperBounce(flipper.Side)
		if s.flipperMayScore(flipper.Side) {
			s.addScore(s.cfg.FlipperPoints)
		}
	}
}

// flipperMayScore applies the optional contact cooldown. With no cooldown every
// frame of contact scores.
func (s *Simulation) flipperMayScore(side Side) bool {
	cooldown := uint64(s.cfg.FlipperScoreCooldownTicks)
	if cooldown == 0 {
		return true
	}
	if s.flipperHasScored[side] && s.tick-s.flipperScoredTick[side] < cooldown {
		return false
	}
	s.flipperHasScored[side] = true
	s.flipperScoredTick[side] = s.tick
	return true
}

func (s *Simulation) addScore(points int) {
	total := s.State.AddScore(points)
	s.listener.ScoreChanged(s.State.CurrentPlayer, points, total)
}

// handleBallLost takes a life from the current player, hands the table to the other
// player when the current one is out, and ends the game when both are.
func (s *Simulation) handleBallLost() {
	player := s.State.CurrentPlayer
	remaining := s.State.LoseLife()
	s.listener.LifeLost(player, remaining)

	if remaining > 0 {
		s.resetBall()
		return
	}

	other := Other(player)
	if s.State.LivesOf(other) > 0 {
		s.State.CurrentPlayer = other
		s.resetBall()
		return
	}

	s.State.IsPlaying = false
	s.listener.GameOver(s.State.Scores)
}

func (s *Simulation) resetBall() {
	s.Ball.Reset(s.cfg.LaunchX, s.cfg.LaunchY)
	s.State.Charge.Clear()
}
