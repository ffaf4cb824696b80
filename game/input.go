// File: game/input.go
package game

import (
	"time"

	"github.com/lguibr/flipper/utils"
)

func (s *Simulation) SetFlipperActive(side Side, active bool) {
	flipper := s.Flipper(side)
	if active {
		flipper.Activate()
	} else {
		flipper.Deactivate()
	}
}

// StartCharge begins accumulating launch power. Ignored while the ball is in play
// or a charge is already running.
func (s *Simulation) StartCharge() bool {
	charge := &s.State.Charge
	if s.Ball.Launched || charge.Charging {
		return false
	}
	charge.Charging = true
	charge.StartedAt = s.clock.Now()
	charge.Power = s.cfg.MinLaunchPower
	return true
}

// ReleaseCharge launches the ball with the accumulated power and returns it.
func (s *Simulation) ReleaseCharge() (float64, bool) {
	charge := &s.State.Charge
	if !charge.Charging || s.Ball.Launched {
		return 0, false
	}
	power := charge.Power
	s.Ball.Launch(power, s.rng)
	charge.Clear()
	return power, true
}

// RequestLaunch launches with the power a charge of the given duration would reach.
// It returns the power used, or 0 when the ball is already in play.
func (s *Simulation) RequestLaunch(chargeDuration time.Duration) float64 {
	if s.Ball.Launched {
		return 0
	}
	power := s.ChargePower(chargeDuration)
	s.Ball.Launch(power, s.rng)
	s.State.Charge.Clear()
	return power
}

// ChargePower is the launch power reached after holding the charge for d.
func (s *Simulation) ChargePower(d time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	elapsedMs := float64(d) / float64(time.Millisecond)
	power := s.cfg.MinLaunchPower + elapsedMs*s.cfg.ChargeRate
	if power > s.cfg.MaxLaunchPower {
		return s.cfg.MaxLaunchPower
	}
	return power
}

func (s *Simulation) updateCharge(now time.Time) {
	charge := &s.State.Charge
	if charge.Charging && !s.Ball.Launched {
		charge.Power = s.ChargePower(now.Sub(charge.StartedAt))
	}
}

// PowerRatio maps the current charge onto [0,1] for a power bar.
func (s *Simulation) PowerRatio() float64 {
	charge := s.State.Charge
	if !charge.Charging {
		return 0
	}
	span := s.cfg.MaxLaunchPower - s.cfg.MinLaunchPower
	if span <= 0 {
		return 1
	}
	return utils.Clamp01((charge.Power - s.cfg.MinLaunchPower) / span)
}

// Restart begins a new game: scores, lives and player reset, ball back on the tray,
// flippers released.
func (s *Simulation) Restart() {
	s.State.Reset(s.cfg.InitialLives)
	s.resetBall()
	for _, flipper := range s.Flippers {
		flipper.ResetPose()
	}
	s.flipperHasScored = [2]bool{}
}

// TogglePause flips the pause flag and returns the new value.
func (s *Simulation) TogglePause() bool {
	s.State.IsPaused = !s.State.IsPaused
	return s.State.IsPaused
}
