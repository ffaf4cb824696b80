// File: game/ball.go
package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/flipper/utils"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Ball struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Vx       float64 `json:"vx"`
	Vy       float64 `json:"vy"`
	Radius   float64 `json:"radius"`
	Trail    []Point `json:"trail"`
	Launched bool    `json:"launched"`

	trailLength int
}

func NewBall(x, y, radius float64, trailLength int) *Ball {
	return &Ball{
		X:           x,
		Y:           y,
		Radius:      radius,
		Trail:       make([]Point, 0, trailLength),
		trailLength: trailLength,
	}
}

// Integrate applies gravity and friction then moves the ball. scale is 1 for the
// classic per-frame update and dt/ReferenceFrame when time scaling is enabled.
func (ball *Ball) Integrate(cfg utils.Config, scale float64) {
	if scale == 1 {
		ball.Vy += cfg.Gravity
		ball.Vx *= cfg.Friction
		ball.Vy *= cfg.VerticalDrag
	} else {
		ball.Vy += cfg.Gravity * scale
		ball.Vx *= math.Pow(cfg.Friction, scale)
		ball.Vy *= math.Pow(cfg.VerticalDrag, scale)
	}

	ball.X += ball.Vx * scale
	ball.Y += ball.Vy * scale

	ball.pushTrail()
}

// pushTrail appends the current position, evicting the oldest beyond the limit.
func (ball *Ball) pushTrail() {
	if ball.trailLength <= 0 {
		return
	}
	if len(ball.Trail) >= ball.trailLength {
		copy(ball.Trail, ball.Trail[len(ball.Trail)-ball.trailLength+1:])
		ball.Trail = ball.Trail[:ball.trailLength-1]
	}
	ball.Trail = append(ball.Trail, Point{X: ball.X, Y: ball.Y})
}

// Reset parks the ball on the launch tray.
func (ball *Ball) Reset(x, y float64) {
	ball.X = x
	ball.Y = y
	ball.Vx = 0
	ball.Vy = 0
	ball.Trail = ball.Trail[:0]
	ball.Launched = false
}

// Launch fires the ball mostly upward with a small random horizontal scatter.
// A non-positive power means full strength 1. Already launched balls are untouched.
func (ball *Ball) Launch(power float64, rng *rand.Rand) bool {
	if ball.Launched {
		return false
	}
	if power <= 0 {
		power = 1
	}
	ball.Vx = utils.RandomBetween(rng, -1, 1) * power
	ball.Vy = -utils.RandomBetween(rng, 25, 35) * power
	ball.Launched = true
	return true
}

func (ball *Ball) IsLost(height, margin float64) bool {
	return ball.Y > height+margin
}
