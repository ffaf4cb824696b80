// File: game/flipper.go
package game

import (
	"fmt"
	"math"

	"github.com/lguibr/flipper/utils"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide accepts "left"/"right" and the browser key names "ArrowLeft"/"ArrowRight".
func ParseSide(value string) (Side, error) {
	if direction := utils.DirectionFromString(value); direction != "" {
		value = direction
	}
	switch value {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("%w: unknown flipper side %q", ErrUnknownInput, value)
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Flipper rotates around a fixed pivot between its rest and active angles.
type Flipper struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Side        Side    `json:"side"`
	Angle       float64 `json:"angle"`
	RestAngle   float64 `json:"restAngle"`
	ActiveAngle float64 `json:"activeAngle"`
	Speed       float64 `json:"speed"` // Angle change applied by the last Update
	IsActive    bool    `json:"isActive"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`

	response   float64
	baseForce  float64
	speedForce float64
}

// Rest and active angles of the two default flippers, radians.
const (
	leftRestAngle    = -0.5
	leftActiveAngle  = 0.2
	rightRestAngle   = -2.6
	rightActiveAngle = -3.3
)

func NewFlipper(cfg utils.Config, side Side) *Flipper {
	x := cfg.Width * 0.35
	restAngle, activeAngle := leftRestAngle, leftActiveAngle
	if side == Right {
		x = cfg.Width * 0.65
		restAngle, activeAngle = rightRestAngle, rightActiveAngle
	}

	return &Flipper{
		X:           x,
		Y:           cfg.Height - 60,
		Side:        side,
		Angle:       restAngle,
		RestAngle:   restAngle,
		ActiveAngle: activeAngle,
		Length:      cfg.FlipperLength,
		Width:       cfg.FlipperWidth,
		response:    cfg.FlipperResponse,
		baseForce:   cfg.FlipperBaseForce,
		speedForce:  cfg.FlipperSpeedForce,
	}
}

func (f *Flipper) target() float64 {
	if f.IsActive {
		return f.ActiveAngle
	}
	return f.RestAngle
}

// Update moves the angle a fixed fraction of the way to the target. With a response
// in (0,1] the approach is monotone and never overshoots.
func (f *Flipper) Update() {
	f.Speed = (f.target() - f.Angle) * f.response
	f.Angle += f.Speed
}

func (f *Flipper) Activate() {
	f.IsActive = true
}

func (f *Flipper) Deactivate() {
	f.IsActive = false
}

// ResetPose puts the flipper back at rest, released.
func (f *Flipper) ResetPose() {
	f.Angle = f.RestAngle
	f.Speed = 0
	f.IsActive = false
}

// End returns the tip of the flipper.
func (f *Flipper) End() (float64, float64) {
	dx, dy := utils.Polar(f.Angle, f.Length)
	return f.X + dx, f.Y + dy
}

func (f *Flipper) CheckCollision(ball *Ball) bool {
	endX, endY := f.End()
	distance := utils.PointSegmentDistance(ball.X, ball.Y, f.X, f.Y, endX, endY)
	return distance < ball.Radius+f.Width
}

// Bounce overwrites the ball velocity with a kick whose strength grows with the
// flipper's current swing speed.
func (f *Flipper) Bounce(ball *Ball) {
	force := math.Abs(f.Speed)*f.speedForce + f.baseForce

	bounceAngle := f.Angle - math.Pi/3
	if f.Side == Right {
		bounceAngle = f.Angle + math.Pi/3 + math.Pi
	}

	ball.Vx, ball.Vy = utils.Polar(bounceAngle, force)
}
