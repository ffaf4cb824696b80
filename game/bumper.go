// File: game/bumper.go
package game

import (
	"time"

	"github.com/lguibr/flipper/utils"
)

// Bumper swells for a short window after every hit.
type Bumper struct {
	ID         int       `json:"id"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	BaseRadius float64   `json:"baseRadius"`
	Radius     float64   `json:"radius"`
	HitAt      time.Time `json:"-"`

	pulseScale  float64
	pulseWindow time.Duration
}

// DefaultBumperPositions is the layout of the five bumpers on a 600x800 field.
var DefaultBumperPositions = [][2]float64{
	{150, 200},
	{300, 150},
	{450, 200},
	{200, 300},
	{400, 320},
}

func NewBumper(cfg utils.Config, id int, x, y float64) *Bumper {
	return &Bumper{
		ID:          id,
		X:           x,
		Y:           y,
		BaseRadius:  cfg.BumperRadius,
		Radius:      cfg.BumperRadius,
		pulseScale:  cfg.BumperPulseScale,
		pulseWindow: cfg.BumperPulseWindow,
	}
}

func NewBumpers(cfg utils.Config) []*Bumper {
	bumpers := make([]*Bumper, 0, len(DefaultBumperPositions))
	for index, position := range DefaultBumperPositions {
		bumpers = append(bumpers, NewBumper(cfg, index, position[0], position[1]))
	}
	return bumpers
}

func (b *Bumper) IsPulsing() bool {
	return !b.HitAt.IsZero()
}

func (b *Bumper) Hit(now time.Time) {
	b.HitAt = now
	b.Radius = b.BaseRadius * b.pulseScale
}

func (b *Bumper) Update(now time.Time) {
	if b.IsPulsing() && now.Sub(b.HitAt) > b.pulseWindow {
		b.Radius = b.BaseRadius
		b.HitAt = time.Time{}
	}
}
