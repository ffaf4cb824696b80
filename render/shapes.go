// File: render/shapes.go
package render

import (
	"math"

	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/utils"
)

// Dash is one stroke of a dashed outline.
type Dash struct {
	From game.Point
	To   game.Point
}

// DashedRing splits a circle into evenly spaced dashes, each covering half of
// its slot. Fewer than one dash yields nothing.
func DashedRing(cx, cy, radius float64, dashes int) []Dash {
	if dashes < 1 || radius <= 0 {
		return nil
	}
	slot := 2 * math.Pi / float64(dashes)
	ring := make([]Dash, 0, dashes)
	for i := 0; i < dashes; i++ {
		start := slot * float64(i)
		x0, y0 := utils.Polar(start, radius)
		x1, y1 := utils.Polar(start+slot/2, radius)
		ring = append(ring, Dash{
			From: game.Point{X: cx + x0, Y: cy + y0},
			To:   game.Point{X: cx + x1, Y: cy + y1},
		})
	}
	return ring
}

// AwaitingLaunch reports whether the ball should be marked as sitting on the tray.
func AwaitingLaunch(snap game.Snapshot) bool {
	return snap.State.IsPlaying && !snap.Ball.Launched
}
