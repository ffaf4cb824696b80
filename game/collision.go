// File: game/collision.go
package game

import (
	"math"
	"time"

	"github.com/lguibr/flipper/utils"
)

func (ball *Ball) CollidesLeftWall() bool {
	return ball.X-ball.Radius <= 0
}

func (ball *Ball) CollidesRightWall(width float64) bool {
	return ball.X+ball.Radius >= width
}

func (ball *Ball) CollidesTopWall() bool {
	return ball.Y-ball.Radius <= 0
}

// CollidesDivider reports whether the ball sits on the band between the flippers.
func (ball *Ball) CollidesDivider(cfg utils.Config) bool {
	center := cfg.Width * 0.5
	return ball.Y+ball.Radius >= cfg.Height-cfg.DividerDepth &&
		ball.Y-ball.Radius <= cfg.Height &&
		ball.X >= center-cfg.DividerHalfWidth &&
		ball.X <= center+cfg.DividerHalfWidth
}

// CollideWalls reflects off the side and top walls and lands on the central divider
// when falling onto it.
func (ball *Ball) CollideWalls(cfg utils.Config) {
	if ball.CollidesLeftWall() {
		ball.X = ball.Radius
		ball.Vx = -ball.Vx * cfg.WallDamping
	}
	if ball.CollidesRightWall(cfg.Width) {
		ball.X = cfg.Width - ball.Radius
		ball.Vx = -ball.Vx * cfg.WallDamping
	}
	if ball.CollidesTopWall() {
		ball.Y = ball.Radius
		ball.Vy = -ball.Vy * cfg.WallDamping
	}
	if ball.CollidesDivider(cfg) && ball.Vy > 0 {
		ball.Y = cfg.Height - cfg.DividerDepth - ball.Radius
		ball.Vy = -ball.Vy * cfg.DividerDamping
	}
}

// CollideBumper kicks the ball away from an overlapping bumper along the contact
// normal and pushes it out of the overlap. The bumper is not notified.
func (ball *Ball) CollideBumper(bumper *Bumper, kick float64) bool {
	if !utils.CirclesOverlap(ball.X, ball.Y, ball.Radius, bumper.X, bumper.Y, bumper.Radius) {
		return false
	}

	distance := utils.Distance(bumper.X, bumper.Y, ball.X, ball.Y)
	angle := math.Atan2(ball.Y-bumper.Y, ball.X-bumper.X)
	ball.Vx, ball.Vy = utils.Polar(angle, kick)

	overlap := ball.Radius + bumper.Radius - distance
	pushX, pushY := utils.Polar(angle, overlap)
	ball.X += pushX
	ball.Y += pushY
	return true
}

// CollideBumpers resolves every bumper in order and returns the ones that were hit.
func (ball *Ball) CollideBumpers(bumpers []*Bumper, kick float64, now time.Time) []*Bumper {
	var hits []*Bumper
	for _, bumper := range bumpers {
		if bumper == nil {
			continue
		}
		if ball.CollideBumper(bumper, kick) {
			bumper.Hit(now)
			hits = append(hits, bumper)
		}
	}
	return hits
}

// CollideFlippers bounces the ball off every flipper it touches and returns them.
func (ball *Ball) CollideFlippers(flippers []*Flipper) []*Flipper {
	var hits []*Flipper
	for _, flipper := range flippers {
		if flipper == nil {
			continue
		}
		if flipper.CheckCollision(ball) {
			flipper.Bounce(ball)
			hits = append(hits, flipper)
		}
	}
	return hits
}
