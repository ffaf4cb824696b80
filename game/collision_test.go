// File: game/collision_test.go
package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/flipper/utils"
)

func TestBall_CollideWalls(t *testing.T) {
	cfg := utils.DefaultConfig()
	testCases := []struct {
		name           string
		ball           Ball
		wantX, wantY   float64
		wantVx, wantVy float64
	}{
		{
			name: "left wall",
			ball: Ball{X: 7, Y: 400, Vx: -5, Vy: 1, Radius: 8},
			wantX: 8, wantY: 400, wantVx: 4, wantVy: 1,
		},
		{
			name: "right wall",
			ball: Ball{X: 595, Y: 400, Vx: 10, Vy: 0, Radius: 8},
			wantX: 592, wantY: 400, wantVx: -8, wantVy: 0,
		},
		{
			name: "top wall",
			ball: Ball{X: 300, Y: 2, Vx: 1, Vy: -10, Radius: 8},
			wantX: 300, wantY: 8, wantVx: 1, wantVy: 8,
		},
		{
			name: "divider while falling",
			ball: Ball{X: 300, Y: 755, Vx: 0, Vy: 10, Radius: 8},
			wantX: 300, wantY: 752, wantVx: 0, wantVy: -6,
		},
		{
			name: "divider while rising is ignored",
			ball: Ball{X: 300, Y: 755, Vx: 0, Vy: -10, Radius: 8},
			wantX: 300, wantY: 755, wantVx: 0, wantVy: -10,
		},
		{
			name: "beside the divider",
			ball: Ball{X: 350, Y: 755, Vx: 0, Vy: 10, Radius: 8},
			wantX: 350, wantY: 755, wantVx: 0, wantVy: 10,
		},
		{
			name: "open table",
			ball: Ball{X: 300, Y: 400, Vx: 3, Vy: 3, Radius: 8},
			wantX: 300, wantY: 400, wantVx: 3, wantVy: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := tc.ball
			ball.CollideWalls(cfg)
			assert.InDelta(t, tc.wantX, ball.X, 1e-9)
			assert.InDelta(t, tc.wantY, ball.Y, 1e-9)
			assert.InDelta(t, tc.wantVx, ball.Vx, 1e-9)
			assert.InDelta(t, tc.wantVy, ball.Vy, 1e-9)
		})
	}
}

func TestBall_CollideBumperKicksAlongNormal(t *testing.T) {
	cfg := utils.DefaultConfig()
	bumper := NewBumper(cfg, 0, 150, 200)
	ball := &Ball{X: 170, Y: 200, Vx: -3, Vy: 12, Radius: 8}

	require.True(t, ball.CollideBumper(bumper, cfg.BumperKick))

	assert.InDelta(t, 8.0, ball.Vx, 1e-9)
	assert.InDelta(t, 0.0, ball.Vy, 1e-9)
	assert.InDelta(t, 188.0, ball.X, 1e-9)
	assert.InDelta(t, 200.0, ball.Y, 1e-9)
	assert.Equal(t, 30.0, bumper.Radius, "CollideBumper must not notify the bumper")
}

func TestBall_CollideBumperResolvesOverlap(t *testing.T) {
	cfg := utils.DefaultConfig()
	rng := utils.NewRandom(42)

	for i := 0; i < 200; i++ {
		bumper := NewBumper(cfg, 0, 300, 300)
		angle := utils.RandomBetween(rng, -math.Pi, math.Pi)
		distance := utils.RandomBetween(rng, 0.5, 37.9)
		ball := &Ball{X: 300 + math.Cos(angle)*distance, Y: 300 + math.Sin(angle)*distance, Radius: 8}
		contactRadius := bumper.Radius

		require.True(t, ball.CollideBumper(bumper, cfg.BumperKick))

		separation := utils.Distance(ball.X, ball.Y, bumper.X, bumper.Y)
		assert.GreaterOrEqual(t, separation, ball.Radius+contactRadius-1e-9, "ball still overlapping at sample %d", i)
		assert.InDelta(t, 8.0, math.Hypot(ball.Vx, ball.Vy), 1e-9)
	}
}

func TestBall_CollideBumperMiss(t *testing.T) {
	cfg := utils.DefaultConfig()
	bumper := NewBumper(cfg, 0, 150, 200)
	ball := &Ball{X: 188, Y: 200, Vx: 1, Vy: 1, Radius: 8}

	assert.False(t, ball.CollideBumper(bumper, cfg.BumperKick), "touching exactly is not a hit")
	assert.Equal(t, 1.0, ball.Vx)
}

func TestBall_CollideBumpersNotifiesHits(t *testing.T) {
	cfg := utils.DefaultConfig()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bumpers := NewBumpers(cfg)
	ball := &Ball{X: 455, Y: 200, Radius: 8}

	hits := ball.CollideBumpers(bumpers, cfg.BumperKick, now)

	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].ID)
	assert.Equal(t, 36.0, hits[0].Radius)
	assert.Equal(t, now, hits[0].HitAt)
	assert.Equal(t, 30.0, bumpers[0].Radius)
}

func TestBall_CollideFlippers(t *testing.T) {
	cfg := utils.DefaultConfig()
	flippers := []*Flipper{NewFlipper(cfg, Left), NewFlipper(cfg, Right)}
	endX, endY := flippers[Left].End()
	ball := &Ball{X: (flippers[Left].X + endX) / 2, Y: (flippers[Left].Y + endY) / 2, Vx: 0, Vy: 10, Radius: 8}

	hits := ball.CollideFlippers(flippers)

	require.Len(t, hits, 1)
	assert.Equal(t, Left, hits[0].Side)
	assert.Less(t, ball.Vy, 0.0, "left flipper should send the ball up")
	assert.InDelta(t, 8.0, math.Hypot(ball.Vx, ball.Vy), 1e-9)
}

func TestBall_CollideBumpersSeparatesAtContactRadius(t *testing.T) {
	cfg := utils.DefaultConfig()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bumpers := NewBumpers(cfg)
	ball := &Ball{X: 455, Y: 200, Radius: 8}

	hits := ball.CollideBumpers(bumpers, cfg.BumperKick, now)
	require.Len(t, hits, 1)
	bumper := hits[0]

	separation := utils.Distance(ball.X, ball.Y, bumper.X, bumper.Y)
	assert.InDelta(t, ball.Radius+bumper.BaseRadius, separation, 1e-9, "separated against the radius at contact")
	assert.Less(t, separation, ball.Radius+bumper.Radius, "pulsed bumper overlaps the ball for one frame")

	ball.X += ball.Vx
	ball.Y += ball.Vy
	assert.False(t, utils.CirclesOverlap(ball.X, ball.Y, ball.Radius, bumper.X, bumper.Y, bumper.Radius),
		"kick carries the ball clear of the pulsed bumper")
	assert.Empty(t, ball.CollideBumpers(bumpers, cfg.BumperKick, now))
}
