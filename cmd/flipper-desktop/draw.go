// File: cmd/flipper-desktop/draw.go
package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/render"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 18, B: 32, A: 255}
	guideColor      = color.RGBA{R: 60, G: 70, B: 110, A: 255}
	dividerColor    = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	bumperColor     = color.RGBA{R: 230, G: 80, B: 120, A: 255}
	pulseColor      = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	flipperColor    = color.RGBA{R: 90, G: 200, B: 250, A: 255}
	ballColor       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	powerColor      = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	overlayColor    = color.RGBA{A: 180}
	trayBallColor   = color.RGBA{R: 250, G: 220, B: 40, A: 255}
	trayRingColor   = color.RGBA{R: 230, G: 40, B: 40, A: 255}
)

const ringDashes = 8

func (d *Desktop) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := d.sim.Snapshot()
	d.drawField(screen, snap)
	for _, bumper := range snap.Bumpers {
		drawBumper(screen, bumper)
	}
	for _, flipper := range snap.Flippers {
		drawFlipper(screen, flipper)
	}
	drawBall(screen, snap)
	d.drawHUD(screen, snap)
}

// drawField outlines the walls, the guides leading into each flipper pivot and
// the center divider.
func (d *Desktop) drawField(screen *ebiten.Image, snap game.Snapshot) {
	w, h := float32(snap.Width), float32(snap.Height)
	vector.StrokeRect(screen, 1, 1, w-2, h-2, 2, guideColor, false)

	for _, flipper := range snap.Flippers {
		wallX := float32(0)
		if flipper.Side == game.Right {
			wallX = w
		}
		vector.StrokeLine(screen, wallX, float32(flipper.Y)-120, float32(flipper.X), float32(flipper.Y), 3, guideColor, true)
	}

	cfg := d.sim.Config()
	half := float32(cfg.DividerHalfWidth)
	top := h - float32(cfg.DividerDepth)
	vector.DrawFilledRect(screen, w/2-half, top, half*2, float32(cfg.DividerDepth), dividerColor, false)
}

func drawBumper(screen *ebiten.Image, bumper game.Bumper) {
	fill := bumperColor
	if bumper.Radius > bumper.BaseRadius {
		fill = pulseColor
	}
	vector.DrawFilledCircle(screen, float32(bumper.X), float32(bumper.Y), float32(bumper.Radius), fill, true)
	vector.StrokeCircle(screen, float32(bumper.X), float32(bumper.Y), float32(bumper.BaseRadius), 2, ballColor, true)
}

func drawFlipper(screen *ebiten.Image, flipper game.Flipper) {
	endX, endY := flipper.End()
	vector.StrokeLine(screen, float32(flipper.X), float32(flipper.Y), float32(endX), float32(endY),
		float32(flipper.Width), flipperColor, true)
	vector.DrawFilledCircle(screen, float32(flipper.X), float32(flipper.Y), float32(flipper.Width), flipperColor, true)
}

// drawBall marks a ball still waiting on the tray in yellow with a dashed red ring.
func drawBall(screen *ebiten.Image, snap game.Snapshot) {
	ball := snap.Ball
	for i, point := range ball.Trail {
		alpha := uint8(40 + 160*(i+1)/len(ball.Trail))
		vector.DrawFilledCircle(screen, float32(point.X), float32(point.Y), float32(ball.Radius)*0.6,
			color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}, true)
	}
	if !render.AwaitingLaunch(snap) {
		vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.Radius), ballColor, true)
		return
	}

	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.Radius), trayBallColor, true)
	for _, dash := range render.DashedRing(ball.X, ball.Y, ball.Radius+5, ringDashes) {
		vector.StrokeLine(screen, float32(dash.From.X), float32(dash.From.Y), float32(dash.To.X), float32(dash.To.Y),
			2, trayRingColor, true)
	}
}

func (d *Desktop) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, render.StatusLine(snap), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Space: launch  Arrows: flippers  R: restart  P: pause  C: clear scores", 10, 26)

	if snap.State.Charge.Charging {
		barWidth := float32(snap.Width) * 0.3
		x := float32(snap.Width) - barWidth - 10
		vector.StrokeRect(screen, x, 44, barWidth, 10, 1, powerColor, false)
		vector.DrawFilledRect(screen, x, 44, barWidth*float32(snap.PowerRatio), 10, powerColor, false)
	}

	if d.noticeTicks > 0 {
		ebitenutil.DebugPrintAt(screen, d.notice, 10, 42)
	}

	switch {
	case !snap.State.IsPlaying:
		d.drawHighScores(screen, snap)
	case snap.State.IsPaused:
		drawPause(screen, snap)
	}
}

func drawPause(screen *ebiten.Image, snap game.Snapshot) {
	w, h := float32(snap.Width), float32(snap.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, "PAUSE", int(w/2)-15, int(h/2)-8)
	ebitenutil.DebugPrintAt(screen, "Press P to resume", int(w/2)-51, int(h/2)+10)
}

func (d *Desktop) drawHighScores(screen *ebiten.Image, snap game.Snapshot) {
	w, h := float32(snap.Width), float32(snap.Height)
	vector.DrawFilledRect(screen, w*0.15, h*0.25, w*0.7, h*0.45, overlayColor, false)

	x, y := int(w*0.2), int(h*0.28)
	ebitenutil.DebugPrintAt(screen, "HIGH SCORES", x, y)
	for i, entry := range d.scores.List() {
		y += 18
		line := fmt.Sprintf("%2d. %-10s %7d  %s", i+1, entry.Name, entry.Score, entry.Date.Format("2006-01-02"))
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
	ebitenutil.DebugPrintAt(screen, "Press R to play again", x, int(h*0.66))
}
