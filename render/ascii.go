// File: render/ascii.go
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/flipper/game"
)

const (
	glyphEmpty   = ' '
	glyphWall    = '#'
	glyphDivider = '='
	glyphBumper  = 'O'
	glyphPulse   = '@'
	glyphTrail   = '.'
	glyphBall    = 'o'
	glyphLeft    = '/'
	glyphRight   = '\\'
)

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Cell is one character of the rasterized table.
type Cell struct {
	Char  rune
	Color RGB
}

var palette = map[rune]RGB{
	glyphWall:    {90, 90, 140},
	glyphDivider: {150, 150, 150},
	glyphBumper:  {255, 107, 107},
	glyphPulse:   {255, 230, 109},
	glyphTrail:   {110, 110, 160},
	glyphBall:    {255, 255, 255},
	glyphLeft:    {78, 205, 196},
	glyphRight:   {78, 205, 196},
}

// grid maps table coordinates onto a cols x rows character grid.
type grid struct {
	cells          [][]Cell
	cols, rows     int
	scaleX, scaleY float64
}

func newGrid(width, height float64, cols, rows int) *grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Char: glyphEmpty}
		}
	}
	return &grid{
		cells:  cells,
		cols:   cols,
		rows:   rows,
		scaleX: float64(cols) / width,
		scaleY: float64(rows) / height,
	}
}

func (g *grid) cellOf(x, y float64) (int, int, bool) {
	c := int(math.Floor(x * g.scaleX))
	r := int(math.Floor(y * g.scaleY))
	if c < 0 || c >= g.cols || r < 0 || r >= g.rows {
		return 0, 0, false
	}
	return c, r, true
}

func (g *grid) plot(x, y float64, glyph rune) {
	if c, r, ok := g.cellOf(x, y); ok {
		g.cells[r][c] = Cell{Char: glyph, Color: palette[glyph]}
	}
}

// disc fills every cell whose center lies inside the circle, and always the cell
// under the center so small shapes stay visible.
func (g *grid) disc(cx, cy, radius float64, glyph rune) {
	minC, minR := g.clampedCell(cx-radius, cy-radius)
	maxC, maxR := g.clampedCell(cx+radius, cy+radius)
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			x := (float64(c) + 0.5) / g.scaleX
			y := (float64(r) + 0.5) / g.scaleY
			if math.Hypot(x-cx, y-cy) <= radius {
				g.cells[r][c] = Cell{Char: glyph, Color: palette[glyph]}
			}
		}
	}
	g.plot(cx, cy, glyph)
}

func (g *grid) clampedCell(x, y float64) (int, int) {
	c := int(math.Floor(x * g.scaleX))
	r := int(math.Floor(y * g.scaleY))
	return max(0, min(g.cols-1, c)), max(0, min(g.rows-1, r))
}

func (g *grid) segment(x1, y1, x2, y2 float64, glyph rune) {
	steps := int(math.Ceil(math.Max(math.Abs(x2-x1)*g.scaleX, math.Abs(y2-y1)*g.scaleY)*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.plot(x1+(x2-x1)*t, y1+(y2-y1)*t, glyph)
	}
}

// Rasterize draws the snapshot onto a cols x rows grid. Later layers win: walls,
// divider, bumpers, flippers, trail, ball.
func Rasterize(snap game.Snapshot, cols, rows int) [][]Cell {
	if cols <= 0 || rows <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		return nil
	}
	g := newGrid(snap.Width, snap.Height, cols, rows)

	for r := 0; r < rows; r++ {
		g.cells[r][0] = Cell{Char: glyphWall, Color: palette[glyphWall]}
		g.cells[r][cols-1] = Cell{Char: glyphWall, Color: palette[glyphWall]}
	}
	for c := 0; c < cols; c++ {
		g.cells[0][c] = Cell{Char: glyphWall, Color: palette[glyphWall]}
	}

	dividerY := snap.Height - 40
	g.segment(snap.Width/2-20, dividerY, snap.Width/2+20, dividerY, glyphDivider)

	for _, bumper := range snap.Bumpers {
		glyph := glyphBumper
		if bumper.Radius > bumper.BaseRadius {
			glyph = glyphPulse
		}
		g.disc(bumper.X, bumper.Y, bumper.Radius, glyph)
	}

	for _, flipper := range snap.Flippers {
		endX, endY := flipper.End()
		glyph := glyphLeft
		if flipper.Side == game.Right {
			glyph = glyphRight
		}
		g.segment(flipper.X, flipper.Y, endX, endY, glyph)
	}

	for _, point := range snap.Ball.Trail {
		g.plot(point.X, point.Y, glyphTrail)
	}
	g.disc(snap.Ball.X, snap.Ball.Y, snap.Ball.Radius, glyphBall)

	return g.cells
}

// RenderSnapshot returns the table as plain text followed by a status line.
func RenderSnapshot(snap game.Snapshot, cols, rows int) string {
	cells := Rasterize(snap, cols, rows)
	if cells == nil {
		return ""
	}
	var ascii strings.Builder
	for _, row := range cells {
		for _, cell := range row {
			ascii.WriteRune(cell.Char)
		}
		ascii.WriteString("\n")
	}
	ascii.WriteString(StatusLine(snap))
	ascii.WriteString("\n")
	return ascii.String()
}

// RenderSnapshotANSI is RenderSnapshot with 24-bit color escapes.
func RenderSnapshotANSI(snap game.Snapshot, cols, rows int) string {
	cells := Rasterize(snap, cols, rows)
	if cells == nil {
		return ""
	}
	var ascii strings.Builder
	for _, row := range cells {
		for _, cell := range row {
			if cell.Char == glyphEmpty {
				ascii.WriteRune(cell.Char)
				continue
			}
			ascii.WriteString(rgbToAnsi(cell.Color))
			ascii.WriteRune(cell.Char)
			ascii.WriteString("\033[0m")
		}
		ascii.WriteString("\r\n")
	}
	ascii.WriteString(StatusLine(snap))
	ascii.WriteString("\r\n")
	return ascii.String()
}

func rgbToAnsi(color RGB) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", color.R, color.G, color.B)
}

// StatusLine summarizes scores, lives and whose turn it is.
func StatusLine(snap game.Snapshot) string {
	state := snap.State
	line := fmt.Sprintf("P1 %d (%d) | P2 %d (%d) | Player %d up",
		state.Scores[0], state.Lives[0], state.Scores[1], state.Lives[1], state.CurrentPlayer)

	switch {
	case !state.IsPlaying:
		switch snap.Winner {
		case 0:
			line += " | GAME OVER: tie"
		default:
			line += fmt.Sprintf(" | GAME OVER: Player %d wins", snap.Winner)
		}
	case state.IsPaused:
		line += " | PAUSED"
	case state.Charge.Charging:
		line += " | power " + powerBar(snap.PowerRatio, 10)
	}
	return line
}

func powerBar(ratio float64, width int) string {
	filled := int(math.Round(ratio * float64(width)))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("|", filled) + strings.Repeat(" ", width-filled) + "]"
}
