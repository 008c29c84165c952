package bricks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	GateChar   = '▓'
	BrickChar  = '▒'
)

// Palette
const (
	PlayerColor = core.ColorRed
	GateColor   = core.ColorGray
	BrickColor  = core.ColorOrange
	HUDColor    = core.ColorWhite
)

// HUD text shared by the terminal and pixel renderers.
const (
	hudTitle    = "!!Bricks!!"
	hudControls = ">> Press A or D to jump <<"
	hudRule     = "--------------------"
)

// hudLines returns the status lines drawn in the top-left corner.
func (g *Game) hudLines() []string {
	return []string{
		hudTitle,
		hudControls,
		fmt.Sprintf("Score: %d", g.sim.Score()),
		fmt.Sprintf("Max Score: %d", g.best),
		hudRule,
	}
}

// cellProjection maps world coordinates onto a cols×rows grid.
// World y grows upward from the camera bottom; rows grow downward.
type cellProjection struct {
	sx, sy float64
	height float64
	rows   int
}

func newCellProjection(worldW, worldH, height float64, cols, rows int) cellProjection {
	return cellProjection{
		sx:     float64(cols) / worldW,
		sy:     float64(rows) / worldH,
		height: height,
		rows:   rows,
	}
}

// rect converts an AABB to a cell rectangle at least one cell in each
// direction, so objects never vanish when scaled down.
func (p cellProjection) rect(b core.AABB) core.Rect {
	x0 := int(math.Floor(b.Min.X * p.sx))
	x1 := int(math.Ceil(b.Max.X * p.sx))
	top := p.rows - int(math.Ceil((b.Max.Y-p.height)*p.sy))
	bottom := p.rows - int(math.Floor((b.Min.Y-p.height)*p.sy))
	return core.NewRect(x0, top, core.Max(1, x1-x0), core.Max(1, bottom-top))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	world := g.sim.World()
	proj := newCellProjection(world.X, world.Y, g.sim.Height(), dst.Width(), dst.Height())

	// Segments generated ahead of the camera are mostly off screen.
	view := dst.Bounds()
	fill := func(b core.AABB, ch rune, c core.Color) {
		if r := proj.rect(b); r.Intersects(view) {
			dst.FillRect(r, ch, c)
		}
	}

	for _, seg := range g.sim.Segments() {
		for _, gate := range seg.Gates {
			if gate.Size.X <= 0 {
				continue
			}
			fill(gate, GateChar, GateColor)
		}
		for _, b := range seg.Bricks {
			fill(b, BrickChar, BrickColor)
		}
	}

	fill(g.sim.Player().Body, PlayerChar, PlayerColor)

	// HUD
	for i, line := range g.hudLines() {
		dst.DrawTextColored(1, i, line, HUDColor)
	}

	switch {
	case g.sim.Over():
		g.drawCenteredMessage(dst, "Game Over!",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score()))
	case g.paused:
		g.drawCenteredMessage(dst, "Game is paused", ">> Press A or D to resume <<")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	// Pinned to the top-left corner when the screen is too small.
	boxX := core.Clamp((w-boxW)/2, 0, core.Max(w-boxW, 0))
	boxY := core.Clamp((h-boxH)/2, 0, core.Max(h-boxH, 0))

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
