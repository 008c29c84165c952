package bricks

import (
	"image/color"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/framebuffer"
)

// Draw rasterizes the world into dst, scaling it to the image size. The image
// origin is top-left, so world y is flipped against the camera height.
func (s *Sim) Draw(dst *framebuffer.Image) {
	dst.Fill(color.Black)

	sx := float64(dst.Width()) / s.world.X
	sy := float64(dst.Height()) / s.world.Y

	fill := func(b core.AABB, c core.Color) {
		if b.Size.X <= 0 || b.Size.Y <= 0 {
			return
		}
		x := b.Min.X * sx
		y := float64(dst.Height()) - (b.Max.Y-s.height)*sy
		dst.FillRect(x, y, b.Size.X*sx, b.Size.Y*sy, c.RGBA())
	}

	for _, seg := range s.window.Segments() {
		fill(seg.Gates[0], GateColor)
		fill(seg.Gates[1], GateColor)
		for _, b := range seg.Bricks {
			fill(b, BrickColor)
		}
	}
	fill(s.player.Body, PlayerColor)
}

// Draw rasterizes the current frame with the HUD overlaid.
func (g *Game) Draw(dst *framebuffer.Image) {
	if g.sim == nil {
		dst.Fill(color.Black)
		return
	}
	g.sim.Draw(dst)

	y := 2
	for _, line := range g.hudLines() {
		dst.Text(4, y, line, HUDColor.RGBA())
		y += framebuffer.LineHeight
	}

	switch {
	case g.sim.Over():
		dst.Text(4, y, "Game Over!", HUDColor.RGBA())
	case g.paused:
		dst.Text(4, y, "Game is paused", HUDColor.RGBA())
		dst.Text(4, y+framebuffer.LineHeight, ">> Press A or D to resume <<", HUDColor.RGBA())
	}
}
