package starship

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starship/internal/assets"
	"github.com/vovakirdan/starship/internal/core"
)

// Minimum screen size the playfield can be drawn on.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Fallback glyphs used when no texture is loaded.
const (
	ShipChar      = '█'
	MeteoriteChar = '●'
)

// viewport maps world units onto the screen's cell grid.
type viewport struct {
	sx, sy float64 // Cells per world unit
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// cells returns the cells covered by a world rectangle.
// Edges are rounded outward so small entities never vanish.
func (v viewport) cells(r core.RectF) core.Rect {
	const eps = 1e-9
	x0 := int(math.Floor(r.X*v.sx + eps))
	y0 := int(math.Floor(r.Y*v.sy + eps))
	x1 := int(math.Ceil(r.Right()*v.sx - eps))
	y1 := int(math.Ceil(r.Bottom()*v.sy - eps))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	if g.over {
		g.drawGameOver(dst)
		return
	}

	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.drawBackground(dst)
	g.drawStarship(dst, vp)
	g.drawMeteorites(dst, vp)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawText(1, 1, fmt.Sprintf("Lives: %d", g.ship.Lives), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorGray)

	if g.pause {
		drawCenteredMessage(dst, "Paused", "Press Space to resume", core.ColorRed)
	}
}

// drawBackground tiles the background texture from the top-left corner.
func (g *Game) drawBackground(dst *core.Screen) {
	if g.background == nil {
		return
	}
	w, h := g.background.Width(), g.background.Height()
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if r := g.background.At(x%w, y%h); r != assets.Transparent {
				dst.SetCell(x, y, r, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawStarship(dst *core.Screen, vp viewport) {
	area := vp.cells(g.ship.Rect())
	if g.ship.Texture != nil {
		drawTexture(dst, area, g.ship.Texture, g.shipColor)
		return
	}
	dst.DrawRect(area, ShipChar, g.shipColor)
}

func (g *Game) drawMeteorites(dst *core.Screen, vp viewport) {
	for _, m := range g.meteorites {
		area := vp.cells(m.Rect())
		if m.Texture != nil {
			drawTexture(dst, area, m.Texture, g.meteoriteColor)
			continue
		}
		drawDisc(dst, area, MeteoriteChar, g.meteoriteColor)
	}
}

// drawTexture stretches tex over area, sampling at each cell's center.
func drawTexture(dst *core.Screen, area core.Rect, tex *assets.Texture, c core.Color) {
	if area.Empty() {
		return
	}
	for cy := area.Y; cy < area.Bottom(); cy++ {
		v := (float64(cy-area.Y) + 0.5) / float64(area.H)
		for cx := area.X; cx < area.Right(); cx++ {
			u := (float64(cx-area.X) + 0.5) / float64(area.W)
			if r := tex.Sample(u, v); r != assets.Transparent {
				dst.SetCell(cx, cy, r, c)
			}
		}
	}
}

// drawDisc fills the ellipse inscribed in area.
func drawDisc(dst *core.Screen, area core.Rect, fill rune, c core.Color) {
	rx := float64(area.W) / 2
	ry := float64(area.H) / 2
	cx0 := float64(area.X) + rx
	cy0 := float64(area.Y) + ry
	for cy := area.Y; cy < area.Bottom(); cy++ {
		dy := (float64(cy) + 0.5 - cy0) / ry
		for cx := area.X; cx < area.Right(); cx++ {
			dx := (float64(cx) + 0.5 - cx0) / rx
			if dx*dx+dy*dy <= 1 {
				dst.SetCell(cx, cy, fill, c)
			}
		}
	}
}

// drawGameOver replaces the playfield with the result screen.
func (g *Game) drawGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "Game Over", core.ColorRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Best score: %d", g.best), core.ColorBrightWhite)
	dst.DrawTextCentered(mid+2, "Press Enter to restart", core.ColorDefault)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}
