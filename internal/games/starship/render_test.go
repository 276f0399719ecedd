package starship

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starship/internal/assets"
	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
)

func TestRenderFallbackShapes(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	g.meteorites[0].Position = core.NewVec2(0, 0)
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	// Ship spans world x 400..500, y 340..440 -> cols 40..49, rows 18..23
	if c := dst.GetCell(45, 20); c.Rune != ShipChar || c.Color != core.ColorBlue {
		t.Errorf("ship cell = %+v, expected blue %q", c, ShipChar)
	}
	if dst.Get(39, 20) == ShipChar || dst.Get(50, 20) == ShipChar {
		t.Error("ship drawn outside its hitbox")
	}

	// Meteorite spans cols 0..14, rows 0..7; its center is filled, its corner is not
	if c := dst.GetCell(7, 4); c.Rune != MeteoriteChar || c.Color != core.ColorBrown {
		t.Errorf("meteorite center = %+v, expected brown %q", c, MeteoriteChar)
	}
	if dst.Get(14, 7) == MeteoriteChar {
		t.Error("disc should leave the hitbox corners empty")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	g.score = 12
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 12") {
		t.Errorf("row 0 missing score: %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(1), "Lives: 3") {
		t.Errorf("row 1 missing lives: %q", dst.Row(1))
	}
}

func TestRenderTextured(t *testing.T) {
	g := New(config.DefaultConfig(), assets.NewEmbeddedLoader())
	if err := g.Reset(testRuntime(7)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	found := false
	for y := 18; y < 24; y++ {
		for x := 40; x < 50; x++ {
			if c := dst.GetCell(x, y); c.Color == core.ColorBlue && c.Rune != ShipChar {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("ship texture not drawn:\n%s", dst.String())
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	step(t, g, input(core.ActionPause))
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if !strings.Contains(dst.String(), "Paused") {
		t.Errorf("paused overlay missing:\n%s", dst.String())
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	g.best = 9
	g.over = true
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	out := dst.String()
	for _, want := range []string{"Game Over", "Best score: 9", "Press Enter to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Lives:") {
		t.Error("HUD should not be drawn on the game over screen")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	dst := core.NewScreen(MinScreenW+2, MinScreenH-1)

	g.Render(dst)

	if !strings.Contains(dst.String(), "too small") {
		t.Errorf("expected size warning, got:\n%s", dst.String())
	}
}

func TestViewportCells(t *testing.T) {
	dst := core.NewScreen(80, 24)
	vp := newViewport(dst, 800, 450)

	got := vp.cells(core.RectF{X: 400, Y: 340, W: 100, H: 100})
	want := core.NewRect(40, 18, 10, 6)
	if got != want {
		t.Errorf("cells() = %+v, expected %+v", got, want)
	}

	// Tiny entities still cover one cell
	if tiny := vp.cells(core.RectF{X: 1, Y: 1, W: 0.1, H: 0.1}); tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect = %+v, expected 1x1", tiny)
	}
}
