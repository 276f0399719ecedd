// Package starship implements the meteorite-dodging game.
// The player steers a ship along the bottom of the screen while meteorites
// fall from the top; every field cleared without a hit scores a point and
// speeds things up.
package starship

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/starship/internal/assets"
	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
)

// ID is the identifier the game's scores are stored under.
const ID = "starship"

// Game implements the starship game logic.
type Game struct {
	cfg    config.Config
	loader assets.Loader // nil disables textures
	rng    *rand.Rand

	ship           Starship
	meteorites     []Meteorite
	meteoriteTex   *assets.Texture
	background     *assets.Texture
	meteoriteSpeed float64 // Speed given to the next spawned meteorite

	score  int
	best   int
	clears int
	over   bool
	pause  bool

	shipColor      core.Color
	meteoriteColor core.Color
}

// New creates a game. Textures are loaded through loader on every reset;
// pass nil to play with the solid-shape fallbacks.
func New(cfg config.Config, loader assets.Loader) *Game {
	g := &Game{
		cfg:            cfg,
		loader:         loader,
		rng:            rand.New(rand.NewSource(1)),
		meteorites:     make([]Meteorite, 0, 4),
		shipColor:      core.ColorBlue,
		meteoriteColor: core.ColorBrown,
	}
	if c, ok := core.ParseColor(cfg.Ship.Color); ok {
		g.shipColor = c
	}
	if c, ok := core.ParseColor(cfg.Meteorite.Color); ok {
		g.meteoriteColor = c
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starship"
}

// Reset reseeds the game and starts a new run.
// It fails only when a texture cannot be loaded.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	return g.restart()
}

// restart reinitializes the run without touching the RNG stream, so a
// restart after game over deals a new sequence of meteorites.
func (g *Game) restart() error {
	var shipTex *assets.Texture
	g.background, g.meteoriteTex = nil, nil

	if g.loader != nil && g.cfg.Assets.Enabled {
		var err error
		if g.background, err = g.loader.Load(g.cfg.Assets.Background); err != nil {
			return fmt.Errorf("starship: background: %w", err)
		}
		if shipTex, err = g.loader.Load(g.cfg.Assets.Ship); err != nil {
			return fmt.Errorf("starship: ship: %w", err)
		}
		if g.meteoriteTex, err = g.loader.Load(g.cfg.Assets.Meteorite); err != nil {
			return fmt.Errorf("starship: meteorite: %w", err)
		}
	}

	g.ship = newStarship(g.cfg.Ship, shipTex)
	g.meteorites = g.meteorites[:0]
	g.meteoriteSpeed = g.cfg.Meteorite.Speed
	g.score = 0
	g.best = 0
	g.clears = 0
	g.over = false
	g.pause = false

	g.spawnMeteorite()
	return nil
}

// spawnMeteorite drops one meteorite at the top edge with a random X that
// keeps it fully on screen.
func (g *Game) spawnMeteorite() {
	span := g.cfg.World.Width - g.cfg.Meteorite.Width
	x := 0.0
	if span > 0 {
		x = g.rng.Float64() * span
	}
	g.meteorites = append(g.meteorites, Meteorite{
		Position: core.NewVec2(x, 0),
		Size:     core.NewVec2(g.cfg.Meteorite.Width, g.cfg.Meteorite.Height),
		Speed:    g.meteoriteSpeed,
		Texture:  g.meteoriteTex,
	})
}

// Step advances the game by one tick.
// The error is non-nil only when a restart fails to reload textures.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.over {
		if in.Has(core.ActionRestart) {
			if err := g.restart(); err != nil {
				return core.StepResult{State: g.State()}, err
			}
		}
		return core.StepResult{State: g.State()}, nil
	}

	if in.Has(core.ActionPause) {
		g.pause = !g.pause
	}
	if g.pause {
		return core.StepResult{State: g.State()}, nil
	}

	g.moveShip(in)
	hit := g.advanceMeteorites()

	if hit {
		if g.ship.Lives > 0 {
			g.ship.Lives--
		}
		if g.ship.Lives <= 0 {
			g.over = true
		}
		g.meteorites = g.meteorites[:0]
		g.spawnMeteorite()
		g.score = 0
	}

	g.pruneMeteorites()

	if len(g.meteorites) == 0 {
		g.clearField()
	}

	return core.StepResult{State: g.State(), Hit: hit}, nil
}

// moveShip applies held steering and keeps the ship inside the world.
func (g *Game) moveShip(in core.InputFrame) {
	if in.Has(core.ActionRight) {
		g.ship.Position.X += g.ship.Speed
	}
	if in.Has(core.ActionLeft) {
		g.ship.Position.X -= g.ship.Speed
	}
	g.ship.Position.X = core.ClampF(g.ship.Position.X, 0, g.cfg.World.Width-g.ship.Size.X)
}

// advanceMeteorites moves each meteorite down and reports the first one that
// strikes the ship. Meteorites after the striking one are not moved.
func (g *Game) advanceMeteorites() bool {
	shipRect := g.ship.Rect()
	for i := range g.meteorites {
		m := &g.meteorites[i]
		m.Position.Y += m.Speed
		if shipRect.Overlaps(m.Rect()) {
			return true
		}
	}
	return false
}

// pruneMeteorites drops meteorites that fell past the bottom edge.
func (g *Game) pruneMeteorites() {
	kept := g.meteorites[:0]
	for _, m := range g.meteorites {
		if m.Position.Y < g.cfg.World.Height {
			kept = append(kept, m)
		}
	}
	g.meteorites = kept
}

// clearField scores a dodged field, ramps speeds and spawns the next meteorite.
func (g *Game) clearField() {
	g.score++
	g.best = max(g.best, g.score)
	g.clears++

	g.ship.Speed = g.cfg.ShipRamp().Next(g.ship.Speed)

	// The field is empty, so raising the spawn speed is what speeds up
	// every meteorite from here on.
	g.meteoriteSpeed = g.cfg.MeteoriteRamp().Next(g.meteoriteSpeed)
	g.spawnMeteorite()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := core.PhasePlaying
	switch {
	case g.over:
		phase = core.PhaseOver
	case g.pause:
		phase = core.PhasePaused
	}
	return core.GameState{
		Score:          g.score,
		Best:           g.best,
		Lives:          g.ship.Lives,
		Phase:          phase,
		Clears:         g.clears,
		ShipSpeed:      g.ship.Speed,
		MeteoriteSpeed: g.meteoriteSpeed,
	}
}
