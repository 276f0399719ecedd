package starship

import (
	"github.com/vovakirdan/starship/internal/assets"
	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
)

// Starship is the player-controlled entity.
type Starship struct {
	Position core.Vec2
	Size     core.Vec2
	Speed    float64         // Horizontal world units per tick
	Texture  *assets.Texture // nil draws a solid rectangle
	Lives    int
}

// newStarship places a fresh ship according to the config.
func newStarship(cfg config.ShipConfig, tex *assets.Texture) Starship {
	return Starship{
		Position: core.NewVec2(cfg.X, cfg.Y),
		Size:     core.NewVec2(cfg.Width, cfg.Height),
		Speed:    cfg.Speed,
		Texture:  tex,
		Lives:    cfg.Lives,
	}
}

// Rect returns the ship's collision rectangle.
func (s Starship) Rect() core.RectF {
	return core.NewRectF(s.Position, s.Size)
}

// Meteorite is a falling obstacle.
type Meteorite struct {
	Position core.Vec2
	Size     core.Vec2
	Speed    float64         // Vertical world units per tick
	Texture  *assets.Texture // nil draws a solid circle
}

// Rect returns the meteorite's collision rectangle.
func (m Meteorite) Rect() core.RectF {
	return core.NewRectF(m.Position, m.Size)
}
