package core

// RuntimeConfig contains configuration passed to the game at reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the game's position in its state machine.
//
//	Playing <-> Paused   (pause toggle)
//	Playing  -> Over     (last life lost)
//	Over     -> Playing  (restart)
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of the game, returned by Step and State.
type GameState struct {
	Score          int     // Current score; reset to 0 on every hit
	Best           int     // Highest score reached this run
	Lives          int     // Remaining lives
	Phase          Phase   // Playing, Paused or Over
	Clears         int     // Times the meteorite field was cleared this run
	ShipSpeed      float64 // World units per tick
	MeteoriteSpeed float64 // Speed given to newly spawned meteorites
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// Paused reports whether the simulation is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Hit   bool // A meteorite struck the ship this tick
}
