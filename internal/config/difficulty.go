package config

import "math"

// SpeedRamp grows a speed by a fixed step, optionally up to a cap.
type SpeedRamp struct {
	Step float64
	Max  float64 // <= 0 means uncapped
}

// Next returns the speed after one more step.
// A speed already above the cap is left unchanged rather than lowered.
func (r SpeedRamp) Next(cur float64) float64 {
	next := cur + r.Step
	if r.Max > 0 && next > r.Max {
		return math.Max(cur, r.Max)
	}
	return next
}

// ShipRamp returns the ramp applied to the ship's speed on every clear.
func (c Config) ShipRamp() SpeedRamp {
	if !c.Progression.Enabled {
		return SpeedRamp{}
	}
	return SpeedRamp{Step: c.Progression.ShipSpeedStep, Max: c.Progression.MaxShipSpeed}
}

// MeteoriteRamp returns the ramp applied to meteorite speed on every clear.
func (c Config) MeteoriteRamp() SpeedRamp {
	if !c.Progression.Enabled {
		return SpeedRamp{}
	}
	return SpeedRamp{Step: c.Progression.MeteoriteSpeedStep, Max: c.Progression.MaxMeteoriteSpeed}
}
