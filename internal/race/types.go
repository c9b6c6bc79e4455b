package race

import "fmt"

// Weather holds one day's conditions for a single boat. Values are drawn
// fresh each day and never mutated afterward. The two flags come from
// independent marginal draws; no correlation between them is modelled.
type Weather struct {
	Windy bool
	Sunny bool
}

// WeatherSource produces independent daily weather draws. Implementations
// must be deterministic under a fixed seed: the driver relies on a strict,
// reproducible draw order.
type WeatherSource interface {
	Draw() Weather
	DrawN(n int) []Weather
}

// Rig identifies a boat's propulsion rule.
type Rig int

const (
	// WindOnly gains distance on windy days and drifts otherwise.
	WindOnly Rig = iota
	// WindSolar gains on windy days, falls back to solar on sunny
	// windless days, and drifts otherwise.
	WindSolar
)

func (r Rig) String() string {
	switch r {
	case WindOnly:
		return "wind_only"
	case WindSolar:
		return "wind_solar"
	default:
		return fmt.Sprintf("rig(%d)", int(r))
	}
}

// Config holds the per-run physical parameters shared by every boat.
type Config struct {
	// Finish is the cumulative distance at which a boat arrives.
	Finish int
	// WindGain is the daily gain on windy days for the WindOnly rig.
	WindGain int
	// WindGainSolarRig is the daily gain on windy days for the WindSolar
	// rig. Wind always takes priority over solar; the two never sum.
	WindGainSolarRig int
	// SolarGain is the daily gain on sunny windless days (WindSolar only).
	SolarGain int
	// MaxDays caps the simulated days before the driver gives up with
	// ErrNoFinish. Zero means unbounded: under a weather distribution
	// where a rig has zero probability of a qualifying day, the run
	// never terminates.
	MaxDays int
}

func DefaultConfig() Config {
	return Config{
		Finish:           500,
		WindGain:         50,
		WindGainSolarRig: 50,
		SolarGain:        20,
	}
}

func (c Config) Validate() error {
	if c.Finish <= 0 {
		return fmt.Errorf("finish must be positive, got %d", c.Finish)
	}
	if c.WindGain < 0 || c.WindGainSolarRig < 0 || c.SolarGain < 0 {
		return fmt.Errorf("gains must be non-negative, got wind=%d wind_solar_rig=%d solar=%d",
			c.WindGain, c.WindGainSolarRig, c.SolarGain)
	}
	if c.MaxDays < 0 {
		return fmt.Errorf("max days must be non-negative, got %d", c.MaxDays)
	}
	return nil
}
