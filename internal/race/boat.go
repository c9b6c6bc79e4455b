package race

// Boat is the mutable simulated entity. It records its cumulative distance
// after every day in history (day 0 included, always 0) and freezes once it
// crosses the finish line.
type Boat struct {
	rig     Rig
	history []int
	arrived bool
}

func NewBoat(rig Rig) *Boat {
	return &Boat{rig: rig, history: []int{0}}
}

func (b *Boat) Rig() Rig      { return b.rig }
func (b *Boat) Arrived() bool { return b.arrived }

// Position returns the boat's current cumulative distance.
func (b *Boat) Position() int { return b.history[len(b.history)-1] }

// Days returns the number of simulated days the boat has sailed, not
// counting day 0.
func (b *Boat) Days() int { return len(b.history) - 1 }

// History returns the boat's day-by-day distances. The returned slice is
// the boat's own backing store; callers must not mutate it.
func (b *Boat) History() []int { return b.history }

// Advance applies one day of weather according to the boat's rig. A day
// with no qualifying conditions is still recorded as a flat history entry.
// The finish check is >=, so the final distance may overshoot cfg.Finish;
// it is never clamped. Once arrived, Advance is a no-op.
//
// Returns 1 if a step was taken, 0 if the boat had already arrived. The
// indicator exists for bookkeeping only.
func (b *Boat) Advance(w Weather, cfg Config) int {
	if b.arrived {
		return 0
	}

	gain := 0
	switch b.rig {
	case WindOnly:
		if w.Windy {
			gain = cfg.WindGain
		}
	case WindSolar:
		// Wind takes priority over solar; gains never sum.
		if w.Windy {
			gain = cfg.WindGainSolarRig
		} else if w.Sunny {
			gain = cfg.SolarGain
		}
	}

	next := b.Position() + gain
	if next >= cfg.Finish {
		b.arrived = true
	}
	b.history = append(b.history, next)
	return 1
}
