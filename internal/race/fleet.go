package race

import "fmt"

// Fleet is an ordered, fixed-size collection of same-rig boats. It owns its
// boats for the lifetime of a run and is never resized.
type Fleet struct {
	rig   Rig
	cfg   Config
	boats []*Boat
}

func NewFleet(rig Rig, n int, cfg Config) (*Fleet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrFleetSize, n)
	}
	boats := make([]*Boat, n)
	for i := range boats {
		boats[i] = NewBoat(rig)
	}
	return &Fleet{rig: rig, cfg: cfg, boats: boats}, nil
}

func (f *Fleet) Rig() Rig       { return f.rig }
func (f *Fleet) Size() int      { return len(f.boats) }
func (f *Fleet) Boats() []*Boat { return f.boats }

// Advance steps every boat one day, each with its own independent weather
// draw. Draws happen in boat index order, one per boat whether or not that
// boat has arrived, so the per-day draw count stays constant and runs are
// reproducible under a fixed seed.
func (f *Fleet) Advance(src WeatherSource) {
	for _, b := range f.boats {
		b.Advance(src.Draw(), f.cfg)
	}
}

// AdvanceShared steps every boat one day using a pre-drawn weather slice
// matched by index. A length mismatch is a precondition violation; no boat
// is advanced in that case.
func (f *Fleet) AdvanceShared(ws []Weather) error {
	if len(ws) != len(f.boats) {
		return fmt.Errorf("%w: %d draws for %d boats", ErrWeatherLength, len(ws), len(f.boats))
	}
	for i, b := range f.boats {
		b.Advance(ws[i], f.cfg)
	}
	return nil
}

// AllArrived reports whether every boat in the fleet has crossed the finish
// line. An empty fleet is vacuously arrived.
func (f *Fleet) AllArrived() bool {
	for _, b := range f.boats {
		if !b.arrived {
			return false
		}
	}
	return true
}
