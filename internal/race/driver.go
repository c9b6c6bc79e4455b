package race

import "context"

// Driver orchestrates one wind-only fleet and one wind-solar fleet through
// repeated days until both have fully arrived. There is no per-fleet early
// exit: a finished fleet keeps receiving no-op advances until the other
// fleet catches up.
type Driver struct {
	cfg Config
	src WeatherSource
}

func NewDriver(cfg Config, src WeatherSource) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{cfg: cfg, src: src}, nil
}

// Outcome holds the two completed fleets of one run plus the number of days
// it took until the last boat arrived.
type Outcome struct {
	WindOnly  *Fleet
	WindSolar *Fleet
	Days      int
}

// Simulate runs n boats per fleet with independent weather per boat: each
// day the wind-only fleet draws boat by boat, then the wind-solar fleet.
// Termination is probabilistic; see Config.MaxDays for the optional cap.
// When the cap trips, the partial outcome is returned alongside ErrNoFinish.
func (d *Driver) Simulate(ctx context.Context, n int) (*Outcome, error) {
	return d.run(ctx, n, func(wind, solar *Fleet) error {
		wind.Advance(d.src)
		solar.Advance(d.src)
		return nil
	})
}

// SimulatePaired runs n boats per fleet under a single shared weather field:
// each day one weather value is drawn per boat index and applied to the
// same-indexed boat in both fleets, enabling matched-pair comparisons
// between the two rigs.
func (d *Driver) SimulatePaired(ctx context.Context, n int) (*Outcome, error) {
	return d.run(ctx, n, func(wind, solar *Fleet) error {
		ws := d.src.DrawN(n)
		if err := wind.AdvanceShared(ws); err != nil {
			return err
		}
		return solar.AdvanceShared(ws)
	})
}

func (d *Driver) run(ctx context.Context, n int, step func(wind, solar *Fleet) error) (*Outcome, error) {
	wind, err := NewFleet(WindOnly, n, d.cfg)
	if err != nil {
		return nil, err
	}
	solar, err := NewFleet(WindSolar, n, d.cfg)
	if err != nil {
		return nil, err
	}

	out := &Outcome{WindOnly: wind, WindSolar: solar}

	for !(wind.AllArrived() && solar.AllArrived()) {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		if err := step(wind, solar); err != nil {
			return out, err
		}
		out.Days++

		if d.cfg.MaxDays > 0 && out.Days >= d.cfg.MaxDays &&
			!(wind.AllArrived() && solar.AllArrived()) {
			return out, ErrNoFinish
		}
	}

	return out, nil
}
