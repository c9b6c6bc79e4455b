package race

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// randomSource draws weather from fixed 50/50 marginals, windy before
// sunny, so driver tests stay deterministic under a seed without pulling in
// the weather package.
type randomSource struct {
	rng *rand.Rand
}

func newRandomSource(seed int64) *randomSource {
	return &randomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSource) Draw() Weather {
	w := s.rng.Intn(2) == 0
	sn := s.rng.Intn(2) == 0
	return Weather{Windy: w, Sunny: sn}
}

func (s *randomSource) DrawN(n int) []Weather {
	ws := make([]Weather, n)
	for i := range ws {
		ws[i] = s.Draw()
	}
	return ws
}

func testConfig() Config {
	return Config{Finish: 100, WindGain: 25, WindGainSolarRig: 25, SolarGain: 10}
}

func TestSimulateAllArrive(t *testing.T) {
	d, err := NewDriver(testConfig(), newRandomSource(42))
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	out, err := d.Simulate(context.Background(), 20)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if out.Days <= 0 {
		t.Errorf("days = %d, want > 0", out.Days)
	}
	for _, f := range []*Fleet{out.WindOnly, out.WindSolar} {
		if !f.AllArrived() {
			t.Errorf("%s fleet not fully arrived", f.Rig())
		}
		for i, b := range f.Boats() {
			if b.History()[0] != 0 {
				t.Errorf("%s boat %d history[0] = %d, want 0", f.Rig(), i, b.History()[0])
			}
			if b.Position() < 100 {
				t.Errorf("%s boat %d final distance = %d, want >= finish", f.Rig(), i, b.Position())
			}
			if len(b.History()) > out.Days+1 {
				t.Errorf("%s boat %d history longer than run: %d entries for %d days",
					f.Rig(), i, len(b.History()), out.Days)
			}
		}
	}
}

func TestSimulateDeterministicUnderSeed(t *testing.T) {
	run := func() *Outcome {
		d, err := NewDriver(testConfig(), newRandomSource(7))
		if err != nil {
			t.Fatalf("NewDriver failed: %v", err)
		}
		out, err := d.Simulate(context.Background(), 10)
		if err != nil {
			t.Fatalf("Simulate failed: %v", err)
		}
		return out
	}

	a, b := run(), run()
	if a.Days != b.Days {
		t.Fatalf("days differ across identical seeds: %d vs %d", a.Days, b.Days)
	}
	for i := range a.WindOnly.Boats() {
		if !reflect.DeepEqual(a.WindOnly.Boats()[i].History(), b.WindOnly.Boats()[i].History()) {
			t.Errorf("wind-only boat %d histories differ across identical seeds", i)
		}
		if !reflect.DeepEqual(a.WindSolar.Boats()[i].History(), b.WindSolar.Boats()[i].History()) {
			t.Errorf("wind-solar boat %d histories differ across identical seeds", i)
		}
	}
}

func TestSimulatePairedMatchedPairs(t *testing.T) {
	cfg := testConfig()
	d, err := NewDriver(cfg, newRandomSource(99))
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	out, err := d.SimulatePaired(context.Background(), 15)
	if err != nil {
		t.Fatalf("SimulatePaired failed: %v", err)
	}

	// Under identical weather with equal wind gains (and a finish divisible
	// by the wind gain, so the wind-only boat cannot overshoot), the
	// wind+solar boat is at or ahead of its wind-only pair on every day.
	for i := range out.WindOnly.Boats() {
		wind := out.WindOnly.Boats()[i]
		solar := out.WindSolar.Boats()[i]
		for day := 0; day <= out.Days; day++ {
			wd := historyAt(wind, day)
			sd := historyAt(solar, day)
			if sd < wd {
				t.Fatalf("pair %d day %d: wind+solar at %d behind wind-only at %d", i, day, sd, wd)
			}
		}
		if solar.Days() > wind.Days() {
			t.Errorf("pair %d: wind+solar took %d days, wind-only only %d", i, solar.Days(), wind.Days())
		}
	}
}

func historyAt(b *Boat, day int) int {
	h := b.History()
	if day >= len(h) {
		return h[len(h)-1]
	}
	return h[day]
}

func TestSimulateFleetSizePrecondition(t *testing.T) {
	d, err := NewDriver(testConfig(), newRandomSource(1))
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	for _, n := range []int{0, -3} {
		if _, err := d.Simulate(context.Background(), n); !errors.Is(err, ErrFleetSize) {
			t.Errorf("Simulate(%d) error = %v, want ErrFleetSize", n, err)
		}
		if _, err := d.SimulatePaired(context.Background(), n); !errors.Is(err, ErrFleetSize) {
			t.Errorf("SimulatePaired(%d) error = %v, want ErrFleetSize", n, err)
		}
	}
}

func TestSimulateDayCap(t *testing.T) {
	// Never windy: the wind-only fleet cannot finish. Without the day cap
	// this configuration loops forever.
	cfg := testConfig()
	cfg.MaxDays = 50
	src := &scriptSource{seq: []Weather{{Windy: false, Sunny: true}}}

	d, err := NewDriver(cfg, src)
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	out, err := d.Simulate(context.Background(), 3)
	if !errors.Is(err, ErrNoFinish) {
		t.Fatalf("error = %v, want ErrNoFinish", err)
	}
	if out == nil || out.Days != 50 {
		t.Fatalf("partial outcome days = %v, want 50", out)
	}
	if out.WindOnly.AllArrived() {
		t.Error("wind-only fleet arrived without wind")
	}
	if !out.WindSolar.AllArrived() {
		t.Error("wind-solar fleet should have finished on solar alone")
	}
}

func TestSimulateContextCancel(t *testing.T) {
	cfg := testConfig()
	src := &scriptSource{seq: []Weather{{}}} // dead calm, never finishes

	d, err := NewDriver(cfg, src)
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Simulate(ctx, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNewDriverValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero finish", Config{Finish: 0, WindGain: 10}},
		{"negative finish", Config{Finish: -5, WindGain: 10}},
		{"negative gain", Config{Finish: 100, WindGain: -1}},
		{"negative solar gain", Config{Finish: 100, SolarGain: -1}},
		{"negative day cap", Config{Finish: 100, MaxDays: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDriver(tt.cfg, newRandomSource(1)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
