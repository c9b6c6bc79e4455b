package weather

import (
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/regatta/internal/race"
)

func TestMarginalProbability(t *testing.T) {
	tests := []struct {
		name string
		m    Marginal
		p    float64
	}{
		{"default windy", DefaultWindy, 0.75},
		{"default sunny", DefaultSunny, 0.7},
		{"always", Marginal{true}, 1.0},
		{"never", Marginal{false, false}, 0.0},
		{"empty", Marginal{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Probability(); math.Abs(got-tt.p) > 1e-12 {
				t.Errorf("Probability() = %v, want %v", got, tt.p)
			}
		})
	}
}

func TestNewRejectsEmptyMarginal(t *testing.T) {
	if _, err := New(Marginal{}, DefaultSunny, 1); err == nil {
		t.Error("expected error for empty windy marginal")
	}
	if _, err := New(DefaultWindy, Marginal{}, 1); err == nil {
		t.Error("expected error for empty sunny marginal")
	}
}

func TestDrawDeterministicUnderSeed(t *testing.T) {
	draw := func() []race.Weather {
		g, err := New(DefaultWindy, DefaultSunny, 12345)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		return g.DrawN(200)
	}

	if !reflect.DeepEqual(draw(), draw()) {
		t.Error("identical seeds produced different weather sequences")
	}
}

func TestDrawRespectsDegenerateMarginals(t *testing.T) {
	g, err := New(Marginal{true}, Marginal{false}, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		w := g.Draw()
		if !w.Windy {
			t.Fatal("all-true windy marginal produced a calm day")
		}
		if w.Sunny {
			t.Fatal("all-false sunny marginal produced a sunny day")
		}
	}
}

func TestDrawEmpiricalFrequency(t *testing.T) {
	g, err := New(DefaultWindy, DefaultSunny, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	const n = 20000
	windy, sunny := 0, 0
	for _, w := range g.DrawN(n) {
		if w.Windy {
			windy++
		}
		if w.Sunny {
			sunny++
		}
	}

	if got := float64(windy) / n; math.Abs(got-0.75) > 0.02 {
		t.Errorf("windy frequency = %.3f, want ~0.75", got)
	}
	if got := float64(sunny) / n; math.Abs(got-0.70) > 0.02 {
		t.Errorf("sunny frequency = %.3f, want ~0.70", got)
	}
}

func TestFixedCycles(t *testing.T) {
	a := race.Weather{Windy: true}
	b := race.Weather{Sunny: true}
	f := NewFixed(a, b)

	want := []race.Weather{a, b, a, b, a}
	if got := f.DrawN(5); !reflect.DeepEqual(got, want) {
		t.Errorf("DrawN(5) = %v, want %v", got, want)
	}
}
