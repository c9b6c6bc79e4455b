// Package weather generates i.i.d. daily weather draws from finite boolean
// marginals.
package weather

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/regatta/internal/race"
)

// Marginal is a finite pool of boolean outcomes. A draw picks one element
// uniformly, so the empirical probability of true is the fraction of true
// entries in the pool.
type Marginal []bool

// Default marginals: windy 3 days in 4, sunny 7 days in 10.
var (
	DefaultWindy = Marginal{true, true, true, false}
	DefaultSunny = Marginal{true, true, true, true, true, true, true, false, false, false}
)

func (m Marginal) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("marginal must not be empty")
	}
	return nil
}

// Probability returns the fraction of true outcomes in the pool.
func (m Marginal) Probability() float64 {
	if len(m) == 0 {
		return 0
	}
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return float64(n) / float64(len(m))
}

func (m Marginal) draw(rng *rand.Rand) bool {
	return m[rng.Intn(len(m))]
}

// Generator draws independent daily weather samples. The windy and sunny
// flags come from two separate marginal draws; no correlation between them
// is modelled. All entropy comes from a single *rand.Rand owned by the
// generator, so a run is reproducible under a fixed seed as long as the
// caller preserves draw order.
type Generator struct {
	windy Marginal
	sunny Marginal
	rng   *rand.Rand
}

// New builds a generator over the given marginals. A positive seed makes
// the stream deterministic; otherwise the current time is used.
func New(windy, sunny Marginal, seed int64) (*Generator, error) {
	if err := windy.Validate(); err != nil {
		return nil, fmt.Errorf("windy: %w", err)
	}
	if err := sunny.Validate(); err != nil {
		return nil, fmt.Errorf("sunny: %w", err)
	}
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		windy: windy,
		sunny: sunny,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Draw samples one day's weather. The windy marginal is drawn before the
// sunny one; the order is part of the reproducibility contract.
func (g *Generator) Draw() race.Weather {
	w := g.windy.draw(g.rng)
	s := g.sunny.draw(g.rng)
	return race.Weather{Windy: w, Sunny: s}
}

// DrawN samples n days of weather in index order.
func (g *Generator) DrawN(n int) []race.Weather {
	ws := make([]race.Weather, n)
	for i := range ws {
		ws[i] = g.Draw()
	}
	return ws
}
