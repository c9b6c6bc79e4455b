// Package report turns completed fleets into summary statistics and series
// for external display. It never mutates the fleets it reads.
package report

import (
	"math/rand"

	"github.com/san-kum/regatta/internal/race"
)

// DistanceAt returns a boat's distance on the given day. Days beyond the
// recorded history return the final recorded distance: positions are held
// flat after arrival, never undefined.
func DistanceAt(b *race.Boat, day int) int {
	h := b.History()
	if day < 0 {
		return h[0]
	}
	if day >= len(h) {
		return h[len(h)-1]
	}
	return h[day]
}

// Sample draws up to k distinct boats from the fleet, in random order.
func Sample(f *race.Fleet, k int, rng *rand.Rand) []*race.Boat {
	boats := f.Boats()
	if k > len(boats) {
		k = len(boats)
	}
	if k <= 0 {
		return nil
	}
	picked := make([]*race.Boat, 0, k)
	for _, idx := range rng.Perm(len(boats))[:k] {
		picked = append(picked, boats[idx])
	}
	return picked
}

// MeanSeries returns the fleet's mean distance for each day 0..days,
// extrapolating arrived boats flat at their final position.
func MeanSeries(f *race.Fleet, days int) []float64 {
	if f.Size() == 0 {
		return nil
	}
	series := make([]float64, days+1)
	for day := 0; day <= days; day++ {
		sum := 0
		for _, b := range f.Boats() {
			sum += DistanceAt(b, day)
		}
		series[day] = float64(sum) / float64(f.Size())
	}
	return series
}

// Summary aggregates days-to-finish and final distances across a fleet.
type Summary struct {
	Boats     int
	MinDays   int
	MaxDays   int
	MeanDays  float64
	MinFinal  int
	MaxFinal  int
	MeanFinal float64
}

func Summarize(f *race.Fleet) Summary {
	s := Summary{Boats: f.Size()}
	if f.Size() == 0 {
		return s
	}

	daySum, finalSum := 0, 0
	for i, b := range f.Boats() {
		days := b.Days()
		final := b.Position()
		if i == 0 {
			s.MinDays, s.MaxDays = days, days
			s.MinFinal, s.MaxFinal = final, final
		}
		if days < s.MinDays {
			s.MinDays = days
		}
		if days > s.MaxDays {
			s.MaxDays = days
		}
		if final < s.MinFinal {
			s.MinFinal = final
		}
		if final > s.MaxFinal {
			s.MaxFinal = final
		}
		daySum += days
		finalSum += final
	}
	s.MeanDays = float64(daySum) / float64(f.Size())
	s.MeanFinal = float64(finalSum) / float64(f.Size())
	return s
}
