package weather

import "github.com/san-kum/regatta/internal/race"

// Fixed replays a scripted weather sequence, cycling back to the start once
// exhausted. Useful for demos with known conditions; tests mostly script
// their own sources.
type Fixed struct {
	seq []race.Weather
	i   int
}

func NewFixed(seq ...race.Weather) *Fixed {
	return &Fixed{seq: seq}
}

func (f *Fixed) Draw() race.Weather {
	w := f.seq[f.i%len(f.seq)]
	f.i++
	return w
}

func (f *Fixed) DrawN(n int) []race.Weather {
	ws := make([]race.Weather, n)
	for i := range ws {
		ws[i] = f.Draw()
	}
	return ws
}
