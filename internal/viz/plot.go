package viz

import (
	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotSeries renders one fleet's mean-distance curve.
func PlotSeries(series []float64, caption string) string {
	return asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotCompare overlays the two fleets' mean-distance curves on one graph:
// wind-only first, wind-solar second.
func PlotCompare(windOnly, windSolar []float64, caption string) string {
	return asciigraph.PlotMany([][]float64{windOnly, windSolar},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Goldenrod),
	)
}
