package viz

import (
	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// Plot renders series as an ASCII line chart. Series longer than the plot
// width are resampled by asciigraph.
func Plot(series []float64, caption string) string {
	if len(series) == 0 {
		return Subtle.Render("no samples")
	}
	return asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
