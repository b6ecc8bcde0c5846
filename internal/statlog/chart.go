package statlog

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"galapagos/internal/render"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewRounds is returned when a history is too short to plot.
var ErrTooFewRounds = errors.New("need at least two recorded rounds")

// ChartOptions sizes a population chart.
type ChartOptions struct {
	Width  int
	Height int
	Title  string
}

// DefaultChartOptions returns a chart sized for a report.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 960, Height: 480}
}

// WriteChart renders the population of every kind in rows, one line per kind
// in the kind's grid color, as a PNG.
func WriteChart(w io.Writer, rows []HistoryRow, opts ChartOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultChartOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	byKind := make(map[string]*chart.ContinuousSeries)
	rounds := make(map[int]struct{})
	peak := 1.0
	for _, r := range rows {
		s, ok := byKind[r.Kind]
		if !ok {
			s = &chart.ContinuousSeries{Name: r.Kind, Style: seriesStyle(r.Kind)}
			byKind[r.Kind] = s
		}
		s.XValues = append(s.XValues, float64(r.Round))
		s.YValues = append(s.YValues, float64(r.Population))
		peak = max(peak, float64(r.Population))
		rounds[r.Round] = struct{}{}
	}
	if len(rounds) < 2 {
		return ErrTooFewRounds
	}

	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	series := make([]chart.Series, 0, len(kinds))
	for _, k := range kinds {
		series = append(series, *byKind[k])
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "round",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "population",
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: peak * 1.05},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func seriesStyle(kind string) chart.Style {
	c := render.KindColor(kind)
	return chart.Style{
		StrokeColor: drawing.Color{R: c.R, G: c.G, B: c.B, A: 255},
		StrokeWidth: 2,
	}
}
