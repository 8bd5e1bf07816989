package export

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"graypde/internal/sims/grayscott"
)

// MassSeries reduces a snapshot series to total mass per recorded
// iteration, scaled by the record interval so the X axis reads in
// iterations.
func MassSeries(snaps []grayscott.Snapshot, nPerRecord int) (xs, ys []float64) {
	xs = make([]float64, len(snaps))
	ys = make([]float64, len(snaps))
	for i, s := range snaps {
		xs[i] = float64(i * nPerRecord)
		ys[i] = floats.Sum(s.Data)
	}
	return xs, ys
}

// MassChartPNG plots feeder and killer total mass over the run and
// writes the chart to path.
func MassChartPNG(feeder, killer []grayscott.Snapshot, nPerRecord int, path string) error {
	if len(feeder) == 0 || len(killer) == 0 {
		return fmt.Errorf("export: no snapshots to chart")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}

	fx, fy := MassSeries(feeder, nPerRecord)
	kx, ky := MassSeries(killer, nPerRecord)

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis:  chart.XAxis{Name: "iteration"},
		YAxis:  chart.YAxis{Name: "total mass"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "feeder",
				XValues: fx,
				YValues: fy,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "killer",
				XValues: kx,
				YValues: ky,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create chart: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("export: render chart: %w", err)
	}
	return nil
}
