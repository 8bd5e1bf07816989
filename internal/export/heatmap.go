// Package export writes simulation output to disk: heatmap PNGs of
// concentration fields, MJPEG videos from recorded frames, and line
// charts of species mass over time.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"graypde/internal/sims/grayscott"
)

// fieldGrid exposes a recorded snapshot as a plotter.GridXYZ. Rows are
// stored top to bottom, so Y flips the row index to keep the plot
// oriented like the viewer.
type fieldGrid struct {
	snap grayscott.Snapshot
	dx   float64
}

func (g fieldGrid) Dims() (c, r int)   { return g.snap.W, g.snap.H }
func (g fieldGrid) Z(c, r int) float64 { return g.snap.Data[(g.snap.H-1-r)*g.snap.W+c] }
func (g fieldGrid) X(c int) float64    { return float64(c) * g.dx }
func (g fieldGrid) Y(r int) float64    { return float64(r) * g.dx }

// HeatmapPNG renders a concentration snapshot as a heatmap and writes
// it to path.
func HeatmapPNG(snap grayscott.Snapshot, dx float64, title, path string) error {
	if len(snap.Data) != snap.W*snap.H {
		return fmt.Errorf("export: snapshot is %dx%d but holds %d values", snap.W, snap.H, len(snap.Data))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pal := moreland.Kindlmann().Palette(255)
	p.Add(plotter.NewHeatMap(fieldGrid{snap: snap, dx: dx}, pal))

	return savePNG(p, 6.0, 6.0, path)
}

// savePNG renders a plot onto a raster canvas and writes it out.
// Dimensions are in inches.
func savePNG(p *plot.Plot, wIn, hIn float64, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(wIn)*vg.Inch, vg.Length(hIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("export: write png: %w", err)
	}
	return nil
}
