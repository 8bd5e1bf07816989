// Command gray-export runs a headless reaction-diffusion simulation and
// writes heatmap PNGs, an MJPEG video and a mass-over-time chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"graypde/internal/export"
	"graypde/internal/field"
	"graypde/internal/render"
	"graypde/internal/sims/grayscott"
)

func main() {
	width := flag.Int("width", 256, "grid width")
	height := flag.Int("height", 256, "grid height")
	seed := flag.Int64("seed", 1337, "seed for the initial state")
	steps := flag.Int("steps", 2000, "iterations to simulate")
	every := flag.Int("record", 20, "iterations between video frames")
	fps := flag.Int("fps", 25, "video frame rate")
	snapshots := flag.Int("snapshots", 6, "evenly spaced killer heatmaps to write")
	outDir := flag.String("out", "output", "output directory")
	feed := flag.Float64("feed", 0, "feed rate override (0 keeps the default)")
	kill := flag.Float64("kill", 0, "kill rate override (0 keeps the default)")
	flag.Parse()

	overrides := map[string]string{
		"w":    strconv.Itoa(*width),
		"h":    strconv.Itoa(*height),
		"seed": strconv.FormatInt(*seed, 10),
	}
	if *feed > 0 {
		overrides["feed"] = strconv.FormatFloat(*feed, 'g', -1, 64)
	}
	if *kill > 0 {
		overrides["kill"] = strconv.FormatFloat(*kill, 'g', -1, 64)
	}
	cfg := grayscott.FromMap(overrides)

	if stable := cfg.Params.StableStep(); cfg.Params.Dt > stable {
		log.Printf("warning: dt=%g exceeds the explicit stability bound %g; expect blow-up", cfg.Params.Dt, stable)
	}

	world := grayscott.NewWithConfig(cfg)
	world.Reset(*seed)

	model, err := grayscott.NewModel(cfg.Params, cfg.Boundary, cfg.Stencil)
	if err != nil {
		log.Fatalf("model: %v", err)
	}

	history, err := grayscott.NewDriver(model).Run(
		interiorRows(world.Feeder()), interiorRows(world.Killer()), *steps, *every)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	feederSnaps, err := history.Snapshots(grayscott.SeriesFeeder)
	if err != nil {
		log.Fatalf("history: %v", err)
	}
	killerSnaps, err := history.Snapshots(grayscott.SeriesKiller)
	if err != nil {
		log.Fatalf("history: %v", err)
	}
	frames, err := history.Frames(grayscott.SeriesFrame)
	if err != nil {
		log.Fatalf("history: %v", err)
	}

	final := len(killerSnaps) - 1
	title := fmt.Sprintf("iteration %d", final)
	if err := export.HeatmapPNG(feederSnaps[final], cfg.Params.Dx, "feeder, "+title,
		filepath.Join(*outDir, "feeder_final.png")); err != nil {
		log.Fatalf("heatmap: %v", err)
	}
	for _, idx := range snapshotIndices(len(killerSnaps), *snapshots) {
		name := fmt.Sprintf("killer_%06d.png", idx)
		if err := export.HeatmapPNG(killerSnaps[idx], cfg.Params.Dx,
			fmt.Sprintf("killer, iteration %d", idx),
			filepath.Join(*outDir, name)); err != nil {
			log.Fatalf("heatmap: %v", err)
		}
	}

	if err := export.VideoMJPEG(frames, render.HeatPalette(256), *fps,
		filepath.Join(*outDir, "killer.avi")); err != nil {
		log.Fatalf("video: %v", err)
	}

	if err := export.MassChartPNG(feederSnaps, killerSnaps, 1,
		filepath.Join(*outDir, "mass.png")); err != nil {
		log.Fatalf("chart: %v", err)
	}

	log.Printf("wrote %d snapshots and %d frames to %s", len(killerSnaps), len(frames), *outDir)
}

// snapshotIndices picks up to count evenly spaced indices out of n,
// always including the final one.
func snapshotIndices(n, count int) []int {
	if n == 0 || count < 1 {
		return nil
	}
	if count > n {
		count = n
	}
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		idx := i * (n - 1) / count
		if len(out) > 0 && out[len(out)-1] == idx {
			continue
		}
		out = append(out, idx)
	}
	if out[len(out)-1] != n-1 {
		out = append(out, n-1)
	}
	return out
}

// interiorRows copies a padded grid's interior into per-row slices.
func interiorRows(g *field.Grid) [][]float64 {
	rows := make([][]float64, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]float64, g.W)
		copy(row, g.Row(y+1)[1:g.W+1])
		rows[y] = row
	}
	return rows
}
