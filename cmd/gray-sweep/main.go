// Command gray-sweep explores the (feed, kill) parameter plane and
// reports which combinations sustain spatial patterns instead of dying
// out or saturating.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"graypde/internal/sims/grayscott"
)

type paramSet struct {
	feed float64
	kill float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("feed=%.4f kill=%.4f", p.feed, p.kill)
}

type scenarioResult struct {
	params     paramSet
	killerMass float64
	killerMin  float64
	killerMax  float64
	variance   float64
}

// alive means the killer species neither died out nor filled the whole
// domain at one level.
func (r scenarioResult) alive() bool {
	return r.killerMass > 1e-6 && r.variance > 1e-8
}

func main() {
	steps := flag.Int("steps", 2000, "iterations per scenario")
	size := flag.Int("size", 96, "grid side length")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	baseCfg := grayscott.DefaultConfig()
	baseCfg.Width = *size
	baseCfg.Height = *size

	if stable := baseCfg.Params.StableStep(); baseCfg.Params.Dt > stable {
		fmt.Printf("warning: dt=%g exceeds the explicit stability bound %g\n", baseCfg.Params.Dt, stable)
	}

	feedOptions := []float64{0.020, 0.030, 0.0545, 0.060, 0.070, 0.080}
	killOptions := []float64{0.050, 0.055, 0.060, 0.062, 0.065, 0.070}

	var sets []paramSet
	for _, f := range feedOptions {
		for _, k := range killOptions {
			sets = append(sets, paramSet{feed: f, kill: k})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d grid)\n",
		len(sets), *workers, *steps, *size, *size)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if res.alive() {
			fmt.Printf("Pattern candidate: %s mass=%.2f var=%.5f\n", res.params, res.killerMass, res.variance)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].variance > all[j].variance })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 by spatial variance (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) %s mass=%.2f range=[%.4f, %.4f] var=%.5f alive=%v\n",
			i+1, res.params, res.killerMass, res.killerMin, res.killerMax, res.variance, res.alive())
	}
}

func runScenario(base grayscott.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Params.Feed = params.feed
	cfg.Params.Kill = params.kill

	world := grayscott.NewWithConfig(cfg)
	world.Reset(cfg.Seed)
	for i := 0; i < steps; i++ {
		world.Step()
	}

	killer := world.Killer().Interior()
	return scenarioResult{
		params:     params,
		killerMass: floats.Sum(killer),
		killerMin:  floats.Min(killer),
		killerMax:  floats.Max(killer),
		variance:   stat.Variance(killer, nil),
	}
}
