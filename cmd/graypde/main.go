//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"graypde/internal/app"
	"graypde/internal/core"
	_ "graypde/internal/sims/grayscott"
	_ "graypde/internal/sims/heat"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	set := flag.String("set", "", "comma-separated key=value overrides, e.g. feed=0.03,kill=0.06")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q, available: %s", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(parseOverrides(*set))
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.TPS)
	size := sim.Size()

	ebiten.SetWindowTitle("graypde — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func parseOverrides(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			log.Fatalf("malformed override %q, expected key=value", pair)
		}
		out[k] = v
	}
	return out
}
