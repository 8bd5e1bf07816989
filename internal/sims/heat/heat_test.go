package heat

import (
	"slices"
	"testing"
)

func TestHeatBleedsInFromHotEdge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 8
	cfg.Edges.Left = 100

	world := NewWithConfig(cfg)
	world.Reset(0)
	world.Step()

	// After one step only the column adjacent to the hot halo has warmed.
	temp := world.Temperature()
	want := cfg.Params.Dt * cfg.Params.Alpha * 100
	for y := 1; y <= 8; y++ {
		if got := temp.At(1, y); got != want {
			t.Fatalf("left interior column (1,%d) = %v, want %v", y, got, want)
		}
		if got := temp.At(2, y); got != 0 {
			t.Fatalf("second column (2,%d) = %v, want 0", y, got)
		}
	}
}

func TestHeatMonotoneTowardSteadyState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 8

	world := NewWithConfig(cfg)
	world.Reset(0)

	prev := 0.0
	for i := 0; i < 40; i++ {
		world.Step()
		sum := 0.0
		for _, v := range world.Temperature().Interior() {
			sum += v
		}
		if sum < prev {
			t.Fatalf("step %d: total heat decreased from %v to %v with a hot edge and cold interior", i, prev, sum)
		}
		prev = sum
	}
	if prev == 0 {
		t.Fatal("heat never entered the domain")
	}
}

func TestHeatResetDeterministic(t *testing.T) {
	world := New(16, 16)
	world.Reset(0)
	world.Step()
	world.Step()
	after := append([]float64(nil), world.Temperature().Values()...)

	world.Reset(0)
	world.Step()
	world.Step()
	if !slices.Equal(after, world.Temperature().Values()) {
		t.Fatal("heat evolution must be deterministic")
	}
}

func TestHeatDisplayTracksField(t *testing.T) {
	world := New(8, 8)
	world.Reset(0)
	world.Step()

	cells := world.Cells()
	// Hottest cells sit against the left edge, coldest at the right.
	if cells[0] <= cells[7] {
		t.Fatalf("expected left cell hotter than right: %d vs %d", cells[0], cells[7])
	}
}
