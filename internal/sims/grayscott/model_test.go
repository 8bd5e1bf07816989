package grayscott

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"graypde/internal/field"
)

func referenceParams() Params {
	return Params{
		Dt:         1,
		Dx:         1,
		DiffFeeder: 0.1,
		DiffKiller: 0.05,
		Feed:       0.0545,
		Kill:       0.062,
	}
}

func mustModel(t *testing.T, p Params, bc field.Boundary, s field.Stencil) *Model {
	t.Helper()
	m, err := NewModel(p, bc, s)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func constantInterior(w, h int, v float64) [][]float64 {
	interior := make([][]float64, h)
	for y := range interior {
		interior[y] = make([]float64, w)
		for x := range interior[y] {
			interior[y][x] = v
		}
	}
	return interior
}

func interiorSum(g *field.Grid) float64 {
	sum := 0.0
	for _, v := range g.Interior() {
		sum += v
	}
	return sum
}

func TestNewModelRejectsInvalidParams(t *testing.T) {
	cases := []Params{
		{Dt: 0, Dx: 1},
		{Dt: -1, Dx: 1},
		{Dt: 1, Dx: 0},
		{Dt: 1, Dx: 1, DiffFeeder: -0.1},
		{Dt: 1, Dx: 1, Feed: math.NaN()},
		{Dt: math.Inf(1), Dx: 1},
	}
	for i, p := range cases {
		if _, err := NewModel(p, field.Boundary{Kind: field.Periodic}, field.Moore); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestNewModelRejectsDirichletWithoutEdges(t *testing.T) {
	_, err := NewModel(referenceParams(), field.Boundary{Kind: field.Dirichlet}, field.Moore)
	if !errors.Is(err, field.ErrMissingEdges) {
		t.Fatalf("expected ErrMissingEdges, got %v", err)
	}
}

func TestStepRejectsShapeMismatch(t *testing.T) {
	bc := field.Boundary{Kind: field.Periodic}
	m := mustModel(t, referenceParams(), bc, field.Moore)

	f, err := field.Embed(constantInterior(4, 4, 1), bc)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	k, err := field.Embed(constantInterior(3, 4, 0), bc)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if _, _, err := m.Step(f, k); !errors.Is(err, field.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestStepPreservesShape(t *testing.T) {
	bc := field.Boundary{Kind: field.Periodic}
	m := mustModel(t, referenceParams(), bc, field.Moore)

	shapes := [][2]int{{1, 1}, {1, 5}, {3, 2}, {8, 8}}
	for _, shape := range shapes {
		f, err := field.Embed(constantInterior(shape[0], shape[1], 1), bc)
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}
		k, err := field.Embed(constantInterior(shape[0], shape[1], 0.5), bc)
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}
		nf, nk, err := m.Step(f, k)
		if err != nil {
			t.Fatalf("Step %v: %v", shape, err)
		}
		if !nf.SameShape(f) || !nk.SameShape(k) {
			t.Fatalf("shape %v not preserved: got %dx%d and %dx%d", shape, nf.W, nf.H, nk.W, nk.H)
		}
	}
}

// Diffusion alone redistributes mass on a periodic domain without
// creating or destroying it. With feed and kill at zero and one species
// held at zero the reaction term vanishes and the other species' total
// interior mass must stay constant.
func TestMassConservationPeriodicDiffusionOnly(t *testing.T) {
	params := referenceParams()
	params.Feed = 0
	params.Kill = 0
	bc := field.Boundary{Kind: field.Periodic}

	for _, stencil := range []field.Stencil{field.VonNeumann, field.Moore} {
		m := mustModel(t, params, bc, stencil)

		rng := rand.New(rand.NewSource(42))
		interior := make([][]float64, 8)
		for y := range interior {
			interior[y] = make([]float64, 8)
			for x := range interior[y] {
				interior[y][x] = rng.Float64()
			}
		}

		f, err := field.Embed(interior, bc)
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}
		k, err := field.Embed(constantInterior(8, 8, 0), bc)
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}

		initialFeeder := interiorSum(f)
		for step := 0; step < 50; step++ {
			f, k, err = m.Step(f, k)
			if err != nil {
				t.Fatalf("%s: step %d: %v", stencil, step, err)
			}
		}
		if got := interiorSum(f); math.Abs(got-initialFeeder) > 1e-9 {
			t.Fatalf("%s: feeder mass drifted from %v to %v", stencil, initialFeeder, got)
		}
		if got := interiorSum(k); got != 0 {
			t.Fatalf("%s: killer mass appeared from nothing: %v", stencil, got)
		}
	}
}

// Hand-computed single step for the reference scenario: a 4x4 periodic
// domain, feeder at 1 everywhere, killer zero except one seeded cell,
// Moore stencil, dt = dx = 1.
func TestStepSeededCellHandComputed(t *testing.T) {
	params := referenceParams()
	bc := field.Boundary{Kind: field.Periodic}
	m := mustModel(t, params, bc, field.Moore)

	killerInterior := constantInterior(4, 4, 0)
	killerInterior[1][1] = 1

	f, err := field.Embed(constantInterior(4, 4, 1), bc)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	k, err := field.Embed(killerInterior, bc)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	nf, nk, err := m.Step(f, k)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	const eps = 1e-12
	decay := params.Feed + params.Kill

	// Seeded cell (padded coords (2,2)): the killer Laplacian is -8, the
	// reaction contributes feeder*killer^2 = 1, flow removes (F+K)*killer.
	wantSeedKiller := 1 + params.Dt*(params.DiffKiller*(-8)+1-decay*1)
	if got := nk.At(2, 2); math.Abs(got-wantSeedKiller) > eps {
		t.Fatalf("seeded killer = %v, want %v", got, wantSeedKiller)
	}
	// The feeder at the seed is fully consumed: 1 + (0 - 1 + F*(1-1)) = 0.
	if got := nf.At(2, 2); math.Abs(got) > eps {
		t.Fatalf("seeded feeder = %v, want 0", got)
	}

	// Every Moore neighbor of the seed receives exactly Dk·1/dx² scaled
	// by dt; its reaction and flow are zero because killer was zero there.
	wantNeighbor := params.Dt * params.DiffKiller
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if got := nk.At(2+dx, 2+dy); math.Abs(got-wantNeighbor) > eps {
				t.Fatalf("neighbor (%d,%d) killer = %v, want %v", dx, dy, got, wantNeighbor)
			}
		}
	}

	// Cells outside the seed's neighborhood see no killer at all; the
	// feeder there only feels its own (zero) flow since feeder is 1.
	if got := nk.At(4, 4); got != 0 {
		t.Fatalf("far killer = %v, want 0", got)
	}
	if got := nf.At(4, 4); math.Abs(got-1) > eps {
		t.Fatalf("far feeder = %v, want 1", got)
	}
}

func TestStepDoesNotMutateInputs(t *testing.T) {
	bc := field.Boundary{Kind: field.Periodic}
	m := mustModel(t, referenceParams(), bc, field.Moore)

	killerInterior := constantInterior(4, 4, 0)
	killerInterior[2][2] = 1
	f, _ := field.Embed(constantInterior(4, 4, 1), bc)
	k, _ := field.Embed(killerInterior, bc)

	fBefore := append([]float64(nil), f.Values()...)
	kBefore := append([]float64(nil), k.Values()...)

	if _, _, err := m.Step(f, k); err != nil {
		t.Fatalf("Step: %v", err)
	}

	for i := range fBefore {
		if f.Values()[i] != fBefore[i] || k.Values()[i] != kBefore[i] {
			t.Fatal("Step must not mutate its input grids")
		}
	}
}

func TestStableStep(t *testing.T) {
	p := referenceParams()
	want := 1.0 / (4 * 0.1)
	if got := p.StableStep(); math.Abs(got-want) > 1e-15 {
		t.Fatalf("StableStep = %v, want %v", got, want)
	}
	p.DiffFeeder, p.DiffKiller = 0, 0
	if !math.IsInf(p.StableStep(), 1) {
		t.Fatal("zero diffusion should report an unbounded stable step")
	}
}

func BenchmarkStepMoore(b *testing.B) {
	bc := field.Boundary{Kind: field.Periodic}
	m, err := NewModel(referenceParams(), bc, field.Moore)
	if err != nil {
		b.Fatalf("NewModel: %v", err)
	}
	killerInterior := constantInterior(128, 128, 0)
	killerInterior[64][64] = 1
	f, _ := field.Embed(constantInterior(128, 128, 1), bc)
	k, _ := field.Embed(killerInterior, bc)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, k, err = m.Step(f, k)
		if err != nil {
			b.Fatal(err)
		}
	}
}
