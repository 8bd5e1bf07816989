package field

import (
	"errors"
	"slices"
	"testing"
)

func TestEmbedPadsInterior(t *testing.T) {
	interior := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	g, err := Embed(interior, Boundary{Kind: Neumann})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if g.W != 3 || g.H != 2 {
		t.Fatalf("expected 3x2 interior, got %dx%d", g.W, g.H)
	}
	if len(g.Values()) != 5*4 {
		t.Fatalf("expected padded size 20, got %d", len(g.Values()))
	}
	for y, row := range interior {
		for x, want := range row {
			if got := g.At(x+1, y+1); got != want {
				t.Fatalf("interior (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEmbedRejectsInvalidInterior(t *testing.T) {
	cases := [][][]float64{
		nil,
		{},
		{{}},
		{{1, 2}, {3}},
	}
	for i, interior := range cases {
		if _, err := Embed(interior, Boundary{Kind: Periodic}); !errors.Is(err, ErrInvalidInterior) {
			t.Fatalf("case %d: expected ErrInvalidInterior, got %v", i, err)
		}
	}
}

func TestInteriorExcludesHalo(t *testing.T) {
	g, err := Embed([][]float64{{1, 2}, {3, 4}}, Boundary{Kind: Periodic})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	want := []float64{1, 2, 3, 4}
	if got := g.Interior(); !slices.Equal(got, want) {
		t.Fatalf("Interior() = %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := Embed([][]float64{{1, 2}, {3, 4}}, Boundary{Kind: Neumann})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	c := g.Clone()
	c.Set(1, 1, 99)
	if g.At(1, 1) != 1 {
		t.Fatal("mutating a clone must not affect the original grid")
	}
	if !g.SameShape(c) {
		t.Fatal("clone must preserve shape")
	}
}
