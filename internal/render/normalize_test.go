package render

import (
	"slices"
	"testing"
)

func TestNormalizeSpansFullRange(t *testing.T) {
	got := Normalize([]float64{0, 0.5, 1})
	want := []uint8{0, 127, 255}
	if !slices.Equal(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeIgnoresAbsoluteScale(t *testing.T) {
	a := Normalize([]float64{10, 20, 30})
	b := Normalize([]float64{-1, 0, 1})
	if !slices.Equal(a, b) {
		t.Fatalf("normalization should be scale-free: %v vs %v", a, b)
	}
}

func TestNormalizeUniformFallsBackToMidGray(t *testing.T) {
	got := Normalize([]float64{0.4, 0.4, 0.4, 0.4})
	for i, v := range got {
		if v != 128 {
			t.Fatalf("pixel %d = %d, want 128", i, v)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("Normalize(nil) = %v, want empty", got)
	}
}

func TestFillPaletteRGBAClampsToLastEntry(t *testing.T) {
	palette := HeatPalette(4)
	buf := make([]byte, 4*2)
	FillPaletteRGBA(buf, []uint8{0, 9}, palette)

	first := palette[0]
	last := palette[3]
	if buf[0] != first.R || buf[1] != first.G || buf[2] != first.B || buf[3] != 0xff {
		t.Fatalf("pixel 0 = %v, want %v", buf[:4], first)
	}
	if buf[4] != last.R || buf[5] != last.G || buf[6] != last.B || buf[7] != 0xff {
		t.Fatalf("pixel 1 = %v, want %v", buf[4:], last)
	}
}

func TestHeatPaletteEndpoints(t *testing.T) {
	palette := HeatPalette(256)
	if len(palette) != 256 {
		t.Fatalf("palette length = %d, want 256", len(palette))
	}
	cold := palette[0]
	hot := palette[255]
	if cold.B <= cold.R {
		t.Fatalf("cold end should be blue-dominant, got %+v", cold)
	}
	if hot.R <= hot.B {
		t.Fatalf("hot end should be red-dominant, got %+v", hot)
	}
}

func TestPaletteImageDimensions(t *testing.T) {
	img := PaletteImage([]uint8{0, 128, 255, 64}, 2, 2, GrayPalette(256))
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}
	if img.Pix[0] != 0 {
		t.Fatalf("first pixel R = %d, want 0", img.Pix[0])
	}
}
