package field

// Grid stores a 2D scalar field in row-major order with a one-cell halo
// border on every side. The interior spans x in [1..W] and y in [1..H];
// row 0, row H+1, column 0 and column W+1 are halo cells owned by the
// active boundary policy.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given interior dimensions.
func NewGrid(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, (w+2)*(h+2))}
}

// Embed copies a rectangular interior field into a freshly allocated
// halo-padded grid and applies the boundary policy once. The halo is
// zero before enforcement.
func Embed(interior [][]float64, bc Boundary) (*Grid, error) {
	if len(interior) == 0 || len(interior[0]) == 0 {
		return nil, ErrInvalidInterior
	}
	w := len(interior[0])
	for _, row := range interior {
		if len(row) != w {
			return nil, ErrInvalidInterior
		}
	}
	g := NewGrid(w, len(interior))
	for y, row := range interior {
		copy(g.Row(y+1)[1:w+1], row)
	}
	if err := bc.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Stride returns the padded row length.
func (g *Grid) Stride() int { return g.W + 2 }

// Values exposes the backing slice, halo included.
func (g *Grid) Values() []float64 { return g.data }

// Row returns the full padded row y, halo columns included.
func (g *Grid) Row(y int) []float64 {
	s := g.Stride()
	return g.data[y*s : (y+1)*s]
}

// At reads the cell at padded coordinates (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.Stride()+x] }

// Set writes the cell at padded coordinates (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[y*g.Stride()+x] = v }

// SameShape reports whether both grids share interior dimensions.
func (g *Grid) SameShape(o *Grid) bool { return g.W == o.W && g.H == o.H }

// Interior copies the interior cells into a new row-major slice of
// length W*H, halo excluded.
func (g *Grid) Interior() []float64 {
	out := make([]float64, g.W*g.H)
	for y := 1; y <= g.H; y++ {
		copy(out[(y-1)*g.W:y*g.W], g.Row(y)[1:g.W+1])
	}
	return out
}

// Clone returns a deep copy of the grid, halo included.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}
