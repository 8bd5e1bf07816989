package field

// BoundaryKind enumerates the supported boundary policies.
type BoundaryKind uint8

const (
	// Periodic wraps edges so the domain is topologically toroidal.
	Periodic BoundaryKind = iota
	// Dirichlet pins each edge to a fixed value.
	Dirichlet
	// Neumann copies the adjacent interior cells into the halo,
	// approximating a zero normal derivative.
	Neumann
)

// String identifies the boundary kind.
func (k BoundaryKind) String() string {
	switch k {
	case Periodic:
		return "periodic"
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	}
	return "unknown"
}

// EdgeValues carries the four fixed scalars used by a Dirichlet boundary,
// one value per edge.
type EdgeValues struct {
	Top, Bottom, Left, Right float64
}

// Boundary selects a boundary policy. Edges is required when Kind is
// Dirichlet and ignored otherwise.
type Boundary struct {
	Kind  BoundaryKind
	Edges *EdgeValues
}

// Apply enforces the boundary policy on the grid's halo cells in place.
// The interior must already hold valid values. Enforcement is idempotent.
//
// All policies run a row pass over the full padded width followed by a
// column pass over the full padded height, so the column pass owns the
// corner cells. For the periodic policy the row pass has already wrapped
// the halo rows when the column pass runs, which leaves each corner
// holding the diagonally wrapped interior value.
func (b Boundary) Apply(g *Grid) error {
	switch b.Kind {
	case Periodic:
		b.applyPeriodic(g)
	case Dirichlet:
		if b.Edges == nil {
			return ErrMissingEdges
		}
		b.applyDirichlet(g)
	case Neumann:
		b.applyNeumann(g)
	}
	return nil
}

func (b Boundary) applyPeriodic(g *Grid) {
	copy(g.Row(0), g.Row(g.H))
	copy(g.Row(g.H+1), g.Row(1))
	for y := 0; y <= g.H+1; y++ {
		row := g.Row(y)
		row[0] = row[g.W]
		row[g.W+1] = row[1]
	}
}

func (b Boundary) applyDirichlet(g *Grid) {
	top := g.Row(0)
	bottom := g.Row(g.H + 1)
	for x := range top {
		top[x] = b.Edges.Top
		bottom[x] = b.Edges.Bottom
	}
	for y := 0; y <= g.H+1; y++ {
		row := g.Row(y)
		row[0] = b.Edges.Left
		row[g.W+1] = b.Edges.Right
	}
}

func (b Boundary) applyNeumann(g *Grid) {
	copy(g.Row(0), g.Row(1))
	copy(g.Row(g.H+1), g.Row(g.H))
	for y := 0; y <= g.H+1; y++ {
		row := g.Row(y)
		row[0] = row[1]
		row[g.W+1] = row[g.W]
	}
}
