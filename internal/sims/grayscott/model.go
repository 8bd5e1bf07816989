package grayscott

import "graypde/internal/field"

// Model advances a coupled (feeder, killer) field pair by explicit Euler
// steps of the Gray-Scott equations:
//
//	feeder' = feeder + dt·(Df·∇²feeder − feeder·killer² + F·(1−feeder))
//	killer' = killer + dt·(Dk·∇²killer + feeder·killer² − (F+K)·killer)
//
// The model owns its parameters, stencil and boundary policy for its
// lifetime and re-applies the boundary to both updated fields after
// every step.
type Model struct {
	params   Params
	boundary field.Boundary
	stencil  field.Stencil
}

// NewModel validates the parameters and boundary up front so that Step
// cannot fail on configuration.
func NewModel(p Params, bc field.Boundary, s field.Stencil) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if bc.Kind == field.Dirichlet && bc.Edges == nil {
		return nil, field.ErrMissingEdges
	}
	return &Model{params: p, boundary: bc, stencil: s}, nil
}

// Params returns the immutable parameter set.
func (m *Model) Params() Params { return m.params }

// Boundary returns the active boundary policy.
func (m *Model) Boundary() field.Boundary { return m.boundary }

// Stencil returns the Laplacian neighborhood in use.
func (m *Model) Stencil() field.Stencil { return m.stencil }

// Step produces the next (feeder, killer) pair. Inputs must share shape
// and hold enforced halos; outputs are fresh grids of the same shape
// with freshly enforced halos. The inputs are not modified.
func (m *Model) Step(feeder, killer *field.Grid) (*field.Grid, *field.Grid, error) {
	if !feeder.SameShape(killer) {
		return nil, nil, field.ErrShapeMismatch
	}

	lapF := field.Laplacian(feeder, m.stencil, m.params.Dx)
	lapK := field.Laplacian(killer, m.stencil, m.params.Dx)

	nextF := field.NewGrid(feeder.W, feeder.H)
	nextK := field.NewGrid(killer.W, killer.H)

	dt := m.params.Dt
	df := m.params.DiffFeeder
	dk := m.params.DiffKiller
	feed := m.params.Feed
	decay := m.params.Feed + m.params.Kill

	for y := 1; y <= feeder.H; y++ {
		fRow := feeder.Row(y)
		kRow := killer.Row(y)
		lfRow := lapF.Row(y)
		lkRow := lapK.Row(y)
		nfRow := nextF.Row(y)
		nkRow := nextK.Row(y)
		for x := 1; x <= feeder.W; x++ {
			f := fRow[x]
			k := kRow[x]
			value := f * k * k
			nfRow[x] = f + dt*(df*lfRow[x]-value+feed*(1-f))
			nkRow[x] = k + dt*(dk*lkRow[x]+value-decay*k)
		}
	}

	if err := m.boundary.Apply(nextF); err != nil {
		return nil, nil, err
	}
	if err := m.boundary.Apply(nextK); err != nil {
		return nil, nil, err
	}
	return nextF, nextK, nil
}
