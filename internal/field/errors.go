package field

import "errors"

// Domain errors for grid and boundary operations.
var (
	// ErrInvalidInterior indicates an empty or ragged interior field.
	ErrInvalidInterior = errors.New("field: interior must be rectangular and non-empty")

	// ErrMissingEdges indicates a Dirichlet boundary selected without its
	// four edge values.
	ErrMissingEdges = errors.New("field: dirichlet boundary requires edge values")

	// ErrShapeMismatch indicates two grids whose interior dimensions disagree.
	ErrShapeMismatch = errors.New("field: grid shapes do not match")
)
