// Package voxel: sentinel error set.
// All constructors and validators return these sentinels; callers match
// them via errors.Is. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary.

package voxel

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows, no columns or no planes.
	ErrEmptyGrid = errors.New("voxel: grid must have at least one row and one column")

	// ErrNonRectangular indicates 2D/3D slice input with rows (or planes)
	// of differing lengths.
	ErrNonRectangular = errors.New("voxel: all rows must have the same length")

	// ErrInvalidConnectivity indicates a connectivity value outside the
	// enumerated set for the grid's dimensionality (4/8 in 2D, 6/18/26 in 3D).
	ErrInvalidConnectivity = errors.New("voxel: connectivity not defined for grid dimensionality")

	// ErrDimensionMismatch indicates two grids (intensity vs marker, mask,
	// or output) whose Dims differ.
	ErrDimensionMismatch = errors.New("voxel: grid dimensions differ")
)
