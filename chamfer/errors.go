// Package chamfer: sentinel error set.
// All public entry points return these sentinels (or voxel's) and tests
// check them via errors.Is.

package chamfer

import "errors"

var (
	// ErrNilGrid indicates a nil binary input grid.
	ErrNilGrid = errors.New("chamfer: binary grid is nil")

	// ErrUnknownPreset indicates a weight-preset label that is not in the
	// registry. Returned by FromLabel.
	ErrUnknownPreset = errors.New("chamfer: unknown weight preset label")

	// ErrWeightCount indicates a weight sequence whose length does not
	// match the neighbor distance classes of the grid's dimensionality
	// (2 or 3 weights are accepted).
	ErrWeightCount = errors.New("chamfer: weight count does not match neighbor distance classes")

	// ErrNonMonotonicWeights indicates a weight sequence that is not
	// positive and non-decreasing with distance class, which would break
	// the two-sweep convergence guarantee.
	ErrNonMonotonicWeights = errors.New("chamfer: weights must be positive and non-decreasing")
)
