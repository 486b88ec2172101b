// Package watershed: sentinel error set.
// Structural violations (nil inputs, connectivity, shape) are rejected
// before any transient allocation; algorithmic outcomes (unreachable
// voxels) are represented in the output, not as errors. Shape and
// connectivity failures surface the voxel package's sentinels.

package watershed

import "errors"

var (
	// ErrNilGrid indicates a nil intensity grid.
	ErrNilGrid = errors.New("watershed: intensity grid is nil")

	// ErrNilMarkers indicates a nil marker grid passed to the
	// marker-controlled engine.
	ErrNilMarkers = errors.New("watershed: marker grid is nil")

	// ErrEmptyMarkerSet indicates that no positive marker voxel lies
	// inside the mask. The engine still returns the (all-Unlabeled) label
	// grid; callers may treat this as "no markers reachable" rather than
	// a hard failure.
	ErrEmptyMarkerSet = errors.New("watershed: no marker voxels inside mask")

	// ErrUnknownStrategy indicates a Strategy value outside the
	// enumerated set.
	ErrUnknownStrategy = errors.New("watershed: unknown flooding strategy")
)
