// Package voxel: core grid types and the connectivity enumeration.

package voxel

// Unlabeled and WatershedLine are the reserved label values of a Labels
// grid. Positive values are basin/region identifiers.
const (
	// Unlabeled marks background voxels and voxels excluded by a mask.
	Unlabeled int32 = 0

	// WatershedLine marks dam voxels where two or more basins meet.
	// A dam voxel never receives a basin label.
	WatershedLine int32 = -1
)

// Dims describes the shape of a grid: width, height and depth.
// Depth 1 means a 2D grid. The row-major index of (x,y,z) is
// z·W·H + y·W + x.
type Dims struct {
	W, H, D int
}

// Len returns the total number of voxels, W·H·D.
func (d Dims) Len() int { return d.W * d.H * d.D }

// Is3D reports whether the grid has more than one plane.
func (d Dims) Is3D() bool { return d.D > 1 }

// Index maps (x,y,z) to the row-major flat index. Complexity: O(1).
func (d Dims) Index(x, y, z int) int { return (z*d.H+y)*d.W + x }

// Coords converts a flat index back to (x,y,z). Complexity: O(1).
func (d Dims) Coords(idx int) (x, y, z int) {
	x = idx % d.W
	idx /= d.W
	y = idx % d.H
	z = idx / d.H

	return x, y, z
}

// InBounds reports whether (x,y,z) lies within the grid. Complexity: O(1).
func (d Dims) InBounds(x, y, z int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H && z >= 0 && z < d.D
}

// Equal reports whether two shapes match exactly.
func (d Dims) Equal(o Dims) bool { return d == o }

// Grid is a dense scalar (intensity) grid. Data is row-major and has
// exactly Dims.Len() elements.
type Grid struct {
	Dims Dims
	Data []float64
}

// Labels is a dense label grid sharing the shape of the intensity grid it
// was derived from. Values: Unlabeled, WatershedLine, or positive ids.
type Labels struct {
	Dims Dims
	Data []int32
}

// Mask is a dense boolean region-of-interest grid. Voxels with value
// false are excluded from processing. A nil *Mask means "whole grid".
type Mask struct {
	Dims Dims
	Data []bool
}

// Connectivity selects the neighbor-adjacency rule. The numeric values
// match the conventional neighbor counts (and the values accepted by the
// classic morphology tools): 4/8 for 2D grids, 6/18/26 for 3D grids.
type Connectivity int

const (
	// Conn4 uses the 4 edge-adjacent neighbors of a 2D pixel.
	Conn4 Connectivity = 4
	// Conn6 uses the 6 face-adjacent neighbors of a 3D voxel.
	Conn6 Connectivity = 6
	// Conn8 uses all 8 neighbors of a 2D pixel, diagonals included.
	Conn8 Connectivity = 8
	// Conn18 uses face- and edge-adjacent neighbors of a 3D voxel.
	Conn18 Connectivity = 18
	// Conn26 uses the full 3×3×3 neighborhood of a 3D voxel minus the center.
	Conn26 Connectivity = 26
)

// Offset is one relative neighbor step. Class is the chamfer distance
// class of the step: 0 for axis-aligned, 1 for face/plane diagonals,
// 2 for 3D corner diagonals (or 2D chess-knight moves in chamfer masks).
type Offset struct {
	DX, DY, DZ int
	Class      int
}
