// Package chamfer: the two-sweep weighted distance transform.

package chamfer

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/morphogrid/morphogrid/voxel"
)

// DistanceMap computes the chamfer distance map of bin using the preset's
// integer (short) weights. Each true voxel receives the minimal weighted
// distance to the nearest false voxel; false voxels hold 0. The result is
// un-normalized: values are exact integer sums of short weights, stored in
// a float grid. Foreground voxels with no background voxel anywhere in the
// grid keep +Inf.
//
// Returns ErrNilGrid for nil input and ErrWeightCount when the weight
// count does not fit the grid's dimensionality (see package doc).
// Complexity: O(N×m) time, O(N) memory.
func DistanceMap(bin *voxel.Mask, w Weights) (*voxel.Grid, error) {
	return distanceMap(bin, w.floatsFromShorts())
}

// DistanceMapFloat computes the chamfer distance map using the preset's
// float weights and normalizes the result by the first weight, so a unit
// axial step costs exactly 1. Same contract as DistanceMap otherwise.
func DistanceMapFloat(bin *voxel.Mask, w Weights) (*voxel.Grid, error) {
	out, err := distanceMap(bin, w.floats)
	if err != nil {
		return nil, err
	}
	if w.floats[0] != 1 {
		floats.Scale(1/w.floats[0], out.Data)
	}

	return out, nil
}

// floatsFromShorts widens the short weights for propagation arithmetic.
// Integer sums below 2^53 stay exact in float64.
func (w Weights) floatsFromShorts() []float64 {
	out := make([]float64, len(w.shorts))
	for i, s := range w.shorts {
		out[i] = float64(s)
	}

	return out
}

// woff is one causal neighbor step of a sweep mask: a relative offset and
// its local distance increment.
type woff struct {
	dx, dy, dz int
	w          float64
}

// distanceMap validates, builds the causal mask and runs both sweeps.
func distanceMap(bin *voxel.Mask, wts []float64) (*voxel.Grid, error) {
	if bin == nil {
		return nil, ErrNilGrid
	}
	if len(wts) < 2 || len(wts) > 3 {
		return nil, ErrWeightCount
	}
	d := bin.Dims
	out, err := voxel.NewGrid(d)
	if err != nil {
		return nil, err
	}
	for i, fg := range bin.Data {
		if fg {
			out.Data[i] = math.Inf(1)
		}
	}

	mask := causalMask(d.Is3D(), wts)
	sweep(d, bin.Data, out.Data, mask, false)
	sweep(d, bin.Data, out.Data, mask, true)

	return out, nil
}

// causalMask returns the "already visited" half of the neighborhood for a
// forward raster sweep; the backward sweep mirrors it. Two weights cover
// the axial and diagonal classes. A third weight adds chess-knight moves
// in 2D; in 3D it weights the corner class, which otherwise reuses the
// diagonal weight.
func causalMask(is3D bool, wts []float64) []woff {
	w0, w1 := wts[0], wts[1]
	w2 := w1
	if len(wts) == 3 {
		w2 = wts[2]
	}

	var m []woff
	if is3D {
		// Full 3×3 window of the previous plane.
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				w := w0
				switch abs(dx) + abs(dy) {
				case 1:
					w = w1
				case 2:
					w = w2
				}
				m = append(m, woff{dx: dx, dy: dy, dz: -1, w: w})
			}
		}
	} else if len(wts) == 3 {
		// Chess-knight moves land two rows or two columns back, so they
		// are causal in a forward sweep.
		m = append(m,
			woff{dx: -1, dy: -2, w: w2},
			woff{dx: 1, dy: -2, w: w2},
			woff{dx: -2, dy: -1, w: w2},
			woff{dx: 2, dy: -1, w: w2},
		)
	}
	// In-plane causal half of the 8-neighborhood.
	m = append(m,
		woff{dx: -1, dy: -1, w: w1},
		woff{dx: 0, dy: -1, w: w0},
		woff{dx: 1, dy: -1, w: w1},
		woff{dx: -1, dy: 0, w: w0},
	)

	return m
}

// sweep runs one raster relaxation pass. Forward visits voxels in
// increasing index order using the causal mask as-is; backward visits in
// decreasing order with every offset negated. Background voxels are fixed
// at 0 and only serve as propagation sources.
func sweep(d voxel.Dims, fg []bool, dist []float64, mask []woff, backward bool) {
	sign := 1
	start, end, step := 0, d.Len(), 1
	if backward {
		sign = -1
		start, end, step = d.Len()-1, -1, -1
	}
	for idx := start; idx != end; idx += step {
		if !fg[idx] {
			continue
		}
		x, y, z := d.Coords(idx)
		best := dist[idx]
		for _, o := range mask {
			nx, ny, nz := x+sign*o.dx, y+sign*o.dy, z+sign*o.dz
			if !d.InBounds(nx, ny, nz) {
				continue
			}
			if cand := dist[d.Index(nx, ny, nz)] + o.w; cand < best {
				best = cand
			}
		}
		dist[idx] = best
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
