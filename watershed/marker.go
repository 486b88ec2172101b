// Package watershed: the marker-controlled (Meyer) flooding transform.

package watershed

import (
	"github.com/morphogrid/morphogrid/voxel"
)

// ComputeWithMarkers runs the marker-controlled watershed transform:
// flooding starts from the positive voxels of the marker grid, only
// marker ids propagate (no new basins are minted), and dams form where
// distinct marker basins meet. A marker id's voxels seed one basin
// regardless of their spatial connectivity. Voxels outside the mask stay
// voxel.Unlabeled; so do in-mask voxels with no marker-connected path,
// which is a legitimate terminal state.
//
// The flooding strategy (Options.Strategy) selects the queue mechanics
// only; both strategies share the label-resolution routine and return
// bit-identical label grids for identical inputs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. markers must be non-nil (ErrNilMarkers).
//  3. Strategy must be enumerated (ErrUnknownStrategy).
//  4. Connectivity must fit g's dimensionality (voxel.ErrInvalidConnectivity).
//  5. markers and an optional mask must share g's shape
//     (voxel.ErrDimensionMismatch).
//
// If no positive marker voxel lies inside the mask, the all-Unlabeled
// label grid is returned together with ErrEmptyMarkerSet; callers may
// treat that as "no markers reachable" rather than a failure.
//
// Complexity:
//
//   - Time:  O(N×d log N) with PriorityQueue, O(N log N + N×d) with SortedList
//   - Space: O(N)
func ComputeWithMarkers(g *voxel.Grid, markers *voxel.Labels, opts ...Option) (*voxel.Labels, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if markers == nil {
		return nil, ErrNilMarkers
	}
	cfg := gatherOptions(g.Dims, opts)
	if !cfg.Strategy.valid() {
		return nil, ErrUnknownStrategy
	}
	if !markers.Dims.Equal(g.Dims) {
		return nil, voxel.ErrDimensionMismatch
	}
	f, err := newFlooder(g, cfg.Mask, cfg.Conn)
	if err != nil {
		return nil, err
	}

	// The SortedList strategy sorts the candidate level universe upfront:
	// every in-mask intensity that could ever be queued.
	var levels []float64
	if cfg.Strategy == SortedList {
		levels = make([]float64, 0, g.Dims.Len())
		for idx := 0; idx < g.Dims.Len(); idx++ {
			if f.inROI(idx) {
				levels = append(levels, f.data[idx])
			}
		}
	}
	queue := newFloodQueue(cfg.Strategy, levels, g.Dims.Len())

	// Seed: every in-mask marker voxel enters labeled, queued at its own
	// intensity level, in scan order (the FIFO tie-break baseline).
	seeded := 0
	for idx := 0; idx < g.Dims.Len(); idx++ {
		if !f.inROI(idx) || markers.Data[idx] <= 0 {
			continue
		}
		f.lab[idx] = markers.Data[idx]
		f.state[idx] = stateLabeled
		queue.push(idx, f.data[idx])
		seeded++
	}
	if seeded == 0 {
		return f.labels(), ErrEmptyMarkerSet
	}

	// Flood: pop the lowest level (FIFO within a level). Non-seed voxels
	// resolve against their labeled neighborhood — growth or dam — and
	// only labeled voxels recruit their untouched in-mask neighbors, so a
	// popped voxel always has at least one labeled neighbor.
	for {
		p, ok := queue.pop()
		if !ok {
			break
		}
		if f.state[p] == stateQueued {
			f.resolve(p)
			if f.state[p] != stateLabeled {
				continue
			}
		}
		for _, q := range f.neighbors(p) {
			if f.inROI(q) && f.state[q] == stateInit {
				f.state[q] = stateQueued
				queue.push(q, f.data[q])
			}
		}
	}

	return f.labels(), nil
}
