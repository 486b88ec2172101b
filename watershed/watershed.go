// Package watershed: the unmarked Vincent–Soille flooding transform.

package watershed

import (
	"sort"

	"github.com/morphogrid/morphogrid/voxel"
)

// Compute runs the unmarked watershed transform on intensity grid g and
// returns the label grid: catchment basins carry sequential ids starting
// at 1, dam voxels carry voxel.WatershedLine, voxels outside the mask
// stay voxel.Unlabeled.
//
// Algorithm (Vincent & Soille, flooding simulation): in-mask voxels are
// ordered once by (intensity, scan index) and processed level by level.
// Within a level, voxels adjacent to already-flooded territory propagate
// breadth-first in FIFO order — basin growth where all labeled neighbors
// agree, a dam where two basins compete; the classical flag rule lets a
// voxel dammed only by dam neighbors still join a basin discovered later
// in the same level. Voxels of the level that no flood reached form new
// regional minima: each connected plateau of them mints the next basin id.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Connectivity must fit g's dimensionality (voxel.ErrInvalidConnectivity).
//  3. An optional mask must share g's shape (voxel.ErrDimensionMismatch).
//
// Complexity:
//
//   - Time:  O(N log N) sort + O(N×d) flooding
//   - Space: O(N)
func Compute(g *voxel.Grid, opts ...Option) (*voxel.Labels, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := gatherOptions(g.Dims, opts)
	f, err := newFlooder(g, cfg.Mask, cfg.Conn)
	if err != nil {
		return nil, err
	}

	// One upfront ordering; ties resolve by scan index so reruns flood in
	// the same order.
	order := make([]int, 0, g.Dims.Len())
	for idx := 0; idx < g.Dims.Len(); idx++ {
		if f.inROI(idx) {
			order = append(order, idx)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return f.data[order[i]] < f.data[order[j]]
	})

	var (
		fifo    []int
		head    int
		nextLab int32
	)
	for i := 0; i < len(order); {
		// The current level is the run of equal intensities [i, j).
		j := i
		h := f.data[order[i]]
		for j < len(order) && f.data[order[j]] == h {
			j++
		}

		// Mark the level pending, then queue every voxel of it that
		// already touches flooded territory.
		for k := i; k < j; k++ {
			f.state[order[k]] = statePending
		}
		fifo, head = fifo[:0], 0
		for k := i; k < j; k++ {
			p := order[k]
			if f.touchesFlooded(p) {
				f.state[p] = stateQueued
				fifo = append(fifo, p)
			}
		}

		// Geodesic breadth-first propagation inside the level.
		for head < len(fifo) {
			p := fifo[head]
			head++
			flag := false
			for _, q := range f.neighbors(p) {
				if !f.inROI(q) {
					continue
				}
				switch f.state[q] {
				case stateLabeled:
					if f.state[p] == stateQueued || (f.state[p] == stateWshed && flag) {
						f.lab[p] = f.lab[q]
						f.state[p] = stateLabeled
					} else if f.state[p] == stateLabeled && f.lab[p] != f.lab[q] {
						f.lab[p] = voxel.WatershedLine
						f.state[p] = stateWshed
						flag = false
					}
				case stateWshed:
					if f.state[p] == stateQueued {
						f.lab[p] = voxel.WatershedLine
						f.state[p] = stateWshed
						flag = true
					}
				case statePending:
					f.state[q] = stateQueued
					fifo = append(fifo, q)
				}
			}
		}

		// Unreached voxels of the level are new regional minima: flood
		// each connected plateau with a fresh basin id.
		for k := i; k < j; k++ {
			p := order[k]
			if f.state[p] != statePending {
				continue
			}
			nextLab++
			f.lab[p] = nextLab
			f.state[p] = stateLabeled
			fifo, head = fifo[:0], 0
			fifo = append(fifo, p)
			for head < len(fifo) {
				q := fifo[head]
				head++
				for _, r := range f.neighbors(q) {
					if f.inROI(r) && f.state[r] == statePending {
						f.lab[r] = nextLab
						f.state[r] = stateLabeled
						fifo = append(fifo, r)
					}
				}
			}
		}

		i = j
	}

	return f.labels(), nil
}

// touchesFlooded reports whether any in-mask neighbor of p is already
// labeled or a dam — the condition for p to enter the level's FIFO.
func (f *flooder) touchesFlooded(p int) bool {
	for _, q := range f.neighbors(p) {
		if !f.inROI(q) {
			continue
		}
		if f.state[q] == stateLabeled || f.state[q] == stateWshed {
			return true
		}
	}

	return false
}
