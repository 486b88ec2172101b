// Package watershed: shared flooding machinery — the per-voxel state
// arena, the single label-resolution routine, and the two floodQueue
// implementations behind the Strategy enumeration.

package watershed

import (
	"container/heap"
	"sort"

	"github.com/morphogrid/morphogrid/voxel"
)

// Per-voxel states. Stored in a flat []uint8 arena parallel to the grid
// so large 3D runs stay cache-friendly. Transitions are one-way
// (init→pending→queued→labeled|wshed) except the Vincent–Soille flag
// path, which may re-label a just-dammed voxel within the same level.
const (
	stateInit    uint8 = iota // untouched (or outside the mask, forever)
	statePending              // unmarked engine: current-level voxel awaiting flood
	stateQueued               // sitting in the flood queue
	stateLabeled              // carries a basin id in lab
	stateWshed                // dam voxel, lab == voxel.WatershedLine
)

// flooder bundles one invocation's read-only inputs and transient state.
// Nothing in it survives the call.
type flooder struct {
	dims   voxel.Dims
	data   []float64      // intensity, read-only
	inMask []bool         // nil means whole grid
	offs   []voxel.Offset // fixed neighbor order, tie-break bearing
	state  []uint8
	lab    []int32
	nbuf   []int // reusable neighbor buffer; never two live enumerations
}

// newFlooder validates connectivity and mask shape, then allocates the
// state arena and output labels. Fails before any transient allocation.
func newFlooder(g *voxel.Grid, mask *voxel.Mask, conn voxel.Connectivity) (*flooder, error) {
	offs, err := voxel.Offsets(conn, g.Dims)
	if err != nil {
		return nil, err
	}
	var inMask []bool
	if mask != nil {
		if !mask.Dims.Equal(g.Dims) {
			return nil, voxel.ErrDimensionMismatch
		}
		inMask = mask.Data
	}

	return &flooder{
		dims:   g.Dims,
		data:   g.Data,
		inMask: inMask,
		offs:   offs,
		state:  make([]uint8, g.Dims.Len()),
		lab:    make([]int32, g.Dims.Len()),
		nbuf:   make([]int, 0, len(offs)),
	}, nil
}

// inROI reports whether idx participates in the transform.
func (f *flooder) inROI(idx int) bool {
	return f.inMask == nil || f.inMask[idx]
}

// neighbors enumerates the in-bounds neighbors of idx into the shared
// buffer. The returned slice is valid until the next call.
func (f *flooder) neighbors(idx int) []int {
	f.nbuf = f.dims.AppendNeighbors(f.nbuf[:0], idx, f.offs)

	return f.nbuf
}

// resolve applies the shared growth/dam rule to a queued voxel p:
// exactly one distinct basin id among labeled neighbors grows the basin
// onto p; two or more distinct ids make p a dam; none leaves p queued
// (the caller decides whether that is terminal). This is the one routine
// both marker strategies share, so the rule cannot drift between them.
func (f *flooder) resolve(p int) {
	var first int32
	conflict := false
	for _, q := range f.neighbors(p) {
		if !f.inROI(q) || f.state[q] != stateLabeled {
			continue
		}
		switch {
		case first == 0:
			first = f.lab[q]
		case f.lab[q] != first:
			conflict = true
		}
	}
	switch {
	case conflict:
		f.state[p] = stateWshed
		f.lab[p] = voxel.WatershedLine
	case first != 0:
		f.state[p] = stateLabeled
		f.lab[p] = first
	}
}

// labels moves the result out of the flooder.
func (f *flooder) labels() *voxel.Labels {
	return &voxel.Labels{Dims: f.dims, Data: f.lab}
}

//----------------------------------------------------------------------------//
// Flood queues
//----------------------------------------------------------------------------//

// floodQueue is the ordering mechanics behind a marker-controlled flood.
// Pops must come out ordered by (level ascending, push sequence
// ascending) — i.e. lowest water level first, FIFO within a level. Both
// implementations honor that order exactly, which is what makes the two
// strategies bit-identical.
type floodQueue interface {
	push(idx int, level float64)
	pop() (idx int, ok bool)
}

// heapItem is one queued voxel in the PriorityQueue strategy.
type heapItem struct {
	level float64
	seq   int64
	idx   int
}

// heapQueue is a container/heap min-heap over (level, seq).
type heapQueue struct {
	items []heapItem
	seq   int64
}

func newHeapQueue(capacity int) *heapQueue {
	return &heapQueue{items: make([]heapItem, 0, capacity)}
}

func (h *heapQueue) push(idx int, level float64) {
	heap.Push(h, heapItem{level: level, seq: h.seq, idx: idx})
	h.seq++
}

func (h *heapQueue) pop() (int, bool) {
	if len(h.items) == 0 {
		return 0, false
	}

	return heap.Pop(h).(heapItem).idx, true
}

// Len, Less, Swap, Push, Pop implement heap.Interface.
func (h *heapQueue) Len() int { return len(h.items) }
func (h *heapQueue) Less(i, j int) bool {
	if h.items[i].level != h.items[j].level {
		return h.items[i].level < h.items[j].level
	}

	return h.items[i].seq < h.items[j].seq
}
func (h *heapQueue) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *heapQueue) Push(x interface{}) { h.items = append(h.items, x.(heapItem)) }
func (h *heapQueue) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}

// sortedQueue is the SortedList strategy: the distinct intensity levels
// of every candidate voxel are sorted once upfront; each level owns a
// FIFO bucket. push appends in O(1); pop scans from the active-level
// cursor, which moves backward when flooding spills into a valley below
// the current level (the re-queue case) and forward as buckets drain.
type sortedQueue struct {
	levels  []float64       // ascending distinct levels
	index   map[float64]int // level value → bucket position
	buckets [][]int
	heads   []int
	cur     int
}

// newSortedQueue builds the bucket index over the candidate values.
// Only levels present in values can ever be pushed.
func newSortedQueue(values []float64) *sortedQueue {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	levels := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			levels = append(levels, v)
		}
	}
	index := make(map[float64]int, len(levels))
	for i, v := range levels {
		index[v] = i
	}

	return &sortedQueue{
		levels:  levels,
		index:   index,
		buckets: make([][]int, len(levels)),
		heads:   make([]int, len(levels)),
	}
}

func (s *sortedQueue) push(idx int, level float64) {
	bi := s.index[level]
	s.buckets[bi] = append(s.buckets[bi], idx)
	if bi < s.cur {
		s.cur = bi // spill-over below the active level
	}
}

func (s *sortedQueue) pop() (int, bool) {
	for s.cur < len(s.buckets) {
		b := s.buckets[s.cur]
		h := s.heads[s.cur]
		if h < len(b) {
			s.heads[s.cur] = h + 1

			return b[h], true
		}
		s.cur++
	}

	return 0, false
}

// newFloodQueue dispatches on the strategy. values is the candidate level
// universe (every in-mask voxel's intensity); only SortedList needs it.
func newFloodQueue(strat Strategy, values []float64, capacity int) floodQueue {
	if strat == SortedList {
		return newSortedQueue(values)
	}

	return newHeapQueue(capacity)
}
