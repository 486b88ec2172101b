// Package watershed: options, the Strategy enumeration and functional
// configuration for both flooding engines.

package watershed

import "github.com/morphogrid/morphogrid/voxel"

// Strategy selects the flooding mechanics of the marker-controlled
// engine. Both strategies share the label-resolution rule and produce
// bit-identical label grids for identical inputs; they differ only in
// cost profile.
type Strategy int

const (
	// PriorityQueue floods from a binary heap keyed by (level, insertion
	// sequence). No upfront work; O(log n) per queue operation.
	PriorityQueue Strategy = iota

	// SortedList floods from per-level FIFO buckets built over one upfront
	// sort of the candidate intensity levels. O(1) queue operations after
	// the sort, at the price of the sort and bucket bookkeeping.
	SortedList
)

// String returns the strategy name for logs and error context.
func (s Strategy) String() string {
	switch s {
	case PriorityQueue:
		return "priority-queue"
	case SortedList:
		return "sorted-list"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the enumerated strategies.
func (s Strategy) valid() bool { return s == PriorityQueue || s == SortedList }

// Options configures a single transform invocation.
//
//   - Conn: neighbor connectivity; the zero value means "auto" (Conn4 for
//     2D grids, Conn6 for 3D grids).
//   - Mask: optional region of interest; nil means the whole grid. Voxels
//     with mask false never enter the flooding and stay Unlabeled.
//   - Strategy: marker-controlled flooding mechanics, ignored by the
//     unmarked engine. Default PriorityQueue.
type Options struct {
	Conn     voxel.Connectivity
	Mask     *voxel.Mask
	Strategy Strategy
}

// Option is a functional option for configuring a transform invocation.
type Option func(*Options)

// WithConnectivity sets the neighbor connectivity. The value is validated
// against the grid's dimensionality when the transform starts; invalid
// values fail with voxel.ErrInvalidConnectivity.
func WithConnectivity(c voxel.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithMask restricts the transform to the given region of interest.
// The mask's shape is validated against the intensity grid.
func WithMask(m *voxel.Mask) Option {
	return func(o *Options) { o.Mask = m }
}

// WithStrategy selects the marker-controlled flooding strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// DefaultOptions returns the documented defaults: auto connectivity,
// no mask, PriorityQueue strategy.
func DefaultOptions() Options {
	return Options{
		Conn:     0, // resolved per grid dimensionality at validation time
		Mask:     nil,
		Strategy: PriorityQueue,
	}
}

// gatherOptions applies functional options over the defaults and resolves
// auto connectivity for the given shape.
func gatherOptions(d voxel.Dims, opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Conn == 0 {
		if d.Is3D() {
			cfg.Conn = voxel.Conn6
		} else {
			cfg.Conn = voxel.Conn4
		}
	}

	return cfg
}
