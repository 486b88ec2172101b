// Package watershed segments an intensity grid into labeled catchment
// basins by flooding simulation, in 2D or 3D under any of the enumerated
// connectivities.
//
// Two engines are provided:
//
//   - Compute — the unmarked watershed transform of Vincent & Soille:
//     voxels are processed level by level in non-decreasing intensity
//     order; basins grow breadth-first inside each level, new regional
//     minima mint fresh basin ids, and voxels touched by two or more
//     basins become one-voxel-wide watershed lines (dams).
//
//   - ComputeWithMarkers — the marker-controlled (Meyer) variant: flooding
//     starts from caller-supplied labeled seeds, no new ids are minted,
//     and dams form where distinct marker basins meet. Voxels with no
//     marker-connected path inside the mask stay Unlabeled; that is a
//     legitimate terminal state, not an error.
//
// The marker-controlled engine offers two flooding strategies that are
// contractually equivalent — identical inputs produce bit-identical label
// grids — and differ only in ordering mechanics:
//
//   - PriorityQueue — a binary heap keyed by (intensity level, insertion
//     sequence); O(log n) per operation, no upfront work.
//   - SortedList — one upfront sort of all candidate levels into FIFO
//     buckets, then O(1) pushes and pops; trades the sort and a bucket
//     cursor for heap-free steady state.
//
// Both run the exact same flood loop over one shared label-resolution
// routine, so the dam/growth rule exists in a single place.
//
// Determinism is part of the contract: neighbor order is fixed (voxel
// package), flooding is FIFO within an intensity level, and reruns
// reproduce the same labeling down to each dam voxel.
//
// Inputs are read-only for the duration of one call; the output grid and
// all transient state (queue, state arena) belong to the running
// invocation, so concurrent calls over different outputs are safe.
//
// Complexity:
//
//   - Time:  O(N log N) for the initial ordering plus O(N×d) flooding,
//     where N is the voxel count and d the connectivity degree
//     (PriorityQueue pays O(log N) per push/pop instead of the sort).
//   - Space: O(N) for labels, state arena and queue.
package watershed
