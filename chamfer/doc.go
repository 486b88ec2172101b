// Package chamfer computes weighted chamfer distance transforms of binary
// voxel grids: each foreground voxel receives its minimal weighted path
// distance to the nearest background voxel, background voxels hold 0.
//
// The transform is the classic two-sweep raster relaxation. A forward
// sweep visits voxels in increasing raster order and relaxes from the
// already-visited ("causal") half of the neighborhood; a backward sweep
// visits in decreasing order and relaxes from the remaining half. Because
// the weight set is monotone in neighbor distance class, two sweeps reach
// the exact discrete chamfer distance.
//
// Weight sets come from a closed registry of named presets pinned to the
// conventional values — Chessboard (1,1), City-Block (1,2),
// Quasi-Euclidean (10,14 / 1,√2), Borgefors (3,4), Weights (2,3),
// Weights (5,7) and Chessknight (5,7,11) — or from Custom sequences.
// Each preset carries integer ("short") weights and float weights.
// DistanceMap propagates the un-normalized short weights;
// DistanceMapFloat propagates the float weights and normalizes the result
// by the first weight, so one axial step costs exactly 1.
//
// Weight-count contract: two weights cover the axial and diagonal classes
// (in 3D the corner class reuses the diagonal weight); a third weight adds
// the chess-knight class in 2D or the corner class in 3D. Any other count
// fails with ErrWeightCount before allocation.
//
// Complexity:
//
//   - Time:  O(N×m) for N voxels and mask size m (two sweeps)
//   - Space: O(N) for the output grid; no other transient state
//
// The transform is a pure function of its input: running it twice on the
// same grid yields identical results.
package chamfer
