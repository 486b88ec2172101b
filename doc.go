// Package morphogrid is a mathematical-morphology toolkit for 2D and 3D
// voxel grids: watershed segmentation by flooding simulation and chamfer
// distance transforms, the two workhorses of marker-based region splitting.
//
// 🚀 What is morphogrid?
//
//	A deterministic, in-memory library that brings together:
//		• voxel/     — dense 2D/3D grids, labels, masks and 4/8/6/18/26 connectivity
//		• chamfer/   — two-pass weighted distance maps with the classic named
//		               weight presets (Chessboard, Borgefors, Quasi-Euclidean, …)
//		• watershed/ — Vincent–Soille flooding (unmarked) and Meyer
//		               marker-controlled flooding with interchangeable
//		               priority-queue and sorted-list strategies
//
// ✨ Why choose morphogrid?
//
//   - Deterministic – fixed neighbor order and FIFO-within-level flooding,
//     reproducible down to the tie-break
//   - Pure Go core – no cgo, no image-container coupling: plain slices in, labels out
//   - Explicit errors – sentinel errors, errors.Is friendly, fail fast before
//     any transient allocation
//
// Typical flow:
//
//	binary mask ──chamfer──▶ distance grid ──invert──▶ watershed ──▶ labels
//
// See each subpackage's doc.go for algorithms, complexity and examples.
package morphogrid
