// Package voxel provides the dense grid primitives shared by the chamfer
// and watershed packages: scalar intensity grids, label grids, boolean
// masks, and neighbor connectivity over 2D and 3D integer lattices.
//
// A grid is a flat row-major slice plus its Dims (width, height, depth);
// depth 1 means 2D. Index mapping is z·W·H + y·W + x, so a parallel
// per-voxel array indexed by the same scheme stays cache-friendly for
// large 3D volumes.
//
// Connectivity is the enumerated neighbor-adjacency rule: Conn4/Conn8 in
// 2D, Conn6/Conn18/Conn26 in 3D. Offsets enumerates the neighbor offset
// set of a connectivity in a fixed raster-scan order. The order is part
// of the package contract: flooding algorithms tie-break on it, and the
// same inputs must reproduce the same labeling run after run.
//
// All offset sets are symmetric (if b is a neighbor of a, then a is a
// neighbor of b) and exclude the center voxel.
//
// Complexity: index mapping and bounds checks are O(1); neighbor
// enumeration is O(d) where d is the connectivity degree.
package voxel
