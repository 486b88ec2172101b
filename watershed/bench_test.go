package watershed_test

import (
	"math/rand"
	"testing"

	"github.com/morphogrid/morphogrid/voxel"
	"github.com/morphogrid/morphogrid/watershed"
)

// benchGrid builds a deterministic pseudo-random 2D grid with a limited
// level count, which keeps basin structure realistic.
func benchGrid(n int) *voxel.Grid {
	rng := rand.New(rand.NewSource(42))
	g := &voxel.Grid{
		Dims: voxel.Dims{W: n, H: n, D: 1},
		Data: make([]float64, n*n),
	}
	for i := range g.Data {
		g.Data[i] = float64(rng.Intn(64))
	}

	return g
}

// benchMarkers seeds a regular 16-point marker lattice.
func benchMarkers(n int) *voxel.Labels {
	mk := &voxel.Labels{
		Dims: voxel.Dims{W: n, H: n, D: 1},
		Data: make([]int32, n*n),
	}
	id := int32(0)
	for gy := 0; gy < 4; gy++ {
		for gx := 0; gx < 4; gx++ {
			id++
			x := gx*n/4 + n/8
			y := gy*n/4 + n/8
			mk.Data[mk.Dims.Index(x, y, 0)] = id
		}
	}

	return mk
}

// BenchmarkCompute measures the unmarked transform on a 512×512 grid.
func BenchmarkCompute(b *testing.B) {
	g := benchGrid(512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := watershed.Compute(g, watershed.WithConnectivity(voxel.Conn8)); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkComputeWithMarkers compares the two flooding strategies on the
// same 512×512 grid and marker lattice.
func BenchmarkComputeWithMarkers(b *testing.B) {
	g := benchGrid(512)
	mk := benchMarkers(512)

	for _, strat := range []watershed.Strategy{watershed.PriorityQueue, watershed.SortedList} {
		b.Run(strat.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := watershed.ComputeWithMarkers(g, mk, watershed.WithStrategy(strat)); err != nil {
					b.Fatalf("ComputeWithMarkers failed: %v", err)
				}
			}
		})
	}
}
