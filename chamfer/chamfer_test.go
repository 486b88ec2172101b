package chamfer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morphogrid/morphogrid/chamfer"
	"github.com/morphogrid/morphogrid/voxel"
)

// fg builds a 2D mask from 0/1 rows; 1 is foreground.
func fg(rows [][]int) *voxel.Mask {
	b := make([][]bool, len(rows))
	for y, row := range rows {
		b[y] = make([]bool, len(row))
		for x, v := range row {
			b[y][x] = v != 0
		}
	}
	m, err := voxel.MaskFrom2D(b)
	if err != nil {
		panic(err)
	}

	return m
}

// TestDistanceMap_NilGrid verifies the nil-input sentinel.
func TestDistanceMap_NilGrid(t *testing.T) {
	_, err := chamfer.DistanceMap(nil, chamfer.Borgefors)
	assert.ErrorIs(t, err, chamfer.ErrNilGrid, "nil grid must error")
}

// TestDistanceMap_ChessboardMonotone checks monotone growth away from the seed:
// 3×3 all-foreground with one background corner, chessboard weights.
func TestDistanceMap_ChessboardMonotone(t *testing.T) {
	bin := fg([][]int{
		{0, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	out, err := chamfer.DistanceMap(bin, chamfer.Chessboard)
	require.NoError(t, err)

	d := out.Dims
	assert.Equal(t, 0.0, out.Data[d.Index(0, 0, 0)], "background voxel holds 0")
	d11 := out.Data[d.Index(1, 1, 0)]
	d22 := out.Data[d.Index(2, 2, 0)]
	assert.Equal(t, 1.0, d11, "one chessboard step to the corner")
	assert.Equal(t, 2.0, d22, "two chessboard steps to the corner")
	assert.GreaterOrEqual(t, d22, d11, "distance must not decrease away from background")
}

// TestDistanceMap_Borgefors pins the full 3×3 field for (3,4) weights.
func TestDistanceMap_Borgefors(t *testing.T) {
	bin := fg([][]int{
		{0, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	out, err := chamfer.DistanceMap(bin, chamfer.Borgefors)
	require.NoError(t, err)

	want := []float64{
		0, 3, 6,
		3, 4, 7,
		6, 7, 8,
	}
	assert.Equal(t, want, out.Data, "Borgefors distances on 3×3 corner case")
}

// TestDistanceMap_CityBlockIsL1 verifies (1,2) weights reproduce the
// Manhattan distance to the background corner.
func TestDistanceMap_CityBlockIsL1(t *testing.T) {
	bin := fg([][]int{
		{0, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	out, err := chamfer.DistanceMap(bin, chamfer.CityBlock)
	require.NoError(t, err)

	d := out.Dims
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			assert.Equal(t, float64(x+y), out.Data[d.Index(x, y, 0)],
				"city-block distance at (%d,%d) must equal L1 norm", x, y)
		}
	}
}

// TestDistanceMap_Chessknight verifies the third weight wins where a
// knight move is shorter than axial+diagonal.
func TestDistanceMap_Chessknight(t *testing.T) {
	rows := make([][]int, 5)
	for y := range rows {
		rows[y] = []int{1, 1, 1, 1, 1}
	}
	rows[0][0] = 0
	out, err := chamfer.DistanceMap(fg(rows), chamfer.Chessknight)
	require.NoError(t, err)

	d := out.Dims
	assert.Equal(t, 11.0, out.Data[d.Index(1, 2, 0)], "knight move (1,2) costs 11, not 5+7")
	assert.Equal(t, 11.0, out.Data[d.Index(2, 1, 0)], "knight move (2,1) costs 11, not 5+7")
	assert.Equal(t, 7.0, out.Data[d.Index(1, 1, 0)], "diagonal step costs 7")
}

// TestDistanceMapFloat_QuasiEuclidean checks the normalized float result:
// axial steps cost 1 and diagonals √2.
func TestDistanceMapFloat_QuasiEuclidean(t *testing.T) {
	bin := fg([][]int{
		{0, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	out, err := chamfer.DistanceMapFloat(bin, chamfer.QuasiEuclidean)
	require.NoError(t, err)

	d := out.Dims
	assert.InDelta(t, 1.0, out.Data[d.Index(1, 0, 0)], 1e-12, "axial unit step")
	assert.InDelta(t, math.Sqrt2, out.Data[d.Index(1, 1, 0)], 1e-12, "diagonal √2 step")
	assert.InDelta(t, 2*math.Sqrt2, out.Data[d.Index(2, 2, 0)], 1e-12, "two diagonal steps")
}

// TestDistanceMapFloat_NormalizedByFirstWeight checks Borgefors floats are
// divided by the axial weight 3.
func TestDistanceMapFloat_NormalizedByFirstWeight(t *testing.T) {
	bin := fg([][]int{
		{0, 1},
		{1, 1},
	})
	out, err := chamfer.DistanceMapFloat(bin, chamfer.Borgefors)
	require.NoError(t, err)

	d := out.Dims
	assert.InDelta(t, 1.0, out.Data[d.Index(1, 0, 0)], 1e-12, "axial step normalizes to 1")
	assert.InDelta(t, 4.0/3.0, out.Data[d.Index(1, 1, 0)], 1e-12, "diagonal step normalizes to 4/3")
}

// TestDistanceMap_Idempotent verifies the transform is a pure function of
// its input.
func TestDistanceMap_Idempotent(t *testing.T) {
	bin := fg([][]int{
		{1, 1, 0, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 1},
	})
	a, err := chamfer.DistanceMap(bin, chamfer.Borgefors)
	require.NoError(t, err)
	b, err := chamfer.DistanceMap(bin, chamfer.Borgefors)
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data, "two runs on the same input must match")
}

// TestDistanceMap_AllForeground keeps +Inf when no background exists.
func TestDistanceMap_AllForeground(t *testing.T) {
	bin := fg([][]int{
		{1, 1},
		{1, 1},
	})
	out, err := chamfer.DistanceMap(bin, chamfer.Chessboard)
	require.NoError(t, err)
	for i, v := range out.Data {
		assert.True(t, math.IsInf(v, 1), "voxel %d should stay +Inf without background", i)
	}
}

// TestDistanceMap_3D exercises the volumetric sweep: 3×3×3 foreground with
// background center. Two weights make the corner class reuse the diagonal
// weight; a custom third weight overrides it.
func TestDistanceMap_3D(t *testing.T) {
	d := voxel.Dims{W: 3, H: 3, D: 3}
	bin, err := voxel.NewMask(d)
	require.NoError(t, err)
	for i := range bin.Data {
		bin.Data[i] = true
	}
	bin.Data[d.Index(1, 1, 1)] = false

	out, err := chamfer.DistanceMap(bin, chamfer.Borgefors)
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.Data[d.Index(0, 1, 1)], "face neighbor of background")
	assert.Equal(t, 4.0, out.Data[d.Index(0, 0, 1)], "edge-diagonal neighbor")
	assert.Equal(t, 4.0, out.Data[d.Index(0, 0, 0)], "corner reuses diagonal weight with 2-weight sets")

	w345, err := chamfer.Custom("svensson (3,4,5)", []int16{3, 4, 5}, nil)
	require.NoError(t, err)
	out, err = chamfer.DistanceMap(bin, w345)
	require.NoError(t, err)
	assert.Equal(t, 5.0, out.Data[d.Index(0, 0, 0)], "corner uses the third weight when supplied")
}
