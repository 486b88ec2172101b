package chamfer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morphogrid/morphogrid/chamfer"
)

// TestAllLabels verifies the canonical registry order is stable.
func TestAllLabels(t *testing.T) {
	want := []string{
		"Chessboard (1,1)",
		"City-Block (1,2)",
		"Quasi-Euclidean (1,1.41)",
		"Borgefors (3,4)",
		"Weights (2,3)",
		"Weights (5,7)",
		"Chessknight (5,7,11)",
	}
	assert.Equal(t, want, chamfer.AllLabels(), "registry order must be canonical")
}

// TestFromLabel resolves presets case-insensitively and rejects unknowns.
func TestFromLabel(t *testing.T) {
	w, err := chamfer.FromLabel("borgefors (3,4)")
	assert.NoError(t, err, "known label should resolve")
	assert.Equal(t, []int16{3, 4}, w.Shorts(), "Borgefors short weights")

	_, err = chamfer.FromLabel("no-such-preset")
	assert.ErrorIs(t, err, chamfer.ErrUnknownPreset, "unknown label must error")
}

// TestPresetWeights pins the published weight values.
func TestPresetWeights(t *testing.T) {
	assert.Equal(t, []int16{1, 1}, chamfer.Chessboard.Shorts())
	assert.Equal(t, []int16{1, 2}, chamfer.CityBlock.Shorts())
	assert.Equal(t, []int16{10, 14}, chamfer.QuasiEuclidean.Shorts())
	assert.Equal(t, []int16{5, 7, 11}, chamfer.Chessknight.Shorts())

	f := chamfer.QuasiEuclidean.Floats()
	assert.Equal(t, 1.0, f[0], "quasi-Euclidean axial float weight")
	assert.InDelta(t, math.Sqrt2, f[1], 1e-12, "quasi-Euclidean diagonal float weight")
}

// TestWeights_AccessorsCopy ensures mutating an accessor result does not
// corrupt the shared preset.
func TestWeights_AccessorsCopy(t *testing.T) {
	s := chamfer.Borgefors.Shorts()
	s[0] = 99
	assert.Equal(t, []int16{3, 4}, chamfer.Borgefors.Shorts(), "presets must stay immutable")
}

// TestCustom_Validation covers the Custom constructor's error paths.
func TestCustom_Validation(t *testing.T) {
	_, err := chamfer.Custom("too short", []int16{1}, nil)
	assert.ErrorIs(t, err, chamfer.ErrWeightCount, "single weight must error")

	_, err = chamfer.Custom("too long", []int16{1, 2, 3, 4}, nil)
	assert.ErrorIs(t, err, chamfer.ErrWeightCount, "four weights must error")

	_, err = chamfer.Custom("float mismatch", []int16{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, chamfer.ErrWeightCount, "float length must match")

	_, err = chamfer.Custom("decreasing", []int16{4, 3}, nil)
	assert.ErrorIs(t, err, chamfer.ErrNonMonotonicWeights, "decreasing weights must error")

	_, err = chamfer.Custom("non-positive", []int16{0, 1}, nil)
	assert.ErrorIs(t, err, chamfer.ErrNonMonotonicWeights, "zero axial weight must error")

	w, err := chamfer.Custom("mine (2,3)", []int16{2, 3}, nil)
	assert.NoError(t, err, "valid custom set should construct")
	assert.Equal(t, "mine (2,3)", w.Label())
	assert.Equal(t, []float64{2, 3}, w.Floats(), "floats default to widened shorts")
}
