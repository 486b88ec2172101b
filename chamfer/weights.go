// Package chamfer: the closed registry of named chamfer weight presets.

package chamfer

import (
	"math"
	"strings"
)

// Weights is one chamfer weight set: an ordered short sequence with one
// entry per neighbor distance class (axial, diagonal, then corner or
// chess-knight), plus a float counterpart for closer Euclidean
// approximation. Values are immutable after construction; accessors
// return copies.
type Weights struct {
	label  string
	shorts []int16
	floats []float64
}

// Named presets, pinned to the conventional published values. The float
// sequence defaults to the short one except for QuasiEuclidean, which
// trades a normalization division for a true √2 diagonal step.
var (
	// Chessboard weights (1,1): L∞ distance.
	Chessboard = preset("Chessboard (1,1)", []int16{1, 1}, nil)
	// CityBlock weights (1,2): L1 distance.
	CityBlock = preset("City-Block (1,2)", []int16{1, 2}, nil)
	// QuasiEuclidean weights (10,14) with float counterpart (1,√2).
	QuasiEuclidean = preset("Quasi-Euclidean (1,1.41)", []int16{10, 14}, []float64{1, math.Sqrt2})
	// Borgefors weights (3,4): the optimal 2-weight integer approximation.
	Borgefors = preset("Borgefors (3,4)", []int16{3, 4}, nil)
	// Weights23 weights (2,3).
	Weights23 = preset("Weights (2,3)", []int16{2, 3}, nil)
	// Weights57 weights (5,7).
	Weights57 = preset("Weights (5,7)", []int16{5, 7}, nil)
	// Chessknight weights (5,7,11): adds the chess-knight move class.
	Chessknight = preset("Chessknight (5,7,11)", []int16{5, 7, 11}, nil)
)

// registry lists the presets in their canonical order; FromLabel and
// AllLabels iterate it. The registry is closed: new sets enter only via
// Custom, which never registers a label.
var registry = []Weights{
	Chessboard,
	CityBlock,
	QuasiEuclidean,
	Borgefors,
	Weights23,
	Weights57,
	Chessknight,
}

// preset builds a registry entry; floats default to the widened shorts.
func preset(label string, shorts []int16, floats []float64) Weights {
	if floats == nil {
		floats = make([]float64, len(shorts))
		for i, s := range shorts {
			floats[i] = float64(s)
		}
	}

	return Weights{label: label, shorts: shorts, floats: floats}
}

// Label returns the human-readable preset label.
func (w Weights) Label() string { return w.label }

// Shorts returns a copy of the integer weight sequence.
func (w Weights) Shorts() []int16 {
	out := make([]int16, len(w.shorts))
	copy(out, w.shorts)

	return out
}

// Floats returns a copy of the float weight sequence.
func (w Weights) Floats() []float64 {
	out := make([]float64, len(w.floats))
	copy(out, w.floats)

	return out
}

// AllLabels returns the labels of every registered preset in canonical order.
func AllLabels() []string {
	out := make([]string, len(registry))
	for i, w := range registry {
		out[i] = w.label
	}

	return out
}

// FromLabel resolves a preset by its human-readable label,
// case-insensitively. Returns ErrUnknownPreset when no preset matches.
func FromLabel(label string) (Weights, error) {
	needle := strings.ToLower(label)
	for _, w := range registry {
		if strings.ToLower(w.label) == needle {
			return w, nil
		}
	}

	return Weights{}, ErrUnknownPreset
}

// Custom builds a caller-supplied weight set. The sequence must have 2 or
// 3 entries (ErrWeightCount) and be positive and non-decreasing
// (ErrNonMonotonicWeights). floats may be nil to reuse the shorts;
// when given it must have the same length as shorts.
func Custom(label string, shorts []int16, floats []float64) (Weights, error) {
	if len(shorts) < 2 || len(shorts) > 3 {
		return Weights{}, ErrWeightCount
	}
	if floats != nil && len(floats) != len(shorts) {
		return Weights{}, ErrWeightCount
	}
	if shorts[0] <= 0 {
		return Weights{}, ErrNonMonotonicWeights
	}
	for i := 1; i < len(shorts); i++ {
		if shorts[i] < shorts[i-1] {
			return Weights{}, ErrNonMonotonicWeights
		}
	}
	if floats != nil {
		if floats[0] <= 0 {
			return Weights{}, ErrNonMonotonicWeights
		}
		for i := 1; i < len(floats); i++ {
			if floats[i] < floats[i-1] {
				return Weights{}, ErrNonMonotonicWeights
			}
		}
	}
	// Deep-copy to keep the returned value immutable.
	s := make([]int16, len(shorts))
	copy(s, shorts)
	var f []float64
	if floats != nil {
		f = make([]float64, len(floats))
		copy(f, floats)
	}

	return preset(label, s, f), nil
}
