// Package voxel: constructors and neighbor enumeration.

package voxel

// NewGrid allocates a zero-filled intensity grid of the given shape.
// Returns ErrEmptyGrid if any dimension is < 1.
func NewGrid(d Dims) (*Grid, error) {
	if err := validDims(d); err != nil {
		return nil, err
	}

	return &Grid{Dims: d, Data: make([]float64, d.Len())}, nil
}

// NewLabels allocates a zero-filled (all Unlabeled) label grid.
// Returns ErrEmptyGrid if any dimension is < 1.
func NewLabels(d Dims) (*Labels, error) {
	if err := validDims(d); err != nil {
		return nil, err
	}

	return &Labels{Dims: d, Data: make([]int32, d.Len())}, nil
}

// NewMask allocates an all-false mask of the given shape.
// Returns ErrEmptyGrid if any dimension is < 1.
func NewMask(d Dims) (*Mask, error) {
	if err := validDims(d); err != nil {
		return nil, err
	}

	return &Mask{Dims: d, Data: make([]bool, d.Len())}, nil
}

// From2D builds a 2D intensity grid from values[y][x], deep-copying the
// input so later caller mutations cannot leak in.
// Returns ErrEmptyGrid for empty input and ErrNonRectangular when any row
// length differs. Complexity: O(W×H) time and memory.
func From2D(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := &Grid{Dims: Dims{W: w, H: h, D: 1}, Data: make([]float64, w*h)}
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.Data[y*w:(y+1)*w], row)
	}

	return g, nil
}

// LabelsFrom2D builds a 2D label grid from values[y][x] with the same
// contract as From2D.
func LabelsFrom2D(values [][]int32) (*Labels, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	l := &Labels{Dims: Dims{W: w, H: h, D: 1}, Data: make([]int32, w*h)}
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(l.Data[y*w:(y+1)*w], row)
	}

	return l, nil
}

// MaskFrom2D builds a 2D mask from values[y][x] with the same contract
// as From2D.
func MaskFrom2D(values [][]bool) (*Mask, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	m := &Mask{Dims: Dims{W: w, H: h, D: 1}, Data: make([]bool, w*h)}
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(m.Data[y*w:(y+1)*w], row)
	}

	return m, nil
}

// Rows2D returns the 2D grid content as values[y][x]. Intended for tests
// and small result dumps; allocates fresh rows.
func (l *Labels) Rows2D() [][]int32 {
	rows := make([][]int32, l.Dims.H)
	for y := 0; y < l.Dims.H; y++ {
		rows[y] = make([]int32, l.Dims.W)
		copy(rows[y], l.Data[y*l.Dims.W:(y+1)*l.Dims.W])
	}

	return rows
}

// validDims rejects non-positive shapes.
func validDims(d Dims) error {
	if d.W < 1 || d.H < 1 || d.D < 1 {
		return ErrEmptyGrid
	}

	return nil
}

// Valid reports whether c is one of the enumerated connectivity values
// for a grid of the given shape: Conn4/Conn8 for 2D, Conn6/Conn18/Conn26
// for 3D.
func (c Connectivity) Valid(d Dims) bool {
	if d.Is3D() {
		return c == Conn6 || c == Conn18 || c == Conn26
	}

	return c == Conn4 || c == Conn8
}

// Offsets enumerates the neighbor offset set of connectivity c for a grid
// of shape d, in a fixed raster-scan order (dz, then dy, then dx,
// ascending). The order is deterministic and identical across runs; the
// flooding engines rely on it for reproducible tie-breaking.
// Returns ErrInvalidConnectivity if c is not defined for d's
// dimensionality. Complexity: O(27).
func Offsets(c Connectivity, d Dims) ([]Offset, error) {
	if !c.Valid(d) {
		return nil, ErrInvalidConnectivity
	}
	// Maximum L∞-ball membership per connectivity, expressed as the
	// maximum allowed distance class: |dx|+|dy|+|dz|-1.
	var maxClass int
	switch c {
	case Conn4, Conn6:
		maxClass = 0
	case Conn8, Conn18:
		maxClass = 1
	case Conn26:
		maxClass = 2
	}
	zLo, zHi := 0, 0
	if d.Is3D() {
		zLo, zHi = -1, 1
	}
	offs := make([]Offset, 0, int(c))
	for dz := zLo; dz <= zHi; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				class := abs(dx) + abs(dy) + abs(dz) - 1
				if class > maxClass {
					continue
				}
				offs = append(offs, Offset{DX: dx, DY: dy, DZ: dz, Class: class})
			}
		}
	}

	return offs, nil
}

// AppendNeighbors appends the in-bounds flat indices of idx's neighbors
// under the given offset set to dst and returns the extended slice.
// Passing a reused dst[:0] keeps the enumeration allocation-free.
// Complexity: O(len(offs)).
func (d Dims) AppendNeighbors(dst []int, idx int, offs []Offset) []int {
	x, y, z := d.Coords(idx)
	for _, o := range offs {
		nx, ny, nz := x+o.DX, y+o.DY, z+o.DZ
		if !d.InBounds(nx, ny, nz) {
			continue
		}
		dst = append(dst, d.Index(nx, ny, nz))
	}

	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
