package core

// Grid stores a 2D matrix of byte-sized cell values in row-major order.
// Coordinates outside the grid are never wrapped.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions. Negative
// dimensions produce an empty grid.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col), or 0 outside the grid.
func (g *Grid) At(row, col int) uint8 {
	if !g.In(row, col) {
		return 0
	}
	return g.data[g.Index(row, col)]
}

// Set writes v at (row, col). Writes outside the grid are dropped and
// reported as false.
func (g *Grid) Set(row, col int, v uint8) bool {
	if !g.In(row, col) {
		return false
	}
	g.data[g.Index(row, col)] = v
	return true
}

// Row returns a view of one row. The slice aliases the grid.
func (g *Grid) Row(row int) []uint8 {
	if row < 0 || row >= g.Rows {
		return nil
	}
	start := row * g.Cols
	return g.data[start : start+g.Cols : start+g.Cols]
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Population counts the cells holding a non-zero value.
func (g *Grid) Population() (count int) {
	for _, v := range g.data {
		if v != 0 {
			count++
		}
	}
	return
}

// Distinct returns the set of values present in the grid.
func (g *Grid) Distinct() map[uint8]struct{} {
	seen := make(map[uint8]struct{}, 2)
	for _, v := range g.data {
		seen[v] = struct{}{}
	}
	return seen
}
