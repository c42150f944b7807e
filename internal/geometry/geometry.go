// Package geometry derives the cell layout of a Life board from the pixel
// size of the surface it is drawn on.
package geometry

import "math"

// Geometry holds the layout values computed once from a surface size.
type Geometry struct {
	Width, Height float64

	CellSize    float64
	CellPadding float64

	Rows    int
	Columns int

	// XOffset and YOffset center the board, splitting leftover pixels
	// evenly on both sides.
	XOffset float64
	YOffset float64
}

// New computes the layout for a width x height surface. NaN, infinite or
// negative sizes are treated as zero and yield an empty board.
//
// The column count is the row count plus a correction for the difference
// between width and height, not floor(width/cellSize). Both formulas agree
// on square surfaces only.
func New(width, height float64) Geometry {
	w := sanitize(width)
	h := sanitize(height)

	cellSize := 0.2 * math.Pow(w, 0.55)
	if !(cellSize > 0) {
		cellSize = 1
	}

	rows := floorInt(h / cellSize)
	cols := rows + floorInt((w-h)/cellSize)
	rows = max(rows, 0)
	cols = max(cols, 0)

	return Geometry{
		Width:       w,
		Height:      h,
		CellSize:    cellSize,
		CellPadding: 0.01 * cellSize,
		Rows:        rows,
		Columns:     cols,
		XOffset:     (w - float64(cols)*cellSize) / 2,
		YOffset:     (h - float64(rows)*cellSize) / 2,
	}
}

// CellRect returns the padded square a cell is drawn into.
func (g Geometry) CellRect(row, col int) (x, y, size float64) {
	x = float64(col)*g.CellSize + g.XOffset + g.CellPadding
	y = float64(row)*g.CellSize + g.YOffset + g.CellPadding
	size = g.CellSize - 2*g.CellPadding
	return x, y, size
}

// CellAt maps a surface pixel to the cell containing it.
func (g Geometry) CellAt(x, y float64) (row, col int, ok bool) {
	if g.Rows == 0 || g.Columns == 0 {
		return 0, 0, false
	}
	col = floorInt((x - g.XOffset) / g.CellSize)
	row = floorInt((y - g.YOffset) / g.CellSize)
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return 0, 0, false
	}
	return row, col, true
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func floorInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v))
}
