package geometry

import (
	"math"
	"testing"
)

func TestKnownLayout(t *testing.T) {
	g := New(1080, 720)
	if g.Width != 1080 || g.Height != 720 {
		t.Fatalf("surface size not kept: %vx%v", g.Width, g.Height)
	}
	if math.Abs(g.CellSize-9.3199388) > 1e-6 {
		t.Fatalf("unexpected cell size %f", g.CellSize)
	}
	if g.Rows != 77 || g.Columns != 115 {
		t.Fatalf("expected 77 rows x 115 columns, got %d x %d", g.Rows, g.Columns)
	}
	if math.Abs(g.CellPadding-0.01*g.CellSize) > 1e-12 {
		t.Fatalf("padding should be 1%% of the cell size, got %f", g.CellPadding)
	}
	wantX := (1080 - float64(g.Columns)*g.CellSize) / 2
	wantY := (720 - float64(g.Rows)*g.CellSize) / 2
	if g.XOffset != wantX || g.YOffset != wantY {
		t.Fatalf("offsets (%f,%f), expected (%f,%f)", g.XOffset, g.YOffset, wantX, wantY)
	}
}

func TestColumnsCoupledToRows(t *testing.T) {
	// floor(W/cellSize) would give 101 here; the coupled formula gives 100.
	g := New(800, 600)
	independent := int(math.Floor(800 / g.CellSize))
	if g.Columns == independent {
		t.Fatalf("columns should follow rows + floor((W-H)/cellSize), got independent value %d", independent)
	}
	want := g.Rows + int(math.Floor((800-600)/g.CellSize))
	if g.Rows != 75 || g.Columns != 100 || g.Columns != want {
		t.Fatalf("columns %d, expected %d", g.Columns, want)
	}
}

func TestCellSizeSmallerThanSurface(t *testing.T) {
	cases := []struct{ w, h float64 }{
		{1080, 720},
		{20, 40},
		{500, 800},
		{15, 7},
		{800, 800},
	}
	for _, tc := range cases {
		g := New(tc.w, tc.h)
		if !(g.CellSize < tc.w) || !(g.CellSize < tc.h) {
			t.Fatalf("%vx%v: cell size %f not below surface size", tc.w, tc.h, g.CellSize)
		}
	}
}

func TestAspectRatioFollowsSurface(t *testing.T) {
	cases := []struct{ w, h float64 }{
		{500, 800},
		{15, 7},
		{1080, 720},
		{20, 40},
	}
	for _, tc := range cases {
		g := New(tc.w, tc.h)
		wide := tc.w/tc.h > 1
		gridWide := float64(g.Columns)/float64(g.Rows) > 1
		if wide != gridWide {
			t.Fatalf("%vx%v: surface wide=%v but grid %dx%d wide=%v", tc.w, tc.h, wide, g.Rows, g.Columns, gridWide)
		}
	}
	sq := New(800, 800)
	if sq.Rows != sq.Columns {
		t.Fatalf("square surface should give a square grid, got %dx%d", sq.Rows, sq.Columns)
	}
}

func TestDegenerateSizes(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"zero", 0, 0},
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative", -50, -20},
		{"nan", math.NaN(), 10},
		{"inf", math.Inf(1), math.Inf(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(tc.w, tc.h)
			if !(g.CellSize > 0) {
				t.Fatalf("cell size must stay positive, got %f", g.CellSize)
			}
			if g.Rows < 0 || g.Columns < 0 {
				t.Fatalf("negative grid %dx%d", g.Rows, g.Columns)
			}
			if math.IsNaN(g.XOffset) || math.IsNaN(g.YOffset) {
				t.Fatalf("offsets must be numbers, got (%f,%f)", g.XOffset, g.YOffset)
			}
		})
	}

	if g := New(0, 0); g.CellSize != 1 || g.Rows != 0 || g.Columns != 0 {
		t.Fatalf("zero surface should fall back to cell size 1 and an empty grid, got %+v", g)
	}
	if g := New(0, 100); g.Rows != 100 || g.Columns != 0 {
		t.Fatalf("zero width should clamp columns to zero, got %dx%d", g.Rows, g.Columns)
	}
}

func TestSmallSurfaceKeepsFractionalCellSize(t *testing.T) {
	g := New(4, 2)
	want := 0.2 * math.Pow(4, 0.55)
	if math.Abs(g.CellSize-want) > 1e-9 || g.CellSize >= 1 {
		t.Fatalf("cell size below one must be kept, got %f want %f", g.CellSize, want)
	}
	if g.Rows != 4 || g.Columns != 8 {
		t.Fatalf("expected a 4x8 board, got %dx%d", g.Rows, g.Columns)
	}
	if float64(g.Columns)*g.CellSize > g.Width {
		t.Fatalf("board wider than the surface: %d cells of %f on %f", g.Columns, g.CellSize, g.Width)
	}

	if z := New(0, 10); z.CellSize != 1 {
		t.Fatalf("a zero cell size falls back to 1, got %f", z.CellSize)
	}
}

func TestCellRectAndCellAt(t *testing.T) {
	g := New(1080, 720)
	for _, rc := range [][2]int{{0, 0}, {20, 30}, {g.Rows - 1, g.Columns - 1}} {
		x, y, size := g.CellRect(rc[0], rc[1])
		if size <= 0 || size >= g.CellSize {
			t.Fatalf("inner size %f should be positive and smaller than the cell", size)
		}
		row, col, ok := g.CellAt(x+size/2, y+size/2)
		if !ok || row != rc[0] || col != rc[1] {
			t.Fatalf("CellAt(center of %v) = (%d,%d,%v)", rc, row, col, ok)
		}
	}
	if _, _, ok := g.CellAt(1, 0); ok {
		t.Fatal("pixels in the centering margin must not map to a cell")
	}
	if _, _, ok := g.CellAt(2000, 10); ok {
		t.Fatal("pixels outside the surface must not map to a cell")
	}
	if _, _, ok := New(0, 0).CellAt(0, 0); ok {
		t.Fatal("an empty board has no cells")
	}
}
