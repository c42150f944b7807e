package life

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"lifecanvas/internal/render/rendertest"
)

func TestDrawPaintsEveryCell(t *testing.T) {
	rec := &rendertest.Recorder{}
	g := New(rec, nil, 200, 120)
	g.Set(1, 2)

	if err := g.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	cells := g.Rows() * g.Columns()
	if cells == 0 {
		t.Fatal("test surface should produce a non-empty board")
	}
	if rec.Count("FillRect") != 1 {
		t.Fatalf("expected one background fill, got %d", rec.Count("FillRect"))
	}
	if rec.Count("Fill") != cells {
		t.Fatalf("expected %d cell fills, got %d", cells, rec.Count("Fill"))
	}
	if rec.Count("QuadraticTo") != 4*cells {
		t.Fatalf("every cell should have four rounded corners, got %d curves", rec.Count("QuadraticTo"))
	}

	bg := rec.Fills[0]
	if !bg.Rect || bg.Color != (color.RGBA{R: 30, G: 30, B: 30, A: 255}) {
		t.Fatalf("unexpected background fill %+v", bg)
	}
	first := rec.Ops[1]
	if first.Name != "FillRect" || first.Args[2] != 200 || first.Args[3] != 120 {
		t.Fatalf("background should cover the surface, got %s", first)
	}

	live, dead := 0, 0
	for _, f := range rec.Fills[1:] {
		switch f.Color {
		case color.RGBA{R: 0, G: 200, B: 140, A: 255}:
			live++
		case color.RGBA{R: 0, G: 0, B: 0, A: 255}:
			dead++
		default:
			t.Fatalf("unexpected cell colour %v", f.Color)
		}
	}
	if live != 1 || dead != cells-1 {
		t.Fatalf("expected 1 live and %d dead fills, got %d and %d", cells-1, live, dead)
	}
}

func TestDrawCellPlacement(t *testing.T) {
	rec := &rendertest.Recorder{}
	g := New(rec, nil, 1080, 720)
	if err := g.Draw(); err != nil {
		t.Fatal(err)
	}
	geo := g.Geometry()
	x, y, _ := geo.CellRect(0, 0)

	// The first cell path starts right after the background fill.
	for _, op := range rec.Ops {
		if op.Name != "MoveTo" {
			continue
		}
		if op.Args[0] != x+3 || op.Args[1] != y {
			t.Fatalf("first cell path starts at %v, expected (%f, %f)", op.Args, x+3, y)
		}
		break
	}
	if x <= geo.XOffset || y <= geo.YOffset {
		t.Fatal("cells should be inset by the padding")
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	rec := &rendertest.Recorder{}
	g := New(rec, nil, 300, 200)
	g.Randomize(10)
	before := g.Snapshot()

	for i := 0; i < 3; i++ {
		if err := g.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	for i, v := range g.Cells() {
		if before.Cells()[i] != v {
			t.Fatalf("Draw changed cell %d", i)
		}
	}
	if g.Generation() != 0 {
		t.Fatal("Draw must not advance the generation")
	}
}

func TestDrawWithoutSurface(t *testing.T) {
	g := newBoard()
	if err := g.Draw(); err != nil {
		t.Fatalf("drawing without a surface should be a no-op, got %v", err)
	}
}

func TestDrawErrorNamesCell(t *testing.T) {
	boom := errors.New("boom")
	rec := &rendertest.Recorder{FailAfter: 2, Err: boom}
	g := New(rec, nil, 200, 120)

	err := g.Draw()
	if err == nil {
		t.Fatal("expected a draw error")
	}
	if !strings.Contains(err.Error(), "draw cell (0, 0)") || !errors.Is(err, boom) {
		t.Fatalf("error should wrap the failure with the cell position, got %v", err)
	}
}

func TestStepRedrawsAndNotifies(t *testing.T) {
	rec := &rendertest.Recorder{}
	g := New(rec, nil, 200, 120)
	var seen []int
	g.OnDraw(func(g *Game) { seen = append(seen, g.Generation()) })

	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if rec.Count("FillRect") != 1 {
		t.Fatalf("a step should redraw once, got %d background fills", rec.Count("FillRect"))
	}
	if err := g.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 1 {
		t.Fatalf("observers saw generations %v", seen)
	}
}
