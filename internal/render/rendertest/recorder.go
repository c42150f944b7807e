// Package rendertest provides a recording render.Surface for tests.
package rendertest

import (
	"fmt"
	"image/color"
)

// Op is one recorded surface call.
type Op struct {
	Name  string
	Args  []float64
	Color color.RGBA
}

func (o Op) String() string {
	if o.Name == "SetFillColor" {
		return fmt.Sprintf("%s(%d,%d,%d,%d)", o.Name, o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Fill is a completed fill with the colour that was active at the time.
type Fill struct {
	Color color.RGBA
	Rect  bool
	Path  []Op
}

// Recorder implements render.Surface by logging every call.
type Recorder struct {
	Ops   []Op
	Fills []Fill

	// FailAfter makes the Nth fill (1-based) and every later one return
	// Err. Zero disables failures.
	FailAfter int
	Err       error

	fill color.RGBA
	path []Op
}

// SetFillColor records the active fill colour.
func (r *Recorder) SetFillColor(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r.fill = rgba
	r.Ops = append(r.Ops, Op{Name: "SetFillColor", Color: rgba})
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(x, y, w, h float64) error {
	r.Ops = append(r.Ops, Op{Name: "FillRect", Args: []float64{x, y, w, h}})
	r.Fills = append(r.Fills, Fill{Color: r.fill, Rect: true})
	return r.failure()
}

// BeginPath starts recording a new path.
func (r *Recorder) BeginPath() {
	r.path = nil
	r.Ops = append(r.Ops, Op{Name: "BeginPath"})
}

// MoveTo records a path move.
func (r *Recorder) MoveTo(x, y float64) { r.segment("MoveTo", x, y) }

// LineTo records a path line.
func (r *Recorder) LineTo(x, y float64) { r.segment("LineTo", x, y) }

// QuadraticTo records a path curve.
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) { r.segment("QuadraticTo", cx, cy, x, y) }

// Fill records a path fill.
func (r *Recorder) Fill() error {
	r.Ops = append(r.Ops, Op{Name: "Fill"})
	r.Fills = append(r.Fills, Fill{Color: r.fill, Path: r.path})
	r.path = nil
	return r.failure()
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Fills = nil
	r.path = nil
}

func (r *Recorder) segment(name string, args ...float64) {
	op := Op{Name: name, Args: args}
	r.path = append(r.path, op)
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) failure() error {
	if r.FailAfter > 0 && len(r.Fills) >= r.FailAfter {
		return r.Err
	}
	return nil
}
