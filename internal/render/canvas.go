package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// Canvas adapts a gg drawing context to Surface.
type Canvas struct {
	dc       *gg.Context
	revision uint64
}

// NewCanvas wraps dc.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// NewImageCanvas allocates a software canvas of w x h pixels.
func NewImageCanvas(w, h int) *Canvas {
	return NewCanvas(gg.NewContext(max(w, 1), max(h, 1)))
}

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

// Revision increases every time pixels may have changed.
func (c *Canvas) Revision() uint64 { return c.revision }

// SetFillColor sets the colour used by the next fill.
func (c *Canvas) SetFillColor(col color.Color) { c.dc.SetColor(col) }

// FillRect fills an axis-aligned rectangle. Any path under construction is
// discarded.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	c.dc.ClearPath()
	c.dc.DrawRectangle(x, y, w, h)
	return c.Fill()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() { c.dc.ClearPath() }

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

// LineTo adds a line segment.
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

// QuadraticTo adds a quadratic Bezier segment.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) { c.dc.QuadraticTo(cx, cy, x, y) }

// Fill fills and clears the current path.
func (c *Canvas) Fill() error {
	c.revision++
	if err := c.dc.Fill(); err != nil {
		return errors.Wrap(err, "fill path")
	}
	return nil
}

// Snapshot returns a copy of the current pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// SavePNG writes the current pixels to path.
func (c *Canvas) SavePNG(path string) error {
	return errors.Wrapf(c.dc.SavePNG(path), "save %s", path)
}

// Close releases the gg context.
func (c *Canvas) Close() error { return c.dc.Close() }
