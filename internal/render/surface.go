package render

import "image/color"

// DefaultCornerRadius is the corner radius used for cells.
const DefaultCornerRadius = 3

// Surface is the subset of a 2D canvas API the board is drawn with.
type Surface interface {
	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64) error

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	Fill() error
}

// SmoothRectangle builds the path of a rectangle with rounded corners whose
// left edge is x and upper edge is y. The caller fills or strokes it.
func SmoothRectangle(s Surface, x, y, w, h, radius float64) {
	r := x + w
	b := y + h

	s.BeginPath()
	s.MoveTo(x+radius, y)
	s.LineTo(r-radius, y)
	s.QuadraticTo(r, y, r, y+radius)
	s.LineTo(r, b-radius)
	s.QuadraticTo(r, b, r-radius, b)
	s.LineTo(x+radius, b)
	s.QuadraticTo(x, b, x, b-radius)
	s.LineTo(x, y+radius)
	s.QuadraticTo(x, y, x+radius, y)
}

// RGB returns an opaque colour, saturating each channel to [0, 255].
func RGB(r, g, b int) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
