package life

import (
	"image/color"

	"github.com/pkg/errors"

	"lifecanvas/internal/render"
)

var backgroundColor = render.RGB(30, 30, 30)

// cellColor maps a state to its fill. Dead cells are black; live cells are
// green-teal.
func cellColor(v uint8) color.RGBA {
	return render.RGB(0, 200*int(v), 140*int(v))
}

// Draw clears the surface and paints every cell. It only reads the board.
func (g *Game) Draw() error {
	if g.surface == nil {
		return nil
	}
	if err := g.draw(); err != nil {
		return err
	}
	for _, fn := range g.observers {
		fn(g)
	}
	return nil
}

func (g *Game) draw() error {
	s := g.surface
	s.SetFillColor(backgroundColor)
	if err := s.FillRect(0, 0, g.geo.Width, g.geo.Height); err != nil {
		return errors.Wrap(err, "draw background")
	}
	for row := 0; row < g.cells.Rows; row++ {
		for col := 0; col < g.cells.Cols; col++ {
			if err := g.drawCell(row, col); err != nil {
				return errors.Wrapf(err, "draw cell (%d, %d)", row, col)
			}
		}
	}
	return nil
}

func (g *Game) drawCell(row, col int) error {
	x, y, size := g.geo.CellRect(row, col)
	g.surface.SetFillColor(cellColor(g.cells.At(row, col)))
	render.SmoothRectangle(g.surface, x, y, size, size, render.DefaultCornerRadius)
	return g.surface.Fill()
}
