//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifecanvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	liveColor  = color.RGBA{G: 200, B: 140, A: 255}
)

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	sim    core.Sim
	setter core.IntParameterSetter
	width  int
	panel  *ebiten.Image
	pixel  *ebiten.Image

	title  string
	status string
	info   []string
	rows   []controlRow
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: panelTitle(sim)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.rows = layoutRows(p.ParameterControls(), h.width)
	}
	h.setter, _ = sim.(core.IntParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the panel text and applies clicks on the +/- buttons.
// offsetX is the panel's left edge in screen coordinates.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	if s, ok := h.sim.(statusProvider); ok {
		h.status = statusLine(s)
	}
	p, ok := h.sim.(interface{ Parameters() core.ParameterSnapshot })
	if !ok {
		return
	}
	snap := p.Parameters()
	h.info = infoLines(snap)
	syncRows(h.rows, snap)

	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i := range h.rows {
		r := &h.rows[i]
		dir := r.hit(mx-offsetX, my)
		if dir == 0 {
			continue
		}
		if target := clampTarget(r.ctrl, r.value, dir); target != r.value && h.setter.SetIntParameter(r.ctrl.Key, target) {
			r.value = target
		}
		return
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, titleY, titleColor)
	text.Draw(h.panel, h.status, face, panelPadding, statusY, liveColor)

	for _, r := range h.rows {
		baseline := r.top + rowHeight/2 + 5
		text.Draw(h.panel, r.ctrl.Label, face, panelPadding, baseline, textColor)
		value := r.label()
		x := r.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, x, baseline, textColor)
		h.button(r.minus, "-", r.known && clampTarget(r.ctrl, r.value, -1) != r.value)
		h.button(r.plus, "+", r.known && clampTarget(r.ctrl, r.value, 1) != r.value)
	}

	y := rowsTop + len(h.rows)*rowHeight + infoLine
	for _, line := range h.info {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += infoLine
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(rect image.Rectangle, label string, enabled bool) {
	bg, fg := color.RGBA{R: 54, G: 56, B: 64, A: 255}, textColor
	if !enabled || h.setter == nil {
		bg, fg = color.RGBA{R: 32, G: 34, B: 40, A: 255}, dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	b := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}
