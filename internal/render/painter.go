//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SurfacePainter mirrors a Canvas into an ebiten image.
type SurfacePainter struct {
	w, h     int
	img      *ebiten.Image
	buf      []byte
	revision uint64
	uploaded bool
}

// NewSurfacePainter allocates a painter for a w*h pixel canvas.
func NewSurfacePainter(w, h int) *SurfacePainter {
	w, h = max(w, 1), max(h, 1)
	sp := &SurfacePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Blit uploads the canvas pixels when they changed since the last upload and
// draws them at the origin of dst.
func (sp *SurfacePainter) Blit(dst *ebiten.Image, c *Canvas) {
	if !sp.uploaded || c.Revision() != sp.revision {
		fillRGBA(sp.buf, sp.w, sp.h, c.Snapshot())
		sp.img.WritePixels(sp.buf)
		sp.revision = c.Revision()
		sp.uploaded = true
	}
	dst.DrawImage(sp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (sp *SurfacePainter) Size() (int, int) { return sp.w, sp.h }
