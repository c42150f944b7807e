package render

import "image"

// fillRGBA copies img into buf as tightly packed w*h RGBA pixels. Pixels of
// buf outside img are cleared to transparent black.
func fillRGBA(buf []byte, w, h int, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < h; y++ {
		row := buf[y*w*4 : (y+1)*w*4]
		if y >= b.Dy() {
			clear(row)
			continue
		}
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		n := copy(row, src)
		clear(row[n:])
	}
}
