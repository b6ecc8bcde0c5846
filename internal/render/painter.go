//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"galapagos/internal/biotope"
)

// GridPainter keeps one RGBA image the size of the biotope and redraws it
// from views.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Update uploads the cells of v into the painter image. Views of a different
// size are ignored.
func (gp *GridPainter) Update(v *biotope.View) {
	if v == nil || v.Size().W != gp.w || v.Size().H != gp.h || len(v.Cells()) != gp.w*gp.h {
		return
	}
	FillView(gp.buf, v)
	gp.img.WritePixels(gp.buf)
}

// Draw paints the last uploaded image scaled by scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
