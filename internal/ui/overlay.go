//go:build ebiten

package ui

import (
	"image/color"

	"galapagos/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the pencil cursor and optional grid lines on top of the
// biotope view.
type Overlay struct {
	size     core.Size
	scale    int
	showGrid bool
	pixel    *ebiten.Image

	cx, cy   int
	onCursor bool
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Resize adapts the overlay to a reseeded grid.
func (o *Overlay) Resize(size core.Size) { o.size = size }

// Update toggles grid lines (G) and tracks the cell under the cursor.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.cx, o.cy, o.onCursor = cellAt(mx, my, o.scale, o.size)
}

// CursorCell returns the grid cell under the mouse, if any.
func (o *Overlay) CursorCell() (x, y int, ok bool) { return o.cx, o.cy, o.onCursor }

// Draw paints grid lines and outlines the cursor cell in the pencil color.
func (o *Overlay) Draw(screen *ebiten.Image, pencil color.RGBA) {
	s := float64(o.scale)
	if o.showGrid && o.scale >= 4 {
		line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for x := 0; x <= o.size.W; x++ {
			o.rect(screen, float64(x)*s, 0, 1, float64(o.size.H)*s, line)
		}
		for y := 0; y <= o.size.H; y++ {
			o.rect(screen, 0, float64(y)*s, float64(o.size.W)*s, 1, line)
		}
	}
	if !o.onCursor {
		return
	}
	x, y := float64(o.cx)*s, float64(o.cy)*s
	o.rect(screen, x, y, s, 1, pencil)
	o.rect(screen, x, y+s-1, s, 1, pencil)
	o.rect(screen, x, y, 1, s, pencil)
	o.rect(screen, x+s-1, y, 1, s, pencil)
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
