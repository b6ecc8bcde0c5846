//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"galapagos/internal/biotope"
	"galapagos/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the statistics panel to the right of the biotope view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	view         *biotope.View
	status       Status
	panelOffsetX int
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update caches the latest view and status and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int, v *biotope.View, status Status) Input {
	if h == nil {
		return Input{}
	}
	h.panelOffsetX = panelOffsetX
	if v != nil {
		h.view = v
	}
	h.status = status
	if h.view == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return Input{}
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return Input{}
	}
	return hitTest(mx-h.panelOffsetX, my, h.width, h.view.Kinds())
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	title := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Galapagos", face, panelPadding, y, title)
	if h.view == nil {
		text.Draw(h.panel, "Not seeded", face, panelPadding, y+lineHeight, dim)
		return
	}
	stats := h.view.Stats()
	for _, line := range headerLines(stats) {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, body)
	}

	kinds := h.view.Kinds()
	for i, kind := range kinds {
		rect := kindRowRect(i, h.width)
		if kind == h.status.Selected {
			h.fillRect(rect, color.RGBA{R: 40, G: 42, B: 52, A: 255})
		}
		sy := rect.Min.Y + (rect.Dy()-swatchSize)/2
		h.fillRect(image.Rect(rect.Min.X+2, sy, rect.Min.X+2+swatchSize, sy+swatchSize), render.KindColor(kind))
		col := body
		if stats.Kinds[kind].Population == 0 {
			col = dim
		}
		text.Draw(h.panel, kindLine(kind, stats.Kinds[kind]), face, rect.Min.X+swatchSize+8, rect.Min.Y+15, col)
	}

	slower, faster := speedButtons(len(kinds), h.width)
	h.drawButton(slower, "-")
	h.drawButton(faster, "+")
	y = speedTop(len(kinds)) + 14
	for _, line := range statusLines(h.status) {
		text.Draw(h.panel, line, face, panelPadding, y, dim)
		y += lineHeight
	}
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	h.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
