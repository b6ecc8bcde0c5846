// Package render turns biotope views into RGBA pixels, one pixel per cell.
package render

import (
	"hash/fnv"
	"image/color"

	"galapagos/internal/biotope"
)

// Background is the color of an empty cell.
var Background = color.RGBA{R: 12, G: 14, B: 18, A: 255}

// kindColors fixes the colors of the built-in strategies so screenshots of
// different runs stay comparable.
var kindColors = map[string]color.RGBA{
	"Analyzer":    {R: 80, G: 160, B: 255, A: 255},
	"Cheater":     {R: 230, G: 60, B: 60, A: 255},
	"FlipFlopper": {R: 240, G: 200, B: 50, A: 255},
	"Grudger":     {R: 170, G: 90, B: 220, A: 255},
	"Predictor":   {R: 60, G: 200, B: 200, A: 255},
	"Samaritan":   {R: 90, G: 210, B: 90, A: 255},
	"TitForTat":   {R: 245, G: 140, B: 40, A: 255},
}

// KindColor returns the display color of a strategy kind. Unknown kinds get a
// color derived from their name.
func KindColor(kind string) color.RGBA {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(kind))
	sum := h.Sum32()
	return color.RGBA{
		R: 96 + uint8(sum)%160,
		G: 96 + uint8(sum>>8)%160,
		B: 96 + uint8(sum>>16)%160,
		A: 255,
	}
}

// Palette maps view cell values to colors: index 0 is the background and
// index k is kinds[k-1].
func Palette(kinds []string) []color.RGBA {
	p := make([]color.RGBA, 0, len(kinds)+1)
	p = append(p, Background)
	for _, k := range kinds {
		p = append(p, KindColor(k))
	}
	return p
}

// FillView writes the pixels of v into buf, which must hold 4 bytes per cell.
func FillView(buf []byte, v *biotope.View) {
	fillPaletteRGBA(buf, v.Cells(), Palette(v.Kinds()))
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
