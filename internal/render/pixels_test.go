package render

import (
	"image/color"
	"testing"

	"galapagos/internal/biotope"
	"galapagos/internal/strategy"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 10, G: 20, B: 30, A: 40}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{1, 2, 3, 4, 10, 20, 30, 40, 10, 20, 30, 40}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared", i, b)
		}
	}
}

func TestPaletteDistinctPerRegisteredKind(t *testing.T) {
	names := strategy.Names()
	p := Palette(names)
	if len(p) != len(names)+1 || p[0] != Background {
		t.Fatalf("palette = %v", p)
	}
	seen := map[color.RGBA]string{}
	for i, k := range names {
		c := p[i+1]
		if prev, ok := seen[c]; ok {
			t.Fatalf("%s and %s share color %v", prev, k, c)
		}
		seen[c] = k
	}
}

func TestKindColorStableForUnknownKinds(t *testing.T) {
	if KindColor("Mystery") != KindColor("Mystery") {
		t.Fatalf("derived color is not stable")
	}
	if KindColor("Mystery").A != 255 {
		t.Fatalf("derived color must be opaque")
	}
}

func TestFillView(t *testing.T) {
	b := biotope.New(nil)
	cfg := biotope.DefaultConfig()
	cfg.Width, cfg.Height = 3, 2
	cfg.FinchesPerKind = 0
	if err := b.Seed(cfg); err != nil {
		t.Fatalf("seed: %v", err)
	}
	b.PlaceFinch(2, 1, strategy.Cheater{})

	v := b.View()
	buf := make([]byte, 4*6)
	FillView(buf, v)

	cheater := KindColor("Cheater")
	px := buf[4*5 : 4*6]
	if px[0] != cheater.R || px[1] != cheater.G || px[2] != cheater.B {
		t.Fatalf("cheater pixel = %v, want %v", px, cheater)
	}
	if buf[0] != Background.R || buf[3] != Background.A {
		t.Fatalf("empty pixel = %v, want background", buf[:4])
	}
}
