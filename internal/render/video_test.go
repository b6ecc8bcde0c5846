package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"galapagos/internal/biotope"
	"galapagos/internal/core"
)

func TestVideoRecordsRounds(t *testing.T) {
	cfg := biotope.DefaultConfig()
	cfg.Width, cfg.Height = 10, 8
	cfg.FinchesPerKind = 3
	cfg.Kinds = []string{"Cheater", "Samaritan"}

	path := filepath.Join(t.TempDir(), "run.avi")
	vd, err := CreateVideo(path, core.Size{W: cfg.Width, H: cfg.Height}, 3, 5)
	if err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}
	b := biotope.New(nil)
	b.Subscribe(vd.Observer())
	if err := b.Seed(cfg); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := b.AdvanceRound(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if err := vd.Err(); err != nil {
		t.Fatalf("observer: %v", err)
	}
	if err := vd.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := vd.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if vd.Frames() != 4 {
		t.Fatalf("frames = %d, want 4", vd.Frames())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Contains(data[:16], []byte("AVI ")) {
		t.Fatalf("not an AVI file: % x", data[:16])
	}
}

func TestVideoRejectsOtherSize(t *testing.T) {
	vd, err := CreateVideo(filepath.Join(t.TempDir(), "run.avi"), core.Size{W: 4, H: 4}, 1, 1)
	if err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}
	defer vd.Close()

	cfg := biotope.DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.FinchesPerKind = 1
	b := biotope.New(nil)
	if err := b.Seed(cfg); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := vd.AddView(b.View()); err == nil {
		t.Fatalf("expected size mismatch error")
	}
}
