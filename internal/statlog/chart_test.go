package statlog

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestWriteChartPNG(t *testing.T) {
	var rows []HistoryRow
	for round := 0; round < 6; round++ {
		rows = append(rows,
			HistoryRow{Round: round, Kind: "Cheater", Population: 10 - round},
			HistoryRow{Round: round, Kind: "Grudger", Population: 4 + 2*round},
		)
	}

	var buf bytes.Buffer
	if err := WriteChart(&buf, rows, ChartOptions{Width: 320, Height: 200, Title: "run 1"}); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("bounds = %v, want 320x200", b)
	}
}

func TestWriteChartExtinctRun(t *testing.T) {
	rows := []HistoryRow{
		{Round: 0, Kind: "Samaritan"},
		{Round: 1, Kind: "Samaritan"},
	}
	var buf bytes.Buffer
	if err := WriteChart(&buf, rows, ChartOptions{}); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
}

func TestWriteChartNeedsTwoRounds(t *testing.T) {
	rows := []HistoryRow{
		{Round: 0, Kind: "Cheater", Population: 3},
		{Round: 0, Kind: "Analyzer", Population: 3},
	}
	err := WriteChart(&bytes.Buffer{}, rows, DefaultChartOptions())
	if !errors.Is(err, ErrTooFewRounds) {
		t.Fatalf("err = %v, want ErrTooFewRounds", err)
	}
	if err := WriteChart(&bytes.Buffer{}, nil, DefaultChartOptions()); !errors.Is(err, ErrTooFewRounds) {
		t.Fatalf("nil rows err = %v", err)
	}
}
