package ui

import (
	"fmt"
	"image"
	"time"

	"galapagos/internal/biotope"
	"galapagos/internal/core"
)

// Status is the GUI state shown below the statistics.
type Status struct {
	Paused   bool
	Logging  bool
	Display  bool
	Interval time.Duration
	Selected string
}

// Input is what a click on the panel asked for.
type Input struct {
	// Select names the kind whose row was clicked.
	Select string
	// Speed is -1 for slower, +1 for faster, 0 for no change.
	Speed int
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
	rowHeight      = 22
	swatchSize     = 12
	buttonSize     = 20
	buttonGap      = 6
	kindsTop       = panelPadding + headerBaseline + 2*lineHeight
)

// kindRowRect is the clickable area of the i-th kind row.
func kindRowRect(i, width int) image.Rectangle {
	top := kindsTop + i*rowHeight
	return image.Rect(panelPadding, top, width-panelPadding, top+rowHeight)
}

// speedTop is the y position of the interval buttons below n kind rows.
func speedTop(n int) int {
	return kindsTop + n*rowHeight + lineHeight
}

func speedButtons(n, width int) (slower, faster image.Rectangle) {
	top := speedTop(n)
	faster = image.Rect(width-panelPadding-buttonSize, top, width-panelPadding, top+buttonSize)
	slower = image.Rect(faster.Min.X-buttonGap-buttonSize, top, faster.Min.X-buttonGap, top+buttonSize)
	return slower, faster
}

// hitTest maps a click at panel coordinates (x, y) to an input.
func hitTest(x, y, width int, kinds []string) Input {
	for i, k := range kinds {
		if pointInRect(x, y, kindRowRect(i, width)) {
			return Input{Select: k}
		}
	}
	slower, faster := speedButtons(len(kinds), width)
	switch {
	case pointInRect(x, y, slower):
		return Input{Speed: -1}
	case pointInRect(x, y, faster):
		return Input{Speed: 1}
	}
	return Input{}
}

func headerLines(stats biotope.RoundStats) []string {
	return []string{
		fmt.Sprintf("Round %d", stats.Round),
		fmt.Sprintf("Population %d  (+%d -%d)", stats.Population(), stats.Born(), stats.Deaths()),
	}
}

func kindLine(kind string, k biotope.KindStats) string {
	return fmt.Sprintf("%-11s %5d +%d -%d/%d", kind, k.Population, k.Born, k.DiedOfAge, k.DiedOfVitality)
}

func statusLines(s Status) []string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	state := "running"
	if s.Paused {
		state = "paused"
	}
	pencil := s.Selected
	if pencil == "" {
		pencil = "-"
	}
	return []string{
		fmt.Sprintf("Interval %s", s.Interval),
		fmt.Sprintf("State %s", state),
		fmt.Sprintf("Pencil %s", pencil),
		fmt.Sprintf("Logging %s  Display %s", onOff(s.Logging), onOff(s.Display)),
	}
}

// cellAt converts screen coordinates to a grid cell drawn at scale.
func cellAt(mx, my, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 || mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y = mx/scale, my/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
