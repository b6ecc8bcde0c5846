//go:build !ebiten

package ui

import "galapagos/internal/biotope"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, *biotope.View, Status) Input { return Input{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
