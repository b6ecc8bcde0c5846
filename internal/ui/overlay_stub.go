//go:build !ebiten

package ui

import "galapagos/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Size, int) *Overlay { return &Overlay{} }

// Resize is a no-op in headless builds.
func (o *Overlay) Resize(core.Size) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// CursorCell never reports a cell in headless builds.
func (o *Overlay) CursorCell() (int, int, bool) { return 0, 0, false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any) {}
