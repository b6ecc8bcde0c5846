package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Sim defines the minimal contract a steppable simulation exposes to the
// drivers (GUI loop, headless controller).
type Sim interface {
	Name() string
	Size() Size
	Step() error
}
