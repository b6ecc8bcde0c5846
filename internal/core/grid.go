package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports coordinates outside [0,W)×[0,H).
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Shuffler is the randomness source the grid needs for unbiased orderings.
// *rand.Rand and the pkg/core RNG both satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Cell is one position of a Grid. Its coordinates never change; the occupant
// is a non-owning reference whose lifetime is managed by the grid's owner.
type Cell[T any] struct {
	x, y     int
	occupant *T
}

// X returns the column of the cell.
func (c *Cell[T]) X() int { return c.x }

// Y returns the row of the cell.
func (c *Cell[T]) Y() int { return c.y }

// Point returns the cell coordinates.
func (c *Cell[T]) Point() Point { return Point{X: c.x, Y: c.y} }

// Occupant returns the element stored in the cell or nil when empty.
func (c *Cell[T]) Occupant() *T { return c.occupant }

// Empty reports whether the cell holds no element.
func (c *Cell[T]) Empty() bool { return c.occupant == nil }

// Grid stores a torus of cells in row-major order. Exactly one cell exists per
// coordinate pair.
type Grid[T any] struct {
	W, H  int
	cells []Cell[T]
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[T]{W: w, H: h, cells: make([]Cell[T], w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := &g.cells[g.Index(x, y)]
			c.x, c.y = x, y
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Contains reports whether (x, y) addresses a cell without wrapping.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y).
func (g *Grid[T]) At(x, y int) (*Cell[T], error) {
	if !g.Contains(x, y) {
		return nil, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return &g.cells[g.Index(x, y)], nil
}

// Set stores v at (x, y). A nil v empties the cell.
func (g *Grid[T]) Set(x, y int, v *T) error {
	c, err := g.At(x, y)
	if err != nil {
		return err
	}
	c.occupant = v
	return nil
}

// Clear empties every cell.
func (g *Grid[T]) Clear() {
	for i := range g.cells {
		g.cells[i].occupant = nil
	}
}

// Occupied returns the number of non-empty cells.
func (g *Grid[T]) Occupied() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].occupant != nil {
			n++
		}
	}
	return n
}

// NeighborCoordinates returns the wrapped Moore neighborhood of (x, y)
// excluding (x, y) itself. On grids of at least 3×3 this is always eight
// distinct points; narrower grids yield fewer because wrapped offsets coincide.
func (g *Grid[T]) NeighborCoordinates(x, y int) []Point {
	pts := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if nx == x && ny == y {
				continue
			}
			p := Point{X: nx, Y: ny}
			dup := false
			for _, q := range pts {
				if q == p {
					dup = true
					break
				}
			}
			if !dup {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// OccupiedNeighbors returns the non-empty neighbor cells of (x, y) in a fresh
// random order.
func (g *Grid[T]) OccupiedNeighbors(x, y int, r Shuffler) ([]*Cell[T], error) {
	c, err := g.At(x, y)
	if err != nil {
		return nil, err
	}
	return g.OccupiedAround(c, r), nil
}

// EmptyNeighbors returns the empty neighbor cells of (x, y) in a fresh random
// order.
func (g *Grid[T]) EmptyNeighbors(x, y int, r Shuffler) ([]*Cell[T], error) {
	c, err := g.At(x, y)
	if err != nil {
		return nil, err
	}
	return g.EmptyAround(c, r), nil
}

// OccupiedAround is OccupiedNeighbors for a cell already obtained from g.
func (g *Grid[T]) OccupiedAround(c *Cell[T], r Shuffler) []*Cell[T] {
	return g.around(c, r, false)
}

// EmptyAround is EmptyNeighbors for a cell already obtained from g.
func (g *Grid[T]) EmptyAround(c *Cell[T], r Shuffler) []*Cell[T] {
	return g.around(c, r, true)
}

func (g *Grid[T]) around(c *Cell[T], r Shuffler, empty bool) []*Cell[T] {
	out := make([]*Cell[T], 0, 8)
	for _, p := range g.NeighborCoordinates(c.x, c.y) {
		n := &g.cells[g.Index(p.X, p.Y)]
		if n.Empty() == empty {
			out = append(out, n)
		}
	}
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Put stores v in c, which must belong to g. A nil v empties the cell.
func (g *Grid[T]) Put(c *Cell[T], v *T) {
	c.occupant = v
}

// IndexOf returns the linear index of a cell belonging to g.
func (g *Grid[T]) IndexOf(c *Cell[T]) int { return g.Index(c.x, c.y) }

// ForEach visits every cell in row-major order.
func (g *Grid[T]) ForEach(fn func(c *Cell[T])) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Shuffled returns every cell in one independent random order. The returned
// slice is fixed: later grid mutations change occupants but never the order.
func (g *Grid[T]) Shuffled(r Shuffler) []*Cell[T] {
	out := make([]*Cell[T], len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
