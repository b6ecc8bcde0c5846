package biotope

import (
	"galapagos/internal/core"
	"galapagos/internal/finch"
	"galapagos/internal/strategy"
)

// View is an immutable snapshot of the grid handed to observers. Cells holds
// one byte per cell in row-major order: 0 for empty, k for Kinds()[k-1].
type View struct {
	size  core.Size
	round int
	kinds []string
	cells []uint8
	stats RoundStats
}

// View builds a snapshot of the current state. Kind indices follow the sorted
// registry so colors stay stable between runs; strategies that were placed
// without being registered are appended in order of first appearance.
func (b *Biotope) View() *View {
	v := &View{
		size:  b.Size(),
		round: b.round,
		kinds: strategy.Names(),
		stats: b.stats.Clone(),
	}
	if b.grid == nil {
		return v
	}
	index := make(map[string]uint8, len(v.kinds))
	for i, k := range v.kinds {
		index[k] = uint8(i + 1)
	}
	v.cells = make([]uint8, v.size.Cells())
	b.grid.ForEach(func(c *core.Cell[finch.Finch]) {
		f := c.Occupant()
		if f == nil {
			return
		}
		kind := f.Kind()
		id, ok := index[kind]
		if !ok && len(v.kinds) < 255 {
			v.kinds = append(v.kinds, kind)
			id = uint8(len(v.kinds))
			index[kind] = id
		}
		v.cells[b.grid.IndexOf(c)] = id
	})
	return v
}

func (v *View) Size() core.Size   { return v.size }
func (v *View) Round() int        { return v.round }
func (v *View) Kinds() []string   { return v.kinds }
func (v *View) Cells() []uint8    { return v.cells }
func (v *View) Stats() RoundStats { return v.stats }

// KindAt returns the strategy name at (x, y), or "" for an empty or
// out-of-range cell.
func (v *View) KindAt(x, y int) string {
	if x < 0 || y < 0 || x >= v.size.W || y >= v.size.H || v.cells == nil {
		return ""
	}
	id := v.cells[y*v.size.W+x]
	if id == 0 || int(id) > len(v.kinds) {
		return ""
	}
	return v.kinds[id-1]
}

// KindIndex returns the cell value used for kind, or 0 if kind is unknown.
func (v *View) KindIndex(kind string) uint8 {
	for i, k := range v.kinds {
		if k == kind {
			return uint8(i + 1)
		}
	}
	return 0
}

// ForEach visits every cell in row-major order. Empty cells report "".
func (v *View) ForEach(fn func(x, y int, kind string)) {
	for y := 0; y < v.size.H; y++ {
		for x := 0; x < v.size.W; x++ {
			fn(x, y, v.KindAt(x, y))
		}
	}
}

// Population counts occupied cells.
func (v *View) Population() int {
	n := 0
	for _, c := range v.cells {
		if c != 0 {
			n++
		}
	}
	return n
}
