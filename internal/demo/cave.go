package demo

import (
	"exhud/internal/core"
	"exhud/internal/widgets"
)

// smooth runs passes of the cave automaton over g. A cell turns to wall with
// five or more wall neighbours and to floor with fewer than four; cells
// outside the grid count as wall.
func smooth(g *core.ByteGrid, passes int) {
	if passes <= 0 {
		return
	}
	next := core.NewByteGrid(g.W, g.H)
	for ; passes > 0; passes-- {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				v := g.At(x, y)
				switch n := wallNeighbours(g, x, y); {
				case n >= 5:
					v = widgets.CellWall
				case n < 4:
					v = widgets.CellFloor
				}
				next.Set(x, y, v)
			}
		}
		copy(g.Cells(), next.Cells())
	}
}

func wallNeighbours(g *core.ByteGrid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.In(nx, ny) || g.At(nx, ny) == widgets.CellWall {
				n++
			}
		}
	}
	return n
}
