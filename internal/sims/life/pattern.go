package life

import "lifepaint/internal/core"

// Pattern is a rectangular template of cells, indexed [row][column].
type Pattern [][]bool

// Glider is the five-cell spaceship that travels down and to the right.
//
//	. # .
//	. . #
//	# # #
var Glider = Pattern{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// Stamp copies p onto g with its top-left corner at column ax, row ay.
// Dead template cells overwrite too. Cells falling outside the grid are
// skipped on every edge.
func Stamp(g *core.Grid, p Pattern, ax, ay int) {
	for r, row := range p {
		for c, alive := range row {
			x, y := ax+c, ay+r
			if !g.In(x, y) {
				continue
			}
			g.Set(x, y, alive)
		}
	}
}

// StampGlider places a Glider with its top-left corner at (ax, ay).
func StampGlider(g *core.Grid, ax, ay int) {
	Stamp(g, Glider, ax, ay)
}
