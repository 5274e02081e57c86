// Package ui lays out a simulation frame on a render.Renderer.
package ui

import (
	"image"

	"lifepaint/internal/core"
	"lifepaint/internal/render"
)

// Board paints the cells of a grid and the lines separating them.
type Board struct {
	cellSize int
}

// NewBoard returns a Board drawing each cell as a cellSize square.
func NewBoard(cellSize int) *Board {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Board{cellSize: cellSize}
}

// Draw renders g with its origin at the window's top-left corner.
func (b *Board) Draw(r render.Renderer, g *core.Grid) {
	n, cs := g.Size(), b.cellSize
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := render.DeadCell
			if g.Get(x, y) {
				c = render.AliveCell
			}
			r.DrawRect(x*cs, y*cs, cs, cs, c)
		}
	}

	extent := n * cs
	for i := 0; i <= n; i++ {
		p := i * cs
		r.DrawLine(image.Pt(p, 0), image.Pt(p, extent), render.GridLine)
		r.DrawLine(image.Pt(0, p), image.Pt(extent, p), render.GridLine)
	}
}
