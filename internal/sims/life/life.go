// Package life implements Conway's Game of Life on a bounded grid.
package life

import "lifepaint/internal/core"

// Next computes the generation following snap. Cells beyond the edge count
// as dead. The result is a fresh grid; snap is only read.
func Next(snap core.Snapshot) *core.Grid {
	n := snap.Size()
	next := core.NewGrid(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			next.Set(x, y, survives(snap.Get(x, y), Neighbors(snap, x, y)))
		}
	}
	return next
}

// Neighbors counts the live cells in the Moore neighbourhood of (x, y).
func Neighbors(snap core.Snapshot, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !snap.In(nx, ny) {
				continue
			}
			if snap.Get(nx, ny) {
				count++
			}
		}
	}
	return count
}

func survives(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
