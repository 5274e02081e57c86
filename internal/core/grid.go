package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a cell access outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidConfiguration reports a non-positive grid or cell size.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Grid stores a square board of live/dead cells in row-major order.
// x selects the column and y the row.
type Grid struct {
	size  int
	cells []bool
}

// NewGrid allocates a size*size grid with every cell dead.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Errorf("%w: grid size %d", ErrInvalidConfiguration, size))
	}
	return &Grid{size: size, cells: make([]bool, size*size)}
}

// Size returns the number of cells per side.
func (g *Grid) Size() int { return g.size }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// Get returns whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.index(x, y)]
}

// Set updates the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[g.index(x, y)] = alive
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Snapshot copies the grid into a read-only view.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{size: g.size, cells: append([]bool(nil), g.cells...)}
}

func (g *Grid) index(x, y int) int {
	if !g.In(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.size, g.size))
	}
	return y*g.size + x
}

// Snapshot is an immutable copy of a Grid.
type Snapshot struct {
	size  int
	cells []bool
}

// Size returns the number of cells per side.
func (s Snapshot) Size() int { return s.size }

// In reports whether (x, y) lies inside the snapshot.
func (s Snapshot) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.size && y < s.size
}

// Get returns whether the cell at (x, y) was alive when the snapshot was taken.
func (s Snapshot) Get(x, y int) bool {
	if !s.In(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d snapshot", ErrOutOfBounds, x, y, s.size, s.size))
	}
	return s.cells[y*s.size+x]
}

// CountAlive returns the number of live cells in the snapshot.
func (s Snapshot) CountAlive() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}
