package life

import (
	"testing"

	"lifepaint/internal/core"
)

func TestStampGliderAtOrigin(t *testing.T) {
	g := core.NewGrid(6)
	StampGlider(g, 0, 0)
	// (col,row) of the template's live cells.
	expectCells(t, g, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	if n := g.CountAlive(); n != 5 {
		t.Fatalf("glider has %d cells", n)
	}
}

func TestStampOverwritesBlock(t *testing.T) {
	g := core.NewGrid(6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			g.Set(x, y, true)
		}
	}
	StampGlider(g, 1, 1)
	if g.Get(1, 1) || g.Get(3, 1) || g.Get(1, 2) || g.Get(2, 2) {
		t.Fatal("dead template cells should overwrite")
	}
	if !g.Get(0, 0) || !g.Get(4, 4) {
		t.Fatal("cells outside the stamp must be untouched")
	}
}

func TestStampClipsBottomRight(t *testing.T) {
	g := core.NewGrid(5)
	StampGlider(g, 3, 3)
	// Only template rows 0..1 and columns 0..1 fit.
	expectCells(t, g, [2]int{4, 3})

	g = core.NewGrid(5)
	StampGlider(g, 4, 2)
	expectCells(t, g, [2]int{4, 4})
}

func TestStampClipsTopLeft(t *testing.T) {
	g := core.NewGrid(5)
	StampGlider(g, -1, -1)
	// Template (col 1,row 2) and (col 2,row 1), (col 2,row 2) land inside.
	expectCells(t, g, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})

	g = core.NewGrid(5)
	StampGlider(g, -3, -3)
	expectCells(t, g)
}

func TestGliderTravels(t *testing.T) {
	g := core.NewGrid(10)
	StampGlider(g, 1, 1)
	for i := 0; i < 4; i++ {
		g = Next(g.Snapshot())
	}
	want := core.NewGrid(10)
	StampGlider(want, 2, 2)
	expectCells(t, g, aliveOf(want)...)
}

func aliveOf(g *core.Grid) [][2]int {
	var out [][2]int
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.Get(x, y) {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}
