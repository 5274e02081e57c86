package term

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"

	"lifepaint/internal/app"
	"lifepaint/internal/input"
	"lifepaint/internal/render"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return New(s), s
}

func rowText(s tcell.SimulationScreen, row, from, n int) string {
	cells, w, _ := s.GetContents()
	out := make([]rune, 0, n)
	for x := from; x < from+n; x++ {
		c := cells[row*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func TestKeysTranslate(t *testing.T) {
	term, s := newSimTerminal(t, 40, 20)
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'N', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	got := term.Poll(nil)
	if len(got) != 3 {
		t.Fatalf("events = %+v", got)
	}
	if got[0].Kind != input.KeyDown || got[0].Key != input.KeySpace {
		t.Fatalf("first = %+v", got[0])
	}
	if got[1].Key != input.KeyN {
		t.Fatalf("second = %+v", got[1])
	}
	if got[2].Kind != input.Quit {
		t.Fatalf("third = %+v", got[2])
	}
}

func TestMouseEdges(t *testing.T) {
	term, s := newSimTerminal(t, 40, 20)

	s.InjectMouse(9, 4, tcell.ButtonPrimary, tcell.ModNone)
	got := term.Poll(nil)
	if len(got) != 1 || got[0].Kind != input.PointerDown || got[0].Button != input.ButtonPrimary {
		t.Fatalf("press = %+v", got)
	}
	if got[0].Pos != image.Pt(4, 4) {
		t.Fatalf("press at %v", got[0].Pos)
	}

	s.InjectMouse(13, 6, tcell.ButtonPrimary, tcell.ModNone)
	if got = term.Poll(nil); len(got) != 0 {
		t.Fatalf("drag produced %+v", got)
	}
	if term.CursorPosition() != image.Pt(6, 6) {
		t.Fatalf("cursor = %v", term.CursorPosition())
	}

	s.InjectMouse(13, 6, tcell.ButtonNone, tcell.ModNone)
	got = term.Poll(nil)
	if len(got) != 1 || got[0].Kind != input.PointerUp || got[0].Button != input.ButtonPrimary {
		t.Fatalf("release = %+v", got)
	}

	s.InjectMouse(2, 2, tcell.ButtonSecondary, tcell.ModNone)
	got = term.Poll(nil)
	if len(got) != 1 || got[0].Button != input.ButtonSecondary || got[0].Pos != image.Pt(1, 2) {
		t.Fatalf("secondary = %+v", got)
	}
}

func TestFit(t *testing.T) {
	term, _ := newSimTerminal(t, 100, 30)
	if got := term.Fit(); got != 30 {
		t.Fatalf("fit = %d", got)
	}
	term, _ = newSimTerminal(t, 40, 30)
	if got := term.Fit(); got != 20 {
		t.Fatalf("fit = %d", got)
	}
}

func TestDrawText(t *testing.T) {
	term, s := newSimTerminal(t, 40, 20)
	term.DrawRect(0, 0, 20, 20, render.Background)
	term.DrawText("Paused", image.Pt(10, 18), render.PausedFg, render.AnchorCenter)
	term.DrawText("Alive Cells: 3", image.Pt(19, 1), render.TextFg, render.AnchorTopRight)
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	if got := rowText(s, 18, 17, 6); got != "Paused" {
		t.Fatalf("status row = %q", got)
	}
	if got := rowText(s, 1, 24, 14); got != "Alive Cells: 3" {
		t.Fatalf("count row = %q", got)
	}
}

func TestSessionInTerminal(t *testing.T) {
	term, s := newSimTerminal(t, 40, 20)
	cfg := app.Config{GridSize: term.Fit(), CellSize: 1, TPS: 10, Seed: 1}
	sess, err := app.NewSession(cfg, term)
	if err != nil {
		t.Fatal(err)
	}

	s.InjectMouse(6, 3, tcell.ButtonSecondary, tcell.ModNone)
	sess.Update()
	if n := sess.Grid().CountAlive(); n != 5 {
		t.Fatalf("stamp gave %d cells", n)
	}
	sess.Draw(term)
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	// Glider top row has its live cell at grid column 4, row 3.
	cells, w, _ := s.GetContents()
	_, bg, _ := cells[3*w+8].Style.Decompose()
	if bg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("alive cell background = %v", bg)
	}

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if sess.Update() {
		t.Fatal("q should quit")
	}
}
