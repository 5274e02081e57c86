// Package term runs the simulator in a terminal through tcell. One window
// "pixel" is two columns wide and one row tall, so a cell size of 1 draws
// square-ish cells.
package term

import (
	"fmt"
	"image"
	"image/color"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"lifepaint/internal/input"
	"lifepaint/internal/render"
)

const columnsPerPixel = 2

var mouseButtons = []struct {
	mask tcell.ButtonMask
	b    input.Button
}{
	{tcell.ButtonPrimary, input.ButtonPrimary},
	{tcell.ButtonSecondary, input.ButtonSecondary},
}

var runeKeys = map[rune]input.Key{
	' ': input.KeySpace,
	'n': input.KeyN,
	'c': input.KeyC,
	'r': input.KeyR,
}

// Terminal is both the Renderer and the input Source of a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	cursor  image.Point
	buttons tcell.ButtonMask
}

// Open initialises the controlling terminal with mouse drag reporting.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.HideCursor()
	return New(s), nil
}

// New wraps an initialised screen.
func New(s tcell.Screen) *Terminal {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	return &Terminal{screen: s}
}

// Close restores the terminal.
func (t *Terminal) Close() { t.screen.Fini() }

// Fit returns the largest grid that fits the terminal at one cell per pixel,
// leaving the grid square.
func (t *Terminal) Fit() int {
	w, h := t.screen.Size()
	side := w / columnsPerPixel
	if h < side {
		side = h
	}
	return side
}

// Poll drains the events tcell has queued without blocking.
func (t *Terminal) Poll(dst []input.Event) []input.Event {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return dst
		case *tcell.EventKey:
			dst = t.key(dst, ev)
		case *tcell.EventMouse:
			dst = t.mouse(dst, ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
	return dst
}

func (t *Terminal) key(dst []input.Event, ev *tcell.EventKey) []input.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return append(dst, input.QuitEvent())
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == 'q' {
			return append(dst, input.QuitEvent())
		}
		if k, ok := runeKeys[r]; ok {
			return append(dst, input.KeyDownEvent(k))
		}
	}
	return dst
}

func (t *Terminal) mouse(dst []input.Event, ev *tcell.EventMouse) []input.Event {
	col, row := ev.Position()
	t.cursor = image.Pt(col/columnsPerPixel, row)
	now := ev.Buttons()
	for _, m := range mouseButtons {
		was, is := t.buttons&m.mask != 0, now&m.mask != 0
		switch {
		case is && !was:
			dst = append(dst, input.PointerDownEvent(m.b, t.cursor))
		case was && !is:
			dst = append(dst, input.PointerUpEvent(m.b))
		}
	}
	t.buttons = now
	return dst
}

// CursorPosition returns the last reported mouse position in pixels.
func (t *Terminal) CursorPosition() image.Point { return t.cursor }

func (t *Terminal) DrawRect(x, y, w, h int, c color.Color) {
	st := tcell.StyleDefault.Background(toColor(c))
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			for i := 0; i < columnsPerPixel; i++ {
				t.screen.SetContent(px*columnsPerPixel+i, py, ' ', nil, st)
			}
		}
	}
}

// DrawLine is a no-op; character cells already separate the grid.
func (t *Terminal) DrawLine(image.Point, image.Point, color.Color) {}

func (t *Terminal) DrawText(s string, at image.Point, c color.Color, a render.Anchor) {
	runes := []rune(s)
	o := render.AnchorOrigin(image.Pt(at.X*columnsPerPixel, at.Y), len(runes), 1, a)
	st := tcell.StyleDefault.Foreground(toColor(c)).Background(tcell.ColorBlack)
	for i, r := range runes {
		t.screen.SetContent(o.X+i, o.Y, r, nil, st)
	}
}

// Present shows the frame.
func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
