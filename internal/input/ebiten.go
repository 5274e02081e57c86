//go:build ebiten

package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeySpace: KeySpace,
	ebiten.KeyN:     KeyN,
	ebiten.KeyC:     KeyC,
	ebiten.KeyR:     KeyR,
}

var ebitenButtons = []struct {
	mb ebiten.MouseButton
	b  Button
}{
	{ebiten.MouseButtonLeft, ButtonPrimary},
	{ebiten.MouseButtonRight, ButtonSecondary},
}

// Ebiten reads the keyboard and mouse state ebiten collected for the current
// tick. It must be polled from Game.Update.
type Ebiten struct {
	keys []ebiten.Key
}

// NewEbiten returns a Source backed by ebiten's input state. Call
// ebiten.SetWindowClosingHandled(true) so closing the window arrives as Quit.
func NewEbiten() *Ebiten { return &Ebiten{} }

// Poll appends the edges observed this tick.
func (e *Ebiten) Poll(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		return append(dst, QuitEvent())
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		switch k {
		case ebiten.KeyQ, ebiten.KeyEscape:
			return append(dst, QuitEvent())
		}
		if key, ok := ebitenKeys[k]; ok {
			dst = append(dst, KeyDownEvent(key))
		}
	}

	pos := e.CursorPosition()
	for _, m := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(m.mb) {
			dst = append(dst, PointerDownEvent(m.b, pos))
		}
		if inpututil.IsMouseButtonJustReleased(m.mb) {
			dst = append(dst, PointerUpEvent(m.b))
		}
	}
	return dst
}

// CursorPosition returns the cursor in logical screen pixels.
func (e *Ebiten) CursorPosition() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}
