//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Screen draws onto the ebiten image handed to Game.Draw.
type Screen struct {
	dst  *ebiten.Image
	face font.Face
}

// NewScreen wraps dst. A nil face selects basicfont.Face7x13.
func NewScreen(dst *ebiten.Image, face font.Face) *Screen {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Screen{dst: dst, face: face}
}

// Target swaps the destination image so one Screen can serve every frame.
func (s *Screen) Target(dst *ebiten.Image) { s.dst = dst }

func (s *Screen) DrawRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Screen) DrawLine(p1, p2 image.Point, c color.Color) {
	vector.StrokeLine(s.dst, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, c, false)
}

func (s *Screen) DrawText(str string, at image.Point, c color.Color, a Anchor) {
	b := text.BoundString(s.face, str)
	o := AnchorOrigin(at, b.Dx(), b.Dy(), a)
	// text.Draw positions the baseline; b.Min is relative to it.
	text.Draw(s.dst, str, s.face, o.X-b.Min.X, o.Y-b.Min.Y, c)
}

// Present is a no-op: ebiten shows the image once Draw returns.
func (s *Screen) Present() error { return nil }
