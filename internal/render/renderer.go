// Package render defines the drawing surface the simulator paints onto.
package render

import (
	"image"
	"image/color"
)

// Anchor selects which point of a text's bounding box is placed at the
// requested position.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
	AnchorTopRight
)

// Renderer is a frame-oriented set of drawing primitives in window pixels.
type Renderer interface {
	DrawRect(x, y, w, h int, c color.Color)
	DrawLine(p1, p2 image.Point, c color.Color)
	DrawText(s string, at image.Point, c color.Color, a Anchor)
	// Present flushes the frame to the display.
	Present() error
}

// Palette colours.
var (
	Background = color.RGBA{A: 255}
	GridLine   = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	DeadCell   = color.RGBA{A: 255}
	AliveCell  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RunningFg  = color.RGBA{G: 255, A: 255}
	PausedFg   = color.RGBA{R: 255, A: 255}
	TextFg     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// AnchorOrigin returns where the top-left corner of a box of size w*h goes
// so that its anchor point lands on at.
func AnchorOrigin(at image.Point, w, h int, a Anchor) image.Point {
	switch a {
	case AnchorCenter:
		return image.Pt(at.X-w/2, at.Y-h/2)
	case AnchorTopRight:
		return image.Pt(at.X-w, at.Y)
	default:
		return at
	}
}
