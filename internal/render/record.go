package render

import (
	"image"
	"image/color"
)

// OpKind names a recorded drawing call.
type OpKind uint8

const (
	OpRect OpKind = iota
	OpLine
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Rect   image.Rectangle
	P1, P2 image.Point
	Text   string
	At     image.Point
	Anchor Anchor
	Color  color.Color
}

// Recorder is a Renderer that keeps the calls of the frames it receives.
// With Keep unset only the latest frame is retained, which makes it usable as
// a headless sink.
type Recorder struct {
	Keep bool

	ops    []Op
	frames int
}

// Discard is a Recorder that drops every frame on Present.
func Discard() *Recorder { return &Recorder{} }

func (r *Recorder) DrawRect(x, y, w, h int, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, Rect: image.Rect(x, y, x+w, y+h), Color: c})
}

func (r *Recorder) DrawLine(p1, p2 image.Point, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpLine, P1: p1, P2: p2, Color: c})
}

func (r *Recorder) DrawText(s string, at image.Point, c color.Color, a Anchor) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: s, At: at, Anchor: a, Color: c})
}

// Present ends the frame. Without Keep the recorded calls are dropped.
func (r *Recorder) Present() error {
	r.frames++
	if !r.Keep {
		r.ops = r.ops[:0]
	}
	return nil
}

// Ops returns the calls recorded since the last reset.
func (r *Recorder) Ops() []Op { return r.ops }

// Frames returns how many times Present was called.
func (r *Recorder) Frames() int { return r.frames }

// Reset forgets the recorded calls.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// Count returns the number of recorded calls of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
