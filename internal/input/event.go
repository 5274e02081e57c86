// Package input turns raw pointer and keyboard events into board edits.
package input

import "image"

// Kind discriminates Event values.
type Kind uint8

const (
	Quit Kind = iota
	KeyDown
	PointerDown
	PointerUp
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Key identifies a keyboard key the simulator reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeySpace
	KeyN
	KeyC
	KeyR
)

// Event is one discrete input occurrence drained from a Source.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	// Pos is the pointer position in window pixels for PointerDown.
	Pos image.Point
}

// QuitEvent asks the loop to stop.
func QuitEvent() Event { return Event{Kind: Quit} }

// KeyDownEvent reports a key press.
func KeyDownEvent(k Key) Event { return Event{Kind: KeyDown, Key: k} }

// PointerDownEvent reports a button press at pos.
func PointerDownEvent(b Button, pos image.Point) Event {
	return Event{Kind: PointerDown, Button: b, Pos: pos}
}

// PointerUpEvent reports a button release.
func PointerUpEvent(b Button) Event { return Event{Kind: PointerUp, Button: b} }

// Source yields the events that arrived since the previous call.
type Source interface {
	// Poll appends pending events to dst and returns the extended slice.
	// Events are consumed; a second call returns only newer ones.
	Poll(dst []Event) []Event
	// CursorPosition returns the current pointer position in window pixels.
	CursorPosition() image.Point
}
