package input

import "image"

// Script is a Source fed programmatically, one batch of events per Poll.
type Script struct {
	frames [][]Event
	cursor image.Point
}

// NewScript returns a Script that will deliver each frame on successive polls.
func NewScript(frames ...[]Event) *Script {
	return &Script{frames: frames}
}

// Push queues a batch to be delivered by a later Poll.
func (s *Script) Push(events ...Event) {
	s.frames = append(s.frames, events)
}

// MoveTo sets the pointer position reported by CursorPosition.
func (s *Script) MoveTo(p image.Point) { s.cursor = p }

// Pending returns the number of undelivered batches.
func (s *Script) Pending() int { return len(s.frames) }

// Poll delivers the oldest queued batch. A PointerDown also moves the cursor
// to its position.
func (s *Script) Poll(dst []Event) []Event {
	if len(s.frames) == 0 {
		return dst
	}
	frame := s.frames[0]
	s.frames = s.frames[1:]
	for _, ev := range frame {
		if ev.Kind == PointerDown {
			s.cursor = ev.Pos
		}
	}
	return append(dst, frame...)
}

// CursorPosition returns the last position set by MoveTo or a PointerDown.
func (s *Script) CursorPosition() image.Point { return s.cursor }
