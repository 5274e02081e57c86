package core

import "time"

// FixedStep blocks the caller so a loop runs at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the frame duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// Tick waits until the next frame boundary. A caller that fell behind
// resumes from the current time rather than running catch-up frames.
func (f *FixedStep) Tick() {
	now := f.now()
	if f.next.IsZero() {
		f.next = now
	}
	f.next = f.next.Add(f.step)
	if wait := f.next.Sub(now); wait > 0 {
		f.sleep(wait)
		return
	}
	f.next = now
}
