package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

func newFakeStep(tps int) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clk.now
	fs.sleep = clk.sleep
	return fs, clk
}

func TestFixedStepSleepsRemainder(t *testing.T) {
	fs, clk := newFakeStep(10)
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step = %v", fs.Step())
	}

	fs.Tick()
	clk.t = clk.t.Add(30 * time.Millisecond)
	fs.Tick()

	if len(clk.sleeps) != 2 {
		t.Fatalf("sleeps = %v", clk.sleeps)
	}
	if clk.sleeps[0] != 100*time.Millisecond {
		t.Fatalf("first sleep = %v", clk.sleeps[0])
	}
	if clk.sleeps[1] != 70*time.Millisecond {
		t.Fatalf("second sleep = %v, want 70ms", clk.sleeps[1])
	}
}

func TestFixedStepDropsDebt(t *testing.T) {
	fs, clk := newFakeStep(10)
	fs.Tick()
	clk.t = clk.t.Add(350 * time.Millisecond)
	fs.Tick()
	if len(clk.sleeps) != 1 {
		t.Fatalf("late frame should not sleep, sleeps = %v", clk.sleeps)
	}
	clk.t = clk.t.Add(10 * time.Millisecond)
	fs.Tick()
	if got := clk.sleeps[len(clk.sleeps)-1]; got != 90*time.Millisecond {
		t.Fatalf("sleep after catching up = %v, want 90ms", got)
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step = %v", fs.Step())
	}
}
