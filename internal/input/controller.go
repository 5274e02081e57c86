package input

import (
	"image"

	"lifepaint/internal/core"
	"lifepaint/internal/sims/life"
)

// soupDensity makes roughly one cell in four alive on a random fill.
const soupDensity = 4

// Controller applies input events to a simulation State. It owns only the
// pointer button state.
type Controller struct {
	cellSize int
	rng      *core.RNG

	primary   bool
	secondary bool
}

// NewController returns a controller mapping window pixels to cells of the
// given size. rng seeds random soups and may be nil to disable them.
func NewController(cellSize int, rng *core.RNG) *Controller {
	return &Controller{cellSize: cellSize, rng: rng}
}

// Handle applies a single non-quit event.
func (c *Controller) Handle(ev Event, st *core.State) {
	switch ev.Kind {
	case KeyDown:
		c.handleKey(ev.Key, st)
	case PointerDown:
		switch ev.Button {
		case ButtonPrimary:
			c.primary = true
		case ButtonSecondary:
			c.secondary = true
			if x, y, ok := c.CellAt(ev.Pos, st.Grid.Size()); ok {
				life.StampGlider(st.Grid, x, y)
			}
		}
	case PointerUp:
		switch ev.Button {
		case ButtonPrimary:
			c.primary = false
		case ButtonSecondary:
			c.secondary = false
		}
	}
}

func (c *Controller) handleKey(k Key, st *core.State) {
	switch k {
	case KeySpace:
		st.Mode = st.Mode.Toggle()
	case KeyN:
		if st.Mode == core.Paused {
			st.StepOnce = true
		}
	case KeyC:
		st.Grid.Clear()
	case KeyR:
		if c.rng != nil {
			core.FillRandom(c.rng, st.Grid, soupDensity)
		}
	}
}

// Painting reports whether the primary button is held.
func (c *Controller) Painting() bool { return c.primary }

// Held reports whether b is currently pressed.
func (c *Controller) Held(b Button) bool {
	if b == ButtonSecondary {
		return c.secondary
	}
	return c.primary
}

// Paint sets the cell under pos alive. Positions off the board are ignored.
func (c *Controller) Paint(g *core.Grid, pos image.Point) {
	if x, y, ok := c.CellAt(pos, g.Size()); ok {
		g.Set(x, y, true)
	}
}

// CellAt maps a window pixel to grid coordinates.
func (c *Controller) CellAt(pos image.Point, size int) (x, y int, ok bool) {
	if pos.X < 0 || pos.Y < 0 || c.cellSize <= 0 {
		return 0, 0, false
	}
	x, y = pos.X/c.cellSize, pos.Y/c.cellSize
	if x >= size || y >= size {
		return 0, 0, false
	}
	return x, y, true
}
