package app

import (
	"fmt"

	"lifepaint/internal/core"
	"lifepaint/internal/input"
	"lifepaint/internal/render"
	"lifepaint/internal/sims/life"
	"lifepaint/internal/ui"
)

// Clock blocks until the next frame boundary.
type Clock interface {
	Tick()
}

// Session owns the board, run state and input handling for one run.
type Session struct {
	cfg   Config
	src   input.Source
	ctl   *input.Controller
	state core.State

	board *ui.Board
	hud   *ui.HUD

	events     []input.Event
	generation int
	done       bool
}

// NewSession validates cfg and returns a paused session with an empty board.
func NewSession(cfg Config, src input.Source) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := cfg.WindowSize()
	return &Session{
		cfg:   cfg,
		src:   src,
		ctl:   input.NewController(cfg.CellSize, core.NewRNG(cfg.Seed)),
		state: core.NewState(cfg.GridSize),
		board: ui.NewBoard(cfg.CellSize),
		hud:   ui.NewHUD(w, h, cfg.CellSize),
	}, nil
}

// Grid returns the current board.
func (s *Session) Grid() *core.Grid { return s.state.Grid }

// Mode returns the current run state.
func (s *Session) Mode() core.Mode { return s.state.Mode }

// Generation returns the number of generations computed so far.
func (s *Session) Generation() int { return s.generation }

// Done reports whether a quit event has been received.
func (s *Session) Done() bool { return s.done }

// Update drains input, paints under a held primary button and advances the
// board when running. It returns false once the source has asked to quit.
func (s *Session) Update() bool {
	if s.done {
		return false
	}
	s.events = s.src.Poll(s.events[:0])
	for _, ev := range s.events {
		if ev.Kind == input.Quit {
			s.done = true
			return false
		}
		s.ctl.Handle(ev, &s.state)
	}

	if s.ctl.Painting() {
		s.ctl.Paint(s.state.Grid, s.src.CursorPosition())
	}

	if s.state.Mode == core.Running || s.state.StepOnce {
		s.state.Grid = life.Next(s.state.Grid.Snapshot())
		s.state.StepOnce = false
		s.generation++
	}
	return true
}

// Draw renders the board, grid lines and HUD without presenting.
func (s *Session) Draw(r render.Renderer) {
	w, h := s.cfg.WindowSize()
	r.DrawRect(0, 0, w, h, render.Background)
	s.board.Draw(r, s.state.Grid)
	s.hud.Draw(r, s.state.Mode, s.state.Grid.CountAlive())
}

// Run loops Update, Draw, Present and clock.Tick until quit.
func (s *Session) Run(r render.Renderer, clock Clock) error {
	for s.Update() {
		s.Draw(r)
		if err := r.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", s.generation, err)
		}
		clock.Tick()
	}
	return nil
}
