//go:build ebiten

package app

import (
	"lifepaint/internal/input"
	"lifepaint/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Session to the ebiten.Game interface. ebiten's TPS setting
// provides the frame clock.
type Game struct {
	session *Session
	screen  *render.Screen
	w, h    int
}

// New constructs a Game reading input from ebiten.
func New(cfg Config) (*Game, error) {
	s, err := NewSession(cfg, input.NewEbiten())
	if err != nil {
		return nil, err
	}
	w, h := cfg.WindowSize()
	return &Game{session: s, screen: render.NewScreen(nil, nil), w: w, h: h}, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *Session { return g.session }

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if !g.session.Update() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target(screen)
	g.session.Draw(g.screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
