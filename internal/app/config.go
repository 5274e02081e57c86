package app

import (
	"flag"
	"fmt"

	"lifepaint/internal/core"
)

// Config represents the start-up parameters of a session.
type Config struct {
	GridSize int
	CellSize int
	TPS      int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{GridSize: 80, CellSize: 10, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "size", c.GridSize, "cells per side")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
}

// Validate reports non-positive dimensions or rates.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d", core.ErrInvalidConfiguration, c.GridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", core.ErrInvalidConfiguration, c.CellSize)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tick rate %d", core.ErrInvalidConfiguration, c.TPS)
	}
	return nil
}

// WindowSize returns the window dimensions in pixels.
func (c Config) WindowSize() (w, h int) {
	side := c.GridSize * c.CellSize
	return side, side
}
