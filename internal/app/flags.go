package app

import (
	"flag"

	"eca/internal/sims/elementary"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Rule   int
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Random bool
	NoWrap bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := elementary.DefaultHistoryConfig()
	return &Config{Rule: int(d.Rule), Width: d.Width, Height: d.Height, Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVar(&c.Width, "width", c.Width, "cells per generation")
	fs.IntVar(&c.Height, "height", c.Height, "generations kept on screen")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random resets")
	fs.BoolVar(&c.Random, "random", c.Random, "seed the first generation at random instead of a centre cell")
	fs.BoolVar(&c.NoWrap, "no-wrap", c.NoWrap, "treat the edges as dead cells")
}

// History converts the flags into the history view configuration. Values
// outside their valid range are replaced by defaults.
func (c *Config) History() elementary.HistoryConfig {
	h := elementary.DefaultHistoryConfig()
	if c.Width > 0 {
		h.Width = c.Width
	}
	if c.Height > 0 {
		h.Height = c.Height
	}
	if c.Rule >= 0 && c.Rule <= 255 {
		h.Rule = uint8(c.Rule)
	}
	if c.NoWrap {
		h.Boundary = elementary.DeadEdges
	}
	h.Random = c.Random
	return h
}
