package elementary

import (
	"strconv"

	"eca/internal/core"
)

// HistoryConfig holds parameters for the scrolling history view.
type HistoryConfig struct {
	Width    int
	Height   int
	Rule     uint8
	Boundary Boundary
	Random   bool
}

// DefaultHistoryConfig returns the default configuration.
func DefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{Width: 256, Height: 256, Rule: 110, Boundary: Wrap}
}

// HistoryConfigFromMap populates a HistoryConfig from a string map. Invalid
// entries keep their defaults.
func HistoryConfigFromMap(cfg map[string]string) HistoryConfig {
	c := DefaultHistoryConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil && !parsed {
			c.Boundary = DeadEdges
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

var _ core.Sim = (*History)(nil)

// History projects an automaton vertically: row 0 holds the newest generation
// and older ones scroll downwards until they fall off the bottom.
type History struct {
	w, h   int
	random bool
	auto   *Automaton
	cur    []uint8
}

// NewHistory creates a history view for cfg.
func NewHistory(cfg HistoryConfig) (*History, error) {
	auto, err := New(cfg.Rule, cfg.Width, cfg.Boundary, DefaultGlyphs)
	if err != nil {
		return nil, err
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	return &History{
		w:      cfg.Width,
		h:      cfg.Height,
		random: cfg.Random,
		auto:   auto,
		cur:    make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (hs *History) Name() string { return "rule " + strconv.Itoa(int(hs.auto.Rule())) }

// Size returns the frame dimensions.
func (hs *History) Size() core.Size { return core.Size{W: hs.w, H: hs.h} }

// Cells exposes the render buffer.
func (hs *History) Cells() []uint8 { return hs.cur }

// Automaton returns the underlying automaton.
func (hs *History) Automaton() *Automaton { return hs.auto }

// Reset clears the history and reseeds the top row, either with a single
// centre cell or with a seeded random fill.
func (hs *History) Reset(seed int64) {
	clear(hs.cur)
	if hs.random {
		hs.auto.Fill(core.NewRNG(seed))
	} else {
		hs.auto.only(hs.w / 2)
	}
	hs.paintTop()
}

// Step advances the automaton and scrolls older generations down one row.
func (hs *History) Step() {
	copy(hs.cur[hs.w:], hs.cur[:hs.w*(hs.h-1)])
	hs.auto.StepAndUpdate()
	hs.paintTop()
}

func (hs *History) paintTop() {
	for x, alive := range hs.auto.cells {
		hs.cur[x] = bit(alive)
	}
}
