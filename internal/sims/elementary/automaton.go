// Package elementary implements one-dimensional, two-state, nearest-neighbour
// cellular automata addressed by their Wolfram rule number.
package elementary

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"eca/internal/core"
)

var (
	// ErrZeroWidth is returned when an automaton is created without cells.
	ErrZeroWidth = errors.New("elementary: width must be positive")
	// ErrUnknownBoundary is returned for a Boundary outside the declared set.
	ErrUnknownBoundary = errors.New("elementary: unknown boundary")
	// ErrStateTooLarge is returned when an initial state exceeds the width.
	ErrStateTooLarge = errors.New("elementary: initial state too large")
	// ErrIndexOutOfRange is returned when a cell index is outside [0, width).
	ErrIndexOutOfRange = errors.New("elementary: index out of range")
)

// Boundary selects how the edge cells see their missing neighbour.
type Boundary uint8

const (
	// Wrap joins the first and last cells into a ring.
	Wrap Boundary = iota
	// DeadEdges treats neighbours outside the row as permanently dead.
	DeadEdges
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case DeadEdges:
		return "dead-edges"
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// Automaton holds one generation of an elementary cellular automaton. Rule,
// width, boundary and glyphs are fixed at construction.
type Automaton struct {
	rule     uint8
	width    int
	boundary Boundary
	glyphs   Glyphs
	cells    []bool
}

// New returns an automaton whose cells are all dead.
func New(rule uint8, width int, boundary Boundary, glyphs Glyphs) (*Automaton, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroWidth, width)
	}
	if boundary != Wrap && boundary != DeadEdges {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoundary, uint8(boundary))
	}
	return &Automaton{
		rule:     rule,
		width:    width,
		boundary: boundary,
		glyphs:   glyphs,
		cells:    make([]bool, width),
	}, nil
}

// Width returns the number of cells.
func (a *Automaton) Width() int { return a.width }

// Rule returns the Wolfram rule number.
func (a *Automaton) Rule() uint8 { return a.rule }

// Boundary returns the edge policy.
func (a *Automaton) Boundary() Boundary { return a.boundary }

// Glyphs returns the characters used by String.
func (a *Automaton) Glyphs() Glyphs { return a.glyphs }

// Cells returns a copy of the current generation.
func (a *Automaton) Cells() []bool { return slices.Clone(a.cells) }

// Randomize overwrites every cell with an independent coin flip. The result is
// not reproducible; use Fill with a seeded RNG when that matters.
func (a *Automaton) Randomize() {
	a.Fill(core.NewEntropyRNG())
}

// Fill overwrites every cell using rng.
func (a *Automaton) Fill(rng *core.RNG) {
	rng.FillBool(a.cells)
}

// SetState clears the generation and copies prefix into its leading cells.
func (a *Automaton) SetState(prefix []bool) error {
	if len(prefix) > a.width {
		return fmt.Errorf("%w: %d cells for width %d", ErrStateTooLarge, len(prefix), a.width)
	}
	next := make([]bool, a.width)
	copy(next, prefix)
	a.cells = next
	return nil
}

// SetOnly clears the generation and makes the cell at index the only live one.
func (a *Automaton) SetOnly(index int) error {
	if index < 0 || index >= a.width {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, a.width)
	}
	a.only(index)
	return nil
}

// only replaces the generation with one where index is the single live cell.
// index must be in range.
func (a *Automaton) only(index int) {
	next := make([]bool, a.width)
	next[index] = true
	a.cells = next
}

// Step computes the next generation without modifying the automaton. Every
// cell reads the same snapshot, so updates are simultaneous.
func (a *Automaton) Step() []bool {
	next := make([]bool, a.width)
	for i := range next {
		next[i] = (a.rule>>a.neighborhood(i))&1 != 0
	}
	return next
}

// StepAndUpdate advances the automaton by one generation.
func (a *Automaton) StepAndUpdate() {
	a.cells = a.Step()
}

// neighborhood encodes (left, self, right) of cell i as a 3-bit number with
// left as the most significant bit.
func (a *Automaton) neighborhood(i int) uint8 {
	var left, right bool
	switch a.boundary {
	case Wrap:
		left = a.cells[core.SubMod(i, 1, a.width)]
		right = a.cells[core.AddMod(i, 1, a.width)]
	case DeadEdges:
		if i > 0 {
			left = a.cells[i-1]
		}
		if i < a.width-1 {
			right = a.cells[i+1]
		}
	}
	return bit(left)<<2 | bit(a.cells[i])<<1 | bit(right)
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// String renders the current generation with the configured glyphs.
func (a *Automaton) String() string {
	var sb strings.Builder
	sb.Grow(a.width * 2)
	for _, alive := range a.cells {
		sb.WriteRune(a.glyphs.For(alive))
	}
	return sb.String()
}
