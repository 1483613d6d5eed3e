package elementary

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidCell is returned by ParseCells for a rune outside the cell alphabet.
	ErrInvalidCell = errors.New("elementary: invalid cell character")
	// ErrInvalidGlyphs is returned by ParseGlyphs unless given exactly two runes.
	ErrInvalidGlyphs = errors.New("elementary: glyphs must be exactly two characters")
)

// Block is the full block character used by BlockGlyphs.
const Block = '█'

// Glyphs maps cell states to the characters used when rendering.
type Glyphs struct {
	Alive rune
	Dead  rune
}

var (
	// DefaultGlyphs renders live cells as X and dead cells as dots.
	DefaultGlyphs = Glyphs{Alive: 'X', Dead: '.'}
	// BlockGlyphs renders live cells as solid blocks on a blank background.
	BlockGlyphs = Glyphs{Alive: Block, Dead: ' '}
)

// For returns the glyph for a cell.
func (g Glyphs) For(alive bool) rune {
	if alive {
		return g.Alive
	}
	return g.Dead
}

// ParseGlyphs reads a two-character string such as "X." into Glyphs, alive
// glyph first.
func ParseGlyphs(s string) (Glyphs, error) {
	if utf8.RuneCountInString(s) != 2 {
		return Glyphs{}, fmt.Errorf("%w: got %q, want e.g. \"X.\" or \"%c \"", ErrInvalidGlyphs, s, Block)
	}
	r := []rune(s)
	return Glyphs{Alive: r[0], Dead: r[1]}, nil
}

// ParseCells decodes an initial-state string. Space, '.' and '0' are dead;
// 'x', 'X', '1' and the block character are alive.
func ParseCells(s string) ([]bool, error) {
	cells := make([]bool, 0, utf8.RuneCountInString(s))
	pos := 0
	for _, r := range s {
		switch r {
		case ' ', '.', '0':
			cells = append(cells, false)
		case 'x', 'X', '1', Block:
			cells = append(cells, true)
		default:
			return nil, fmt.Errorf("%w: %q at position %d (dead: ' ', '.', '0'; alive: 'x', 'X', '1', '%c')",
				ErrInvalidCell, r, pos, Block)
		}
		pos++
	}
	return cells, nil
}
