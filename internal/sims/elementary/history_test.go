package elementary

import (
	"slices"
	"testing"
)

func TestHistoryScrollsDown(t *testing.T) {
	h, err := NewHistory(HistoryConfig{Width: 5, Height: 3, Rule: 90, Boundary: DeadEdges})
	if err != nil {
		t.Fatal(err)
	}
	h.Reset(0)

	row := func(y int) []uint8 { return h.Cells()[y*5 : (y+1)*5] }
	if !slices.Equal(row(0), []uint8{0, 0, 1, 0, 0}) {
		t.Fatalf("top row after reset = %v", row(0))
	}
	if !slices.Equal(row(1), make([]uint8, 5)) {
		t.Fatalf("second row after reset = %v", row(1))
	}

	h.Step()
	if !slices.Equal(row(0), []uint8{0, 1, 0, 1, 0}) {
		t.Fatalf("top row after step = %v", row(0))
	}
	if !slices.Equal(row(1), []uint8{0, 0, 1, 0, 0}) {
		t.Fatalf("previous generation not scrolled: %v", row(1))
	}

	h.Step()
	if !slices.Equal(row(2), []uint8{0, 0, 1, 0, 0}) {
		t.Fatalf("oldest generation = %v", row(2))
	}
}

func TestHistoryRandomResetDeterministic(t *testing.T) {
	h, err := NewHistory(HistoryConfig{Width: 40, Height: 2, Rule: 30, Random: true})
	if err != nil {
		t.Fatal(err)
	}
	h.Reset(7)
	first := append([]uint8(nil), h.Cells()...)
	h.Step()
	h.Reset(7)
	if !slices.Equal(first, h.Cells()) {
		t.Fatal("Reset with the same seed not deterministic")
	}
}

func TestHistoryConfigFromMap(t *testing.T) {
	c := HistoryConfigFromMap(map[string]string{
		"w": "64", "h": "-1", "rule": "300", "wrap": "false", "random": "true",
	})
	want := HistoryConfig{Width: 64, Height: 256, Rule: 110, Boundary: DeadEdges, Random: true}
	if c != want {
		t.Fatalf("HistoryConfigFromMap = %+v, want %+v", c, want)
	}
	if HistoryConfigFromMap(nil) != DefaultHistoryConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestNewHistoryRejectsZeroWidth(t *testing.T) {
	if _, err := NewHistory(HistoryConfig{Width: 0, Height: 4}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestHistoryResetSeedsCentre(t *testing.T) {
	for _, w := range []int{1, 2, 4, 7} {
		h, err := NewHistory(HistoryConfig{Width: w, Height: 2, Rule: 30})
		if err != nil {
			t.Fatal(err)
		}
		h.Automaton().Randomize()
		h.Reset(0)
		want := make([]bool, w)
		want[w/2] = true
		if got := h.Automaton().Cells(); !slices.Equal(got, want) {
			t.Fatalf("width %d: cells after reset = %v, want %v", w, got, want)
		}
	}
}
