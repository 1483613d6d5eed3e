package app

import (
	"testing"

	"eca/internal/core"
)

type recordingSim struct {
	resets []int64
	steps  int
}

func (s *recordingSim) Name() string     { return "recording" }
func (s *recordingSim) Size() core.Size  { return core.Size{W: 1, H: 1} }
func (s *recordingSim) Reset(seed int64) { s.resets = append(s.resets, seed) }
func (s *recordingSim) Step()            { s.steps++ }
func (s *recordingSim) Cells() []uint8   { return []uint8{0} }

func TestControllerRunsUntilPaused(t *testing.T) {
	sim := &recordingSim{}
	c := newController(sim, 1)

	c.update(keys{})
	c.update(keys{})
	if sim.steps != 2 {
		t.Fatalf("steps = %d, want 2 while running", sim.steps)
	}

	c.update(keys{pause: true})
	c.update(keys{})
	if sim.steps != 2 {
		t.Fatalf("steps = %d, want 2 while paused", sim.steps)
	}

	c.update(keys{resume: true})
	if sim.steps != 3 {
		t.Fatalf("steps = %d, want 3 after resume", sim.steps)
	}
}

func TestControllerHandlesKeysInSameFrame(t *testing.T) {
	sim := &recordingSim{}
	c := newController(sim, 9)
	c.now = func() int64 { return 77 }
	c.update(keys{pause: true})
	sim.steps = 0

	c.update(keys{reset: true, step: true})
	if len(sim.resets) != 1 || sim.resets[0] != 9 {
		t.Fatalf("resets = %v, want [9]", sim.resets)
	}
	if sim.steps != 1 {
		t.Fatalf("single step pressed with reset was dropped: steps = %d", sim.steps)
	}

	c.update(keys{reseed: true, step: true})
	if len(sim.resets) != 2 || sim.resets[1] != 77 {
		t.Fatalf("resets = %v, want reseed with 77", sim.resets)
	}
	if sim.steps != 2 {
		t.Fatalf("single step pressed with reseed was dropped: steps = %d", sim.steps)
	}

	c.update(keys{reset: true})
	if len(sim.resets) != 3 || sim.resets[2] != 77 {
		t.Fatalf("reset after reseed should reuse seed 77, got %v", sim.resets)
	}
}

func TestControllerQuit(t *testing.T) {
	sim := &recordingSim{}
	c := newController(sim, 1)
	if c.update(keys{quit: true, step: true}) {
		t.Fatal("update should report false on quit")
	}
	if sim.steps != 0 {
		t.Fatalf("quit frame stepped the simulation")
	}
}
