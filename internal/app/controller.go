package app

import (
	"time"

	"eca/internal/core"
)

// keys is the set of viewer keys pressed during one frame.
type keys struct {
	quit   bool
	pause  bool
	resume bool
	reset  bool
	reseed bool
	step   bool
}

// controller owns playback state. It is kept free of ebiten so it can be
// driven without a display.
type controller struct {
	sim      core.Sim
	seed     int64
	paused   bool
	tickOnce bool
	now      func() int64
}

func newController(sim core.Sim, seed int64) *controller {
	return &controller{sim: sim, seed: seed, now: func() int64 { return time.Now().UnixNano() }}
}

func (c *controller) reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.tickOnce = false
}

// update applies every key pressed this frame, then advances the simulation
// unless paused. It reports false when the viewer should close.
func (c *controller) update(k keys) bool {
	if k.quit {
		return false
	}
	if k.pause {
		c.paused = !c.paused
	}
	if k.resume {
		c.paused = false
	}
	if k.reset {
		c.reset(c.seed)
	}
	if k.reseed {
		c.reset(c.now())
	}
	if k.step {
		c.tickOnce = true
	}

	if !c.paused || c.tickOnce {
		c.sim.Step()
		c.tickOnce = false
	}
	return true
}
