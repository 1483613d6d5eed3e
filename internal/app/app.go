//go:build ebiten

package app

import (
	"image/color"

	"eca/internal/core"
	"eca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	*controller
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		controller: newController(sim, seed),
		painter:    render.NewGridPainter(sim.Size().W, sim.Size().H),
		onColor:    color.White,
		offColor:   color.Black,
		scale:      scale,
	}
}

// Reset reseeds the first generation and clears the history.
func (g *Game) Reset(seed int64) {
	g.reset(seed)
}

// Update handles key presses and advances the automaton one generation per tick.
func (g *Game) Update() error {
	pressed := keys{
		quit:   inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		pause:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		resume: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		reseed: inpututil.IsKeyJustPressed(ebiten.KeyS),
		step:   inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	if !g.update(pressed) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the history buffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
