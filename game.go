package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bounce/internal/config"
	"bounce/internal/gamemode"
)

// Game adapts a bounce session to ebiten's loop.
type Game struct {
	session *gamemode.Session
	clock   *gamemode.Clock
	tracker *gamemode.Tracker
	width   int
	height  int
	started bool
}

func NewGame(cfg config.Config) *Game {
	return &Game{
		session: gamemode.Start(cfg),
		clock:   gamemode.NewClock(cfg.FixedStep.Duration),
		tracker: &gamemode.Tracker{W: cfg.Width, H: cfg.Height},
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Update: Logic (TPS follows the fixed step when one is set)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// First frame only draws, timing starts here
	if !g.started {
		g.started = true
		g.tracker.Observe(ebiten.CursorPosition())
		g.clock.Start()
		return nil
	}

	if g.session.Over() {
		return nil
	}

	x, y := ebiten.CursorPosition()
	switch g.tracker.Observe(x, y) {
	case gamemode.PointerMove:
		g.session.PointerMoved(float64(x), float64(y))
	case gamemode.PointerLeave:
		g.session.PointerLeft()
	}

	g.session.Tick(g.clock.Elapsed())
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(NewEbitenSurface(screen))
}

// Layout: the simulation bounds are fixed at startup
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
