// Package game provides the host loop that runs Scenes at a fixed tick.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/movekit/internal/application/scene"
)

// DefaultTPS is the default tick rate
const DefaultTPS = 60

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   uint64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / DefaultTPS,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning scene.ErrQuit ends the ebiten loop without error.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	g.ticks++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// DT returns the fixed delta time.
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns the number of completed updates.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// RunHeadless updates without a window until the scene quits or maxTicks
// updates ran (maxTicks <= 0 means no limit). Quitting is not an error.
func (g *Game) RunHeadless(maxTicks int) error {
	for i := 0; maxTicks <= 0 || i < maxTicks; i++ {
		err := g.Update()
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
