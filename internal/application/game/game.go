// Package game provides the ebiten.Game that runs the current scene and
// switches between scenes.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hollow/internal/application/scene"
	"github.com/younwookim/hollow/internal/application/state"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update runs one tick of the current scene and performs any transition it asks for.
// On ebiten.Termination the current scene is exited before the error is returned.
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.current.OnExit()
		}
		return err
	}

	if next != nil && next != g.current {
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

// Layout returns the logical screen size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the scene being run
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of updates run so far
func (g *Game) Frames() int {
	return g.frames
}

// State reports the game state of the current scene. Scenes that do not
// report one count as the menu.
func (g *Game) State() state.GameState {
	if s, ok := g.current.(scene.Stater); ok {
		return s.State()
	}
	return state.StateMenu
}
