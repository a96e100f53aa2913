// Package scene defines the Scene interface for game screens and the
// Directory scenes use to reach their siblings.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hollow/internal/application/state"
)

// Scene is one game screen: menu, an information card, or the maze itself.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene to switch to, or nil to stay.
	// Returning ebiten.Termination quits the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}

// Stater is implemented by scenes that map onto a GameState
type Stater interface {
	State() state.GameState
}

// Directory holds the scenes by role. It is filled once at startup so
// scenes can switch to siblings without importing each other.
type Directory struct {
	Menu         Scene
	Instructions Scene
	Credits      Scene
	Playing      Scene
	Victory      Scene
}
