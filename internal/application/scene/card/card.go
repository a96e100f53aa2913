// Package card provides static text screens: instructions, credits and the
// victory screen. Any confirm or back key returns to the menu.
package card

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hollow/internal/application/scene"
	"github.com/younwookim/hollow/internal/application/state"
)

var (
	colorBG    = color.RGBA{8, 6, 10, 255}
	colorTitle = color.RGBA{200, 190, 160, 255}
	colorBody  = color.RGBA{150, 150, 155, 255}
	colorHint  = color.RGBA{80, 80, 90, 255}
)

// Card is a titled page of text
type Card struct {
	dir   *scene.Directory
	title string
	body  string
	state state.GameState
}

// New creates a card reporting st as its game state
func New(dir *scene.Directory, st state.GameState, title, body string) *Card {
	return &Card{dir: dir, title: title, body: body, state: st}
}

// Title returns the card heading
func (c *Card) Title() string {
	return c.title
}

// Back returns to the menu
func (c *Card) Back() scene.Scene {
	return c.dir.Menu
}

// Update implements scene.Scene
func (c *Card) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return c.Back(), nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (c *Card) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	h := float64(screen.Bounds().Dy())

	scene.DrawCentered(screen, c.title, h/6, colorTitle)
	scene.DrawText(screen, c.body, 60, h/6+3*scene.LineHeight, colorBody)
	scene.DrawCentered(screen, "Press Enter to go back", h-3*scene.LineHeight, colorHint)
}

// OnEnter implements scene.Scene
func (c *Card) OnEnter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// OnExit implements scene.Scene
func (c *Card) OnExit() {}

// State implements scene.Stater
func (c *Card) State() state.GameState {
	return c.state
}

// Instructions returns the how-to-play card
func Instructions(dir *scene.Directory) *Card {
	return New(dir, state.StateInstructions, "INSTRUCTIONS", `Find the exit marked in the maze before it finds you.

  W A S D        move
  mouse, arrows  look around
  left click, F  torch on / off
  right click, R radio on / off
  Esc            back to the menu
  F5             save the input recording
  F8             copy a status report

The radio crackles louder the closer you are to the exit.
Listening for more than a few seconds, or switching it on
too often, draws the creature to you.

If it sees you with the torch on, it is over.`)
}

// Credits returns the credits card
func Credits(dir *scene.Directory) *Card {
	return New(dir, state.StateCredits, "CREDITS", `Design, code and sound synthesis
  the Hollow team

Built with
  Ebitengine, lipgloss, testify, yaml.v3`)
}

// Victory returns the card shown after reaching the exit
func Victory(dir *scene.Directory) *Card {
	return New(dir, state.StateVictory, "YOU ESCAPED", `The door gives way and cold air rushes in.
Behind you, something screams into the dark.`)
}
