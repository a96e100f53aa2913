// Package menu provides the title screen.
package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hollow/internal/application/scene"
	"github.com/younwookim/hollow/internal/application/state"
)

// Item is a menu entry
type Item int

const (
	ItemPlay Item = iota
	ItemInstructions
	ItemCredits
	ItemQuit
	itemCount
)

// String returns the label shown on screen
func (i Item) String() string {
	switch i {
	case ItemPlay:
		return "Play"
	case ItemInstructions:
		return "Instructions"
	case ItemCredits:
		return "Credits"
	case ItemQuit:
		return "Quit"
	default:
		return "?"
	}
}

var (
	colorBG       = color.RGBA{8, 6, 10, 255}
	colorTitle    = color.RGBA{170, 20, 20, 255}
	colorItem     = color.RGBA{130, 130, 140, 255}
	colorSelected = color.RGBA{235, 235, 220, 255}
	colorHint     = color.RGBA{80, 80, 90, 255}
)

// Menu is the title screen
type Menu struct {
	dir      *scene.Directory
	selected Item
}

// New creates the menu. dir is read when an item is chosen, so it may be
// filled after construction.
func New(dir *scene.Directory) *Menu {
	return &Menu{dir: dir}
}

// Selected returns the highlighted item
func (m *Menu) Selected() Item {
	return m.selected
}

// Move shifts the highlight by delta, wrapping around
func (m *Menu) Move(delta int) {
	n := int(itemCount)
	m.selected = Item(((int(m.selected)+delta)%n + n) % n)
}

// Choose activates the highlighted item
func (m *Menu) Choose() (scene.Scene, error) {
	switch m.selected {
	case ItemPlay:
		return m.dir.Playing, nil
	case ItemInstructions:
		return m.dir.Instructions, nil
	case ItemCredits:
		return m.dir.Credits, nil
	default:
		return nil, ebiten.Termination
	}
}

// Update handles navigation (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return m.Choose()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Draw renders the title and items
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	h := float64(screen.Bounds().Dy())

	scene.DrawCentered(screen, "H O L L O W", h/4, colorTitle)

	y := h / 2
	for i := ItemPlay; i < itemCount; i++ {
		label, clr := "  "+i.String()+"  ", colorItem
		if i == m.selected {
			label, clr = "> "+i.String()+" <", colorSelected
		}
		scene.DrawCentered(screen, label, y, clr)
		y += 2 * scene.LineHeight
	}

	scene.DrawCentered(screen, "W/S or arrows to choose, Enter to select", h-3*scene.LineHeight, colorHint)
}

// OnEnter shows the cursor again after a run captured it
func (m *Menu) OnEnter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}

// State implements scene.Stater
func (m *Menu) State() state.GameState {
	return state.StateMenu
}
