// Package keyboard reads ebiten keyboard and mouse state into player input.
// It is the only part of the simulation input path that links ebiten.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

// InputSystem reads ebiten input into system.InputState
type InputSystem struct {
	config *config.PlayerConfig

	lastX, lastY int
	primed       bool
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PlayerConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// Reset forgets the last cursor position so the next frame reports no look delta
func (s *InputSystem) Reset() {
	s.primed = false
}

// GetInput reads the current input state
func (s *InputSystem) GetInput(dt float64) system.InputState {
	mx, my := ebiten.CursorPosition()
	dx, dy := s.cursorDelta(mx, my)

	in := system.InputState{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:        ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD),
		LookX:       float64(dx) * s.config.MouseSensitivity,
		LookY:       float64(-dy) * s.config.MouseSensitivity,
		ToggleTorch: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyF),
		ToggleRadio: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	// Arrow keys turn for players without a mouse
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.LookX -= s.config.KeyTurnRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.LookX += s.config.KeyTurnRate * dt
	}
	return in
}

// cursorDelta returns the cursor movement since the previous call.
// The first call after Reset reports zero.
func (s *InputSystem) cursorDelta(x, y int) (int, int) {
	if !s.primed {
		s.lastX, s.lastY = x, y
		s.primed = true
		return 0, 0
	}
	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y
	return dx, dy
}
