package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateInstructions
	StateCredits
	StatePlaying
	StateScreamer
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateInstructions:
		return "Instructions"
	case StateCredits:
		return "Credits"
	case StatePlaying:
		return "Playing"
	case StateScreamer:
		return "Screamer"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// InSession reports whether the state belongs to a running game session
func (s GameState) InSession() bool {
	return s == StatePlaying || s == StateScreamer
}
