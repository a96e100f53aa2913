package system

// InputState holds one frame of player intent
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	// Look deltas in degrees. Positive LookX turns right, positive LookY looks up.
	LookX       float64
	LookY       float64
	ToggleTorch bool
	ToggleRadio bool
}

// Moving reports whether any movement key is held
func (in InputState) Moving() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}
