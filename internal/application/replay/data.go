package replay

import "github.com/younwookim/hollow/internal/application/system"

// Version of the replay file format
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	Fw bool    `json:"fw,omitempty"` // Forward
	Bw bool    `json:"bw,omitempty"` // Backward
	L  bool    `json:"l,omitempty"`  // Strafe left
	R  bool    `json:"r,omitempty"`  // Strafe right
	LX float64 `json:"lx,omitempty"` // Look yaw delta, degrees
	LY float64 `json:"ly,omitempty"` // Look pitch delta, degrees
	TT bool    `json:"tt,omitempty"` // ToggleTorch
	TR bool    `json:"tr,omitempty"` // ToggleRadio
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Seed      int64        `json:"seed"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput converts live input into its recorded form
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		Fw: in.Forward,
		Bw: in.Backward,
		L:  in.Left,
		R:  in.Right,
		LX: in.LookX,
		LY: in.LookY,
		TT: in.ToggleTorch,
		TR: in.ToggleRadio,
	}
}

// Input converts a recorded frame back into live input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Forward:     fi.Fw,
		Backward:    fi.Bw,
		Left:        fi.L,
		Right:       fi.R,
		LookX:       fi.LX,
		LookY:       fi.LY,
		ToggleTorch: fi.TT,
		ToggleRadio: fi.TR,
	}
}
