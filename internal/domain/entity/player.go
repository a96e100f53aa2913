package entity

import "math"

// Direction is a movement direction relative to the camera
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
)

// MaxPitch keeps the camera from flipping over
const MaxPitch = 89.0 * math.Pi / 180.0

// Box is an axis-aligned square in the XZ plane
type Box struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// BoxAround returns the square of the given half extent centered on c
func BoxAround(c Vec3, half float64) Box {
	return Box{MinX: c.X - half, MaxX: c.X + half, MinZ: c.Z - half, MaxZ: c.Z + half}
}

// Contains reports whether p lies inside the box, bounds inclusive
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Player is the first-person player. Yaw 0 looks down +Z; positive yaw turns left.
type Player struct {
	Position  Vec3
	EyeHeight float64
	Yaw       float64
	Pitch     float64
	Velocity  float64

	TorchOn bool
	Dead    bool
	Victory bool

	// Step latches the low point of the head bob so each dip plays one footstep
	Step bool
}

// NewPlayer creates a player standing at start
func NewPlayer(start Vec3) *Player {
	p := &Player{}
	p.Reset(start)
	return p
}

// Reset puts the player back at start with the torch on
func (p *Player) Reset(start Vec3) {
	p.Position = start
	p.EyeHeight = start.Y
	p.Yaw = 0
	p.Pitch = 0
	p.Velocity = 0
	p.TorchOn = true
	p.Dead = false
	p.Victory = false
	p.Step = false
}

// Front returns the camera's view direction
func (p *Player) Front() Vec3 {
	sy, cy := math.Sincos(p.Yaw)
	sp, cp := math.Sincos(p.Pitch)
	return Vec3{X: sy * cp, Y: sp, Z: cy * cp}.Normalize()
}

// Right returns the camera's right vector, parallel to the floor
func (p *Player) Right() Vec3 {
	return p.Front().Cross(Vec3{Y: 1}).Normalize()
}

// Look applies a mouse delta in degrees. Positive dx turns right, positive dy looks up.
func (p *Player) Look(dxDeg, dyDeg float64) {
	p.Yaw -= dxDeg * math.Pi / 180
	p.Pitch = Clamp(p.Pitch+dyDeg*math.Pi/180, -MaxPitch, MaxPitch)
}

// Offset returns the displacement of a step of length step in direction dir
func (p *Player) Offset(dir Direction, step float64) Vec3 {
	switch dir {
	case DirForward:
		return p.Front().Scale(step)
	case DirBackward:
		return p.Front().Scale(-step)
	case DirLeft:
		return p.Right().Scale(-step)
	case DirRight:
		return p.Right().Scale(step)
	default:
		return Vec3{}
	}
}

// ToggleTorch flips the torch and returns the new state
func (p *Player) ToggleTorch() bool {
	p.TorchOn = !p.TorchOn
	return p.TorchOn
}
