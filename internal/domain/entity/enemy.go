package entity

import "math"

// Behavior is the enemy's top-level state
type Behavior int

const (
	// BehaviorPatrol walks BFS paths between random walkable tiles
	BehaviorPatrol Behavior = iota
	// BehaviorScream rushes the player after the jump scare. Only Init leaves it.
	BehaviorScream
)

// String returns the behavior name
func (b Behavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "Patrol"
	case BehaviorScream:
		return "Scream"
	default:
		return "Unknown"
	}
}

// Leg tracks the one-shot turn decision per waypoint.
// Arrived means a decision is pending; EnRoute means it has been taken.
type Leg int

const (
	LegArrived Leg = iota
	LegEnRoute
)

// Turn is a discrete steering decision
type Turn int

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
	TurnReverse
)

// String returns the turn name
func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "None"
	case TurnLeft:
		return "Left"
	case TurnRight:
		return "Right"
	case TurnReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// Angle returns the yaw increment of the turn in radians
func (t Turn) Angle() float64 {
	switch t {
	case TurnLeft:
		return math.Pi / 2
	case TurnRight:
		return -math.Pi / 2
	case TurnReverse:
		return math.Pi
	default:
		return 0
	}
}

// Alignment thresholds for DecideTurn
const (
	straightDot = 0.95
	reverseDot  = -0.95
)

// DecideTurn picks the turn that aligns current with direction. Both vectors
// are in (row, col) = (z, x) order. Dot above 0.95 keeps going, below -0.95
// reverses; otherwise the sign of the z×x cross product picks right (> 0) or left.
func DecideTurn(direction, current [2]float64) Turn {
	dot := direction[0]*current[0] + direction[1]*current[1]
	if dot < reverseDot {
		return TurnReverse
	}
	if dot > straightDot {
		return TurnNone
	}
	cross := direction[0]*current[1] - direction[1]*current[0]
	if cross > 0 {
		return TurnRight
	}
	return TurnLeft
}

// Enemy is the single AI agent. It is mutated only by its own update cycle.
type Enemy struct {
	Position Vec3
	Front    Vec3
	Yaw      float64
	Speed    float64

	Behavior   Behavior
	SeePlayer  bool
	NearPlayer bool

	Path    []Coord
	PathIdx int
	// GridPos caches the last tile the enemy was confirmed on
	GridPos Coord
	Leg     Leg
}

// NewEnemy creates an enemy at pos facing +Z
func NewEnemy(pos Vec3, speed float64) *Enemy {
	e := &Enemy{}
	e.Reset(pos, speed)
	return e
}

// Reset restores the spawn state without touching the path
func (e *Enemy) Reset(pos Vec3, speed float64) {
	e.Position = pos
	e.Front = Vec3{Z: 1}
	e.Yaw = 0
	e.Speed = speed
	e.Behavior = BehaviorPatrol
	e.SeePlayer = false
	e.NearPlayer = false
	e.PathIdx = 0
	e.GridPos = TileOf(pos)
	e.Leg = LegArrived
}

// SetPath replaces the current path and rewinds the path index
func (e *Enemy) SetPath(path []Coord) {
	e.Path = path
	e.PathIdx = 0
	e.Leg = LegArrived
}

// AtPathEnd reports whether no further waypoint remains
func (e *Enemy) AtPathEnd() bool {
	return e.PathIdx >= len(e.Path)-1
}

// Waypoint returns the tile currently being walked to
func (e *Enemy) Waypoint() Coord {
	return e.Path[e.PathIdx]
}

// MoveForward advances along Front by Speed*dt
func (e *Enemy) MoveForward(dt float64) {
	e.Position = e.Position.Add(e.Front.Scale(e.Speed * dt))
}

// Rotate applies a turn to both the yaw and the facing vector
func (e *Enemy) Rotate(t Turn) {
	if t == TurnNone {
		return
	}
	angle := t.Angle()
	e.Yaw += angle
	e.Front = e.Front.RotateY(angle)
}

// HeadingZX returns the facing projected into (z, x) order
func (e *Enemy) HeadingZX() [2]float64 {
	f := e.Front.Normalize()
	return [2]float64{f.Z, f.X}
}

// OnTile reports whether the enemy's XZ position is within tolerance of tile's center
func (e *Enemy) OnTile(tile Coord, tolerance float64) bool {
	x, z := float64(tile.Col), float64(tile.Row)
	return e.Position.X >= x-tolerance && e.Position.X <= x+tolerance &&
		e.Position.Z >= z-tolerance && e.Position.Z <= z+tolerance
}

// FaceTowards sets the yaw so the model looks at target
func (e *Enemy) FaceTowards(target Vec3) {
	d := target.Sub(e.Position)
	e.Yaw = math.Atan2(d.X, d.Z)
}
