package entity

import "math"

// Tile symbols of the map layout file
const (
	TileFloor       byte = ' '
	TileWall        byte = '#'
	TilePlayerStart byte = '@'
	TileWin         byte = 'w'
	TileEnemyStart  byte = '&'
	TileStatueA     byte = 'A'
	TileStatueB     byte = 'B'
	TileStatueC     byte = 'C'
	TileStatueD     byte = 'D'

	// TileBlocked is returned for coordinates outside the grid
	TileBlocked = TileWall
)

// Coord is a tile coordinate. Row follows world Z, Col follows world X.
type Coord struct {
	Row, Col int
}

// Sub returns c - o
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Add returns c + o
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Manhattan returns the 4-connected hop distance between two tiles
func (c Coord) Manhattan(o Coord) int {
	d := c.Sub(o)
	return absInt(d.Row) + absInt(d.Col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Vec3 is a world-space vector. Y is up; the map lies in the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns the Euclidean distance between two points
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector of v, or v itself when it has zero length
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// RotateY rotates v around the +Y axis by angle radians (right-handed, like a
// rotation matrix built from axis (0,1,0)).
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
// The input range may be reversed to invert the mapping.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// ProximityLevel maps a distance clamped to [near, far] onto [max, 0]:
// max at or inside near, zero at or beyond far.
func ProximityLevel(distance, near, far, max float64) float64 {
	d := Clamp(distance, near, far)
	normalized := MapRange(d, near, far, 0, 1)
	return MapRange(normalized, 1, 0, 0, max)
}
