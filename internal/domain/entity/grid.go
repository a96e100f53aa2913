package entity

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrOutOfBounds is returned by Lookup for coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNotRectangular is returned when layout rows differ in length
	ErrNotRectangular = errors.New("layout is not rectangular")
	// ErrNoWalkable is returned when a layout has no walkable tile
	ErrNoWalkable = errors.New("layout has no walkable tile")
	// ErrMissingMarker is returned when a required start marker is absent
	ErrMissingMarker = errors.New("layout is missing a required marker")
)

// Heights of the landmark models above the floor
const (
	PlayerEyeHeight  = 0.5
	EnemyHeight      = 0.3
	StatueHeight     = 0.03
	TallStatueHeight = 0.05
)

// Grid is the static tile map plus the landmark positions parsed from it.
// PlayerPosition and EnemyPosition are written once per frame by their owners.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]byte

	Walls       []Vec3
	PlayerStart Vec3
	EnemyStart  Vec3
	Win         Vec3
	Statues     [4]Vec3

	PlayerPosition Vec3
	EnemyPosition  Vec3

	walkable []Coord
}

// NewGrid builds a Grid from layout rows, one string per map row.
// Rows must all have the same length; '@', '&' and 'w' must be present.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty layout: %w", ErrNoWalkable)
	}

	g := &Grid{
		Width:  len(rows[0]),
		Height: len(rows),
		Tiles:  make([][]byte, len(rows)),
	}

	var seen [256]bool
	for r, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("row %d has %d tiles, expected %d: %w", r, len(row), g.Width, ErrNotRectangular)
		}
		g.Tiles[r] = []byte(row)
		for c := 0; c < len(row); c++ {
			sym := row[c]
			seen[sym] = true
			pos := Vec3{X: float64(c), Z: float64(r)}
			switch sym {
			case TileFloor:
				g.walkable = append(g.walkable, Coord{Row: r, Col: c})
			case TileWall:
				g.Walls = append(g.Walls, pos)
			case TilePlayerStart:
				g.PlayerStart = Vec3{X: pos.X, Y: PlayerEyeHeight, Z: pos.Z}
			case TileWin:
				g.Win = pos
			case TileEnemyStart:
				g.EnemyStart = Vec3{X: pos.X, Y: EnemyHeight, Z: pos.Z}
			case TileStatueA, TileStatueB, TileStatueC:
				g.Statues[sym-TileStatueA] = Vec3{X: pos.X, Y: StatueHeight, Z: pos.Z}
			case TileStatueD:
				g.Statues[3] = Vec3{X: pos.X, Y: TallStatueHeight, Z: pos.Z}
			}
		}
	}

	if len(g.walkable) == 0 {
		return nil, ErrNoWalkable
	}
	for _, m := range []byte{TilePlayerStart, TileEnemyStart, TileWin} {
		if !seen[m] {
			return nil, fmt.Errorf("marker %q: %w", m, ErrMissingMarker)
		}
	}

	g.PlayerPosition = g.PlayerStart
	g.EnemyPosition = g.EnemyStart
	return g, nil
}

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Lookup returns the symbol at c, or ErrOutOfBounds
func (g *Grid) Lookup(c Coord) (byte, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("tile (%d, %d) in %dx%d grid: %w", c.Row, c.Col, g.Height, g.Width, ErrOutOfBounds)
	}
	return g.Tiles[c.Row][c.Col], nil
}

// TileAt returns the symbol at c. Coordinates outside the grid read as TileBlocked.
func (g *Grid) TileAt(c Coord) byte {
	if !g.InBounds(c) {
		return TileBlocked
	}
	return g.Tiles[c.Row][c.Col]
}

// IsWalkable reports whether c is open floor
func (g *Grid) IsWalkable(c Coord) bool {
	return g.TileAt(c) == TileFloor
}

// WalkableCount returns the number of open floor tiles
func (g *Grid) WalkableCount() int {
	return len(g.walkable)
}

// RandomWalkableTile samples a walkable tile uniformly
func (g *Grid) RandomWalkableTile(rng *rand.Rand) (Coord, bool) {
	if len(g.walkable) == 0 {
		return Coord{}, false
	}
	return g.walkable[rng.Intn(len(g.walkable))], true
}

// TileOf converts a world position to its tile: row from Z, col from X
func TileOf(p Vec3) Coord {
	return Coord{Row: int(math.Round(p.Z)), Col: int(math.Round(p.X))}
}

// Center returns the world position of the tile center at floor level
func Center(c Coord) Vec3 {
	return Vec3{X: float64(c.Col), Z: float64(c.Row)}
}

// String renders the layout back into its text form
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.Width+1)*g.Height)
	for _, row := range g.Tiles {
		buf = append(buf, row...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
