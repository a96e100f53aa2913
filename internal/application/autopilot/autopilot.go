// Package autopilot produces player input that walks the shortest route to
// the exit. The headless runner uses it to exercise whole sessions.
package autopilot

import (
	"math"

	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/nav"
)

// reach is how close to a waypoint centre counts as arrived
const reach = 0.1

// Pilot steers a player along a precomputed route
type Pilot struct {
	route []entity.Coord
	next  int
	dark  bool
	first bool
}

// New plans a route from the player's tile to the exit. The exit tile is not
// walkable, so the route ends on a walkable neighbour and then steps onto the
// exit itself. ok is false when no route exists. With dark set the pilot
// switches the torch off on its first frame.
func New(g *entity.Grid, from entity.Vec3, dark bool) (*Pilot, bool) {
	start := entity.TileOf(from)
	win := entity.TileOf(g.Win)

	var best []entity.Coord
	for _, d := range []entity.Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
		path := nav.BreadthFirst(g, start, win.Add(d))
		if len(path) > 0 && (best == nil || len(path) < len(best)) {
			best = path
		}
	}
	if best == nil {
		return nil, false
	}

	return &Pilot{
		route: append(best, win),
		next:  1,
		dark:  dark,
		first: true,
	}, true
}

// Route returns the planned tiles, start and exit included
func (p *Pilot) Route() []entity.Coord {
	return p.route
}

// Done reports whether the final waypoint has been reached
func (p *Pilot) Done() bool {
	return p.next >= len(p.route)
}

// Input returns this frame's input for a player in the given pose. Once the
// player has won the route counts as finished: the win box is wider than reach.
func (p *Pilot) Input(pl *entity.Player) system.InputState {
	var in system.InputState
	if pl.Victory {
		p.next = len(p.route)
		return in
	}
	if p.first {
		in.ToggleTorch = p.dark
		p.first = false
	}

	for !p.Done() {
		target := entity.Center(p.route[p.next])
		dx, dz := target.X-pl.Position.X, target.Z-pl.Position.Z
		if math.Hypot(dx, dz) > reach {
			// Front is (sin yaw, cos yaw); Look subtracts LookX from yaw
			turn := wrap(math.Atan2(dx, dz) - pl.Yaw)
			in.LookX = -turn * 180 / math.Pi
			in.Forward = true
			return in
		}
		p.next++
	}
	return in
}

// wrap maps an angle onto [-π, π]
func wrap(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
