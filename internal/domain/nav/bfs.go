// Package nav provides breadth-first path search over the tile grid.
package nav

import (
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/zyedidia/generic/mapset"
)

// Walkable is the map query the search needs
type Walkable interface {
	IsWalkable(c entity.Coord) bool
}

// neighbours is the fixed expansion order: up, down, left, right.
// Ties between equally short paths are resolved by this order.
var neighbours = [4]entity.Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// BreadthFirst returns the shortest 4-connected path from start to goal,
// both inclusive. Only walkable tiles are entered; start is always the root.
// It returns nil when goal cannot be reached.
func BreadthFirst(g Walkable, start, goal entity.Coord) []entity.Coord {
	if start == goal {
		return []entity.Coord{start}
	}
	if !g.IsWalkable(goal) {
		return nil
	}

	visited := mapset.New[entity.Coord]()
	parent := make(map[entity.Coord]entity.Coord)
	queue := []entity.Coord{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range neighbours {
			next := current.Add(d)
			if visited.Has(next) || !g.IsWalkable(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			if next == goal {
				return unwind(parent, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func unwind(parent map[entity.Coord]entity.Coord, start, goal entity.Coord) []entity.Coord {
	var path []entity.Coord
	for c := goal; c != start; c = parent[c] {
		path = append(path, c)
	}
	path = append(path, start)

	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable flood-fills the walkable region connected to start.
// The start tile is included even when it is a marker tile.
func Reachable(g Walkable, start entity.Coord) mapset.Set[entity.Coord] {
	visited := mapset.New[entity.Coord]()
	visited.Put(start)
	queue := []entity.Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			next := current.Add(d)
			if visited.Has(next) || !g.IsWalkable(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Contains reports whether tile appears in path
func Contains(path []entity.Coord, tile entity.Coord) bool {
	for _, c := range path {
		if c == tile {
			return true
		}
	}
	return false
}
