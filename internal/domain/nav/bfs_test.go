package nav

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hollow/internal/domain/entity"
)

// openGrid is a rows x cols grid with every tile walkable
type openGrid struct{ rows, cols int }

func (o openGrid) IsWalkable(c entity.Coord) bool {
	return c.Row >= 0 && c.Row < o.rows && c.Col >= 0 && c.Col < o.cols
}

// layout builds a Walkable from text rows without the marker validation of entity.NewGrid
type layout []string

func (l layout) IsWalkable(c entity.Coord) bool {
	if c.Row < 0 || c.Row >= len(l) || c.Col < 0 || c.Col >= len(l[c.Row]) {
		return false
	}
	return l[c.Row][c.Col] == ' '
}

// hopDistances is an independent reference BFS over a distance table
func hopDistances(l layout, start entity.Coord) map[entity.Coord]int {
	dist := map[entity.Coord]int{start: 0}
	frontier := []entity.Coord{start}
	for len(frontier) > 0 {
		var next []entity.Coord
		for _, c := range frontier {
			for _, d := range []entity.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}} {
				n := c.Add(d)
				if _, ok := dist[n]; ok || !l.IsWalkable(n) {
					continue
				}
				dist[n] = dist[c] + 1
				next = append(next, n)
			}
		}
		frontier = next
	}
	return dist
}

func TestBreadthFirst_OpenGridStraightLine(t *testing.T) {
	path := BreadthFirst(openGrid{5, 5}, entity.Coord{Row: 2, Col: 2}, entity.Coord{Row: 2, Col: 0})

	assert.Equal(t, []entity.Coord{{Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}}, path)
}

func TestBreadthFirst_BorderRing(t *testing.T) {
	ring := layout{
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	}
	center := entity.Coord{Row: 2, Col: 2}

	tests := []struct {
		name string
		goal entity.Coord
	}{
		{"left", entity.Coord{Row: 2, Col: 1}},
		{"right", entity.Coord{Row: 2, Col: 3}},
		{"up", entity.Coord{Row: 1, Col: 2}},
		{"corner", entity.Coord{Row: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := BreadthFirst(ring, center, tt.goal)
			require.NotEmpty(t, path)
			assert.Len(t, path, center.Manhattan(tt.goal)+1)
			assert.Equal(t, center, path[0])
			assert.Equal(t, tt.goal, path[len(path)-1])
		})
	}

	// The wall ring itself is never a valid goal
	assert.Empty(t, BreadthFirst(ring, center, entity.Coord{Row: 2, Col: 0}))
}

func TestBreadthFirst_StartEqualsGoal(t *testing.T) {
	c := entity.Coord{Row: 1, Col: 1}
	assert.Equal(t, []entity.Coord{c}, BreadthFirst(openGrid{3, 3}, c, c))
}

func TestBreadthFirst_DeterministicTieBreak(t *testing.T) {
	// Two equally short routes around the block; up is expanded before left,
	// so the route through row 0 wins.
	l := layout{
		"   ",
		" # ",
		"   ",
	}
	path := BreadthFirst(l, entity.Coord{Row: 2, Col: 0}, entity.Coord{Row: 0, Col: 2})

	assert.Equal(t, []entity.Coord{
		{Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}, path)
}

func TestBreadthFirst_Unreachable(t *testing.T) {
	l := layout{
		"   #   ",
		"   #   ",
		"   #   ",
	}
	path := BreadthFirst(l, entity.Coord{Row: 1, Col: 0}, entity.Coord{Row: 1, Col: 6})
	assert.Nil(t, path)

	// Goal outside the grid
	assert.Nil(t, BreadthFirst(l, entity.Coord{Row: 1, Col: 0}, entity.Coord{Row: -4, Col: 40}))
}

func TestBreadthFirst_StartOnMarkerTile(t *testing.T) {
	l := layout{
		"#####",
		"#&  #",
		"#####",
	}
	path := BreadthFirst(l, entity.Coord{Row: 1, Col: 1}, entity.Coord{Row: 1, Col: 3})
	assert.Equal(t, []entity.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, path)
}

func TestBreadthFirst_MatchesReferenceOnRandomMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 40; trial++ {
		rows, cols := 4+rng.Intn(8), 4+rng.Intn(8)
		l := make(layout, rows)
		for r := range l {
			b := make([]byte, cols)
			for c := range b {
				if rng.Float64() < 0.3 {
					b[c] = '#'
				} else {
					b[c] = ' '
				}
			}
			l[r] = string(b)
		}

		var open []entity.Coord
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if l[r][c] == ' ' {
					open = append(open, entity.Coord{Row: r, Col: c})
				}
			}
		}
		if len(open) < 2 {
			continue
		}

		start := open[rng.Intn(len(open))]
		dist := hopDistances(l, start)
		for _, goal := range open {
			path := BreadthFirst(l, start, goal)
			want, reachable := dist[goal]
			if !reachable {
				assert.Empty(t, path, "trial %d goal %v should be unreachable", trial, goal)
				continue
			}
			require.Len(t, path, want+1, "trial %d goal %v", trial, goal)
			assert.Equal(t, start, path[0])
			assert.Equal(t, goal, path[len(path)-1])
			for i := 1; i < len(path); i++ {
				assert.Equal(t, 1, path[i].Manhattan(path[i-1]))
				assert.True(t, l.IsWalkable(path[i]))
			}
		}
	}
}

func TestReachable(t *testing.T) {
	l := layout{
		"  #  ",
		"  #  ",
	}
	region := Reachable(l, entity.Coord{Row: 0, Col: 0})

	assert.Equal(t, 4, region.Size())
	assert.True(t, region.Has(entity.Coord{Row: 1, Col: 1}))
	assert.False(t, region.Has(entity.Coord{Row: 0, Col: 3}))
}

func TestContains(t *testing.T) {
	path := []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	assert.True(t, Contains(path, entity.Coord{Row: 0, Col: 1}))
	assert.False(t, Contains(path, entity.Coord{Row: 1, Col: 1}))
	assert.False(t, Contains(nil, entity.Coord{}))
}
