package report

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hollow/internal/application/session"
	"github.com/younwookim/hollow/internal/application/system"
	"github.com/younwookim/hollow/internal/domain/entity"
	"github.com/younwookim/hollow/internal/domain/sound"
	"github.com/younwookim/hollow/internal/infrastructure/config"
)

var hall = []string{
	"#######",
	"#&   @#",
	"#w#####",
}

func createTestGrid(t *testing.T) *entity.Grid {
	t.Helper()
	g, err := entity.NewGrid(hall)
	require.NoError(t, err)
	return g
}

func TestMap_Overlay(t *testing.T) {
	g := createTestGrid(t)
	snap := session.Snapshot{
		PlayerTile: entity.Coord{Row: 1, Col: 5},
		EnemyTile:  entity.Coord{Row: 1, Col: 1},
		Path: []entity.Coord{
			{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4},
		},
		PathIdx: 2,
	}

	assert.Equal(t, []string{
		"#######",
		"#E ..P#",
		"#w#####",
	}, Map(g, snap))
}

func TestMap_MarkersRenderAsFloor(t *testing.T) {
	g := createTestGrid(t)
	snap := session.Snapshot{
		PlayerTile: entity.Coord{Row: -5, Col: -5},
		EnemyTile:  entity.Coord{Row: 99, Col: 0},
	}

	rows := Map(g, snap)
	assert.Equal(t, "#     #", rows[1], "off-grid actors are not drawn")
	assert.Equal(t, "#&   @#", string(g.Tiles[1]), "grid is untouched")
}

func TestSummary(t *testing.T) {
	snap := session.Snapshot{
		Outcome:        session.OutcomeCaught,
		Clock:          12.5,
		Frame:          750,
		Activations:    2,
		MaxActivations: 8,
	}

	s := Summary(snap)
	assert.True(t, strings.HasPrefix(s, "Caught after 12.50s (750 frames)"))
	assert.Contains(t, s, "radio 2/8")
}

func TestRender_LiveSession(t *testing.T) {
	g := createTestGrid(t)
	s := session.New(config.DefaultTuning(), g, sound.Nop{}, rand.New(rand.NewSource(1)))
	s.Start()
	s.Step(system.InputState{}, 1.0/60.0)

	out := Render(g, s.Snapshot())
	assert.Contains(t, out, "Playing")
	assert.Contains(t, out, "Continue")
	assert.Contains(t, out, "radio")
	assert.Contains(t, out, "#w#####")
}
