// Package report renders a session snapshot as terminal text: a status
// panel and the maze with the player, enemy and patrol path overlaid.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/younwookim/hollow/internal/application/session"
	"github.com/younwookim/hollow/internal/domain/entity"
)

// Map overlay glyphs
const (
	GlyphPlayer = 'P'
	GlyphEnemy  = 'E'
	GlyphPath   = '.'
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(14)

	styleValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleMap = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	stylePanel = lipgloss.NewStyle().
			Padding(0, 2)
)

var outcomeColors = map[session.Outcome]lipgloss.Color{
	session.OutcomeContinue: lipgloss.Color("39"),
	session.OutcomeVictory:  lipgloss.Color("34"),
	session.OutcomeCaught:   lipgloss.Color("196"),
	session.OutcomeAbort:    lipgloss.Color("243"),
}

// Map returns the grid rows with the patrol path, enemy and player drawn
// over them. Spawn markers render as floor.
func Map(g *entity.Grid, snap session.Snapshot) []string {
	rows := make([][]byte, g.Height)
	for r, tiles := range g.Tiles {
		rows[r] = make([]byte, len(tiles))
		for c, t := range tiles {
			if t == entity.TilePlayerStart || t == entity.TileEnemyStart {
				t = entity.TileFloor
			}
			rows[r][c] = t
		}
	}

	put := func(c entity.Coord, glyph byte) {
		if g.InBounds(c) {
			rows[c.Row][c.Col] = glyph
		}
	}
	for i := snap.PathIdx; i < len(snap.Path); i++ {
		put(snap.Path[i], GlyphPath)
	}
	put(snap.EnemyTile, GlyphEnemy)
	put(snap.PlayerTile, GlyphPlayer)

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = string(row)
	}
	return out
}

// Summary is a single line suitable for logs and the clipboard
func Summary(snap session.Snapshot) string {
	return fmt.Sprintf("%s after %.2fs (%d frames): player %v enemy %v dist %.2f goal %.2f radio %d/%d",
		snap.Outcome, snap.Clock, snap.Frame,
		snap.PlayerTile, snap.EnemyTile, snap.Distance, snap.DistanceToWin,
		snap.Activations, snap.MaxActivations)
}

// Render builds the full report: status panel beside the map
func Render(g *entity.Grid, snap session.Snapshot) string {
	title := styleTitle.
		Foreground(outcomeColors[snap.Outcome]).
		Render(fmt.Sprintf("%s  %s", snap.State, snap.Outcome))

	lines := []string{title, ""}
	row := func(label, value string, danger bool) {
		v := styleValue.Render(value)
		if danger {
			v = styleDanger.Render(value)
		}
		lines = append(lines, styleLabel.Render(label)+v)
	}

	row("time", fmt.Sprintf("%.2fs / %d frames", snap.Clock, snap.Frame), false)
	row("player", fmt.Sprintf("%v torch=%s", snap.PlayerTile, onOff(snap.TorchOn)), snap.Dead)
	row("enemy", fmt.Sprintf("%v %s", snap.EnemyTile, snap.Behavior), snap.Behavior == entity.BehaviorScream)
	row("distance", fmt.Sprintf("%.2f", snap.Distance), snap.NearPlayer)
	row("sight", fmt.Sprintf("see=%t near=%t", snap.SeePlayer, snap.NearPlayer), snap.SeePlayer)
	row("goal", fmt.Sprintf("%.2f", snap.DistanceToWin), false)
	row("radio", fmt.Sprintf("%s %s %d/%d %.1fs", onOff(snap.RadioOn), snap.RadioBand,
		snap.Activations, snap.MaxActivations, snap.ListeningTime), snap.Activations >= snap.MaxActivations)
	row("static", fmt.Sprintf("%.2f", snap.Distortion), snap.Distortion > 0)

	panel := stylePanel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	maze := styleMap.Render(strings.Join(Map(g, snap), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, maze, panel)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
