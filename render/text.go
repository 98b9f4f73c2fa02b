package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Div9851/vacuum-sim/mapdata"
)

var (
	cleanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dirtyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	agentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	gridStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true)
)

// Plain renders the grid one row per line with no styling.
func Plain(frame Frame) string {
	h, w := frame.Size()
	var sb strings.Builder
	for r := 0; r < h; r++ {
		row := make([]byte, w)
		for c := 0; c < w; c++ {
			row[c] = frame.TileAt(mapdata.Pos{R: r, C: c}).Glyph()
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Grid renders the grid with colored glyphs inside a border.
func Grid(frame Frame) string {
	h, w := frame.Size()
	rows := make([]string, h)
	for r := 0; r < h; r++ {
		cells := make([]string, w)
		for c := 0; c < w; c++ {
			tile := frame.TileAt(mapdata.Pos{R: r, C: c})
			cells[c] = tileStyle(tile).Render(string(tile.Glyph()))
		}
		rows[r] = strings.Join(cells, " ")
	}
	return gridStyle.Render(strings.Join(rows, "\n"))
}

// Text renders the grid next to the status, move and progress labels.
func Text(frame Frame) string {
	labels := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Status: ")+frame.Status,
		labelStyle.Render("Moves: ")+fmt.Sprint(frame.Moves),
		labelStyle.Render("Progress: ")+fmt.Sprintf("%d%%", frame.Progress),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, Grid(frame), "  ", labels)
}

func tileStyle(tile Tile) lipgloss.Style {
	switch tile {
	case TILE_DIRTY:
		return dirtyStyle
	case TILE_OBSTACLE:
		return obstacleStyle
	case TILE_AGENT:
		return agentStyle
	}
	return cleanStyle
}
