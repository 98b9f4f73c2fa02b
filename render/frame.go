// Package render draws a simulator frame as text or as an image.
package render

import (
	"github.com/Div9851/vacuum-sim/mapdata"
)

// Frame is the read-only view renderers consume.
type Frame struct {
	Cells     [][]mapdata.Cell
	Agent     mapdata.Pos
	Obstacles map[mapdata.Pos]struct{}
	Moves     int
	Progress  int
	Status    string
}

func (frame Frame) Size() (int, int) {
	if len(frame.Cells) == 0 {
		return 0, 0
	}
	return len(frame.Cells), len(frame.Cells[0])
}

type Tile int

const (
	TILE_CLEAN Tile = iota
	TILE_DIRTY
	TILE_OBSTACLE
	TILE_AGENT
)

// TileAt resolves what is drawn at pos. The agent is drawn over everything
// else and obstacles over the cell underneath.
func (frame Frame) TileAt(pos mapdata.Pos) Tile {
	if pos == frame.Agent {
		return TILE_AGENT
	}
	if _, ok := frame.Obstacles[pos]; ok {
		return TILE_OBSTACLE
	}
	if frame.Cells[pos.R][pos.C] == mapdata.DIRTY {
		return TILE_DIRTY
	}
	return TILE_CLEAN
}

func (tile Tile) Glyph() byte {
	switch tile {
	case TILE_CLEAN:
		return '.'
	case TILE_DIRTY:
		return '*'
	case TILE_OBSTACLE:
		return '#'
	case TILE_AGENT:
		return 'V'
	}
	return '?'
}
