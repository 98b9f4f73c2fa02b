package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/Div9851/vacuum-sim/mapdata"
)

// DefaultCellSize is the tile edge in pixels.
const DefaultCellSize = 80

var (
	CleanColor    = color.RGBA{R: 0xe8, G: 0xf5, B: 0xe9, A: 0xff}
	DirtyColor    = color.RGBA{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff}
	ObstacleColor = color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff}
	AgentColor    = color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	gridLineColor = color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}
)

func draw(frame Frame, cellSize int) *gg.Context {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	h, w := frame.Size()
	size := float64(cellSize)
	dc := gg.NewContext(w*cellSize, h*cellSize)
	dc.SetColor(color.White)
	dc.Clear()

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			pos := mapdata.Pos{R: r, C: c}
			x, y := float64(c)*size, float64(r)*size
			// the agent sits on top of its cell, so paint the cell first
			if frame.Cells[r][c] == mapdata.DIRTY {
				dc.SetColor(DirtyColor)
			} else {
				dc.SetColor(CleanColor)
			}
			if _, ok := frame.Obstacles[pos]; ok && pos != frame.Agent {
				dc.SetColor(ObstacleColor)
			}
			dc.DrawRectangle(x, y, size, size)
			dc.Fill()

			dc.SetColor(gridLineColor)
			dc.SetLineWidth(1)
			dc.DrawRectangle(x, y, size, size)
			dc.Stroke()
		}
	}

	dc.SetColor(AgentColor)
	dc.DrawCircle(float64(frame.Agent.C)*size+size/2, float64(frame.Agent.R)*size+size/2, size*0.35)
	dc.Fill()
	return dc
}

// Image draws frame with square tiles of cellSize pixels.
func Image(frame Frame, cellSize int) image.Image {
	return draw(frame, cellSize).Image()
}

func SavePNG(frame Frame, path string, cellSize int) error {
	return draw(frame, cellSize).SavePNG(path)
}
