package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Div9851/vacuum-sim/mapdata"
)

func testFrame() Frame {
	return Frame{
		Cells: [][]mapdata.Cell{
			{mapdata.DIRTY, mapdata.CLEAN, mapdata.CLEAN},
			{mapdata.CLEAN, mapdata.DIRTY, mapdata.DIRTY},
		},
		Agent:     mapdata.Pos{R: 1, C: 2},
		Obstacles: map[mapdata.Pos]struct{}{{R: 0, C: 2}: {}},
		Moves:     7,
		Progress:  60,
		Status:    "Running",
	}
}

func TestTileAt(t *testing.T) {
	frame := testFrame()
	assert.Equal(t, TILE_DIRTY, frame.TileAt(mapdata.Pos{R: 0, C: 0}))
	assert.Equal(t, TILE_CLEAN, frame.TileAt(mapdata.Pos{R: 0, C: 1}))
	assert.Equal(t, TILE_OBSTACLE, frame.TileAt(mapdata.Pos{R: 0, C: 2}))
	assert.Equal(t, TILE_AGENT, frame.TileAt(mapdata.Pos{R: 1, C: 2}))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "*.#\n.*V\n", Plain(testFrame()))
}

func TestText(t *testing.T) {
	out := Text(testFrame())
	assert.Contains(t, out, "Moves")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "Running")
	assert.True(t, strings.Contains(out, "V"))
}

func sameColor(t *testing.T, want color.RGBA, got color.Color) {
	t.Helper()
	r, g, b, a := got.RGBA()
	wr, wg, wb, wa := want.RGBA()
	assert.Equal(t, []uint32{wr >> 8, wg >> 8, wb >> 8, wa >> 8}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestImage(t *testing.T) {
	img := Image(testFrame(), 20)
	bounds := img.Bounds()
	assert.Equal(t, 60, bounds.Dx())
	assert.Equal(t, 40, bounds.Dy())

	// sample away from tile centres and borders
	sameColor(t, DirtyColor, img.At(5, 5))
	sameColor(t, CleanColor, img.At(25, 5))
	sameColor(t, ObstacleColor, img.At(45, 5))
	sameColor(t, AgentColor, img.At(50, 30))
	sameColor(t, DirtyColor, img.At(43, 23))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SavePNG(testFrame(), path, 0))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
