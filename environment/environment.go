// Package environment holds the grid of clean and dirty cells the agent
// works on.
package environment

import (
	"errors"
	"fmt"

	"github.com/Div9851/vacuum-sim/mapdata"
	"github.com/Div9851/vacuum-sim/rng"
)

var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Environment is a fixed-size grid. Cells only ever go from DIRTY to CLEAN;
// MarkClean is the only mutation available outside this package.
type Environment struct {
	h, w  int
	cells [][]mapdata.Cell
}

// New builds an h x w grid where every cell is independently clean or dirty
// with equal probability.
func New(h, w int, randGen rng.Rand) (*Environment, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h, w)
	}
	cells := make([][]mapdata.Cell, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]mapdata.Cell, w)
		for c := 0; c < w; c++ {
			cells[r][c] = mapdata.Cell(randGen.Intn(2))
		}
	}
	return &Environment{h: h, w: w, cells: cells}, nil
}

// FromCells builds an environment from an explicit grid. The grid is copied.
func FromCells(cells [][]mapdata.Cell) (*Environment, error) {
	h := len(cells)
	if h == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	w := len(cells[0])
	copied := make([][]mapdata.Cell, h)
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), w)
		}
		copied[r] = make([]mapdata.Cell, w)
		for c, cell := range row {
			if cell != mapdata.CLEAN && cell != mapdata.DIRTY {
				return nil, fmt.Errorf("environment: cell (%d, %d) has unknown state %d", r, c, cell)
			}
			copied[r][c] = cell
		}
	}
	return &Environment{h: h, w: w, cells: copied}, nil
}

func (env *Environment) Size() (int, int) {
	return env.h, env.w
}

func (env *Environment) InBounds(pos mapdata.Pos) bool {
	return mapdata.InBounds(pos, env.h, env.w)
}

// At returns the state of the cell at pos. pos must be in bounds.
func (env *Environment) At(pos mapdata.Pos) mapdata.Cell {
	return env.cells[pos.R][pos.C]
}

// MarkClean cleans the cell at pos and reports whether it was dirty.
func (env *Environment) MarkClean(pos mapdata.Pos) bool {
	if env.cells[pos.R][pos.C] != mapdata.DIRTY {
		return false
	}
	env.cells[pos.R][pos.C] = mapdata.CLEAN
	return true
}

func (env *Environment) IsFullyClean() bool {
	for _, row := range env.cells {
		for _, cell := range row {
			if cell == mapdata.DIRTY {
				return false
			}
		}
	}
	return true
}

func (env *Environment) CleanCount() int {
	return env.h*env.w - env.DirtyCount()
}

func (env *Environment) DirtyCount() int {
	cnt := 0
	for _, row := range env.cells {
		for _, cell := range row {
			if cell == mapdata.DIRTY {
				cnt++
			}
		}
	}
	return cnt
}

// Cells returns a copy of the grid.
func (env *Environment) Cells() [][]mapdata.Cell {
	cells := make([][]mapdata.Cell, env.h)
	for r, row := range env.cells {
		cells[r] = append([]mapdata.Cell(nil), row...)
	}
	return cells
}
