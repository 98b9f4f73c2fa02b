package mapdata

type Pos struct {
	R, C int
}

var NonePos Pos = Pos{R: -1, C: -1}

type Cell int

const (
	CLEAN Cell = iota
	DIRTY
)

func (cell Cell) ToStr() string {
	switch cell {
	case CLEAN:
		return "clean"
	case DIRTY:
		return "dirty"
	}
	return "unknown"
}

// InBounds reports whether pos lies inside an h x w grid.
func InBounds(pos Pos, h, w int) bool {
	return 0 <= pos.R && pos.R < h && 0 <= pos.C && pos.C < w
}

// AllPos lists every position of an h x w grid in row-major order.
func AllPos(h, w int) []Pos {
	allPos := make([]Pos, 0, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			allPos = append(allPos, Pos{R: r, C: c})
		}
	}
	return allPos
}
