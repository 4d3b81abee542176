package domain

// Grid geometry constants.
const (
	Size      = 9
	BoxSize   = 3
	CellCount = Size * Size
)

// Blank marks an empty cell in a puzzle grid.
const Blank uint8 = 0

// Grid holds the digits of one 9x9 sudoku grid. Zero means blank.
type Grid struct {
	Cells [Size][Size]uint8
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := *g
	return &out
}

// Filled reports whether every cell holds a digit.
func (g *Grid) Filled() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Cells[r][c] == Blank {
				return false
			}
		}
	}
	return true
}

// BlankCount returns the number of empty cells.
func (g *Grid) BlankCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Cells[r][c] == Blank {
				n++
			}
		}
	}
	return n
}

// ClueCount returns the number of filled cells.
func (g *Grid) ClueCount() int {
	return CellCount - g.BlankCount()
}
