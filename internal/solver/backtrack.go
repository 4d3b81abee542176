package solver

import (
	"math/bits"

	"svw.info/sudokode/internal/domain"
)

// BacktrackingSolver searches with per-unit candidate bitmasks and a
// fewest-candidates-first cell order.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

const allNine = 0x1ff

// state tracks placed digits per row, column and box. Bit i represents
// digit i+1.
type state struct {
	grid          [9][9]uint8
	row, col, box [9]uint16
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

// newState seeds the masks from a grid. It fails when two equal digits
// share a unit, matching what the validator would report.
func newState(g *domain.Grid) (*state, bool) {
	s := &state{grid: g.Cells}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := s.grid[r][c]
			if v == domain.Blank {
				continue
			}
			m := uint16(1) << (v - 1)
			b := boxOf(r, c)
			if s.row[r]&m != 0 || s.col[c]&m != 0 || s.box[b]&m != 0 {
				return nil, false
			}
			s.row[r] |= m
			s.col[c] |= m
			s.box[b] |= m
		}
	}
	return s, true
}

func (s *state) candidates(r, c int) uint16 {
	return allNine &^ s.row[r] &^ s.col[c] &^ s.box[boxOf(r, c)]
}

func (s *state) place(r, c int, v uint8) {
	m := uint16(1) << (v - 1)
	s.grid[r][c] = v
	s.row[r] |= m
	s.col[c] |= m
	s.box[boxOf(r, c)] |= m
}

func (s *state) unplace(r, c int, v uint8) {
	m := uint16(1) << (v - 1)
	s.grid[r][c] = domain.Blank
	s.row[r] &^= m
	s.col[c] &^= m
	s.box[boxOf(r, c)] &^= m
}

// nextCell returns the blank cell with the fewest candidates, or ok=false
// when the grid is complete.
func (s *state) nextCell() (br, bc int, mask uint16, ok bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.grid[r][c] != domain.Blank {
				continue
			}
			m := s.candidates(r, c)
			n := bits.OnesCount16(m)
			if n < best {
				best = n
				br, bc, mask, ok = r, c, m, true
				if n <= 1 {
					return
				}
			}
		}
	}
	return
}
