package grid

import (
	"fmt"
	"strings"

	"svw.info/sudokode/internal/domain"
)

// Divider separates the three bands in the textual block format.
const Divider = "+---+---+---+"

// Placeholder renders a blank puzzle cell.
const Placeholder = '.'

// Render writes a grid in the 13-line block format:
// a divider line, then three digit rows, repeated three times, then a
// closing divider. Blank cells render as the placeholder character.
func Render(g *domain.Grid) string {
	var sb strings.Builder
	sb.Grow(14 * 14)
	for r := 0; r < domain.Size; r++ {
		if r%domain.BoxSize == 0 {
			sb.WriteString(Divider)
			sb.WriteByte('\n')
		}
		for c := 0; c < domain.Size; c++ {
			if c%domain.BoxSize == 0 {
				sb.WriteByte('|')
			}
			v := g.Cells[r][c]
			if v == domain.Blank {
				sb.WriteByte(Placeholder)
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(Divider)
	return sb.String()
}

// Parse reads a grid from its textual block form. Frame characters and
// whitespace between lines are skipped; '.' and ' ' inside a row mark blank
// cells. Exactly 81 cells must be present.
func Parse(text string) (*domain.Grid, error) {
	var cells []uint8
	for _, c := range text {
		switch {
		case c >= '1' && c <= '9':
			cells = append(cells, uint8(c-'0'))
		case c == Placeholder || c == ' ':
			cells = append(cells, domain.Blank)
		case c == '+' || c == '-' || c == '|' || c == '\n' || c == '\r' || c == '\t':
			// frame
		default:
			return nil, fmt.Errorf("%w: invalid character %q", domain.ErrParse, c)
		}
	}
	if len(cells) != domain.CellCount {
		return nil, fmt.Errorf("%w: got %d cells, want %d", domain.ErrParse, len(cells), domain.CellCount)
	}
	var g domain.Grid
	for i, v := range cells {
		g.Cells[i/domain.Size][i%domain.Size] = v
	}
	return &g, nil
}
