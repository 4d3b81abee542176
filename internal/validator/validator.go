package validator

import (
	"context"

	"svw.info/sudokode/internal/domain"
)

// FastValidator checks row/column/box digit uniqueness with bitmasks.
// Blank cells are skipped, so it applies to puzzles and filled grids alike.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	sweep := func(cells [9]domain.CellCoord) {
		var m uint16
		for _, cc := range cells {
			val := g.Cells[cc.Row][cc.Col]
			if val == domain.Blank {
				continue
			}
			bit := uint16(1) << (val - 1)
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}

	var unit [9]domain.CellCoord
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			unit[c] = domain.CellCoord{Row: r, Col: c}
		}
		sweep(unit)
	}
	for c := 0; c < domain.Size; c++ {
		for r := 0; r < domain.Size; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: c}
		}
		sweep(unit)
	}
	for br := 0; br < domain.BoxSize; br++ {
		for bc := 0; bc < domain.BoxSize; bc++ {
			i := 0
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					unit[i] = domain.CellCoord{Row: br*3 + dr, Col: bc*3 + dc}
					i++
				}
			}
			sweep(unit)
		}
	}
	return len(conf) == 0, conf, nil
}
