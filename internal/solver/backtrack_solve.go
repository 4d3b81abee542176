package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	st, ok := newState(g)
	if !ok {
		return nil, ports.Stats{}, fmt.Errorf("%w: conflicting clues", domain.ErrUnsatisfiable)
	}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, mask, more := st.nextCell()
		if !more {
			return true
		}
		for m := mask; m != 0; m &= m - 1 {
			v := uint8(trailingDigit(m))
			nodes++
			st.place(r, c, v)
			if dfs() {
				return true
			}
			st.unplace(r, c, v)
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrUnsatisfiable
	}
	return &domain.Grid{Cells: st.grid}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
