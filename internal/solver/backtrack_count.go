package solver

import (
	"context"
	"math/bits"
	"time"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/ports"
)

func trailingDigit(m uint16) int { return bits.TrailingZeros16(m) + 1 }

// CountSolutions enumerates complete assignments up to limit and stops early
// once the limit is reached. Grids with conflicting clues count as zero.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	st, ok := newState(g)
	if !ok {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, mask, more := st.nextCell()
		if !more {
			count++
			return count >= limit
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
	_ = dfs()
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, stats, err
	}
	return count, stats, nil
}
