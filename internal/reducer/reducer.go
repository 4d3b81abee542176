// Package reducer turns a filled grid into a locally minimal puzzle: cells
// are blanked one at a time while a solver confirms the remaining clues
// still force a unique solution, and every surviving clue has been proven
// unremovable.
package reducer

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/ports"
)

// UniqueReducer removes clues using a provided Solver for uniqueness checks.
type UniqueReducer struct {
	Solver ports.Solver
}

func NewUniqueReducer(s ports.Solver) *UniqueReducer {
	return &UniqueReducer{Solver: s}
}

// Reduce returns a puzzle derived from the filled grid g. The traversal
// order is a pseudo-random shuffle seeded from the grid content, so the same
// grid always reduces to the same puzzle. A single pass suffices for local
// minimality: blanking further cells never shrinks the solution set, so a
// cell whose removal once broke uniqueness can never become removable.
// The input grid is not mutated.
func (rd *UniqueReducer) Reduce(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if !g.Filled() {
		return nil, ports.Stats{}, fmt.Errorf("%w: reducer needs a filled grid", domain.ErrInvalidGrid)
	}
	puz := *g
	rng := rand.New(rand.NewSource(seedFor(g)))
	nodes := 0
	for _, pos := range rng.Perm(domain.CellCount) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := pos/domain.Size, pos%domain.Size
		old := puz.Cells[r][c]
		puz.Cells[r][c] = domain.Blank
		n, st, err := rd.Solver.CountSolutions(ctx, &puz, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			puz.Cells[r][c] = old
		}
	}
	return &puz, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// seedFor hashes the 81 cell digits so the removal order is a deterministic
// function of the grid.
func seedFor(g *domain.Grid) int64 {
	h := fnv.New64a()
	for r := 0; r < domain.Size; r++ {
		h.Write(g.Cells[r][:])
	}
	return int64(h.Sum64())
}
