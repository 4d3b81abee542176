package ports

import (
	"context"
	"time"

	"svw.info/sudokode/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a grid and counts solutions for uniqueness checks.
// CountSolutions enumerates solutions up to limit and stops early; a limit
// of 2 suffices to decide uniqueness.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
}

// Reducer blanks cells of a filled grid while the remaining clues keep a
// unique solution, stopping when no further cell can be removed.
type Reducer interface {
	Reduce(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}
