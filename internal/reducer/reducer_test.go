package reducer

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokode/internal/canonical"
	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/solver"
)

func TestReduceProducesUniquePuzzle(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	rd := NewUniqueReducer(s)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	full := canonical.Base()
	puz, st, err := rd.Reduce(ctx, full)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if puz.BlankCount() == 0 {
		t.Fatal("reducer removed nothing")
	}
	if full.BlankCount() != 0 {
		t.Fatal("input grid was mutated")
	}
	n, _, err := s.CountSolutions(ctx, puz, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("puzzle has %d solutions, want 1 (nodes=%d)", n, st.Nodes)
	}
}

func TestReduceIsLocallyMinimal(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	rd := NewUniqueReducer(s)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	puz, _, err := rd.Reduce(ctx, canonical.Base())
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if puz.Cells[r][c] == domain.Blank {
				continue
			}
			probe := *puz
			probe.Cells[r][c] = domain.Blank
			n, _, err := s.CountSolutions(ctx, &probe, 2)
			if err != nil {
				t.Fatalf("CountSolutions failed: %v", err)
			}
			if n == 1 {
				t.Fatalf("clue at r=%d c=%d is still removable", r, c)
			}
		}
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	rd := NewUniqueReducer(solver.NewBacktrackingSolver())
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	a, _, err := rd.Reduce(ctx, canonical.Base())
	if err != nil {
		t.Fatalf("first Reduce failed: %v", err)
	}
	b, _, err := rd.Reduce(ctx, canonical.Base())
	if err != nil {
		t.Fatalf("second Reduce failed: %v", err)
	}
	if a.Cells != b.Cells {
		t.Fatal("same grid reduced to different puzzles")
	}
}

func TestReduceRejectsPuzzleInput(t *testing.T) {
	rd := NewUniqueReducer(solver.NewBacktrackingSolver())
	g := canonical.Base()
	g.Cells[0][0] = domain.Blank
	if _, _, err := rd.Reduce(context.Background(), g); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("got %v, want ErrInvalidGrid", err)
	}
}
