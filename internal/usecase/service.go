package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"svw.info/sudokode/internal/bitpack"
	"svw.info/sudokode/internal/canonical"
	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/ports"
)

// Service orchestrates the encode and decode pipelines over the wired
// providers.
type Service struct {
	Solver    ports.Solver
	Reducer   ports.Reducer
	Validator ports.Validator
}

func NewService(s ports.Solver, r ports.Reducer, v ports.Validator) *Service {
	return &Service{Solver: s, Reducer: r, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// EncodeOptions selects optional encode behavior.
type EncodeOptions struct {
	// Puzzle reduces each grid to a uniquely solvable puzzle.
	Puzzle bool
}

// EncodeResult carries the produced grids plus diagnostics.
type EncodeResult struct {
	Grids  []*domain.Grid
	Chunks []uint64 // transform index per grid
	Stats  ports.Stats
}

// Encode maps a 7-bit ASCII message onto a sequence of valid grids: the
// payload is chunked into transform indices and each index is applied to the
// base grid. In puzzle mode each grid is then reduced; reductions of
// distinct grids are independent and run concurrently, with output order
// preserved.
func (u *Service) Encode(ctx context.Context, message []byte, opts EncodeOptions) (*EncodeResult, error) {
	for i, b := range message {
		if b > 0x7f {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", domain.ErrNonASCII, b, i)
		}
	}
	chunks := bitpack.Pack(message)
	grids := make([]*domain.Grid, len(chunks))
	for i, ch := range chunks {
		g, err := canonical.Decanonicalize(ch)
		if err != nil {
			return nil, err
		}
		grids[i] = g
	}
	res := &EncodeResult{Grids: grids, Chunks: chunks}
	if !opts.Puzzle {
		return res, nil
	}
	if u.Reducer == nil {
		return nil, errNotConfigured
	}

	reduced := make([]*domain.Grid, len(grids))
	stats := make([]ports.Stats, len(grids))
	errs := make([]error, len(grids))
	var wg sync.WaitGroup
	for i, g := range grids {
		wg.Add(1)
		go func(i int, g *domain.Grid) {
			defer wg.Done()
			reduced[i], stats[i], errs[i] = u.Reducer.Reduce(ctx, g)
		}(i, g)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("reducing grid %d: %w", i+1, err)
		}
		res.Stats.Nodes += stats[i].Nodes
		if stats[i].Duration > res.Stats.Duration {
			res.Stats.Duration = stats[i].Duration
		}
	}
	res.Grids = reduced
	return res, nil
}

// DecodeResult carries the recovered message plus diagnostics.
type DecodeResult struct {
	Message []byte
	Chunks  []uint64
}

// Decode recovers the message from a sequence of filled grids. Grids with
// blanks must be solved by the reader first; grids that violate sudoku
// constraints, or that no encoder run could have produced, abort the decode.
func (u *Service) Decode(ctx context.Context, grids []*domain.Grid) (*DecodeResult, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	chunks := make([]uint64, len(grids))
	for i, g := range grids {
		if !g.Filled() {
			return nil, fmt.Errorf("%w: grid %d has %d blank cells", domain.ErrUnsolvedPuzzle, i+1, g.BlankCount())
		}
		ok, conflicts, err := u.Validator.Validate(ctx, g)
		if err != nil {
			return nil, err
		}
		if !ok {
			cc := conflicts[0]
			return nil, fmt.Errorf("%w: grid %d repeats digit %d at r%d c%d",
				domain.ErrInvalidGrid, i+1, g.Cells[cc.Row][cc.Col], cc.Row, cc.Col)
		}
		_, idx, err := canonical.Canonicalize(g)
		if err != nil {
			return nil, fmt.Errorf("grid %d: %w", i+1, err)
		}
		chunks[i] = idx
	}
	message, err := bitpack.Unpack(chunks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGrid, err)
	}
	return &DecodeResult{Message: message, Chunks: chunks}, nil
}
