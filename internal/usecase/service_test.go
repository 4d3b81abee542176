package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/reducer"
	"svw.info/sudokode/internal/solver"
	"svw.info/sudokode/internal/validator"
)

func newTestService() *Service {
	s := solver.NewBacktrackingSolver()
	return NewService(s, reducer.NewUniqueReducer(s), validator.New())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name    string
		message string
	}{
		{"empty", ""},
		{"two bytes", "HI"},
		{"sample", "HELLO SECRET WORLD"},
		{"punctuation", "To be, or not to be: that is the question!\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := svc.Encode(ctx, []byte(tc.message), EncodeOptions{})
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			for i, g := range enc.Grids {
				if !g.Filled() {
					t.Fatalf("grid %d has blanks", i+1)
				}
			}
			dec, err := svc.Decode(ctx, enc.Grids)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(dec.Message, []byte(tc.message)) {
				t.Fatalf("round trip: got %q, want %q", dec.Message, tc.message)
			}
		})
	}
}

func TestEncodeHIProducesTwoGrids(t *testing.T) {
	// 16 payload bits plus the 32-bit length header span two 40-bit chunks.
	enc, err := newTestService().Encode(context.Background(), []byte("HI"), EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(enc.Grids) != 2 {
		t.Fatalf("got %d grids, want 2", len(enc.Grids))
	}
}

func TestEncodeRejectsNonASCII(t *testing.T) {
	_, err := newTestService().Encode(context.Background(), []byte("caf\xc3\xa9"), EncodeOptions{})
	if !errors.Is(err, domain.ErrNonASCII) {
		t.Fatalf("got %v, want ErrNonASCII", err)
	}
}

func TestDecodeRejectsUnsolvedPuzzle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	enc, err := svc.Encode(ctx, []byte("HI"), EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	enc.Grids[0].Cells[3][3] = domain.Blank
	if _, err := svc.Decode(ctx, enc.Grids); !errors.Is(err, domain.ErrUnsolvedPuzzle) {
		t.Fatalf("got %v, want ErrUnsolvedPuzzle", err)
	}
}

func TestDecodeRejectsInvalidGrid(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	enc, err := svc.Encode(ctx, []byte("HI"), EncodeOptions{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// Force a duplicate digit into the first row.
	g := enc.Grids[0]
	g.Cells[0][1] = g.Cells[0][0]
	if _, err := svc.Decode(ctx, enc.Grids); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("got %v, want ErrInvalidGrid", err)
	}
}

func TestPuzzleModeRoundTripViaSolver(t *testing.T) {
	// The reader's workflow: solve each puzzle grid, then decode the
	// solved grids.
	svc := newTestService()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	const message = "HI"
	enc, err := svc.Encode(ctx, []byte(message), EncodeOptions{Puzzle: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	solved := make([]*domain.Grid, len(enc.Grids))
	for i, puz := range enc.Grids {
		if puz.BlankCount() == 0 {
			t.Fatalf("grid %d was not reduced", i+1)
		}
		out, _, err := svc.Solver.Solve(ctx, puz)
		if err != nil {
			t.Fatalf("solving puzzle %d: %v", i+1, err)
		}
		solved[i] = out
	}
	dec, err := svc.Decode(ctx, solved)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(dec.Message) != message {
		t.Fatalf("round trip: got %q, want %q", dec.Message, message)
	}
}

func TestDecodePuzzleGridFails(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	enc, err := svc.Encode(ctx, []byte("X"), EncodeOptions{Puzzle: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := svc.Decode(ctx, enc.Grids); !errors.Is(err, domain.ErrUnsolvedPuzzle) {
		t.Fatalf("got %v, want ErrUnsolvedPuzzle", err)
	}
}
