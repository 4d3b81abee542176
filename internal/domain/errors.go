package domain

import "errors"

// Error kinds surfaced at the process boundary. Callers wrap these with
// fmt.Errorf("%w: ...") to add position or grid context.
var (
	// ErrNonASCII rejects encode input outside the 7-bit range.
	ErrNonASCII = errors.New("non-ASCII character in input")

	// ErrParse covers malformed grid text: bad characters or a wrong cell count.
	ErrParse = errors.New("malformed sudoku grid")

	// ErrInvalidGrid covers parseable grids that violate sudoku constraints,
	// or filled grids that no encoder run could have produced.
	ErrInvalidGrid = errors.New("invalid sudoku grid")

	// ErrUnsolvedPuzzle is returned when decode is given a grid with blanks.
	ErrUnsolvedPuzzle = errors.New("unsolved sudoku grid (solve it before decoding)")

	// ErrUnsatisfiable is the solver's no-solution signal. The reducer treats
	// it as an expected outcome, never as a fatal condition.
	ErrUnsatisfiable = errors.New("no solution")
)
