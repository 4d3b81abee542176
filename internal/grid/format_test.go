package grid

import (
	"errors"
	"strings"
	"testing"

	"svw.info/sudokode/internal/domain"
)

var solved = domain.Grid{Cells: [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}}

func TestRenderBlockShape(t *testing.T) {
	text := Render(&solved)
	lines := strings.Split(text, "\n")
	if len(lines) != 13 {
		t.Fatalf("got %d lines, want 13", len(lines))
	}
	for _, i := range []int{0, 4, 8, 12} {
		if lines[i] != Divider {
			t.Fatalf("line %d = %q, want %q", i, lines[i], Divider)
		}
	}
	if lines[1] != "|534|678|912|" {
		t.Fatalf("first digit row = %q", lines[1])
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	g, err := Parse(Render(&solved))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if *g != solved {
		t.Fatal("round trip changed the grid")
	}
}

func TestPuzzleRoundTrip(t *testing.T) {
	puz := solved
	puz.Cells[0][0] = domain.Blank
	puz.Cells[8][8] = domain.Blank

	text := Render(&puz)
	if !strings.Contains(text, "|.34|") {
		t.Fatalf("blank cell not rendered as placeholder:\n%s", text)
	}
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if *g != puz {
		t.Fatal("round trip changed the puzzle")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"invalid character", strings.Replace(Render(&solved), "5", "X", 1)},
		{"too few cells", "|534|678|912|"},
		{"too many cells", Render(&solved) + "\n|534|678|912|"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.text); !errors.Is(err, domain.ErrParse) {
				t.Fatalf("got %v, want ErrParse", err)
			}
		})
	}
}

func TestParseAcceptsSpaceAsBlank(t *testing.T) {
	text := strings.Replace(Render(&solved), "|534|", "| 34|", 1)
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Cells[0][0] != domain.Blank {
		t.Fatalf("cell (0,0) = %d, want blank", g.Cells[0][0])
	}
}
