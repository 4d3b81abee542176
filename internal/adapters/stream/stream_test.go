package stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"svw.info/sudokode/internal/canonical"
	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/grid"
)

func TestWriteReadRoundTrip(t *testing.T) {
	a, err := canonical.Decanonicalize(12345)
	if err != nil {
		t.Fatal(err)
	}
	b, err := canonical.Decanonicalize(67890)
	if err != nil {
		t.Fatal(err)
	}
	grids := []*domain.Grid{a, b}

	var buf bytes.Buffer
	if err := WriteGrids(&buf, grids); err != nil {
		t.Fatalf("WriteGrids failed: %v", err)
	}
	got, err := ReadGrids(&buf)
	if err != nil {
		t.Fatalf("ReadGrids failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d grids, want 2", len(got))
	}
	if *got[0] != *a || *got[1] != *b {
		t.Fatal("round trip changed the grids")
	}
}

func TestReadGridsEmptyInput(t *testing.T) {
	got, err := ReadGrids(strings.NewReader("\n\n\n"))
	if err != nil {
		t.Fatalf("ReadGrids failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d grids, want 0", len(got))
	}
}

func TestReadGridsMissingSeparator(t *testing.T) {
	// Two blocks joined without a blank line read as one block with 162
	// cells, which is a parse error.
	g := canonical.Base()
	text := grid.Render(g) + "\n" + grid.Render(g) + "\n"
	if _, err := ReadGrids(strings.NewReader(text)); !errors.Is(err, domain.ErrParse) {
		t.Fatalf("got %v, want ErrParse", err)
	}
}

func TestWriteEndsWithBlankLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGrids(&buf, []*domain.Grid{canonical.Base()}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "+---+---+---+\n\n") {
		t.Fatalf("output does not end with a blank separator:\n%q", buf.String())
	}
}
