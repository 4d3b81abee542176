// Package stream frames grids on a text stream: one 13-line block per grid,
// blocks separated by a single blank line.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/grid"
)

// ReadGrids consumes r fully and parses every blank-line-delimited block.
func ReadGrids(r io.Reader) ([]*domain.Grid, error) {
	var grids []*domain.Grid
	var block []string
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		g, err := grid.Parse(strings.Join(block, "\n"))
		if err != nil {
			return fmt.Errorf("grid %d: %w", len(grids)+1, err)
		}
		grids = append(grids, g)
		block = block[:0]
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return grids, nil
}

// WriteGrids renders each grid followed by a blank separator line.
func WriteGrids(w io.Writer, grids []*domain.Grid) error {
	bw := bufio.NewWriter(w)
	for _, g := range grids {
		if _, err := bw.WriteString(grid.Render(g)); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
