package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c)
//          81..161 -> row r has digit v
//          162..242-> col c has digit v
//          243..323-> box b has digit v, b = (r/3)*3 + (c/3)
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCells = domain.CellCount     // 81
	dlxCols  = 4 * dlxCells         // 324
	dlxRows  = dlxCells * domain.Size // 729 (r,c,v)

	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // 0..728 identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool // whether this constraint column is currently uncovered
}

type dlxMatrix struct {
	cols      [dlxCols]*dlxColumn
	rowHead   [dlxRows]*dlxNode
	sol       [dlxCells]*dlxNode
	solLen    int
	nodes     int
	activeCnt int
}

func newDLXMatrix() *dlxMatrix {
	d := &dlxMatrix{}
	for i := 0; i < dlxCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = dlxCols

	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			for v := 1; v <= domain.Size; v++ {
				row := dlxRowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range dlxRowColumns(r, c, v) {
					col := d.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring over the 4 nodes of the row
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func dlxRowIndex(r, c, v int) int {
	return (r*domain.Size+c)*domain.Size + (v - 1)
}

func dlxRowColumns(r, c, v int) [4]int {
	return [4]int{
		colCell + r*domain.Size + c,
		colRowNum + r*domain.Size + (v - 1),
		colColNum + c*domain.Size + (v - 1),
		colBoxNum + boxOf(r, c)*domain.Size + (v - 1),
	}
}

func (d *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

// search runs Algorithm X, counting complete covers until limit is reached.
// It returns true to unwind once the limit is hit or the context is done.
func (d *dlxMatrix) search(ctx context.Context, k, limit int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= limit
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, limit, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyClues selects the row of each given digit and covers its columns.
// It fails when clues conflict (a needed column is already covered).
func (d *dlxMatrix) applyClues(g *domain.Grid) error {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := int(g.Cells[r][c])
			if v == 0 {
				continue
			}
			head := d.rowHead[dlxRowIndex(r, c, v)]
			for _, colID := range dlxRowColumns(r, c, v) {
				if !d.cols[colID].active {
					return fmt.Errorf("conflicting clue %d at r%d c%d", v, r, c)
				}
			}
			for j := head; ; j = j.right {
				d.cover(j.col)
				if j.right == head {
					break
				}
			}
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	d := newDLXMatrix()
	if err := d.applyClues(g); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w: %v", domain.ErrUnsatisfiable, err)
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	stats := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	if found < 1 {
		return nil, stats, domain.ErrUnsatisfiable
	}
	out := g.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := dlxDecodeRow(d.sol[i].rowIdx)
		out.Cells[r][c] = uint8(v)
	}
	return out, stats, nil
}

// CountSolutions enumerates covers up to limit, stopping early. Conflicting
// clues count as zero solutions, matching the backtracking backend.
func (s *DLXSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	d := newDLXMatrix()
	if err := d.applyClues(g); err != nil {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := 0
	_ = d.search(ctx, 0, limit, &found)
	stats := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return found, stats, err
	}
	return found, stats, nil
}

func dlxDecodeRow(row int) (r, c, v int) {
	cell := row / domain.Size
	v = row%domain.Size + 1
	r = cell / domain.Size
	c = cell % domain.Size
	return
}
