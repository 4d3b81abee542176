// Package canonical maps transform indices to grids and back. The base grid
// is the single canonical representative of its orbit; every encodable grid
// is the image of the base under exactly one transform in the enumerated
// group, so the index is recoverable by reduction to the base.
package canonical

import (
	"fmt"

	"svw.info/sudokode/internal/domain"
	"svw.info/sudokode/internal/grid"
)

// GroupOrder is the size of the enumerated symmetry group:
// 9! digit relabelings x 6 band permutations x 6^3 row permutations
// x 6 stack permutations x 6^3 column permutations x 2 for transposition.
const GroupOrder uint64 = grid.Perm9Count * 6 * 6 * 6 * 6 * 6 * 6 * 6 * 6 * 2

// baseGrid is the fixed origin of all transform sequences. It is the
// solution of the classic textbook puzzle and has a trivial stabilizer
// under the enumerated group, which makes the index-to-grid mapping
// injective (asserted by TestBaseGridRigid).
var baseGrid = domain.Grid{Cells: [9][9]uint8{
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

// Base returns a copy of the base grid.
func Base() *domain.Grid { return baseGrid.Clone() }

// DecodeIndex splits an index into its mixed-radix transform tuple.
// The radices, least significant first, are: digit relabeling (9!),
// band permutation (6), the three in-band row permutations (6 each),
// stack permutation (6), the three in-stack column permutations (6 each),
// and the transpose bit (2).
func DecodeIndex(idx uint64) (grid.Transform, error) {
	if idx >= GroupOrder {
		return grid.Transform{}, fmt.Errorf("transform index %d out of range [0, %d)", idx, GroupOrder)
	}
	var t grid.Transform
	t.DigitPerm = uint32(idx % grid.Perm9Count)
	idx /= grid.Perm9Count
	t.BandPerm = uint8(idx % 6)
	idx /= 6
	for i := range t.RowPerms {
		t.RowPerms[i] = uint8(idx % 6)
		idx /= 6
	}
	t.StackPerm = uint8(idx % 6)
	idx /= 6
	for i := range t.ColPerms {
		t.ColPerms[i] = uint8(idx % 6)
		idx /= 6
	}
	t.Transpose = idx%2 == 1
	return t, nil
}

// EncodeIndex is the inverse of DecodeIndex.
func EncodeIndex(t grid.Transform) uint64 {
	var idx uint64
	if t.Transpose {
		idx = 1
	}
	for i := 2; i >= 0; i-- {
		idx = idx*6 + uint64(t.ColPerms[i])
	}
	idx = idx*6 + uint64(t.StackPerm)
	for i := 2; i >= 0; i-- {
		idx = idx*6 + uint64(t.RowPerms[i])
	}
	idx = idx*6 + uint64(t.BandPerm)
	return idx*grid.Perm9Count + uint64(t.DigitPerm)
}

// Decanonicalize applies the transform with the given index to the base grid.
func Decanonicalize(idx uint64) (*domain.Grid, error) {
	t, err := DecodeIndex(idx)
	if err != nil {
		return nil, err
	}
	return t.Apply(&baseGrid), nil
}

// Canonicalize reduces a valid filled grid to the canonical representative
// of its class and the index of the transform that reproduces it:
// Decanonicalize(idx) equals g. The representative is always the base grid.
// Grids outside the base orbit cannot have been produced by the encoder and
// are reported as invalid.
func Canonicalize(g *domain.Grid) (*domain.Grid, uint64, error) {
	matches := reduce(g, false)
	if len(matches) == 0 {
		return nil, 0, fmt.Errorf("%w: grid was not produced by this encoder", domain.ErrInvalidGrid)
	}
	return Base(), matches[0], nil
}

// reduce searches for every transform mapping the base grid onto g.
// The digit relabeling never changes which cells hold equal digits, so the
// positional part can be recovered structurally: for each transpose choice
// and each structured column permutation, a candidate relabeling is derived
// from the first row of g and then checked against a band-respecting row
// assignment. With all set, the search enumerates the full stabilizer coset
// instead of stopping at the first hit.
func reduce(g *domain.Grid, all bool) []uint64 {
	var found []uint64
	for tr := 0; tr < 2; tr++ {
		b := baseGrid.Cells
		if tr == 1 {
			var tp [domain.Size][domain.Size]uint8
			for r := 0; r < domain.Size; r++ {
				for c := 0; c < domain.Size; c++ {
					tp[r][c] = b[c][r]
				}
			}
			b = tp
		}
		for stack := uint8(0); stack < grid.Perm3Count; stack++ {
			var cols [3]uint8
			for c0 := uint8(0); c0 < grid.Perm3Count; c0++ {
				for c1 := uint8(0); c1 < grid.Perm3Count; c1++ {
					for c2 := uint8(0); c2 < grid.Perm3Count; c2++ {
						cols = [3]uint8{c0, c1, c2}
						sc := grid.SourceLines(stack, cols)
						for j0 := 0; j0 < domain.Size; j0++ {
							idx, ok := matchRows(g, &b, sc, j0, stack, cols, tr == 1)
							if !ok {
								continue
							}
							found = append(found, idx)
							if !all {
								return found
							}
						}
					}
				}
			}
		}
	}
	return found
}

// matchRows derives the relabeling that maps source row j0 (under column
// mapping sc) onto row 0 of g, then assigns every remaining row of g to a
// source row under that relabeling. It succeeds only when the assignment is
// a band-structured permutation.
func matchRows(g *domain.Grid, b *[domain.Size][domain.Size]uint8, sc [9]int, j0 int, stack uint8, cols [3]uint8, transpose bool) (uint64, bool) {
	var sig [10]uint8
	for c := 0; c < domain.Size; c++ {
		sig[b[j0][sc[c]]] = g.Cells[0][c]
	}
	var assign [9]int
	assign[0] = j0
	for r := 1; r < domain.Size; r++ {
		m := -1
		for j := 0; j < domain.Size; j++ {
			match := true
			for c := 0; c < domain.Size; c++ {
				if sig[b[j][sc[c]]] != g.Cells[r][c] {
					match = false
					break
				}
			}
			if match {
				m = j
				break
			}
		}
		if m < 0 {
			return 0, false
		}
		assign[r] = m
	}

	var bands [3]uint8
	for i := 0; i < 3; i++ {
		bands[i] = uint8(assign[3*i] / 3)
		for j := 1; j < 3; j++ {
			if uint8(assign[3*i+j]/3) != bands[i] {
				return 0, false
			}
		}
	}
	bandIdx := grid.Perm3Index(bands)
	if bandIdx < 0 {
		return 0, false
	}
	var rows [3]uint8
	for i := 0; i < 3; i++ {
		p := [3]uint8{uint8(assign[3*i] % 3), uint8(assign[3*i+1] % 3), uint8(assign[3*i+2] % 3)}
		pi := grid.Perm3Index(p)
		if pi < 0 {
			return 0, false
		}
		rows[i] = uint8(pi)
	}

	var relabel [9]uint8
	copy(relabel[:], sig[1:])
	t := grid.Transform{
		DigitPerm: grid.Perm9Index(relabel),
		BandPerm:  uint8(bandIdx),
		RowPerms:  rows,
		StackPerm: stack,
		ColPerms:  cols,
		Transpose: transpose,
	}
	return EncodeIndex(t), true
}
