package grid

import "svw.info/sudokode/internal/domain"

// Transform is one element of the symmetry group acting on valid grids:
// an optional transposition, row permutations that respect the band
// structure, column permutations that respect the stack structure, and a
// relabeling of the nine digits. Transforms preserve validity.
type Transform struct {
	DigitPerm uint32 // lexicographic index into the 9! digit relabelings
	BandPerm  uint8  // 0..5
	RowPerms  [3]uint8
	StackPerm uint8
	ColPerms  [3]uint8
	Transpose bool
}

// Perm3Count is the number of permutations of three elements.
const Perm3Count = 6

// Perm9Count is the number of digit relabelings (9!).
const Perm9Count = 362880

// perm3 lists the permutations of {0,1,2} in lexicographic order.
var perm3 = [Perm3Count][3]uint8{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// Perm3 returns the permutation of {0,1,2} with the given lexicographic index.
func Perm3(idx uint8) [3]uint8 { return perm3[idx] }

// Perm3Index returns the lexicographic index of p, or -1 if p is not a
// permutation of {0,1,2}.
func Perm3Index(p [3]uint8) int {
	for i, q := range perm3 {
		if q == p {
			return i
		}
	}
	return -1
}

var factorials = [9]uint32{1, 1, 2, 6, 24, 120, 720, 5040, 40320}

// Perm9 decodes a lexicographic Lehmer index into a digit relabeling:
// digit d maps to Perm9(idx)[d-1].
func Perm9(idx uint32) [9]uint8 {
	elems := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	var out [9]uint8
	n := 9
	for i := 0; i < 9; i++ {
		f := factorials[8-i]
		d := int(idx / f)
		idx %= f
		out[i] = elems[d]
		copy(elems[d:], elems[d+1:n])
		n--
	}
	return out
}

// Perm9Index is the inverse of Perm9.
func Perm9Index(p [9]uint8) uint32 {
	elems := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	n := 9
	var idx uint32
	for i := 0; i < 9; i++ {
		d := 0
		for elems[d] != p[i] {
			d++
		}
		idx += uint32(d) * factorials[8-i]
		copy(elems[d:], elems[d+1:n])
		n--
	}
	return idx
}

// SourceLines maps destination line r to its source line for a grouped
// permutation: destination group i draws from source group perm3[group][i],
// and line j within it from position perm3[within[i]][j].
func SourceLines(group uint8, within [3]uint8) [9]int {
	var m [9]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*i+j] = int(perm3[group][i])*3 + int(perm3[within[i]][j])
		}
	}
	return m
}

// Apply returns the image of g under t. Blank cells stay blank, so the
// operation is total; on valid filled grids it is validity-preserving.
// The composition order is fixed: transpose, then rows, then columns, then
// digit relabeling.
func (t Transform) Apply(g *domain.Grid) *domain.Grid {
	src := g.Cells
	if t.Transpose {
		var tr [domain.Size][domain.Size]uint8
		for r := 0; r < domain.Size; r++ {
			for c := 0; c < domain.Size; c++ {
				tr[r][c] = src[c][r]
			}
		}
		src = tr
	}
	sr := SourceLines(t.BandPerm, t.RowPerms)
	sc := SourceLines(t.StackPerm, t.ColPerms)
	relabel := Perm9(t.DigitPerm)
	var out domain.Grid
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if v := src[sr[r]][sc[c]]; v != domain.Blank {
				out.Cells[r][c] = relabel[v-1]
			}
		}
	}
	return &out
}
