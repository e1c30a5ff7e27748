package qdldl

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CSCView is an upper-triangular symmetric matrix stored in compressed
// sparse column form.  Colptr and Rowval define the sparsity pattern and are
// fixed once the view is constructed; Nzval holds the numeric values and may
// be mutated in place (see UpdateValues, ScaleValues, OffsetValues,
// UpdateDiagonal) without altering the pattern.
//
// For every stored entry in column j, Rowval[k] <= j, and the diagonal entry
// (j, j) must be the last stored entry of column j.
type CSCView struct {
	n      int
	Colptr []int
	Rowval []int
	Nzval  []float64
}

// NewCSCView wraps the given column pointers, row indices and values as a
// CSCView of order n.  The slices are used directly as backing storage; the
// caller must not mutate Colptr or Rowval afterwards.  NewCSCView panics if
// the shape is inconsistent (wrong slice lengths, non-monotone Colptr); it
// does not verify the upper-triangular or last-entry-is-diagonal invariants,
// which are checked where they matter (etree construction, factorization).
func NewCSCView(n int, colptr, rowval []int, nzval []float64) *CSCView {
	if n < 0 {
		panic(fmt.Sprintf("qdldl: negative dimension %d", n))
	}
	if len(colptr) != n+1 {
		panic(fmt.Sprintf("qdldl: colptr length %d, want %d", len(colptr), n+1))
	}
	if len(rowval) != len(nzval) {
		panic(fmt.Sprintf("qdldl: rowval/nzval length mismatch %d/%d", len(rowval), len(nzval)))
	}
	if colptr[0] != 0 {
		panic("qdldl: colptr[0] must be 0")
	}
	for j := 0; j < n; j++ {
		if colptr[j+1] < colptr[j] {
			panic("qdldl: colptr is not monotone non-decreasing")
		}
	}
	if colptr[n] != len(rowval) {
		panic(fmt.Sprintf("qdldl: colptr[n]=%d does not match nnz=%d", colptr[n], len(rowval)))
	}
	return &CSCView{n: n, Colptr: colptr, Rowval: rowval, Nzval: nzval}
}

// Dims returns the order of the (square) matrix as rows, columns.
func (m *CSCView) Dims() (r, c int) {
	return m.n, m.n
}

// NNZ returns the number of stored entries.
func (m *CSCView) NNZ() int {
	return len(m.Nzval)
}

// At returns the element at (i, j).  Because only the upper triangle is
// stored, At mirrors across the diagonal: At(i, j) == At(j, i).
func (m *CSCView) At(i, j int) float64 {
	if uint(i) >= uint(m.n) || uint(j) >= uint(m.n) {
		panic("qdldl: index out of range")
	}
	row, col := i, j
	if row > col {
		row, col = col, row
	}
	for k := m.Colptr[col]; k < m.Colptr[col+1]; k++ {
		if m.Rowval[k] == row {
			return m.Nzval[k]
		}
	}
	return 0
}

// ToDense returns a dense copy of the symmetric matrix represented by the
// upper-triangular view, mirroring entries into the lower triangle.
func (m *CSCView) ToDense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	for j := 0; j < m.n; j++ {
		for k := m.Colptr[j]; k < m.Colptr[j+1]; k++ {
			i := m.Rowval[k]
			v := m.Nzval[k]
			d.Set(i, j, v)
			d.Set(j, i, v)
		}
	}
	return d
}

// isUpperTriangular reports whether every stored entry (i, j) of m satisfies
// i <= j.
func (m *CSCView) isUpperTriangular() bool {
	for j := 0; j < m.n; j++ {
		for k := m.Colptr[j]; k < m.Colptr[j+1]; k++ {
			if m.Rowval[k] > j {
				return false
			}
		}
	}
	return true
}

// triu returns a new CSCView containing only the upper-triangular part of m
// (entries with Rowval[k] <= column), with the diagonal, if present, moved to
// the last position of each column. It is used internally when the matrix
// supplied at construction is not already upper-triangular.
func triu(m *CSCView) *CSCView {
	colptr := make([]int, m.n+1)
	var rowval []int
	var nzval []float64

	for j := 0; j < m.n; j++ {
		colptr[j] = len(rowval)
		var diagVal float64
		haveDiag := false
		for k := m.Colptr[j]; k < m.Colptr[j+1]; k++ {
			i := m.Rowval[k]
			if i > j {
				continue
			}
			if i == j {
				diagVal = m.Nzval[k]
				haveDiag = true
				continue
			}
			rowval = append(rowval, i)
			nzval = append(nzval, m.Nzval[k])
		}
		if haveDiag {
			rowval = append(rowval, j)
			nzval = append(nzval, diagVal)
		}
	}
	colptr[m.n] = len(rowval)

	return &CSCView{n: m.n, Colptr: colptr, Rowval: rowval, Nzval: nzval}
}

// triuWithMap behaves like triu, except it also returns oldToNew, a slice
// indexed by m's original stored-entry positions giving each entry's
// position in the returned CSCView. It is used to fix up a matrix (such as
// permuteSymmetric's raw two-pass output) whose columns are already
// upper-triangular by row but may not yet have their diagonal last, while
// keeping an existing entry map (e.g. AtoPAPt) valid by composing it with
// oldToNew.
func triuWithMap(m *CSCView) (*CSCView, []int) {
	colptr := make([]int, m.n+1)
	var rowval []int
	var nzval []float64
	oldToNew := make([]int, len(m.Nzval))

	for j := 0; j < m.n; j++ {
		colptr[j] = len(rowval)
		diagIdx := -1
		var diagVal float64
		for k := m.Colptr[j]; k < m.Colptr[j+1]; k++ {
			i := m.Rowval[k]
			if i > j {
				continue
			}
			if i == j {
				diagIdx = k
				diagVal = m.Nzval[k]
				continue
			}
			oldToNew[k] = len(rowval)
			rowval = append(rowval, i)
			nzval = append(nzval, m.Nzval[k])
		}
		if diagIdx != -1 {
			oldToNew[diagIdx] = len(rowval)
			rowval = append(rowval, j)
			nzval = append(nzval, diagVal)
		}
	}
	colptr[m.n] = len(rowval)

	return &CSCView{n: m.n, Colptr: colptr, Rowval: rowval, Nzval: nzval}, oldToNew
}
