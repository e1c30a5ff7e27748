package qdldl

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// denseUpperToCSC packs every entry (i,j), i<=j, of a dense n x n matrix into
// an upper-triangular CSCView, placing the diagonal last within each column.
func denseUpperToCSC(d *mat.Dense) *CSCView {
	n, _ := d.Dims()
	colptr := make([]int, n+1)
	var rowval []int
	var nzval []float64
	for j := 0; j < n; j++ {
		colptr[j] = len(rowval)
		for i := 0; i < j; i++ {
			rowval = append(rowval, i)
			nzval = append(nzval, d.At(i, j))
		}
		rowval = append(rowval, j)
		nzval = append(nzval, d.At(j, j))
	}
	colptr[n] = len(rowval)
	return NewCSCView(n, colptr, rowval, nzval)
}

// randomQuasidefinite builds a random n1+n2 order quasidefinite matrix
// [[E, F^T], [F, -H]] with E, H strictly positive definite, following the
// block structure the spec's GLOSSARY defines "quasidefinite" by. Such a
// matrix admits LDLᵀ with no pivoting for any permutation, which is the
// property this whole engine relies on, so (unlike cholesky_test.go's
// randomSymDensePosDefinite) no retry loop is needed here.
func randomQuasidefinite(n1, n2 int, src rand.Source) *mat.Dense {
	rnd := rand.New(src)
	n := n1 + n2

	e := spdBlock(n1, rnd)
	h := spdBlock(n2, rnd)

	f := mat.NewDense(n2, n1, nil)
	for i := 0; i < n2; i++ {
		for j := 0; j < n1; j++ {
			f.Set(i, j, rnd.NormFloat64()*0.1)
		}
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n1; i++ {
		for j := 0; j < n1; j++ {
			a.Set(i, j, e.At(i, j))
		}
	}
	for i := 0; i < n2; i++ {
		for j := 0; j < n2; j++ {
			a.Set(n1+i, n1+j, -h.At(i, j))
		}
	}
	for i := 0; i < n2; i++ {
		for j := 0; j < n1; j++ {
			a.Set(n1+i, j, f.At(i, j))
			a.Set(j, n1+i, f.At(i, j))
		}
	}
	return a
}

// spdBlock returns a strictly positive definite m x m matrix B B^T + (m+1)*I.
func spdBlock(m int, rnd *rand.Rand) *mat.Dense {
	if m == 0 {
		return mat.NewDense(0, 0, nil)
	}
	b := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			b.Set(i, j, rnd.NormFloat64())
		}
	}
	bt := b.T()
	bbt := mat.NewDense(m, m, nil)
	bbt.Mul(b, bt)
	for i := 0; i < m; i++ {
		bbt.Set(i, i, bbt.At(i, i)+float64(m)+1)
	}
	return bbt
}

// quasidefiniteDsigns returns the canonical sign prescription for a
// [[E,F^T],[F,-H]] block of shape n1+n2: +1 on the first n1 pivots, -1 on
// the remaining n2.
func quasidefiniteDsigns(n1, n2 int) []float64 {
	signs := make([]float64, n1+n2)
	for i := 0; i < n1; i++ {
		signs[i] = 1
	}
	for i := n1; i < n1+n2; i++ {
		signs[i] = -1
	}
	return signs
}
