package qdldl

import (
	"gonum.org/v1/gonum/mat"

	"github.com/james-bowman/qdldl/internal/spblas"
)

// Solve returns x = A⁻¹ b for the factored matrix; b is left untouched.
func (f *Factorization) Solve(b *mat.VecDense) (*mat.VecDense, error) {
	if f.logical || !f.factored {
		return nil, ErrLogicalOnly
	}
	x := mat.NewVecDense(f.n, nil)
	for i := 0; i < f.n; i++ {
		x.SetVec(i, b.AtVec(i))
	}
	if err := f.solveInPlaceVec(x); err != nil {
		return nil, err
	}
	return x, nil
}

// SolveInPlace overwrites b with x = A⁻¹ b.
func (f *Factorization) SolveInPlace(b *mat.VecDense) error {
	if f.logical || !f.factored {
		return ErrLogicalOnly
	}
	return f.solveInPlaceVec(b)
}

// solveInPlaceVec runs the permuted solve of spec §4.4 against b, a dense
// vector of length n, overwriting it with the solution. It uses the
// factorization's own scratch vector, so it must not be re-entered
// concurrently on the same Factorization (see spec §5).
func (f *Factorization) solveInPlaceVec(b *mat.VecDense) error {
	n := f.n
	y := f.ws.solveScratch
	bv := b.RawVector()

	if f.perm != nil {
		spblas.Gather(bv.Data, bv.Inc, y, f.perm)
	} else {
		for j := 0; j < n; j++ {
			y[j] = bv.Data[j*bv.Inc]
		}
	}

	f.lsolve(y)
	for i := 0; i < n; i++ {
		y[i] *= f.ws.Dinv[i]
	}
	f.ltsolve(y)

	if f.perm != nil {
		spblas.Scatter(y, bv.Data, bv.Inc, f.perm)
	} else {
		for j := 0; j < n; j++ {
			bv.Data[j*bv.Inc] = y[j]
		}
	}
	return nil
}

// lsolve solves (L+I) y = b in place, forward substitution column by column.
func (f *Factorization) lsolve(y []float64) {
	ws := f.ws
	for i := 0; i < f.n; i++ {
		lo, hi := ws.Lp[i], ws.Lp[i+1]
		spblas.ColAxpy(ws.Li[lo:hi], ws.Lx[lo:hi], y[i], y)
	}
}

// ltsolve solves (L+I)ᵀ y = b in place, backward substitution column by
// column in reverse order.
func (f *Factorization) ltsolve(y []float64) {
	ws := f.ws
	for i := f.n - 1; i >= 0; i-- {
		lo, hi := ws.Lp[i], ws.Lp[i+1]
		var sum float64
		for p := lo; p < hi; p++ {
			sum += ws.Lx[p] * y[ws.Li[p]]
		}
		y[i] -= sum
	}
}
