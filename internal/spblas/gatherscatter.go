// Package spblas provides the low-level index-driven kernels used by the
// numeric factorization's row-assembly inner loop and the permuted solve:
// gathering a permutation out of a strided dense vector and scattering it
// back in. The shapes mirror the classic sparse BLAS level-1 gather/scatter
// routines (Dusga, Dussc), taking a stride the way gonum's RawVector().Inc
// is threaded through Usga/Ussc, since the source is a mat.VecDense rather
// than a guaranteed-unstrided buffer.
package spblas

// Gather copies y[indx[i]*incY] into x[i] for every i, the sparse-gather
// counterpart of Dusga.
func Gather(y []float64, incY int, x []float64, indx []int) {
	for i, idx := range indx {
		x[i] = y[idx*incY]
	}
}

// Scatter writes x[i] into y[indx[i]*incY] for every i, the counterpart of
// Dussc.
func Scatter(x []float64, y []float64, incY int, indx []int) {
	for i, idx := range indx {
		y[idx*incY] = x[i]
	}
}
