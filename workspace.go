package qdldl

// workspace owns every scratch buffer and the stored factor arrays for a
// Factorization. All buffers are sized once, at construction, from n and the
// total nnz(L) computed during symbolic analysis; factor, refactor and solve
// never grow or reallocate any of them (see SPEC_FULL.md §1, allocation
// discipline).
type workspace struct {
	n int

	// Factor L (CSC upper-bound shape). Lp is written once during symbolic
	// analysis; Li is filled by the first numeric factorization and rewritten
	// with the same row indices by each later one; Lx is rewritten every
	// numeric factorization. The
	// unit diagonal of L is implicit and not stored.
	Lp []int
	Li []int
	Lx []float64

	// Diagonal D and its reciprocal, rewritten every numeric factorization.
	D    []float64
	Dinv []float64

	// lNextSpaceInCol[c] is the next unused slot in column c of L; reset to
	// Lp[c] at the start of every numeric factorization.
	lNextSpaceInCol []int

	// yVals is the dense scratch accumulator for the row of L currently
	// being assembled, indexed by column. yIdx/elimBuffer hold the reach set
	// of the row in the order described in spec §4.3 step 1.
	yVals      []float64
	yIdx       []int
	elimBuffer []int
	yMarker    []int // yMarker[i] == k when i has been pushed for the current row k

	// solveScratch is the workspace vector used by Solve/SolveInPlace for
	// the permuted right-hand side; reused across calls (see spec §5).
	solveScratch []float64
}

// newWorkspace allocates a workspace sized for n columns and nnzL stored
// sub-diagonal entries of L.
func newWorkspace(n, nnzL int) *workspace {
	w := &workspace{
		n:               n,
		Lp:              make([]int, n+1),
		Li:              make([]int, nnzL),
		Lx:              make([]float64, nnzL),
		D:               make([]float64, n),
		Dinv:            make([]float64, n),
		lNextSpaceInCol: make([]int, n),
		yVals:           make([]float64, n),
		yIdx:            make([]int, n),
		elimBuffer:      make([]int, n),
		yMarker:         make([]int, n),
		solveScratch:    make([]float64, n),
	}
	for i := range w.yMarker {
		w.yMarker[i] = unknown
	}
	return w
}
