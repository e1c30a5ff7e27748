package qdldl

import (
	"fmt"

	"github.com/james-bowman/qdldl/internal/spblas"
)

const (
	defaultRegularizeEps   = 1e-12
	defaultRegularizeDelta = 1e-7
)

// Options configures the construction of a Factorization. The zero value
// selects no permutation, numeric (non-logical) factorization, no sign
// prescription and the default regularization thresholds.
type Options struct {
	// Perm is the externally supplied fill-reducing permutation, forward
	// convention: Perm[newIndex] = oldIndex. If nil, the identity
	// permutation is used (no reordering).
	Perm []int

	// Logical requests a symbolic-only factorization: the fill pattern of L
	// is produced but Lx, D and Dinv are all left as 1, with no arithmetic
	// performed.
	Logical bool

	// Dsigns, if non-nil, must have length n with every entry +1 or -1; it
	// prescribes the desired sign of each diagonal pivot D[k]. When Perm is
	// also supplied, Dsigns is permuted consistently before use.
	Dsigns []float64

	// RegularizeEps and RegularizeDelta control dynamic regularization (see
	// spec §4.3 step 4). Zero values select the package defaults.
	RegularizeEps   float64
	RegularizeDelta float64
}

// Factorization holds the symbolic skeleton and numeric factors of
// P A Pᵀ = L D Lᵀ for a sparse quasidefinite symmetric matrix A, along with
// the scratch buffers and counters needed to refactor and solve against the
// same skeleton after the stored entries of A are updated.
type Factorization struct {
	n int

	triuA   *CSCView
	atoPAPt []int
	perm    []int // nil if identity
	iperm   []int // nil if identity

	etree etreeResult
	ws    *workspace

	dsigns  []float64 // permuted internally; nil if absent
	logical bool

	regularizeEps   float64
	regularizeDelta float64

	positiveInertia    int
	regularizedEntries int
	factored           bool
}

// New constructs a Factorization for the n x n symmetric matrix a (supplied
// in CSC form; need not already be upper-triangular — it is triangulated
// internally, and the caller's slices are never mutated) and immediately
// performs symbolic analysis and numeric factorization.
//
// New returns ErrInvalidArgument if a is not square or opts.Perm is not a
// valid permutation of 0..n-1, ErrEmptyColumn/ErrNotUpperTriangular if the
// (triangulated) matrix's sparsity pattern is malformed, and ErrSingular if
// a pivot evaluates to exactly zero during numeric factorization.
func New(a *CSCView, opts Options) (*Factorization, error) {
	n := a.n
	if len(a.Colptr) != n+1 {
		return nil, fmt.Errorf("%w: colptr length %d, want %d", ErrInvalidArgument, len(a.Colptr), n+1)
	}

	src := a
	if !a.isUpperTriangular() {
		src = triu(a)
	}

	var perm, iperm []int
	var triuA *CSCView
	var atoPAPt []int
	if opts.Perm != nil {
		if !validatePermutation(opts.Perm, n) {
			return nil, fmt.Errorf("%w: Perm is not a permutation of 0..%d", ErrInvalidArgument, n-1)
		}
		perm = append([]int(nil), opts.Perm...)
		iperm = invert(perm)
		triuA, atoPAPt = permuteSymmetric(src, iperm)

		// permuteSymmetric's two-pass construction only guarantees each
		// destination column is upper-triangular by row, not that the
		// diagonal lands last (see spec §4.1 Properties); re-triangulate
		// and compose the entry map through the resulting reorder so
		// AtoPAPt still points at the right stored entry.
		var oldToNew []int
		triuA, oldToNew = triuWithMap(triuA)
		for i, dst := range atoPAPt {
			atoPAPt[i] = oldToNew[dst]
		}
	} else {
		// build the matrix as-is, but still construct an explicit copy and
		// an identity entry map so update indexing is always uniform (see
		// DESIGN.md's Open Question decision).
		triuA = &CSCView{
			n:      n,
			Colptr: append([]int(nil), src.Colptr...),
			Rowval: append([]int(nil), src.Rowval...),
			Nzval:  append([]float64(nil), src.Nzval...),
		}
		atoPAPt = identityAtoPAPt(len(triuA.Nzval))
	}

	var dsigns []float64
	if opts.Dsigns != nil {
		if len(opts.Dsigns) != n {
			return nil, fmt.Errorf("%w: Dsigns length %d, want %d", ErrInvalidArgument, len(opts.Dsigns), n)
		}
		dsigns = make([]float64, n)
		if perm != nil {
			for i := 0; i < n; i++ {
				dsigns[i] = opts.Dsigns[perm[i]]
			}
		} else {
			copy(dsigns, opts.Dsigns)
		}
	}

	et, ok := computeEtree(n, triuA.Colptr, triuA.Rowval)
	if !ok {
		if hasEmptyColumn(triuA) {
			return nil, ErrEmptyColumn
		}
		return nil, ErrNotUpperTriangular
	}

	ws := newWorkspace(n, et.nnzL)
	ws.Lp[0] = 0
	for i := 0; i < n; i++ {
		ws.Lp[i+1] = ws.Lp[i] + et.lnz[i]
	}

	eps := opts.RegularizeEps
	if eps == 0 {
		eps = defaultRegularizeEps
	}
	delta := opts.RegularizeDelta
	if delta == 0 {
		delta = defaultRegularizeDelta
	}

	f := &Factorization{
		n:               n,
		triuA:           triuA,
		atoPAPt:         atoPAPt,
		perm:            perm,
		iperm:           iperm,
		etree:           et,
		ws:              ws,
		dsigns:          dsigns,
		logical:         opts.Logical,
		regularizeEps:   eps,
		regularizeDelta: delta,
	}

	if err := f.numericFactorize(); err != nil {
		return nil, err
	}
	return f, nil
}

func hasEmptyColumn(m *CSCView) bool {
	for j := 0; j < m.n; j++ {
		if m.Colptr[j+1] == m.Colptr[j] {
			return true
		}
	}
	return false
}

// Refactor recomputes the numeric factors using the current values of the
// permuted matrix (as last written by UpdateValues, ScaleValues,
// OffsetValues, UpdateDiagonal or the original construction), reusing the
// existing symbolic skeleton (Lp is left untouched; Li is rewritten with the
// same row indices). The regularization counter is reset. If Refactor returns
// ErrSingular, the factors are left in an indeterminate state and the
// Factorization must not be used for Solve.
func (f *Factorization) Refactor() error {
	return f.numericFactorize()
}

// numericFactorize runs the row-wise sparse LDLᵀ inner loop of spec §4.3,
// writing Lx, D, Dinv and the inertia/regularization counters. In logical
// mode, the fill pattern is still produced (Lx ≡ 1, D ≡ 1, Dinv ≡ 1) without
// any numeric accumulation.
func (f *Factorization) numericFactorize() error {
	n := f.n
	ws := f.ws
	triuA := f.triuA

	copy(ws.lNextSpaceInCol, ws.Lp[:n])
	for i := range ws.yVals {
		ws.yVals[i] = 0
	}
	for i := range ws.yMarker {
		ws.yMarker[i] = unknown
	}

	f.positiveInertia = 0
	f.regularizedEntries = 0
	f.factored = false

	for k := 0; k < n; k++ {
		// Step 1: reach set of row k of L. Each elimination-tree walk is
		// appended to yIdx reversed (ancestor first), so reading yIdx from
		// its end visits every column after its descendants.
		nnzY := 0
		bufLen := 0
		var dk float64
		haveDiag := false

		// mark k itself so the ancestor walk below halts at k (mirrors
		// work[j] = j in computeEtree) rather than pushing k into yIdx.
		ws.yMarker[k] = k

		for p := triuA.Colptr[k]; p < triuA.Colptr[k+1]; p++ {
			i := triuA.Rowval[p]
			v := triuA.Nzval[p]
			if i == k {
				dk = v
				haveDiag = true
				continue
			}
			ws.yVals[i] = v

			if ws.yMarker[i] == k {
				continue
			}
			// walk i up the elimination tree, collecting ancestors < k not
			// yet marked for this k, in walking order.
			bufLen = 0
			cur := i
			for cur != unknown && ws.yMarker[cur] != k {
				ws.elimBuffer[bufLen] = cur
				bufLen++
				ws.yMarker[cur] = k
				cur = f.etree.parent[cur]
			}
			for bufLen > 0 {
				bufLen--
				ws.yIdx[nnzY] = ws.elimBuffer[bufLen]
				nnzY++
			}
		}
		if !haveDiag {
			return ErrMissingDiagonal
		}

		// Step 3: row assembly, visiting yIdx from its last position to its
		// first, so each column is processed after its descendants.
		for i := nnzY - 1; i >= 0; i-- {
			c := ws.yIdx[i]
			nextSlot := ws.lNextSpaceInCol[c]

			if !f.logical {
				lo, hi := ws.Lp[c], nextSlot
				spblas.ColAxpy(ws.Li[lo:hi], ws.Lx[lo:hi], ws.yVals[c], ws.yVals)
				ws.Lx[nextSlot] = ws.yVals[c] * ws.Dinv[c]
				dk -= ws.yVals[c] * ws.Lx[nextSlot]
			} else {
				ws.Lx[nextSlot] = 1
			}

			ws.Li[nextSlot] = k
			ws.lNextSpaceInCol[c]++
			ws.yVals[c] = 0
			ws.yMarker[c] = unknown
		}

		if f.logical {
			ws.D[k] = 1
			ws.Dinv[k] = 1
			f.positiveInertia++
			continue
		}

		// Step 4: dynamic regularization.
		if f.dsigns != nil && f.dsigns[k]*dk < f.regularizeEps {
			dk = f.regularizeDelta * f.dsigns[k]
			f.regularizedEntries++
		}

		// Step 5: pivot check.
		if dk == 0 {
			return ErrSingular
		}
		ws.D[k] = dk
		ws.Dinv[k] = 1 / dk
		if dk > 0 {
			f.positiveInertia++
		}
	}

	f.factored = true
	return nil
}

// Dims returns the order of the factored matrix as rows, columns.
func (f *Factorization) Dims() (r, c int) {
	return f.n, f.n
}

// NNZL returns the number of stored sub-diagonal entries of L.
func (f *Factorization) NNZL() int {
	return len(f.ws.Li)
}

// PositiveInertia returns the number of positive diagonal pivots produced by
// the most recent numeric factorization.
func (f *Factorization) PositiveInertia() int {
	return f.positiveInertia
}

// RegularizedEntries returns the number of pivots replaced by dynamic
// regularization during the most recent numeric factorization.
func (f *Factorization) RegularizedEntries() int {
	return f.regularizedEntries
}
