package qdldl

import "fmt"

// UpdateValues overwrites the stored entries of A named by indices (indices
// into the pre-permutation upper-triangular A.Nzval; when the matrix given to
// New was not upper-triangular, into its triangulated copy) with values. The
// mutation is
// applied directly; a subsequent Refactor is required before Solve reflects
// the change.
func (f *Factorization) UpdateValues(indices []int, values []float64) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: indices/values length mismatch %d/%d", ErrInvalidArgument, len(indices), len(values))
	}
	for i, idx := range indices {
		dst, err := f.translate(idx)
		if err != nil {
			return err
		}
		f.triuA.Nzval[dst] = values[i]
	}
	return nil
}

// ScaleValues multiplies the stored entries named by indices by s in place.
func (f *Factorization) ScaleValues(indices []int, s float64) error {
	for _, idx := range indices {
		dst, err := f.translate(idx)
		if err != nil {
			return err
		}
		f.triuA.Nzval[dst] *= s
	}
	return nil
}

// OffsetValues adds offset[i]*signs[i] to the stored entry named by
// indices[i], in place. signs may be nil, in which case a sign of +1 is
// used for every entry.
func (f *Factorization) OffsetValues(indices []int, offset []float64, signs []float64) error {
	if len(indices) != len(offset) {
		return fmt.Errorf("%w: indices/offset length mismatch %d/%d", ErrInvalidArgument, len(indices), len(offset))
	}
	if signs != nil && len(signs) != len(indices) {
		return fmt.Errorf("%w: indices/signs length mismatch %d/%d", ErrInvalidArgument, len(indices), len(signs))
	}
	for i, idx := range indices {
		dst, err := f.translate(idx)
		if err != nil {
			return err
		}
		sign := 1.0
		if signs != nil {
			sign = signs[i]
		}
		f.triuA.Nzval[dst] += offset[i] * sign
	}
	return nil
}

// UpdateDiagonal overwrites the diagonal entries of A named by the original
// row/column indices in indices with values. Diagonal entries are located by
// the invariant that a column's diagonal is its last stored entry; if that
// invariant is violated for a requested column, UpdateDiagonal returns
// ErrMissingDiagonal; values for earlier indices in the call have already
// been written.
func (f *Factorization) UpdateDiagonal(indices []int, values []float64) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: indices/values length mismatch %d/%d", ErrInvalidArgument, len(indices), len(values))
	}
	for k, origI := range indices {
		col := origI
		if f.iperm != nil {
			col = f.iperm[origI]
		}
		last := f.triuA.Colptr[col+1] - 1
		if last < f.triuA.Colptr[col] || f.triuA.Rowval[last] != col {
			return ErrMissingDiagonal
		}
		f.triuA.Nzval[last] = values[k]
	}
	return nil
}

// translate maps an index into the original A.Nzval to the corresponding
// index into f.triuA.Nzval via AtoPAPt, bounds-checking the input.
func (f *Factorization) translate(idx int) (int, error) {
	if uint(idx) >= uint(len(f.atoPAPt)) {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, idx, len(f.atoPAPt))
	}
	return f.atoPAPt[idx], nil
}
