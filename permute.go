package qdldl

// validatePermutation reports whether iperm is a permutation of 0..n-1.
func validatePermutation(iperm []int, n int) bool {
	if len(iperm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range iperm {
		if uint(v) >= uint(n) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// invert returns inv such that inv[p[i]] == i for all i; applied to a forward
// permutation (perm[newIndex] = oldIndex) it yields the inverse permutation
// (iperm[oldIndex] = newIndex), and vice versa.
func invert(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// permuteSymmetric builds P = (perm) A (perm)ᵀ, restricted to its upper
// triangle, from the upper-triangular CSCView a and the inverse permutation
// iperm (iperm[original index] = new index). It returns the permuted matrix
// together with AtoPAPt, the bijection from a's stored-entry indices to the
// permuted matrix's stored-entry indices.
//
// This follows the two-pass counting-sort construction described by Davis,
// Direct Methods for Sparse Linear Systems: a count pass determines the
// destination column of every entry, a prefix sum turns the counts into
// column pointers, and a fill pass revisits the entries in the same order to
// place them, so a's column-major scan order determines the (unsorted)
// order of row indices within each destination column. This unsorted order
// only guarantees each destination column is upper-triangular by row, not
// that the diagonal ends up last; callers must run the result through
// triuWithMap (composing its oldToNew into AtoPAPt) before relying on the
// last-stored-entry-is-diagonal invariant.
func permuteSymmetric(a *CSCView, iperm []int) (*CSCView, []int) {
	n := a.n
	nnz := len(a.Nzval)

	numEntries := make([]int, n)
	destCol := make([]int, nnz)
	destRow := make([]int, nnz)

	for j := 0; j < n; j++ {
		colP := iperm[j]
		for k := a.Colptr[j]; k < a.Colptr[j+1]; k++ {
			i := a.Rowval[k]
			rowP := iperm[i]
			c, r := colP, rowP
			if rowP > colP {
				c, r = rowP, colP
			}
			destCol[k] = c
			destRow[k] = r
			numEntries[c]++
		}
	}

	Pc := make([]int, n+1)
	for c := 0; c < n; c++ {
		Pc[c+1] = Pc[c] + numEntries[c]
	}

	rowStarts := make([]int, n)
	copy(rowStarts, Pc[:n])

	Pr := make([]int, nnz)
	Pv := make([]float64, nnz)
	atoPAPt := make([]int, nnz)

	for j := 0; j < n; j++ {
		for k := a.Colptr[j]; k < a.Colptr[j+1]; k++ {
			c := destCol[k]
			r := destRow[k]
			dst := rowStarts[c]
			rowStarts[c]++
			Pr[dst] = r
			Pv[dst] = a.Nzval[k]
			atoPAPt[k] = dst
		}
	}

	return &CSCView{n: n, Colptr: Pc, Rowval: Pr, Nzval: Pv}, atoPAPt
}

// identityAtoPAPt returns the identity entry map for a matrix of nnz stored
// entries, used when no permutation is applied so update indexing is always
// uniform (see DESIGN.md's Open Question decision).
func identityAtoPAPt(nnz int) []int {
	m := make([]int, nnz)
	for i := range m {
		m[i] = i
	}
	return m
}
