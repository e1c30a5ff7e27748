package spblas

// ColAxpy applies the scaled-subtract update y[idx[p]] -= val[p] * alpha for
// p in [0, len(idx)), the inner operation of the row-assembly loop in §4.3:
// subtracting alpha times an already-computed column of L from the dense
// scratch accumulator y. It is the sparse AXPY used by this engine's inner
// loop (compare Dusaxpy, which adds alpha*x into y; here the scale factor
// varies per caller and the sign is a subtraction, so it is spelled out
// directly rather than built on top of Dusaxpy).
func ColAxpy(idx []int, val []float64, alpha float64, y []float64) {
	for p, i := range idx {
		y[i] -= val[p] * alpha
	}
}
