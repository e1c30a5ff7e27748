package qdldl

import "errors"

// Sentinel errors returned by the factorization engine.  Errors are returned
// rather than panicked wherever the condition can be triggered by caller
// supplied data (a malformed permutation, a singular pivot); panics are
// reserved for programmer errors such as out of range indices, in keeping
// with the rest of the package.
var (
	// ErrInvalidArgument is returned when a supplied permutation is not a
	// permutation, dimensions don't match, or a matrix is not square.
	ErrInvalidArgument = errors.New("qdldl: invalid argument")

	// ErrNotUpperTriangular is returned when a matrix that was expected to
	// be upper-triangular (after triangulation) contains a strictly
	// lower-triangular stored entry.
	ErrNotUpperTriangular = errors.New("qdldl: matrix is not upper-triangular")

	// ErrMissingDiagonal is returned when a column lacks a stored diagonal
	// entry as its last stored entry.
	ErrMissingDiagonal = errors.New("qdldl: missing diagonal entry")

	// ErrEmptyColumn is returned when a column of the target matrix has no
	// stored entries at all.
	ErrEmptyColumn = errors.New("qdldl: empty column")

	// ErrSingular is returned when a pivot evaluates to exactly zero during
	// numeric factorization.
	ErrSingular = errors.New("qdldl: singular pivot")

	// ErrLogicalOnly is returned by Solve/SolveInPlace when called against a
	// factorization produced in logical (symbolic-only) mode.
	ErrLogicalOnly = errors.New("qdldl: factorization is logical-only")
)
