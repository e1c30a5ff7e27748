/*
Package qdldl implements a direct factorization engine for sparse quasidefinite
symmetric matrices.  Given a symmetric matrix A of order n supplied in
upper-triangular compressed sparse column (CSC) form, the engine produces a
factorization P A Pᵀ = L D Lᵀ where P is a symmetric permutation, L is unit
lower-triangular and sparse, and D is diagonal.

Quasidefinite matrices admit an LDLᵀ factorization with no pivoting: as long as
the input is nonsingular and its sign pattern is compatible with the supplied
pivot sign prescription, no zero pivot arises.  When a diagonal pivot would
violate the prescription anyway, it is replaced by a small signed perturbation
(dynamic regularization) rather than failing the factorization outright.

The fill-reducing permutation itself is a collaborator supplied by the caller
(e.g. an external AMD ordering routine); this package only applies a
permutation once it has been computed, builds the elimination tree, runs the
numeric factorization, and solves triangular systems against the resulting
factors.
*/
package qdldl
