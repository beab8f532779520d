// Package vecset analyzes finite sets of equal-length vectors: rank and
// linear independence, basis extraction, and Gram-Schmidt orthogonalization.
//
// A Set owns private clones of its vectors and can assemble them into a
// matrix either as Columns (the default, one vector per column) or as Rows.
// Rank-style queries are orientation-independent; assembly order only
// matters when the matrix itself is requested.
//
// Basis returns a subset of the ORIGINAL vectors (selected by pivot
// columns), not reduced row images, so callers get their own data back.
// Orthogonalized runs Gram-Schmidt in input order and drops directions
// whose residual norm falls below the caller's epsilon.
package vecset
