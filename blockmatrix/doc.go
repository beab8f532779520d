// Package blockmatrix composes equal-size square dense blocks into a grid
// and lifts the elementary operations one level up: elementwise arithmetic,
// block multiplication, transposition and block row operations.
//
// The layer exists for structured problems where rows and columns come in
// natural groups (coupled subsystems, 2x2 partitioned forms). Every block
// is an ordinary matrix.Dense, so anything the matrix package offers can be
// applied inside a block; Flatten drops back to one dense matrix when the
// structure has served its purpose.
//
// Block row operations mirror the scalar ones with matrices as factors:
// ScaleBlockRow left-multiplies a whole block row and insists the factor be
// nonsingular (a singular factor would silently collapse the row space, the
// block analog of scaling a row by zero). AddScaledBlockRow tolerates any
// factor, like its scalar sibling.
package blockmatrix
