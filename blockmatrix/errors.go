// SPDX-License-Identifier: MIT
// Package blockmatrix: sentinel errors.
//
// Shape and bounds violations reuse the matrix sentinels (ErrBadShape,
// ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix).

package blockmatrix

import "errors"

// ErrSingularBlock is returned by ScaleBlockRow when the factor block has a
// determinant below epsilon. A singular factor drops block-row rank the same
// way a zero scalar factor wipes a row.
var ErrSingularBlock = errors.New("blockmatrix: scale factor block is singular")
