// SPDX-License-Identifier: MIT
// Package eigen: sentinel errors.
//
// Shape violations reuse the matrix sentinels (ErrNilMatrix, ErrNonSquare);
// the errors below reject unusable option values before any work starts.

package eigen

import "errors"

var (
	// ErrBadMaxIter is returned when Options.MaxIter is below one.
	ErrBadMaxIter = errors.New("eigen: MaxIter must be at least 1")

	// ErrBadEpsilon is returned when Options.Eps is not strictly positive.
	ErrBadEpsilon = errors.New("eigen: epsilon must be positive")
)
