// SPDX-License-Identifier: MIT
// Package vecset: sentinel errors.
//
// Length mismatches reuse the vector sentinels; the errors below are
// construction and option failures specific to sets.

package vecset

import "errors"

var (
	// ErrEmptySet is returned when New receives no vectors.
	ErrEmptySet = errors.New("vecset: set needs at least one vector")

	// ErrBadOrientation is returned for an Orientation outside Columns/Rows.
	ErrBadOrientation = errors.New("vecset: unknown orientation")

	// ErrBadEpsilon is returned when an epsilon is not strictly positive.
	ErrBadEpsilon = errors.New("vecset: epsilon must be positive")
)
