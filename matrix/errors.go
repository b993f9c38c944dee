// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (possibly wrapped) and tests check
// them via errors.Is. Public entry points never panic on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a negative order is requested.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index is outside 0..n-1.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN signals an attempt to store NaN.
	ErrNaN = errors.New("matrix: NaN value")

	// ErrNilGraph indicates that a nil *core.Graph was passed to FromGraph.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrNegativeCycle is reported when a distance closure leaves a negative
	// value on the diagonal.
	ErrNegativeCycle = errors.New("matrix: negative cycle")

	// ErrNoPath is returned by Paths.Path when j is unreachable from i.
	ErrNoPath = errors.New("matrix: no path")
)

// matrixErrorf prefixes err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
