// SPDX-License-Identifier: MIT
// Package: strata/sampling
//
// errors.go — sentinel errors for the sampling package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (sample index, column, arity) is attached with %w wrapping.
//   • Functions never panic on bad input and never log.

package sampling

import (
	"errors"
	"fmt"
)

// ErrInvalidColumn indicates that a label or mapped column index lies outside
// the arity of a sample.
var ErrInvalidColumn = errors.New("sampling: column index out of range")

// ErrEmptyInput indicates that balancing was requested on a zero-length
// collection, so no majority or minority group is defined.
var ErrEmptyInput = errors.New("sampling: empty input")

// ErrNilRand indicates that a stochastic operation was called without a
// random generator. There is no implicit default generator.
var ErrNilRand = errors.New("sampling: random generator is required")

// ErrUnhashableLabel indicates that a label value cannot be used as a map key:
// a slice, map or func dynamic type, or a value not equal to itself (NaN).
var ErrUnhashableLabel = errors.New("sampling: label is not comparable")

// columnError wraps ErrInvalidColumn with the offending sample position.
func columnError(sampleIdx, col, arity int) error {
	return fmt.Errorf("sample %d: column %d with arity %d: %w", sampleIdx, col, arity, ErrInvalidColumn)
}
