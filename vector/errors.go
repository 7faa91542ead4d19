// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with call-site
// context) and callers match them with errors.Is. No operation panics on
// user input; Must* helpers are the only exception.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrUndefined indicates an operation on the undefined (zero-dimension) vector.
	ErrUndefined = errors.New("vector: undefined vector")

	// ErrNotThreeDimensional is returned by Cross when an operand is not 3-dimensional.
	ErrNotThreeDimensional = errors.New("vector: cross product requires dimension 3")

	// ErrEmptyLiteral is returned by New when no values are supplied.
	ErrEmptyLiteral = errors.New("vector: empty literal list")

	// ErrInvalidDimension indicates a requested dimension that is not positive.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")

	// ErrOutOfRange indicates an element index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// vectorErrorf wraps err with an operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
