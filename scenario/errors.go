// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp indicates a step whose op is not supported.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrUnknownName indicates a step operand that names no declared value.
	ErrUnknownName = errors.New("scenario: unknown name")

	// ErrArity indicates a step with the wrong number of operands.
	ErrArity = errors.New("scenario: wrong operand count")

	// ErrMissingScalar indicates a scalar op without a scalar.
	ErrMissingScalar = errors.New("scenario: missing scalar")

	// ErrMissingInto indicates an op that must store its result but has no target name.
	ErrMissingInto = errors.New("scenario: missing into")

	// ErrBadMatrixSpec indicates a matrix declaration that is not exactly one of
	// identity, zero, values or grid, or that sizes an identity or grid with rows/cols.
	ErrBadMatrixSpec = errors.New("scenario: matrix must set exactly one of identity, zero, values, grid")
)

// stepErrorf wraps err with the step index and op.
func stepErrorf(i int, op string, err error) error {
	return fmt.Errorf("step %d (%s): %w", i, op, err)
}
