// SPDX-License-Identifier: MIT

// Package literal counts, validates and copies literal element lists used to
// build vectors and matrices from inline values.
//
// Both constructors (vector.New and matrix.New) accept their elements as a
// variadic list. This package is the single place that decides whether such a
// list is acceptable and hands back storage the caller owns exclusively, so
// the slice passed by the user is never aliased by a value.
package literal

import (
	"errors"
	"fmt"
)

// Any disables the exact-count check in Take: every non-empty list passes.
const Any = -1

var (
	// ErrEmpty is returned when a literal list holds no values.
	ErrEmpty = errors.New("literal: empty value list")

	// ErrCount is returned when a literal list does not hold the expected number of values.
	ErrCount = errors.New("literal: value count mismatch")
)

// Count returns the number of literal values supplied.
// Complexity: O(1).
func Count(values ...float32) int { return len(values) }

// Take validates values and returns an owned copy of them.
//
// Behavior highlights:
//   - want == Any accepts any non-empty list.
//   - want >= 0 requires exactly want values; want == 0 still rejects the list with ErrEmpty.
//   - The returned slice never shares a backing array with values.
//
// Errors:
//   - ErrEmpty when len(values) == 0.
//   - ErrCount when want != Any and len(values) != want.
//
// Complexity: Time O(n), Space O(n).
func Take(want int, values []float32) ([]float32, error) {
	n := Count(values...)
	if n == 0 {
		return nil, ErrEmpty
	}
	if want != Any && n != want {
		return nil, fmt.Errorf("got %d, want %d: %w", n, want, ErrCount)
	}
	out := make([]float32, n)
	copy(out, values)

	return out, nil
}
