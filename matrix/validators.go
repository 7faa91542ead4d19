// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Return plain sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/libm/internal/literal"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows > 0, cols > 0 and that rows*cols fits in an int.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateIndex ensures (row, col) lies inside m. The undefined matrix has no valid index.
// Complexity: O(1).
func ValidateIndex(m *Matrix, row, col int) error {
	r, c := m.Shape()
	if row < 0 || row >= r || col < 0 || col >= c {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", row, col), ErrOutOfRange)
	}

	return nil
}

// takeLiterals validates the shape, then returns an owned copy of exactly rows*cols values.
// Errors: ErrInvalidDimensions, then ErrLiteralCount.
func takeLiterals(rows, cols int, values []float32) ([]float32, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	data, err := literal.Take(rows*cols, values)
	if err != nil {
		if errors.Is(err, literal.ErrEmpty) || errors.Is(err, literal.ErrCount) {
			return nil, validatorErrorf(fmt.Sprintf("literals(%d)", len(values)), ErrLiteralCount)
		}

		return nil, err
	}

	return data, nil
}
