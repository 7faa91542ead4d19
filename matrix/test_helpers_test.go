// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for constructors and dumps.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/libm/matrix"
)

// mustMatrix ALLOCATES a rows×cols matrix from literals or fails the test.
func mustMatrix(tb testing.TB, rows, cols int, values ...float32) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows, cols, values...)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// randomMatrix RETURNS a rows×cols matrix filled from a seeded RNG.
// Deterministic for a given seed.
func randomMatrix(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float32, rows*cols)
	for i := range values {
		values[i] = rng.Float32()*2 - 1 // uniform in [-1, 1)
	}

	return mustMatrix(tb, rows, cols, values...)
}
