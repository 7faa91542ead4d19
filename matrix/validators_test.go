package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/libm/matrix"
)

// TestValidateShape covers positive and non-positive shapes.
func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(1, 1))
	require.ErrorIs(t, matrix.ValidateShape(0, 1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(1, -3), matrix.ErrInvalidDimensions)
	require.NoError(t, matrix.ValidateShape(1, math.MaxInt))
}

// TestValidateShapeOverflow rejects shapes whose element count overflows int.
func TestValidateShapeOverflow(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateShape(math.MaxInt, 2), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(math.MaxInt/2+1, 2), matrix.ErrInvalidDimensions)

	// smallest square side whose element count overflows int
	big := 1 + int(math.Sqrt(float64(math.MaxInt)))
	for _, shape := range [][2]int{{big, big}, {2 * big, 2 * big}} {
		m, err := matrix.Zero(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
		require.Nil(t, m)
	}
	_, err := matrix.Identity(math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestValidateIndex covers the four edges of the grid and the undefined matrix.
func TestValidateIndex(t *testing.T) {
	m := mustMatrix(t, 2, 3, 0, 0, 0, 0, 0, 0)

	require.NoError(t, matrix.ValidateIndex(m, 0, 0))
	require.NoError(t, matrix.ValidateIndex(m, 1, 2))
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		err := matrix.ValidateIndex(m, idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "index %v", idx)
	}
	require.ErrorIs(t, matrix.ValidateIndex(nil, 0, 0), matrix.ErrOutOfRange)
}
