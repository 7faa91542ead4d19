package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/libm/vector"
)

// TestDot covers the dot product and its zero fallback on mismatch.
func TestDot(t *testing.T) {
	a := vector.MustNew(1, 2, 3)
	b := vector.MustNew(4, -5, 6)
	require.Equal(t, float32(12), vector.Dot(a, b)) // 4 - 10 + 18

	require.Equal(t, float32(0), vector.Dot(a, vector.MustNew(1, 2)))
	require.Equal(t, float32(0), vector.Dot(nil, a))
	require.Equal(t, float32(0), vector.Dot(nil, nil))
}

// TestOrthogonal checks agreement with Dot and the mismatch/undefined cases.
func TestOrthogonal(t *testing.T) {
	x := vector.MustNew(1, 0, 0)
	y := vector.MustNew(0, 1, 0)
	require.True(t, vector.Orthogonal(x, y))
	require.False(t, vector.Orthogonal(x, x))

	// mismatched dimensions are never orthogonal, even though Dot falls back to 0
	require.Equal(t, float32(0), vector.Dot(x, vector.MustNew(0, 1)))
	require.False(t, vector.Orthogonal(x, vector.MustNew(0, 1)))

	// two dimension-0 operands share a dimension and have a zero dot product
	require.True(t, vector.Orthogonal(nil, nil))
	require.True(t, vector.Orthogonal(&vector.Vector{}, nil))
	require.False(t, vector.Orthogonal(nil, x))
}

// TestCross covers the standard basis and a general case.
func TestCross(t *testing.T) {
	r, err := vector.Cross(vector.MustNew(1, 0, 0), vector.MustNew(0, 1, 0))
	require.NoError(t, err)
	require.True(t, vector.Equal(vector.MustNew(0, 0, 1), r))

	r, err = vector.Cross(vector.MustNew(2, 3, 4), vector.MustNew(5, 6, 7))
	require.NoError(t, err)
	// (3*7-4*6, 4*5-2*7, 2*6-3*5)
	require.Equal(t, []float32{-3, 6, -3}, r.Elements())

	// anti-commutativity
	r2, err := vector.Cross(vector.MustNew(5, 6, 7), vector.MustNew(2, 3, 4))
	require.NoError(t, err)
	require.Equal(t, []float32{3, -6, 3}, r2.Elements())
}

// TestCrossRequiresThreeDimensions ensures any other dimension yields the undefined vector.
func TestCrossRequiresThreeDimensions(t *testing.T) {
	cases := []struct {
		name string
		a, b *vector.Vector
	}{
		{"2d", vector.MustNew(1, 0), vector.MustNew(0, 1)},
		{"4d", vector.MustNew(1, 0, 0, 0), vector.MustNew(0, 1, 0, 0)},
		{"mixed", vector.MustNew(1, 0, 0), vector.MustNew(0, 1)},
		{"undefined", nil, vector.MustNew(0, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := vector.Cross(tc.a, tc.b)
			require.ErrorIs(t, err, vector.ErrNotThreeDimensional)
			require.True(t, r.IsUndefined())
		})
	}
}

// TestMagnitude covers the 3-4-5 triangle and the squared form.
func TestMagnitude(t *testing.T) {
	v := vector.MustNew(3, 4)
	require.Equal(t, float32(25), v.MagnitudeSquared())
	require.Equal(t, float32(5), v.Magnitude())

	var undefined *vector.Vector
	require.Equal(t, float32(0), undefined.Magnitude())
}

// TestNormalize ensures normalization divides by the magnitude, not its square.
func TestNormalize(t *testing.T) {
	v := vector.MustNew(3, 4)
	n := vector.Normalized(v)
	require.Equal(t, []float32{0.6, 0.8}, n.Elements())
	require.InDelta(t, 1.0, n.Magnitude(), 1e-6)
	require.Equal(t, []float32{3, 4}, v.Elements()) // pure form leaves v alone

	v.NormalizeInPlace()
	require.True(t, vector.Equal(n, v))
}

// TestNormalizeZeroVector documents the 0/0 behavior: NaN elements, no panic.
func TestNormalizeZeroVector(t *testing.T) {
	z, err := vector.Zero(3)
	require.NoError(t, err)

	var n *vector.Vector
	require.NotPanics(t, func() { n = vector.Normalized(z) })
	require.Equal(t, 3, n.Dim())
	for _, x := range n.Elements() {
		assert.True(t, math.IsNaN(float64(x)))
	}

	z.NormalizeInPlace()
	for _, x := range z.Elements() {
		assert.True(t, math.IsNaN(float64(x)))
	}
}
