package vector_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/libm/vector"
)

// propertyTrials is the number of random cases per property.
const propertyTrials = 200

// randomVector RETURNS a vector of dimension dim with small integer-valued
// elements, so sums and products stay exact in float32.
func randomVector(tb testing.TB, rng *rand.Rand, dim int) *vector.Vector {
	tb.Helper()
	data := make([]float32, dim)
	for i := range data {
		data[i] = float32(rng.Intn(201) - 100)
	}
	v, err := vector.FromSlice(data)
	if err != nil {
		tb.Fatalf("FromSlice(%d): %v", dim, err)
	}

	return v
}

// TestPropertyAdditiveIdentity: add(a,b) == sub(add(a,b), zero).
func TestPropertyAdditiveIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for i := 0; i < propertyTrials; i++ {
		dim := 1 + rng.Intn(8)
		a, b := randomVector(t, rng, dim), randomVector(t, rng, dim)
		zero, err := vector.Zero(dim)
		require.NoError(t, err)

		sum, err := vector.Add(a, b)
		require.NoError(t, err)
		back, err := vector.Sub(sum, zero)
		require.NoError(t, err)
		require.True(t, vector.Equal(sum, back))
	}
}

// TestPropertyMismatchIsUndefined: unequal dimensions always yield dim 0.
func TestPropertyMismatchIsUndefined(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))
	ops := []binaryOp{vector.Add, vector.Sub, vector.Mul, vector.Div}
	for i := 0; i < propertyTrials; i++ {
		da := 1 + rng.Intn(6)
		db := da + 1 + rng.Intn(3)
		a, b := randomVector(t, rng, da), randomVector(t, rng, db)
		for _, op := range ops {
			r, err := op(a, b)
			require.ErrorIs(t, err, vector.ErrDimensionMismatch)
			require.Equal(t, 0, r.Dim())
		}
	}
}

// TestPropertyDotOrthogonalAgree: Orthogonal(a,b) <=> Dot(a,b) == 0 for matching dims.
func TestPropertyDotOrthogonalAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < propertyTrials; i++ {
		dim := 1 + rng.Intn(3)
		a, b := randomVector(t, rng, dim), randomVector(t, rng, dim)
		require.Equal(t, vector.Dot(a, b) == 0, vector.Orthogonal(a, b))
	}

	// dimension 0 matches dimension 0
	for _, pair := range [][2]*vector.Vector{{nil, nil}, {&vector.Vector{}, &vector.Vector{}}, {nil, &vector.Vector{}}} {
		require.Equal(t, vector.Dot(pair[0], pair[1]) == 0, vector.Orthogonal(pair[0], pair[1]))
	}
}

// TestPropertyCopyIndependence: mutating a copy never changes the original.
func TestPropertyCopyIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < propertyTrials; i++ {
		dim := 1 + rng.Intn(8)
		v := randomVector(t, rng, dim)
		orig := v.Elements()

		cp := vector.Copy(v)
		require.True(t, vector.Equal(v, cp))

		cp.ScaleInPlace(3)
		require.NoError(t, cp.Set(rng.Intn(dim), 1e6))
		require.Equal(t, orig, v.Elements())
	}
}

// TestPropertyScalarIdentity: Scale(v, 1) == v.
func TestPropertyScalarIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < propertyTrials; i++ {
		v := randomVector(t, rng, 1+rng.Intn(8))
		require.True(t, vector.Equal(v, vector.Scale(v, 1)))
	}
}
