// SPDX-License-Identifier: MIT

package vector

import "math"

const opCross = "Cross"

// Dot returns the sum of element-wise products of a and b.
// When the dimensions differ the result is 0; this is the defined fallback, not an error.
// Complexity: O(n).
func Dot(a, b *Vector) float32 {
	if a.Dim() != b.Dim() {
		return 0
	}
	var sum float32
	for i := 0; i < a.Dim(); i++ {
		sum += a.data[i] * b.data[i]
	}

	return sum
}

// Orthogonal reports whether a and b share a dimension and have a dot product
// of exactly zero. Two undefined vectors are trivially orthogonal.
func Orthogonal(a, b *Vector) bool {
	if a.Dim() != b.Dim() {
		return false
	}

	return Dot(a, b) == 0
}

// Cross returns the 3D cross product a × b.
// Both operands must have dimension 3, otherwise ErrNotThreeDimensional.
func Cross(a, b *Vector) (*Vector, error) {
	if a.Dim() != 3 || b.Dim() != 3 {
		return nil, vectorErrorf(opCross, ErrNotThreeDimensional)
	}
	x, y := a.data, b.data

	return &Vector{data: []float32{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}}, nil
}

// MagnitudeSquared returns the sum of squared elements (0 for the undefined vector).
func (v *Vector) MagnitudeSquared() float32 { return Dot(v, v) }

// Magnitude returns the Euclidean length of v.
func (v *Vector) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.MagnitudeSquared())))
}

// Normalized returns v divided by its magnitude, a unit vector.
// A zero vector is not special-cased: 0/0 makes every element NaN.
func Normalized(v *Vector) *Vector { return DivScalar(v, v.Magnitude()) }

// NormalizeInPlace divides every element of v by its magnitude.
// See Normalized for the zero-vector behavior.
func (v *Vector) NormalizeInPlace() { v.scalarInPlace(Normalized(v)) }
