// SPDX-License-Identifier: MIT

package vector

import "math"

// ewScalar computes out[i] = f(v[i]). The undefined vector maps to itself.
// Time: O(n). Space: O(n).
func ewScalar(v *Vector, f func(x float32) float32) *Vector {
	if v.IsUndefined() {
		return nil
	}
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return &Vector{data: out}
}

// AddScalar returns v with k added to every element.
func AddScalar(v *Vector, k float32) *Vector {
	return ewScalar(v, func(x float32) float32 { return x + k })
}

// SubScalar returns v with k subtracted from every element.
func SubScalar(v *Vector, k float32) *Vector {
	return ewScalar(v, func(x float32) float32 { return x - k })
}

// Scale returns v with every element multiplied by k.
func Scale(v *Vector, k float32) *Vector {
	return ewScalar(v, func(x float32) float32 { return x * k })
}

// DivScalar returns v with every element divided by k. k == 0 yields ±Inf or NaN.
func DivScalar(v *Vector, k float32) *Vector {
	return ewScalar(v, func(x float32) float32 { return x / k })
}

// Pow returns v with every element raised to the power k.
// Follows math.Pow: a negative base with a non-integer exponent yields NaN.
func Pow(v *Vector, k float32) *Vector {
	e := float64(k)
	return ewScalar(v, func(x float32) float32 { return float32(math.Pow(float64(x), e)) })
}

// scalarInPlace replaces v's storage with r. No-op for the undefined vector.
func (v *Vector) scalarInPlace(r *Vector) {
	if r == nil {
		return
	}
	v.assign(r)
}

// AddScalarInPlace adds k to every element of v.
func (v *Vector) AddScalarInPlace(k float32) { v.scalarInPlace(AddScalar(v, k)) }

// SubScalarInPlace subtracts k from every element of v.
func (v *Vector) SubScalarInPlace(k float32) { v.scalarInPlace(SubScalar(v, k)) }

// ScaleInPlace multiplies every element of v by k.
func (v *Vector) ScaleInPlace(k float32) { v.scalarInPlace(Scale(v, k)) }

// DivScalarInPlace divides every element of v by k.
func (v *Vector) DivScalarInPlace(k float32) { v.scalarInPlace(DivScalar(v, k)) }

// PowInPlace raises every element of v to the power k.
func (v *Vector) PowInPlace(k float32) { v.scalarInPlace(Pow(v, k)) }
