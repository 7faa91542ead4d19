// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Element-wise binary arithmetic between two vectors of equal dimension.
//   - One private kernel (ewBinary) carries the loop; Add/Sub/Mul/Div are thin wrappers.
//   - In-place methods reuse the pure form and then move the result into the receiver,
//     so a failed call never leaves the receiver half-updated.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; one output allocation per pure call.
//   - Division performs no zero check (IEEE-754 ±Inf / NaN).

package vector

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// ewBinary computes out[i] = f(a[i], b[i]).
// Returns ErrDimensionMismatch when dimensions differ and ErrUndefined when
// both operands are undefined.
// Time: O(n). Space: O(n).
func ewBinary(tag string, a, b *Vector, f func(x, y float32) float32) (*Vector, error) {
	if a.Dim() != b.Dim() {
		return nil, vectorErrorf(tag, ErrDimensionMismatch)
	}
	if a.IsUndefined() {
		return nil, vectorErrorf(tag, ErrUndefined)
	}
	out := make([]float32, len(a.data))
	for i := range out {
		out[i] = f(a.data[i], b.data[i])
	}

	return &Vector{data: out}, nil
}

// assign moves r's storage into v. r must be a fresh result nobody else holds.
func (v *Vector) assign(r *Vector) { v.data = r.data }

// Add returns a + b element-wise.
func Add(a, b *Vector) (*Vector, error) {
	return ewBinary(opAdd, a, b, func(x, y float32) float32 { return x + y })
}

// Sub returns a - b element-wise.
func Sub(a, b *Vector) (*Vector, error) {
	return ewBinary(opSub, a, b, func(x, y float32) float32 { return x - y })
}

// Mul returns the element-wise (Hadamard) product of a and b.
func Mul(a, b *Vector) (*Vector, error) {
	return ewBinary(opMul, a, b, func(x, y float32) float32 { return x * y })
}

// Div returns a / b element-wise. Zero divisors yield ±Inf or NaN.
func Div(a, b *Vector) (*Vector, error) {
	return ewBinary(opDiv, a, b, func(x, y float32) float32 { return x / y })
}

// inPlace runs a pure binary op and stores its result in v on success.
func (v *Vector) inPlace(op func(a, b *Vector) (*Vector, error), b *Vector) error {
	r, err := op(v, b)
	if err != nil {
		return err
	}
	v.assign(r)

	return nil
}

// AddInPlace sets v = v + b. On error v is left unchanged.
func (v *Vector) AddInPlace(b *Vector) error { return v.inPlace(Add, b) }

// SubInPlace sets v = v - b. On error v is left unchanged.
func (v *Vector) SubInPlace(b *Vector) error { return v.inPlace(Sub, b) }

// MulInPlace sets v = v ⊙ b. On error v is left unchanged.
func (v *Vector) MulInPlace(b *Vector) error { return v.inPlace(Mul, b) }

// DivInPlace sets v = v / b. On error v is left unchanged.
func (v *Vector) DivInPlace(b *Vector) error { return v.inPlace(Div, b) }
