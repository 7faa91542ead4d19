// Package vector provides a dense, owned, fixed-length vector of float32
// values with element-wise, scalar and geometric operations.
//
// The package offers:
//
//   - Construction from literals (New), fills (Filled, Zero, Uninitialized)
//     and caller slices (FromSlice); every constructor copies its input.
//   - Pure operations (Add, Sub, Mul, Div, Scale, Pow, Cross, Normalized, …)
//     that return a fresh *Vector, and in-place methods (AddInPlace,
//     ScaleInPlace, NormalizeInPlace, …) that replace the receiver's storage.
//   - Exact comparison (Equal), the dot product, magnitudes and an
//     orthogonality test.
//
// A nil *Vector is the undefined vector: Dim() == 0 and it holds no elements.
// Pure binary operations on incompatible operands return (nil,
// ErrDimensionMismatch); in-place forms return the same error and leave the
// receiver unchanged. Floating-point edge cases (division by zero, a negative
// base raised to a fractional power, normalizing a zero vector) are never
// errors: they produce ±Inf or NaN exactly as IEEE-754 arithmetic does.
//
// Values are not safe for concurrent mutation; callers serialize access to a
// given *Vector.
package vector
