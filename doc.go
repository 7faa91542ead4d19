// Package libm is a small linear-algebra value library: dense float32
// vectors and matrices with the arithmetic, geometric and comparison
// operations needed for graphics, physics or simple ML code, without a full
// linear-algebra stack.
//
// Everything is organized under a few subpackages:
//
//	vector/   — Vector: construction, element-wise and scalar arithmetic,
//	            dot/cross products, magnitudes, normalization, equality
//	matrix/   — Matrix: literal, zero and identity constructors, copies,
//	            bounds-checked access, textual dump
//	format/   — functional options controlling how dumps render floats
//	scenario/ — YAML-described walk-throughs executed against vector and matrix
//	cmd/libm  — command that runs a scenario and prints the report
//
// Quick example:
//
//	a := vector.MustNew(1, 0, 0)
//	b := vector.MustNew(0, 1, 0)
//	c, _ := vector.Cross(a, b) // [ 0, 0, 1 ]
//
// Incompatible operands never panic: pure operations return
// vector.ErrDimensionMismatch together with the undefined (nil) vector, and
// in-place operations return the same error while leaving the receiver as it
// was.
package libm
