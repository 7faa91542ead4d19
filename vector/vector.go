// SPDX-License-Identifier: MIT

// Package vector - owned storage, constructors & safe accessors.
//
// Purpose:
//   - Keep one contiguous []float32 per *Vector; no two values share a backing array.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Treat nil *Vector as the undefined vector (Dim()==0) on every read path.
//
// Complexity quicksheet:
//   - New/Filled/Zero/FromSlice/Clone: O(n); Dim/At/Set: O(1); Equal: O(n).

package vector

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/libm/format"
	"github.com/katalvlaran/libm/internal/literal"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxFilled    = "Filled"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxDump      = "Dump"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "[ "
	_fmtClose = " ]"
	_fmtSep   = ", "
)

// Vector is a fixed-length ordered sequence of float32 values.
// The zero value and the nil pointer are the undefined vector.
type Vector struct {
	data []float32 // owned storage; len(data) is the dimension
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New builds a vector from literal values, in order.
// Dimension equals the number of values; an empty list is rejected with
// ErrEmptyLiteral. The values are copied.
//
//	v, err := vector.New(2, -3, 1)
func New(values ...float32) (*Vector, error) {
	data, err := literal.Take(literal.Any, values)
	if err != nil {
		if errors.Is(err, literal.ErrEmpty) {
			return nil, vectorErrorf(ctxNew, ErrEmptyLiteral)
		}

		return nil, vectorErrorf(ctxNew, err)
	}

	return &Vector{data: data}, nil
}

// MustNew is like New but panics on error. Intended for literals known to be valid.
func MustNew(values ...float32) *Vector {
	v, err := New(values...)
	if err != nil {
		panic(err)
	}

	return v
}

// FromSlice builds a vector holding a copy of s.
// Returns ErrEmptyLiteral when s is empty.
func FromSlice(s []float32) (*Vector, error) {
	v, err := New(s...)
	if err != nil {
		return nil, vectorErrorf(ctxFromSlice, err)
	}

	return v, nil
}

// Filled returns a vector of dimension dim with every element set to value.
// Returns ErrInvalidDimension when dim <= 0.
// Complexity: O(dim).
func Filled(dim int, value float32) (*Vector, error) {
	if dim <= 0 {
		return nil, vectorErrorf(ctxFilled, ErrInvalidDimension)
	}
	data := make([]float32, dim)
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}

	return &Vector{data: data}, nil
}

// Zero returns the all-zero vector of dimension dim.
func Zero(dim int) (*Vector, error) { return Filled(dim, 0) }

// Uninitialized allocates a vector of dimension dim for the caller to overwrite.
// Go zero-fills allocations, so the contents are all zero; callers must not
// rely on that and should write every element before reading it.
func Uninitialized(dim int) (*Vector, error) { return Zero(dim) }

// Copy returns an independent duplicate of v (nil for the undefined vector).
func Copy(v *Vector) *Vector { return v.Clone() }

// Clone returns a deep copy of v. Mutating the clone never affects v.
// The clone of the undefined vector is nil.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	if v.IsUndefined() {
		return nil
	}
	cp := make([]float32, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// Dim returns the number of elements (0 for the undefined vector).
func (v *Vector) Dim() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// IsUndefined reports whether v is the undefined vector.
func (v *Vector) IsUndefined() bool { return v.Dim() == 0 }

// At returns the element at index i or ErrOutOfRange.
func (v *Vector) At(i int) (float32, error) {
	if i < 0 || i >= v.Dim() {
		return 0, fmt.Errorf("Vector.%s(%d): %w", ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float32) error {
	if i < 0 || i >= v.Dim() {
		return fmt.Errorf("Vector.%s(%d): %w", ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Elements returns a copy of the elements (nil for the undefined vector).
func (v *Vector) Elements() []float32 {
	if v.IsUndefined() {
		return nil
	}
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return out
}

// Release drops the storage; afterwards v is the undefined vector.
func (v *Vector) Release() {
	if v == nil {
		return
	}
	v.data = nil
}

// Equal reports whether a and b have the same dimension and exactly equal
// elements. No tolerance is applied; NaN never equals NaN.
// Different dimensions yield false, never an error.
// Complexity: O(n).
func Equal(a, b *Vector) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < a.Dim(); i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (v *Vector) Equal(w *Vector) bool { return Equal(v, w) }

// appendText renders v as "[ e0, e1, ..., en ]" without a trailing newline.
func (v *Vector) appendText(dst []byte, o format.Options) []byte {
	dst = append(dst, _fmtOpen...)
	n := v.Dim()
	for i := 0; i < n; i++ {
		dst = format.AppendFloat(dst, v.data[i], o)
		if i+1 < n {
			dst = append(dst, _fmtSep...)
		}
	}

	return append(dst, _fmtClose...)
}

// String renders v with the default format, e.g. "[ 1.000000, 2.000000 ]".
func (v *Vector) String() string {
	return string(v.appendText(nil, format.Defaults()))
}

// Dump writes v to w as "[ e0, e1, ..., en ]\n".
// Elements use fixed-point notation with six fractional digits unless opts say otherwise.
func Dump(w io.Writer, v *Vector, opts ...format.Option) error {
	buf := v.appendText(nil, format.Gather(opts...))
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return vectorErrorf(ctxDump, err)
	}

	return nil
}
