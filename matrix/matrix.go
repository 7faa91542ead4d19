// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, constructors & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every *Matrix the sole owner of its buffer (constructors and Clone copy).
//
// Complexity quicksheet:
//   - New/Zero/Identity/Clone: O(r*c); At/Set: O(1); Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/libm/format"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxZero     = "Zero"
	ctxIdentity = "Identity"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxDump     = "Dump"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "|"
	_fmtRowClose = " |\n"
	_fmtSep      = " "
)

// Matrix is a fixed-size rows×cols grid of float32 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value and the nil pointer are the undefined matrix.
type Matrix struct {
	r, c int       // row and column counts
	data []float32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols matrix filled row by row from values.
// Exactly rows*cols values are required.
//
//	m, err := matrix.New(2, 2,
//		1, 2,
//		3, 4)
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//   - ErrLiteralCount when len(values) != rows*cols.
//
// Complexity: Time O(r*c), Space O(r*c).
func New(rows, cols int, values ...float32) (*Matrix, error) {
	data, err := takeLiterals(rows, cols, values)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// MustNew is like New but panics on error.
func MustNew(rows, cols int, values ...float32) *Matrix {
	m, err := New(rows, cols, values...)
	if err != nil {
		panic(err)
	}

	return m
}

// Zero creates a rows×cols matrix with every cell 0.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0.
func Zero(rows, cols int) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxZero, err)
	}

	// make() zero-fills the buffer.
	return &Matrix{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// Identity creates a dim×dim matrix with 1 on the main diagonal and 0 elsewhere.
// Returns ErrInvalidDimensions when dim <= 0.
// Complexity: O(dim²).
func Identity(dim int) (*Matrix, error) {
	m, err := Zero(dim, dim)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < dim; i++ {
		m.data[i*dim+i] = 1 // diagonal offset i*c + i
	}

	return m, nil
}

// Copy returns an independent duplicate of m (nil for the undefined matrix).
func Copy(m *Matrix) *Matrix { return m.Clone() }

// Clone returns a deep copy: same shape and values, new buffer.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m.IsUndefined() {
		return nil
	}
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// Rows returns the row count (0 for the undefined matrix).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for the undefined matrix).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsUndefined reports whether m holds no cells.
func (m *Matrix) IsUndefined() bool { return m.Rows() == 0 || m.Cols() == 0 }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float32, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf("Matrix."+ctxAt, err)
	}

	return m.data[row*m.c+col], nil
}

// Set stores x at (row, col) or returns ErrOutOfRange.
func (m *Matrix) Set(row, col int, x float32) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return matrixErrorf("Matrix."+ctxSet, err)
	}
	m.data[row*m.c+col] = x

	return nil
}

// Row returns a copy of row r or ErrOutOfRange.
func (m *Matrix) Row(r int) ([]float32, error) {
	if err := ValidateIndex(m, r, 0); err != nil {
		return nil, matrixErrorf("Matrix."+ctxRow, err)
	}
	out := make([]float32, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Equal reports whether a and b have the same shape and exactly equal cells.
// Complexity: O(r*c).
func Equal(a, b *Matrix) bool {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return false
	}
	if a.IsUndefined() {
		return true
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Matrix) Equal(o *Matrix) bool { return Equal(m, o) }

// appendText renders one "| e0 e1 ... em |\n" line per row.
func (m *Matrix) appendText(dst []byte, o format.Options) []byte {
	if m.IsUndefined() {
		return dst
	}
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		dst = append(dst, _fmtRowOpen...)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			dst = append(dst, _fmtSep...)
			dst = format.AppendFloat(dst, m.data[base+j], o)
		}
		dst = append(dst, _fmtRowClose...)
	}

	return dst
}

// String renders m with the default format, one line per row, trailing newline included.
func (m *Matrix) String() string {
	return string(m.appendText(nil, format.Defaults()))
}

// Dump writes m to w, one "| e0 e1 ... em |" line per row.
// Elements use fixed-point notation with six fractional digits unless opts say otherwise.
// The undefined matrix writes nothing.
func Dump(w io.Writer, m *Matrix, opts ...format.Option) error {
	if _, err := w.Write(m.appendText(nil, format.Gather(opts...))); err != nil {
		return matrixErrorf(ctxDump, err)
	}

	return nil
}
