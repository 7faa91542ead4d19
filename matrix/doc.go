// Package matrix offers a small dense float32 matrix value type.
//
// The matrix package provides:
//
//   - Constructors: New (row-major literals), Zero and Identity.
//   - Independent copies (Clone, Copy) and exact comparison (Equal).
//   - Bounds-checked accessors (At, Set, Row) that return errors instead of panicking.
//   - A textual dump, one "| e0 e1 ... em |" line per row.
//
// A nil *Matrix is the undefined matrix: Rows() == Cols() == 0.
//
// Matrix arithmetic (addition, multiplication, transpose, inversion) is
// deliberately absent; the type is a container with constructors.
package matrix
