// Package scenario runs YAML-described demonstrations against the vector and
// matrix packages.
//
// A scenario declares named vectors and matrices, then lists steps. Each step
// names an operation, its operands and, for scalar operations, the scalar.
// The Runner executes the steps in order and writes one human-readable line
// (or dump) per step. Dimension mismatches are reported in the output as
// "undefined" results and never stop the run; malformed steps (unknown
// operation, unknown name, wrong operand count) do.
//
//	vectors:
//	  a: [3, 4]
//	steps:
//	  - {op: magnitude, args: [a]}
//	  - {op: normalized, args: [a], into: unit}
//	  - {op: dump, args: [unit]}
package scenario
