// SPDX-License-Identifier: MIT

package format

import (
	"math"
	"strconv"
)

// AppendFloat appends the textual form of x to dst according to o.
//
// Behavior highlights:
//   - Values are formatted with bitSize 32, so a float32 prints the same digits it holds.
//   - NaN and ±Inf print as "nan", "inf" and "-inf", matching C printf output.
//
// Complexity: O(digits).
func AppendFloat(dst []byte, x float32, o Options) []byte {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}

	return strconv.AppendFloat(dst, f, o.verb, o.precision, 32)
}

// Float returns x rendered as a string according to opts.
func Float(x float32, opts ...Option) string {
	return string(AppendFloat(nil, x, Gather(opts...)))
}
