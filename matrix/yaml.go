// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const ctxYAML = "UnmarshalYAML"

// Compile-time assertions for YAML conformance.
var (
	_ yaml.Marshaler   = (*Matrix)(nil)
	_ yaml.Unmarshaler = (*Matrix)(nil)
)

// MarshalYAML encodes m as a block sequence of rows, each row a flow sequence.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 0; i < m.Rows(); i++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, x := range m.data[i*m.c : (i+1)*m.c] {
			var item yaml.Node
			if err := item.Encode(x); err != nil {
				return nil, err
			}
			row.Content = append(row.Content, &item)
		}
		node.Content = append(node.Content, row)
	}

	return node, nil
}

// UnmarshalYAML decodes a sequence of equally long rows into m.
// Errors: ErrInvalidDimensions for no rows or an empty first row,
// ErrLiteralCount for ragged rows.
func (m *Matrix) UnmarshalYAML(node *yaml.Node) error {
	var rows [][]float32
	if err := node.Decode(&rows); err != nil {
		return matrixErrorf(ctxYAML, err)
	}
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	flat := make([]float32, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return matrixErrorf(ctxYAML, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrLiteralCount))
		}
		flat = append(flat, row...)
	}
	out, err := New(len(rows), cols, flat...)
	if err != nil {
		return matrixErrorf(ctxYAML, err)
	}
	*m = *out

	return nil
}
