// SPDX-License-Identifier: MIT

package vector

import (
	"gopkg.in/yaml.v3"
)

const ctxYAML = "UnmarshalYAML"

// Compile-time assertions for YAML conformance.
var (
	_ yaml.Marshaler   = (*Vector)(nil)
	_ yaml.Unmarshaler = (*Vector)(nil)
)

// MarshalYAML encodes v as a flow sequence of its elements.
// The undefined vector encodes as an empty sequence.
func (v *Vector) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, x := range v.Elements() {
		var item yaml.Node
		if err := item.Encode(x); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &item)
	}

	return node, nil
}

// UnmarshalYAML decodes a sequence of numbers into v, replacing its storage.
// An empty sequence is rejected with ErrEmptyLiteral.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	var values []float32
	if err := node.Decode(&values); err != nil {
		return vectorErrorf(ctxYAML, err)
	}
	w, err := New(values...)
	if err != nil {
		return vectorErrorf(ctxYAML, err)
	}
	v.assign(w)

	return nil
}
