// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/libm/matrix"
	"github.com/katalvlaran/libm/vector"
)

//go:embed default.yaml
var defaultScenario []byte

// Scenario is the decoded form of a scenario document.
type Scenario struct {
	Name     string                    `yaml:"name"`
	Vectors  map[string]*vector.Vector `yaml:"vectors"`
	Matrices map[string]MatrixSpec     `yaml:"matrices"`
	Steps    []Step                    `yaml:"steps"`
}

// MatrixSpec declares a matrix. Exactly one of Identity, Zero, Values or Grid is set.
// Rows and Cols belong to Zero and Values only.
//   - Identity: dimension of an identity matrix.
//   - Zero: a Rows×Cols zero matrix.
//   - Values: Rows×Cols literals, row-major.
//   - Grid: a sequence of rows.
type MatrixSpec struct {
	Rows     int            `yaml:"rows"`
	Cols     int            `yaml:"cols"`
	Values   []float32      `yaml:"values"`
	Identity int            `yaml:"identity"`
	Zero     bool           `yaml:"zero"`
	Grid     *matrix.Matrix `yaml:"grid"`
}

// Step is one operation. Args name operands; Into names the stored result.
type Step struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Scalar *float32 `yaml:"scalar"`
	Into   string   `yaml:"into"`
}

// Build constructs the matrix described by s.
func (s MatrixSpec) Build() (*matrix.Matrix, error) {
	set := 0
	if s.Identity != 0 {
		set++
	}
	if s.Zero {
		set++
	}
	if s.Values != nil {
		set++
	}
	if s.Grid != nil {
		set++
	}
	if set != 1 {
		return nil, ErrBadMatrixSpec
	}
	if (s.Identity != 0 || s.Grid != nil) && (s.Rows != 0 || s.Cols != 0) {
		return nil, ErrBadMatrixSpec
	}

	switch {
	case s.Identity != 0:
		return matrix.Identity(s.Identity)
	case s.Zero:
		return matrix.Zero(s.Rows, s.Cols)
	case s.Values != nil:
		return matrix.New(s.Rows, s.Cols, s.Values...)
	default:
		return s.Grid.Clone(), nil
	}
}

// Load decodes a scenario from r. Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil // empty document: nothing to do
		}

		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return &s, nil
}

// Parse decodes a scenario from b.
func Parse(b []byte) (*Scenario, error) { return Load(bytes.NewReader(b)) }

// Default returns the embedded walk-through scenario.
func Default() *Scenario {
	s, err := Parse(defaultScenario)
	if err != nil {
		panic(err) // embedded document is validated by tests
	}

	return s
}
