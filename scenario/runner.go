// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/libm/format"
	"github.com/katalvlaran/libm/matrix"
	"github.com/katalvlaran/libm/vector"
)

// ---------- op tables ----------

type (
	pureBinaryFn    func(a, b *vector.Vector) (*vector.Vector, error)
	inPlaceBinaryFn func(v, b *vector.Vector) error
	pureScalarFn    func(v *vector.Vector, k float32) *vector.Vector
	inPlaceScalarFn func(v *vector.Vector, k float32)
)

var pureBinary = map[string]pureBinaryFn{
	"add":   vector.Add,
	"sub":   vector.Sub,
	"mul":   vector.Mul,
	"div":   vector.Div,
	"cross": vector.Cross,
}

var inPlaceBinary = map[string]inPlaceBinaryFn{
	"add_to":   (*vector.Vector).AddInPlace,
	"sub_from": (*vector.Vector).SubInPlace,
	"mul_by":   (*vector.Vector).MulInPlace,
	"div_by":   (*vector.Vector).DivInPlace,
}

var pureScalar = map[string]pureScalarFn{
	"add_scalar": vector.AddScalar,
	"sub_scalar": vector.SubScalar,
	"scale":      vector.Scale,
	"div_scalar": vector.DivScalar,
	"pow":        vector.Pow,
}

var inPlaceScalar = map[string]inPlaceScalarFn{
	"add_scalar_in_place": (*vector.Vector).AddScalarInPlace,
	"sub_scalar_in_place": (*vector.Vector).SubScalarInPlace,
	"scale_in_place":      (*vector.Vector).ScaleInPlace,
	"div_scalar_in_place": (*vector.Vector).DivScalarInPlace,
	"pow_in_place":        (*vector.Vector).PowInPlace,
}

// Runner executes scenario steps against a named environment of values.
// A Runner is not safe for concurrent use.
type Runner struct {
	out      io.Writer
	opts     []format.Option
	vectors  map[string]*vector.Vector
	matrices map[string]*matrix.Matrix
}

// NewRunner returns a Runner writing its report to out, rendering floats with opts.
func NewRunner(out io.Writer, opts ...format.Option) *Runner {
	return &Runner{
		out:      out,
		opts:     opts,
		vectors:  make(map[string]*vector.Vector),
		matrices: make(map[string]*matrix.Matrix),
	}
}

// Vector returns the vector bound to name. An undefined result is bound as nil.
func (r *Runner) Vector(name string) (*vector.Vector, bool) {
	v, ok := r.vectors[name]
	return v, ok
}

// Matrix returns the matrix bound to name.
func (r *Runner) Matrix(name string) (*matrix.Matrix, bool) {
	m, ok := r.matrices[name]
	return m, ok
}

// Declare binds the scenario's vectors and matrices. Values are copied, so
// running a scenario never mutates the decoded document.
func (r *Runner) Declare(s *Scenario) error {
	for _, name := range sortedKeys(s.Vectors) {
		r.vectors[name] = s.Vectors[name].Clone()
	}
	for _, name := range sortedKeys(s.Matrices) {
		m, err := s.Matrices[name].Build()
		if err != nil {
			return fmt.Errorf("scenario: matrix %q: %w", name, err)
		}
		r.matrices[name] = m
	}

	return nil
}

// Run declares s and executes its steps in order, stopping at the first malformed step.
func (r *Runner) Run(s *Scenario) error {
	if err := r.Declare(s); err != nil {
		return err
	}
	for i, st := range s.Steps {
		if err := r.Step(st); err != nil {
			return stepErrorf(i, st.Op, err)
		}
	}

	return nil
}

// Step executes a single step.
func (r *Runner) Step(st Step) error {
	if fn, ok := pureBinary[st.Op]; ok {
		return r.pureBinary(st, fn)
	}
	if fn, ok := inPlaceBinary[st.Op]; ok {
		return r.inPlaceBinary(st, fn)
	}
	if fn, ok := pureScalar[st.Op]; ok {
		return r.pureScalar(st, fn)
	}
	if fn, ok := inPlaceScalar[st.Op]; ok {
		return r.inPlaceScalar(st, fn)
	}

	switch st.Op {
	case "dump":
		return r.dump(st)
	case "equal":
		return r.equal(st)
	case "copy":
		return r.copy(st)
	case "dot", "orthogonal":
		return r.pairMeasure(st)
	case "magnitude", "magnitude_squared":
		return r.measure(st)
	case "normalize":
		return r.normalize(st)
	case "normalized":
		return r.pureUnary(st, vector.Normalized)
	case "dump_matrix":
		return r.dumpMatrix(st)
	case "equal_matrix":
		return r.equalMatrix(st)
	case "copy_matrix":
		return r.copyMatrix(st)
	}

	return fmt.Errorf("%q: %w", st.Op, ErrUnknownOp)
}

// Snapshot writes the current environment as a YAML document.
func (r *Runner) Snapshot(w io.Writer) error {
	doc := struct {
		Vectors  map[string]*vector.Vector `yaml:"vectors,omitempty"`
		Matrices map[string]*matrix.Matrix `yaml:"matrices,omitempty"`
	}{r.vectors, r.matrices}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("scenario: snapshot: %w", err)
	}

	return enc.Close()
}

// ---------- step implementations ----------

func (r *Runner) pureBinary(st Step, fn pureBinaryFn) error {
	a, b, err := r.vectorPair(st)
	if err != nil {
		return err
	}
	res, opErr := fn(a, b)

	return r.report(st, res, opErr)
}

func (r *Runner) inPlaceBinary(st Step, fn inPlaceBinaryFn) error {
	a, b, err := r.vectorPair(st)
	if err != nil {
		return err
	}
	if opErr := fn(a, b); opErr != nil {
		return r.printf("%s %s %s: failed (%v)\n", st.Args[0], st.Op, st.Args[1], opErr)
	}

	return r.dumpVector(st.Args[0], a)
}

func (r *Runner) pureScalar(st Step, fn pureScalarFn) error {
	v, k, err := r.vectorScalar(st)
	if err != nil {
		return err
	}

	return r.report(st, fn(v, k), nil)
}

func (r *Runner) inPlaceScalar(st Step, fn inPlaceScalarFn) error {
	v, k, err := r.vectorScalar(st)
	if err != nil {
		return err
	}
	fn(v, k)

	return r.dumpVector(st.Args[0], v)
}

func (r *Runner) pureUnary(st Step, fn func(*vector.Vector) *vector.Vector) error {
	v, err := r.vectorArg(st)
	if err != nil {
		return err
	}

	return r.report(st, fn(v), nil)
}

func (r *Runner) dump(st Step) error {
	v, err := r.vectorArg(st)
	if err != nil {
		return err
	}

	return r.dumpVector(st.Args[0], v)
}

func (r *Runner) equal(st Step) error {
	a, b, err := r.vectorPair(st)
	if err != nil {
		return err
	}

	return r.printf("%s %s %s\n", st.Args[0], equalsWord(vector.Equal(a, b)), st.Args[1])
}

func (r *Runner) copy(st Step) error {
	v, err := r.vectorArg(st)
	if err != nil {
		return err
	}
	if st.Into == "" {
		return ErrMissingInto
	}
	r.vectors[st.Into] = vector.Copy(v)

	return r.dumpVector(st.Into, r.vectors[st.Into])
}

func (r *Runner) pairMeasure(st Step) error {
	a, b, err := r.vectorPair(st)
	if err != nil {
		return err
	}
	label := callLabel(st)
	if st.Op == "orthogonal" {
		return r.printf("%s = %t\n", label, vector.Orthogonal(a, b))
	}

	return r.printf("%s = %s\n", label, format.Float(vector.Dot(a, b), r.opts...))
}

func (r *Runner) measure(st Step) error {
	v, err := r.vectorArg(st)
	if err != nil {
		return err
	}
	x := v.Magnitude()
	if st.Op == "magnitude_squared" {
		x = v.MagnitudeSquared()
	}

	return r.printf("%s = %s\n", callLabel(st), format.Float(x, r.opts...))
}

func (r *Runner) normalize(st Step) error {
	v, err := r.vectorArg(st)
	if err != nil {
		return err
	}
	v.NormalizeInPlace()

	return r.dumpVector(st.Args[0], v)
}

func (r *Runner) dumpMatrix(st Step) error {
	m, err := r.matrixArg(st)
	if err != nil {
		return err
	}
	if err = r.printf("%s =\n", st.Args[0]); err != nil {
		return err
	}

	return matrix.Dump(r.out, m, r.opts...)
}

func (r *Runner) equalMatrix(st Step) error {
	if len(st.Args) != 2 {
		return ErrArity
	}
	a, err := r.lookupMatrix(st.Args[0])
	if err != nil {
		return err
	}
	b, err := r.lookupMatrix(st.Args[1])
	if err != nil {
		return err
	}

	return r.printf("%s %s %s\n", st.Args[0], equalsWord(matrix.Equal(a, b)), st.Args[1])
}

func (r *Runner) copyMatrix(st Step) error {
	m, err := r.matrixArg(st)
	if err != nil {
		return err
	}
	if st.Into == "" {
		return ErrMissingInto
	}
	r.matrices[st.Into] = matrix.Copy(m)

	return r.printf("%s = copy of %s\n", st.Into, st.Args[0])
}

// ---------- helpers ----------

// report stores res under st.Into (when set) and prints it, or prints the
// undefined result with its cause.
func (r *Runner) report(st Step, res *vector.Vector, opErr error) error {
	label := st.Into
	if label == "" {
		label = callLabel(st)
	}
	if st.Into != "" {
		r.vectors[st.Into] = res
	}
	if opErr != nil {
		return r.printf("%s = undefined (%v)\n", label, opErr)
	}
	if res.IsUndefined() {
		return r.printf("%s = undefined\n", label)
	}

	return r.dumpVector(label, res)
}

func (r *Runner) dumpVector(label string, v *vector.Vector) error {
	if err := r.printf("%s = ", label); err != nil {
		return err
	}

	return vector.Dump(r.out, v, r.opts...)
}

func (r *Runner) printf(f string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.out, f, args...)
	return err
}

func (r *Runner) lookupVector(name string) (*vector.Vector, error) {
	v, ok := r.vectors[name]
	if !ok {
		return nil, fmt.Errorf("vector %q: %w", name, ErrUnknownName)
	}

	return v, nil
}

func (r *Runner) lookupMatrix(name string) (*matrix.Matrix, error) {
	m, ok := r.matrices[name]
	if !ok {
		return nil, fmt.Errorf("matrix %q: %w", name, ErrUnknownName)
	}

	return m, nil
}

func (r *Runner) vectorArg(st Step) (*vector.Vector, error) {
	if len(st.Args) != 1 {
		return nil, ErrArity
	}

	return r.lookupVector(st.Args[0])
}

func (r *Runner) vectorPair(st Step) (*vector.Vector, *vector.Vector, error) {
	if len(st.Args) != 2 {
		return nil, nil, ErrArity
	}
	a, err := r.lookupVector(st.Args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := r.lookupVector(st.Args[1])
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (r *Runner) vectorScalar(st Step) (*vector.Vector, float32, error) {
	v, err := r.vectorArg(st)
	if err != nil {
		return nil, 0, err
	}
	if st.Scalar == nil {
		return nil, 0, ErrMissingScalar
	}

	return v, *st.Scalar, nil
}

func (r *Runner) matrixArg(st Step) (*matrix.Matrix, error) {
	if len(st.Args) != 1 {
		return nil, ErrArity
	}

	return r.lookupMatrix(st.Args[0])
}

func callLabel(st Step) string {
	return fmt.Sprintf("%s(%s)", st.Op, strings.Join(st.Args, ", "))
}

func equalsWord(eq bool) string {
	if eq {
		return "equals"
	}

	return "does not equal"
}

// sortedKeys returns map keys in ascending order so declarations are deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
