// SPDX-License-Identifier: MIT

// Package format: functional configuration for the textual dumps of vectors
// and matrices. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather, which resolves a list of options into effective Options.
//
// Design goals:
//   - Deterministic output: no global state, no locale dependence.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Defaults reproduce the C-style "%f" rendering (six fractional digits).
package format

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of digits after the decimal point for 'f' and 'e',
	// or the number of significant digits for 'g'.
	DefaultPrecision = 6

	// DefaultVerb selects fixed-point notation.
	DefaultVerb byte = 'f'
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "format: WithPrecision: precision must be non-negative"
	panicVerbInvalid      = "format: WithVerb: verb must be one of 'f', 'e', 'g'"
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessors.
type Options struct {
	precision int  // >= 0; DefaultPrecision
	verb      byte // 'f' | 'e' | 'g'; DefaultVerb
}

// Precision returns the configured precision.
func (o Options) Precision() int { return o.precision }

// Verb returns the configured strconv format verb.
func (o Options) Verb() byte { return o.verb }

// WithPrecision sets the number of digits rendered per element.
// Panics when n < 0.
func WithPrecision(n int) Option {
	if n < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = n }
}

// WithVerb sets the float notation: 'f' (fixed), 'e' (exponent) or 'g' (shortest).
// Panics on any other verb.
func WithVerb(verb byte) Option {
	switch verb {
	case 'f', 'e', 'g':
	default:
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// Defaults returns the options used when no Option is supplied.
func Defaults() Options {
	return Options{precision: DefaultPrecision, verb: DefaultVerb}
}

// Gather applies user options over Defaults in order.
// Complexity: O(len(user)).
func Gather(user ...Option) Options {
	o := Defaults()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
