// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// A Bound is a closed interval [Lo, Hi] of the independent variable.
type Bound struct {
	Lo, Hi float64
}

// Width returns Hi - Lo.
func (b Bound) Width() float64 { return b.Hi - b.Lo }

// A Model is a real-valued function of one independent variable x and
// an ordered set of named shape parameters. The independent variable
// is not part of the parameter signature.
//
// Models are immutable once constructed. The params slice passed to
// Eval must have exactly len(Signature()) elements, ordered to match
// Signature.
type Model interface {
	// Eval returns the model value (a density or a count density)
	// at x for the given parameter vector.
	Eval(x float64, params []float64) float64

	// Signature returns the ordered parameter names of this model,
	// excluding the independent variable. The returned slice must
	// not be modified.
	Signature() []string
}

// Integrable is an optional capability a Model may carry: an exact
// definite integral over a bound. When present, the integration
// engine calls it instead of running quadrature and trusts the result
// verbatim; it is an escape hatch for user-supplied formulas and is
// not validated. The nodes argument is the quadrature node count the
// engine would otherwise have used; most implementations ignore it.
type Integrable interface {
	Integral(b Bound, nodes int, params []float64) float64
}

// Func returns a Model that evaluates fn and declares the given
// parameter names. It panics if names contains duplicates, since a
// model signature must bind every name to exactly one call position.
func Func(fn func(x float64, params []float64) float64, names ...string) Model {
	if err := CheckDistinct("func", names); err != nil {
		panic(err)
	}
	return &funcModel{fn, names}
}

type funcModel struct {
	fn    func(float64, []float64) float64
	names []string
}

func (m *funcModel) Eval(x float64, params []float64) float64 { return m.fn(x, params) }

func (m *funcModel) Signature() []string { return m.names }
