// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cost evaluates scalar fit objectives — chi-square and
// binned/unbinned likelihoods — over a model and a dataset, in the
// form an external gradient-free minimizer consumes.
package cost // import "github.com/fitdist/go-fitdist/cost"

import (
	"math"

	"github.com/fitdist/go-fitdist/model"
)

// Error-definition constants: the objective increase corresponding to
// one standard deviation, by which a minimizer scales confidence
// intervals.
const (
	ErrorDefChi2 = 1.0
	ErrorDefLH   = 0.5
)

// A Func is a cost function as seen by a minimizer: a scalar objective
// over an ordered parameter vector, to be minimized. Implementations
// are stateless across evaluations (except for integration memos) and
// safe to call repeatedly with different vectors.
//
// A non-finite objective (from a degenerate parameter region) is
// returned as-is, never clamped, so the minimizer can back off or
// reject the point.
type Func interface {
	// Cost returns the objective for the given parameter vector,
	// ordered per Names.
	Cost(params []float64) float64

	// Names returns the ordered parameter names of the objective.
	// The returned slice must not be modified.
	Names() []string

	// ErrorDef returns the error-definition constant of the
	// objective: ErrorDefChi2 for chi-square-like objectives,
	// ErrorDefLH for likelihood-like ones.
	ErrorDef() float64
}

// A DataError reports malformed input rejected at construction time:
// mismatched lengths, empty datasets, non-finite values, or
// incompatible sub-objectives. Construction either succeeds completely
// or fails with no partial state.
type DataError struct {
	Op  string // the constructor that failed
	Msg string
}

func (e *DataError) Error() string { return "cost: " + e.Op + ": " + e.Msg }

// An Option adjusts evaluator construction.
type Option func(*options)

type options struct {
	nodesPerBin int
	extNodes    int
	extBound    model.Bound
	haveExtB    bool
	useW2       bool
	warn        func(string)
}

// Per-bin expected counts integrate the model across each bin with a
// small fixed node count; bins are narrow, so a single Simpson 3/8
// panel is plenty.
const defaultNodesPerBin = 3

func applyOptions(opts []Option) options {
	o := options{nodesPerBin: defaultNodesPerBin, extNodes: 300}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNodesPerBin sets the quadrature node count used for each per-bin
// model integral (default 3). Models with an analytic integral ignore
// it.
func WithNodesPerBin(n int) Option {
	return func(o *options) { o.nodesPerBin = n }
}

// WithWeightSquared enables the effective-sample-size correction for
// weighted binned likelihoods: each bin's likelihood term is rescaled
// so its information content matches sumw²/sumw2 effective entries,
// inflating reported uncertainties to reflect the reduced statistical
// power of downweighted data.
func WithWeightSquared() Option {
	return func(o *options) { o.useW2 = true }
}

// WithExtendedBound sets the bound and node count for the
// expected-count integral of an extended unbinned likelihood. The
// default is the bounds of the data with 300 nodes.
func WithExtendedBound(b model.Bound, nodes int) Option {
	return func(o *options) { o.extBound, o.extNodes, o.haveExtB = b, nodes, true }
}

// WithWarn installs an advisory hook for recoverable evaluation
// conditions, such as bins whose expected content underflows to zero.
// The default is silent.
func WithWarn(fn func(msg string)) Option {
	return func(o *options) { o.warn = fn }
}

func checkFinite(op string, name string, xs []float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &DataError{op, "non-finite value in " + name}
		}
	}
	return nil
}
