// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit drives a cost function through an external gradient-free
// minimizer (gonum's Nelder-Mead) and estimates parameter errors from
// the curvature at the minimum. Any minimizer that understands the
// cost.Func contract can replace it; this package is the reference
// glue, not part of the evaluator core.
package fit // import "github.com/fitdist/go-fitdist/fit"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/fitdist/go-fitdist/cost"
)

// A Result holds fitted parameter values and their estimated standard
// errors, ordered per Names.
type Result struct {
	Names []string
	X     []float64
	Err   []float64
	Cost  float64

	Status optimize.Status
}

// Value returns the fitted value of the named parameter. It panics on
// an unknown name.
func (r *Result) Value(name string) float64 { return r.X[r.index(name)] }

// Error returns the estimated standard error of the named parameter.
// It panics on an unknown name.
func (r *Result) Error(name string) float64 { return r.Err[r.index(name)] }

func (r *Result) index(name string) int {
	for i, n := range r.Names {
		if n == name {
			return i
		}
	}
	panic(fmt.Sprintf("fit: unknown parameter %q", name))
}

// An Option adjusts the minimization.
type Option func(*config)

type config struct {
	maxIter int
	absTol  float64
}

// MaxIter caps the number of major iterations (default 10000).
func MaxIter(n int) Option { return func(c *config) { c.maxIter = n } }

// Tol sets the absolute function-convergence tolerance (default 1e-9).
func Tol(tol float64) Option { return func(c *config) { c.absTol = tol } }

// Run minimizes f starting from the named start values. Parameters
// missing from start begin at 0; give every parameter a sensible start
// value, since scale parameters starting at 0 rarely recover. Unknown
// names in start are rejected.
//
// On success the result carries the fitted vector and standard errors
// computed from a finite-difference Hessian H at the minimum as
// sqrt(2·errordef·(H⁻¹)_ii), using the error definition the cost
// function exposes so chi-square and likelihood objectives scale
// consistently.
func Run(f cost.Func, start map[string]float64, opts ...Option) (*Result, error) {
	cfg := config{maxIter: 10000, absTol: 1e-9}
	for _, opt := range opts {
		opt(&cfg)
	}

	names := f.Names()
	x0 := make([]float64, len(names))
	for i, n := range names {
		x0[i] = start[n]
	}
	for n := range start {
		if !contains(names, n) {
			return nil, fmt.Errorf("fit: start value for unknown parameter %q", n)
		}
	}

	problem := optimize.Problem{Func: f.Cost}
	settings := &optimize.Settings{
		MajorIterations: cfg.maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.absTol,
			Iterations: 100,
		},
	}
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	return &Result{
		Names:  names,
		X:      res.X,
		Err:    hessianErrors(f, res.X),
		Cost:   res.F,
		Status: res.Status,
	}, nil
}

// hessianErrors estimates per-parameter standard errors from the
// inverse Hessian at x. If the Hessian is not positive definite the
// full covariance is unavailable and the diagonal curvature is used
// instead; parameters with non-positive curvature get NaN errors.
func hessianErrors(f cost.Func, x []float64) []float64 {
	n := len(x)
	scale := 2 * f.ErrorDef()
	hess := mat.NewSymDense(n, nil)
	fd.Hessian(hess, f.Cost, x, nil)

	errs := make([]float64, n)
	var chol mat.Cholesky
	if chol.Factorize(hess) {
		var cov mat.SymDense
		if err := chol.InverseTo(&cov); err == nil {
			for i := range errs {
				errs[i] = math.Sqrt(scale * cov.At(i, i))
			}
			return errs
		}
	}
	for i := range errs {
		if h := hess.At(i, i); h > 0 {
			errs[i] = math.Sqrt(scale / h)
		} else {
			errs[i] = math.NaN()
		}
	}
	return errs
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
