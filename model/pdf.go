// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"math"
)

// Gaussian is a Gaussian density with parameters "mean" and "sigma",
// normalized to integrate to 1 over the whole real line. It carries an
// exact erf-based definite integral, so normalization and binned
// expected counts never fall back to quadrature for this model.
type Gaussian struct{}

var gaussianSig = []string{"mean", "sigma"}

func (Gaussian) Signature() []string { return gaussianSig }

func (Gaussian) Eval(x float64, params []float64) float64 {
	mean, sigma := params[0], params[1]
	d := (x - mean) / sigma
	return math.Exp(-d*d/2) / (sigma * math.Sqrt(2*math.Pi))
}

// Integral returns the exact integral of the density over b.
func (Gaussian) Integral(b Bound, _ int, params []float64) float64 {
	mean, sigma := params[0], params[1]
	s := sigma * math.Sqrt2
	return (math.Erf((b.Hi-mean)/s) - math.Erf((b.Lo-mean)/s)) / 2
}

// Polynomial is a polynomial model of fixed order with coefficient
// parameters "c_0" .. "c_n", where c_i multiplies xⁱ. It carries an
// exact definite integral.
type Polynomial struct {
	names []string
}

// NewPolynomial returns a polynomial model of the given order (number
// of coefficients = order+1). It panics if order is negative.
func NewPolynomial(order int) Polynomial {
	if order < 0 {
		panic("model: negative polynomial order")
	}
	names := make([]string, order+1)
	for i := range names {
		names[i] = fmt.Sprintf("c_%d", i)
	}
	return Polynomial{names}
}

func (p Polynomial) Signature() []string { return p.names }

func (p Polynomial) Eval(x float64, params []float64) float64 {
	// Horner evaluation from the highest coefficient down.
	v := 0.0
	for i := len(params) - 1; i >= 0; i-- {
		v = v*x + params[i]
	}
	return v
}

// Integral returns the exact integral of the polynomial over b.
func (p Polynomial) Integral(b Bound, _ int, params []float64) float64 {
	v := 0.0
	for i := len(params) - 1; i >= 0; i-- {
		k := float64(i + 1)
		v += params[i] * (math.Pow(b.Hi, k) - math.Pow(b.Lo, k)) / k
	}
	return v
}
