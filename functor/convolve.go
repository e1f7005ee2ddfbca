// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functor

import (
	"math"

	"github.com/fitdist/go-fitdist/integrate"
	"github.com/fitdist/go-fitdist/model"
)

// Convolved returns the convolution of two models,
//
//	(a ⊛ b)(x) = ∫ a(t) b(x - t) dt
//
// discretized over bound with the given quadrature node count, on the
// merged signature of both components. Equal parameter names are tied;
// Rename the components first to keep them distinct.
//
// Each evaluation costs O(nodes) component evaluations; nodes is fixed
// and small relative to typical dataset sizes, so the direct summation
// is acceptable. bound must cover the support of a, or the convolution
// is truncated.
func Convolved(a, b model.Model, bound model.Bound, nodes int) (model.Model, error) {
	parts, merged, err := mergeComponents("convolve", []model.Model{a, b})
	if err != nil {
		return nil, err
	}
	return &convolved{parts[0], parts[1], merged, bound, integrate.Nodes(nodes)}, nil
}

type convolved struct {
	a, b  part
	names []string
	bound model.Bound
	nodes int
}

func (c *convolved) Signature() []string { return c.names }

func (c *convolved) Eval(x float64, params []float64) float64 {
	pa := model.Gather(make([]float64, len(c.a.idx)), params, c.a.idx)
	pb := model.Gather(make([]float64, len(c.b.idx)), params, c.b.idx)
	integrand := model.Func(func(t float64, _ []float64) float64 {
		return c.a.m.Eval(t, pa) * c.b.m.Eval(x-t, pb)
	})
	v, err := integrate.Integrate1D(integrand, c.bound, c.nodes, nil)
	if err != nil {
		return math.NaN()
	}
	return v
}
