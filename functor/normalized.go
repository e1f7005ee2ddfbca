// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functor

import (
	"math"
	"sync"

	"github.com/fitdist/go-fitdist/integrate"
	"github.com/fitdist/go-fitdist/model"
)

// Normalized returns a model whose value is m(x, params) divided by
// the integral of m over bound with the given quadrature node count,
// i.e. a density that integrates to 1 over bound (up to quadrature
// tolerance). The signature is unchanged.
//
// The normalization integral depends only on the parameter vector, not
// on x, and a minimizer evaluates the model at many x for one vector
// per step. The last (vector, integral) pair is therefore memoized;
// recomputing on a changed vector is always safe, so the memo needs no
// invalidation. A failed or zero integral makes Eval return NaN, which
// propagates into the objective for the minimizer to reject.
func Normalized(m model.Model, bound model.Bound, nodes int) model.Model {
	return &normalized{base: m, bound: bound, nodes: integrate.Nodes(nodes)}
}

type normalized struct {
	base  model.Model
	bound model.Bound
	nodes int

	mu       sync.Mutex
	lastOK   bool
	lastP    []float64
	lastNorm float64
}

func (n *normalized) Signature() []string { return n.base.Signature() }

func (n *normalized) Eval(x float64, params []float64) float64 {
	norm, ok := n.norm(params)
	if !ok {
		return math.NaN()
	}
	return n.base.Eval(x, params) / norm
}

func (n *normalized) norm(params []float64) (float64, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.lastOK && sameVector(n.lastP, params) {
		return n.lastNorm, true
	}
	v, err := integrate.Integrate1D(n.base, n.bound, n.nodes, params)
	if err != nil || v == 0 {
		n.lastOK = false
		return 0, false
	}
	n.lastP = append(n.lastP[:0], params...)
	n.lastNorm = v
	n.lastOK = true
	return v, true
}

func sameVector(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
