// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"fmt"

	"github.com/fitdist/go-fitdist/model"
)

// SimultaneousFit sums the objectives of several cost functions over a
// single merged parameter vector. Each sub-objective is evaluated on
// its own sub-vector, gathered by name from the merged signature, so
// parameters with equal names across sub-objectives are tied to one
// jointly-fit value (for example one shared width across two samples).
type SimultaneousFit struct {
	subs   []Func
	names  []string
	idx    [][]int
	errdef float64
}

// NewSimultaneousFit merges the given cost functions. All
// sub-objectives must share one error definition — the minimizer
// applies a single scaling constant to the combined objective — so
// mixing chi-square-like and likelihood-like objectives fails with
// *DataError.
func NewSimultaneousFit(subs ...Func) (*SimultaneousFit, error) {
	const op = "simultaneousfit"
	if len(subs) == 0 {
		return nil, &DataError{op, "no sub-objectives"}
	}
	errdef := subs[0].ErrorDef()
	sigs := make([][]string, len(subs))
	for i, sub := range subs {
		if sub.ErrorDef() != errdef {
			return nil, &DataError{op, fmt.Sprintf(
				"mixed error definitions %g and %g", errdef, sub.ErrorDef())}
		}
		sigs[i] = sub.Names()
	}
	merged := model.Merge(sigs...)
	idx := make([][]int, len(subs))
	for i, sig := range sigs {
		idx[i] = model.IndexMap(merged, sig)
	}
	return &SimultaneousFit{subs, merged, idx, errdef}, nil
}

func (c *SimultaneousFit) Names() []string { return c.names }

func (c *SimultaneousFit) ErrorDef() float64 { return c.errdef }

func (c *SimultaneousFit) Cost(params []float64) float64 {
	sum := 0.0
	for i, sub := range c.subs {
		args := model.Gather(make([]float64, len(c.idx[i])), params, c.idx[i])
		sum += sub.Cost(args)
	}
	return sum
}
