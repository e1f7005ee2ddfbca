// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"fmt"
	"math"

	"github.com/fitdist/go-fitdist/integrate"
	"github.com/fitdist/go-fitdist/model"
	"github.com/fitdist/go-fitdist/sample"
)

// logFloor substitutes for log(expected) when a bin's expected content
// underflows to zero or below, keeping the objective finite while the
// advisory hook reports the condition.
var logFloor = math.Log(math.SmallestNonzeroFloat64)

// BinnedLH is the binned Poisson negative log-likelihood objective
// (dropping parameter-independent terms):
//
//	Σ expected_i - observed_i · log(expected_i)
//
// with expected_i the model integral over bin i. When extended, the
// model is an expected-count density (compose with Extended) and the
// total yield is fit; otherwise per-bin density integrals are scaled
// by the total observed weight and only the shape is fit, which
// assumes the model is normalized over the fit bound.
//
// Weighted data enters through the per-bin weight sums. With the
// WithWeightSquared correction each bin's term is rescaled so its
// information content corresponds to sumw²/sumw2 effective entries;
// reported parameter uncertainties then scale as 1/√(effective N)
// instead of tracking the raw weight sum.
//
// Bins whose expected content is not positive are evaluated with a
// floored logarithm and reported through the WithWarn hook; this is a
// recovered, non-fatal condition.
type BinnedLH struct {
	m        model.Model
	h        *sample.Histogram
	extended bool
	opt      options
}

// NewBinnedLH bins s into bins uniform bins over b (zero b means the
// data bounds) and binds the histogram to m. It fails with *DataError
// on malformed data or an invalid binning.
func NewBinnedLH(m model.Model, s sample.Sample, bins int, b model.Bound, extended bool, opts ...Option) (*BinnedLH, error) {
	h, err := sample.Bin(s, bins, b)
	if err != nil {
		return nil, &DataError{"binnedlh", err.Error()}
	}
	return &BinnedLH{m, h, extended, applyOptions(opts)}, nil
}

func (c *BinnedLH) Names() []string { return c.m.Signature() }

func (c *BinnedLH) ErrorDef() float64 { return ErrorDefLH }

func (c *BinnedLH) Cost(params []float64) float64 {
	scale := 1.0
	if !c.extended {
		scale = c.h.Count()
	}
	sum := 0.0
	floored := 0
	for i := 0; i < c.h.Bins(); i++ {
		obs := c.h.SumW[i]
		exp := scale * expectedCount(c.m, c.h.BinBound(i), c.opt.nodesPerBin, params)
		logExp := math.Log(exp)
		if !(exp > 0) {
			logExp = logFloor
			floored++
			if math.IsNaN(exp) {
				return math.NaN()
			}
		}
		term := exp - obs*logExp
		if c.opt.useW2 && c.h.SumW2[i] > 0 {
			// Rescale so the term carries sumw²/sumw2 effective
			// entries of information instead of sumw.
			term *= c.h.SumW[i] / c.h.SumW2[i]
		}
		sum += term
	}
	if floored > 0 && c.opt.warn != nil {
		c.opt.warn(fmt.Sprintf("binnedlh: %d bin(s) with non-positive expected content, log floored", floored))
	}
	return sum
}

// UnbinnedLH is the unbinned negative log-likelihood objective
//
//	-Σ w_i · log m(x_i)
//
// over individual observations. When extended, the expected-count
// integral of the model over the extended bound is added, turning the
// objective into the extended likelihood; the model must then be an
// expected-count density (compose with Extended). A non-extended model
// must already integrate to 1 over the observation domain — that is
// the caller's responsibility and is not enforced.
type UnbinnedLH struct {
	m        model.Model
	s        sample.Sample
	extended bool
	opt      options
}

// NewUnbinnedLH binds m to the observations in s. It fails with
// *DataError on an invalid sample. For extended fits the
// expected-count integral spans the data bounds unless
// WithExtendedBound overrides it.
func NewUnbinnedLH(m model.Model, s sample.Sample, extended bool, opts ...Option) (*UnbinnedLH, error) {
	if err := s.Check(); err != nil {
		return nil, &DataError{"unbinnedlh", err.Error()}
	}
	opt := applyOptions(opts)
	if extended && !opt.haveExtB {
		opt.extBound.Lo, opt.extBound.Hi = s.Bounds()
	}
	return &UnbinnedLH{m, s, extended, opt}, nil
}

func (c *UnbinnedLH) Names() []string { return c.m.Signature() }

func (c *UnbinnedLH) ErrorDef() float64 { return ErrorDefLH }

func (c *UnbinnedLH) Cost(params []float64) float64 {
	sum := 0.0
	for i, x := range c.s.Xs {
		// log of a non-positive density is NaN or -Inf; both
		// propagate so the minimizer rejects the region.
		sum -= c.s.WeightAt(i) * math.Log(c.m.Eval(x, params))
	}
	if c.extended {
		n, err := integrate.Integrate1D(c.m, c.opt.extBound, c.opt.extNodes, params)
		if err != nil {
			return math.NaN()
		}
		sum += n
	}
	return sum
}
