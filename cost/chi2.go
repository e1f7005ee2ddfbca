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

// Chi2Regression is the ordinary least-squares objective
//
//	Σ ((y_i - m(x_i)) / err_i)²
//
// over unbinned (x, y) points with per-point measurement errors.
type Chi2Regression struct {
	m       model.Model
	x, y, e []float64
}

// NewChi2Regression binds m to the data points (x[i], y[i]) with
// measurement errors yerr. A nil yerr means unit errors. It fails with
// *DataError on mismatched lengths, empty data, non-finite values, or
// a zero error.
func NewChi2Regression(m model.Model, x, y, yerr []float64) (*Chi2Regression, error) {
	const op = "chi2regression"
	if len(x) == 0 {
		return nil, &DataError{op, "empty dataset"}
	}
	if len(y) != len(x) {
		return nil, &DataError{op, fmt.Sprintf("len(y) = %d, want %d", len(y), len(x))}
	}
	if yerr != nil && len(yerr) != len(x) {
		return nil, &DataError{op, fmt.Sprintf("len(yerr) = %d, want %d", len(yerr), len(x))}
	}
	for _, vs := range [][]float64{x, y, yerr} {
		if err := checkFinite(op, "data", vs); err != nil {
			return nil, err
		}
	}
	if yerr == nil {
		yerr = make([]float64, len(x))
		for i := range yerr {
			yerr[i] = 1
		}
	} else {
		for _, e := range yerr {
			if e == 0 {
				return nil, &DataError{op, "zero measurement error"}
			}
		}
		yerr = append([]float64(nil), yerr...)
	}
	return &Chi2Regression{m, append([]float64(nil), x...), append([]float64(nil), y...), yerr}, nil
}

func (c *Chi2Regression) Names() []string { return c.m.Signature() }

func (c *Chi2Regression) ErrorDef() float64 { return ErrorDefChi2 }

func (c *Chi2Regression) Cost(params []float64) float64 {
	sum := 0.0
	for i, x := range c.x {
		r := (c.y[i] - c.m.Eval(x, params)) / c.e[i]
		sum += r * r
	}
	return sum
}

// BinnedChi2 is the Neyman chi-square objective over a histogram:
//
//	Σ (observed_i - expected_i)² / observed_i
//
// with expected_i the model integral over bin i. Zero-observed bins
// are skipped (their Poisson error is zero and would blow up the
// objective); chi-square is a poor statistic for sparse histograms, so
// restrict the bound or use BinnedLH for long tails.
//
// When extended, the model is taken to be an expected-count density
// (compose with Extended). Otherwise per-bin density integrals are
// scaled by the total observed weight, which assumes the model is
// normalized over the fit bound.
type BinnedChi2 struct {
	m        model.Model
	h        *sample.Histogram
	extended bool
	opt      options
}

// NewBinnedChi2 bins s into bins uniform bins over b (zero b means the
// data bounds) and binds the histogram to m. It fails with *DataError
// on malformed data or an invalid binning.
func NewBinnedChi2(m model.Model, s sample.Sample, bins int, b model.Bound, extended bool, opts ...Option) (*BinnedChi2, error) {
	h, err := sample.Bin(s, bins, b)
	if err != nil {
		return nil, &DataError{"binnedchi2", err.Error()}
	}
	return &BinnedChi2{m, h, extended, applyOptions(opts)}, nil
}

func (c *BinnedChi2) Names() []string { return c.m.Signature() }

func (c *BinnedChi2) ErrorDef() float64 { return ErrorDefChi2 }

func (c *BinnedChi2) Cost(params []float64) float64 {
	scale := 1.0
	if !c.extended {
		scale = c.h.Count()
	}
	sum := 0.0
	for i := 0; i < c.h.Bins(); i++ {
		obs := c.h.SumW[i]
		if obs == 0 {
			continue
		}
		exp := scale * expectedCount(c.m, c.h.BinBound(i), c.opt.nodesPerBin, params)
		d := exp - obs
		sum += d * d / obs
	}
	return sum
}

// expectedCount integrates m over one bin. A failed integral returns
// NaN so the objective propagates it to the minimizer.
func expectedCount(m model.Model, bin model.Bound, nodes int, params []float64) float64 {
	v, err := integrate.Integrate1D(m, bin, nodes, params)
	if err != nil {
		return math.NaN()
	}
	return v
}
