// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample holds observation datasets for fitting: weighted
// unbinned samples and uniform-bin histograms.
package sample // import "github.com/fitdist/go-fitdist/sample"

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// A Sample is an ordered sequence of observations of the independent
// variable, with optional per-observation weights. A nil Weights slice
// means unit weights. Samples are read-only after construction and may
// be aliased freely across cost functions.
type Sample struct {
	Xs      []float64
	Weights []float64
}

var (
	errEmpty     = errors.New("sample: empty sample")
	errMismatch  = errors.New("sample: len(Xs) != len(Weights)")
	errNonFinite = errors.New("sample: non-finite observation or weight")
)

// Check validates the sample: non-empty, weights (if any) parallel to
// observations, and every value finite.
func (s Sample) Check() error {
	if len(s.Xs) == 0 {
		return errEmpty
	}
	if s.Weights != nil && len(s.Weights) != len(s.Xs) {
		return errMismatch
	}
	for _, x := range s.Xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errNonFinite
		}
	}
	for _, w := range s.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return errNonFinite
		}
	}
	return nil
}

// WeightAt returns the weight of observation i (1 for unweighted
// samples).
func (s Sample) WeightAt(i int) float64 {
	if s.Weights == nil {
		return 1
	}
	return s.Weights[i]
}

// Weight returns the total weight of the sample: the number of
// observations for unweighted samples, the sum of weights otherwise.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	t := 0.0
	for _, w := range s.Weights {
		t += w
	}
	return t
}

// Bounds returns the smallest and largest observation.
func (s Sample) Bounds() (min, max float64) {
	min, _ = stats.Min(s.Xs)
	max, _ = stats.Max(s.Xs)
	return
}

// Mean returns the weighted mean of the sample.
func (s Sample) Mean() float64 {
	if s.Weights == nil {
		m, _ := stats.Mean(s.Xs)
		return m
	}
	sum, wsum := 0.0, 0.0
	for i, x := range s.Xs {
		sum += s.Weights[i] * x
		wsum += s.Weights[i]
	}
	return sum / wsum
}

// StdDev returns the weighted standard deviation of the sample.
func (s Sample) StdDev() float64 {
	if s.Weights == nil {
		sd, _ := stats.StandardDeviationSample(s.Xs)
		return sd
	}
	mean := s.Mean()
	sum, wsum := 0.0, 0.0
	for i, x := range s.Xs {
		d := x - mean
		sum += s.Weights[i] * d * d
		wsum += s.Weights[i]
	}
	return math.Sqrt(sum / wsum)
}
