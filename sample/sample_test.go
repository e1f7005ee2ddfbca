// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdist/go-fitdist/model"
)

func boundOf(lo, hi float64) model.Bound { return model.Bound{Lo: lo, Hi: hi} }

func TestCheck(t *testing.T) {
	assert.Error(t, Sample{}.Check())
	assert.Error(t, Sample{Xs: []float64{1, 2}, Weights: []float64{1}}.Check())
	assert.Error(t, Sample{Xs: []float64{1, math.NaN()}}.Check())
	assert.Error(t, Sample{Xs: []float64{1}, Weights: []float64{math.Inf(1)}}.Check())
	assert.NoError(t, Sample{Xs: []float64{1, 2}}.Check())
	assert.NoError(t, Sample{Xs: []float64{1, 2}, Weights: []float64{0.5, 2}}.Check())
}

func TestWeight(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3}}
	assert.Equal(t, 3.0, s.Weight())
	assert.Equal(t, 1.0, s.WeightAt(1))

	w := Sample{Xs: []float64{1, 2, 3}, Weights: []float64{0.1, 0.1, 0.3}}
	assert.InDelta(t, 0.5, w.Weight(), 1e-12)
	assert.Equal(t, 0.3, w.WeightAt(2))
}

func TestMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	assert.InDelta(t, 5, s.Mean(), 1e-12)

	lo, hi := s.Bounds()
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 9.0, hi)

	// Uniform weights leave the weighted mean unchanged.
	w := Sample{Xs: s.Xs, Weights: []float64{2, 2, 2, 2, 2, 2, 2, 2}}
	assert.InDelta(t, 5, w.Mean(), 1e-12)
	// Weighted standard deviation of the population above is 2.
	assert.InDelta(t, 2, w.StdDev(), 1e-12)
}

func TestBin(t *testing.T) {
	s := Sample{Xs: []float64{0.5, 1.5, 1.6, 2.5, 3.5, 9}}
	h, err := Bin(s, 4, boundOf(0, 4))
	require.NoError(t, err)

	assert.Equal(t, 4, h.Bins())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, h.Edges)
	assert.Equal(t, []float64{1, 2, 1, 1}, h.SumW) // 9 overflows and is dropped
	assert.Equal(t, h.SumW, h.SumW2)               // unweighted
	assert.InDelta(t, 5, h.Count(), 1e-12)
	assert.InDelta(t, 0.5, h.Center(0), 1e-12)
	assert.Equal(t, boundOf(1, 2), h.BinBound(1))
}

func TestBinUpperEdge(t *testing.T) {
	s := Sample{Xs: []float64{4}}
	h, err := Bin(s, 4, boundOf(0, 4))
	require.NoError(t, err)
	// The upper bound lands in the last bin, not overflow.
	assert.Equal(t, []float64{0, 0, 0, 1}, h.SumW)
}

func TestBinWeighted(t *testing.T) {
	s := Sample{Xs: []float64{0.5, 0.6, 1.5}, Weights: []float64{0.1, 0.3, 2}}
	h, err := Bin(s, 2, boundOf(0, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0.4, h.SumW[0], 1e-12)
	assert.InDelta(t, 0.1, h.SumW2[0], 1e-12) // 0.01 + 0.09
	assert.InDelta(t, 2, h.SumW[1], 1e-12)
	assert.InDelta(t, 4, h.SumW2[1], 1e-12)
}

func TestBinDefaultBound(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3}}
	h, err := Bin(s, 2, boundOf(0, 0))
	require.NoError(t, err)
	assert.Equal(t, boundOf(1, 3), h.Bound())
	assert.InDelta(t, 3, h.Count(), 1e-12)
}

func TestBinErrors(t *testing.T) {
	s := Sample{Xs: []float64{1, 2}}
	_, err := Bin(s, 0, boundOf(0, 1))
	assert.Error(t, err)
	_, err = Bin(s, 10, boundOf(1, 1))
	assert.Error(t, err)
	_, err = Bin(Sample{}, 10, boundOf(0, 1))
	assert.Error(t, err)
}
