// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdist/go-fitdist/functor"
	"github.com/fitdist/go-fitdist/model"
	"github.com/fitdist/go-fitdist/sample"
)

func TestSimultaneousFitTiedParameter(t *testing.T) {
	// Two unbinned likelihoods over different samples share "sigma":
	// the merged signature ties it to one fit parameter.
	g1, err := functor.Rename(model.Gaussian{}, []string{"mean2", "sigma"})
	require.NoError(t, err)

	lh1, err := NewUnbinnedLH(g1, sample.Sample{Xs: []float64{2.5, 3, 3.5}}, false)
	require.NoError(t, err)
	lh2, err := NewUnbinnedLH(model.Gaussian{}, sample.Sample{Xs: []float64{-2.5, -2}}, false)
	require.NoError(t, err)

	sim, err := NewSimultaneousFit(lh1, lh2)
	require.NoError(t, err)
	assert.Equal(t, []string{"mean2", "sigma", "mean"}, sim.Names())
	assert.Equal(t, ErrorDefLH, sim.ErrorDef())

	// The combined objective is the sum of the sub-objectives at
	// their gathered sub-vectors.
	p := []float64{3, 1, -2}
	want := lh1.Cost([]float64{3, 1}) + lh2.Cost([]float64{-2, 1})
	assert.InDelta(t, want, sim.Cost(p), 1e-12)
}

func TestSimultaneousFitMixedErrorDef(t *testing.T) {
	lh, err := NewUnbinnedLH(model.Gaussian{}, sample.Sample{Xs: []float64{1}}, false)
	require.NoError(t, err)
	chi2, err := NewChi2Regression(line(), []float64{1}, []float64{1}, nil)
	require.NoError(t, err)

	var derr *DataError
	_, err = NewSimultaneousFit(lh, chi2)
	require.ErrorAs(t, err, &derr)
}

func TestSimultaneousFitEmpty(t *testing.T) {
	var derr *DataError
	_, err := NewSimultaneousFit()
	require.ErrorAs(t, err, &derr)
}
