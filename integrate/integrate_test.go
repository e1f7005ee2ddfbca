// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdist/go-fitdist/model"
)

func TestNodes(t *testing.T) {
	assert.Equal(t, 3, Nodes(0))
	assert.Equal(t, 3, Nodes(1))
	assert.Equal(t, 3, Nodes(3))
	assert.Equal(t, 6, Nodes(4))
	assert.Equal(t, 12, Nodes(10))
	assert.Equal(t, 99, Nodes(99))
}

func TestConvergence(t *testing.T) {
	// exp has continuous derivatives of every order, so the
	// quadrature error must strictly decrease with the node count.
	m := model.Func(func(x float64, _ []float64) float64 { return math.Exp(x) })
	b := model.Bound{Lo: 0, Hi: 2}
	exact := math.Exp(2) - 1

	prev := math.Inf(1)
	for _, n := range []int{3, 9, 27, 81} {
		got, err := Integrate1D(m, b, n, nil)
		require.NoError(t, err)
		e := math.Abs(got - exact)
		assert.Less(t, e, prev, "nodes=%d", n)
		prev = e
	}
	// The finest estimate is essentially exact.
	assert.Less(t, prev, 1e-6)
}

func TestExactForCubics(t *testing.T) {
	// Simpson 3/8 integrates cubics exactly even with one panel.
	m := model.Func(func(x float64, p []float64) float64 {
		return p[0] * x * x * x
	}, "a")
	got, err := Integrate1D(m, model.Bound{Lo: -1, Hi: 2}, 3, []float64{4})
	require.NoError(t, err)
	assert.InDelta(t, 15, got, 1e-12) // x^4 from -1 to 2
}

func TestIdempotent(t *testing.T) {
	m := model.Func(func(x float64, p []float64) float64 {
		return math.Sin(p[0] * x)
	}, "k")
	b := model.Bound{Lo: 0.1, Hi: 2.3}
	first, err := Integrate1D(m, b, 37, []float64{1.7})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Integrate1D(m, b, 37, []float64{1.7})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// lineWrong carries a deliberately wrong analytic integral (off by a
// factor of two) to show the override is trusted verbatim.
type lineWrong struct{}

func (lineWrong) Signature() []string { return []string{"m", "c"} }

func (lineWrong) Eval(x float64, p []float64) float64 { return p[0]*x + p[1] }

func (lineWrong) Integral(b model.Bound, _ int, p []float64) float64 {
	return 2 * (p[0]*(b.Hi*b.Hi-b.Lo*b.Lo)/2 + p[1]*b.Width())
}

func TestAnalyticOverride(t *testing.T) {
	p := []float64{1, 2}
	b := model.Bound{Lo: 0, Hi: 1}

	got, err := Integrate1D(lineWrong{}, b, 10, p)
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-12) // 2x the true 2.5: the override wins

	quad, err := Integrate1D(model.Func(lineWrong{}.Eval, "m", "c"), b, 10, p)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, quad, 1e-12)
}

func TestDegenerateBound(t *testing.T) {
	m := model.Func(func(x float64, _ []float64) float64 { return x })
	for _, b := range []model.Bound{{Lo: 1, Hi: 1}, {Lo: 2, Hi: 1}} {
		_, err := Integrate1D(m, b, 10, nil)
		var ierr *IntegrationError
		require.ErrorAs(t, err, &ierr)
	}
}

func TestNonFiniteResult(t *testing.T) {
	m := model.Func(func(x float64, _ []float64) float64 { return math.NaN() })
	_, err := Integrate1D(m, model.Bound{Lo: 0, Hi: 1}, 10, nil)
	var ierr *IntegrationError
	require.ErrorAs(t, err, &ierr)
}
