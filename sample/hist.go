// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"errors"
	"fmt"

	"github.com/fitdist/go-fitdist/model"
)

// A Histogram is a uniform-bin histogram of a weighted sample. For bin
// i, SumW[i] is the weighted entry count and SumW2[i] the sum of
// squared weights, which carries the effective-statistics information
// weighted likelihood fits need. For unweighted data SumW == SumW2.
type Histogram struct {
	Edges []float64 // len Bins()+1, strictly increasing
	SumW  []float64
	SumW2 []float64
}

var errBins = errors.New("sample: bin count must be positive")

// Bin histograms s into bins uniform bins over b. A zero-valued b
// means the bounds of the data. Observations outside b (underflow and
// overflow) are dropped. Bin fails on an invalid sample, a
// non-positive bin count, or a degenerate bound.
func Bin(s Sample, bins int, b model.Bound) (*Histogram, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	if bins <= 0 {
		return nil, errBins
	}
	if b == (model.Bound{}) {
		b.Lo, b.Hi = s.Bounds()
	}
	if !(b.Hi > b.Lo) {
		return nil, fmt.Errorf("sample: degenerate bound [%g, %g]", b.Lo, b.Hi)
	}

	h := &Histogram{
		Edges: make([]float64, bins+1),
		SumW:  make([]float64, bins),
		SumW2: make([]float64, bins),
	}
	width := b.Width() / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = b.Lo + float64(i)*width
	}
	h.Edges[bins] = b.Hi

	for i, x := range s.Xs {
		if x < b.Lo || x > b.Hi {
			continue
		}
		j := int((x - b.Lo) / width)
		if j == bins { // x == b.Hi lands in the last bin
			j--
		}
		w := s.WeightAt(i)
		h.SumW[j] += w
		h.SumW2[j] += w * w
	}
	return h, nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.SumW) }

// Bound returns the full range of the histogram.
func (h *Histogram) Bound() model.Bound {
	return model.Bound{Lo: h.Edges[0], Hi: h.Edges[len(h.Edges)-1]}
}

// BinBound returns the range of bin i.
func (h *Histogram) BinBound(i int) model.Bound {
	return model.Bound{Lo: h.Edges[i], Hi: h.Edges[i+1]}
}

// Center returns the midpoint of bin i.
func (h *Histogram) Center(i int) float64 {
	return (h.Edges[i] + h.Edges[i+1]) / 2
}

// Count returns the total weighted entry count.
func (h *Histogram) Count() float64 {
	t := 0.0
	for _, w := range h.SumW {
		t += w
	}
	return t
}
