// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functor

import (
	"fmt"

	"github.com/fitdist/go-fitdist/model"
)

// AddPdf returns the unweighted sum of the component models over the
// merged signature of all components. Parameters with equal names are
// tied; use Rename beforehand to keep them distinct. Component yields
// are expected to be part of each component's own signature (compose
// with Extended), so the sum of extended components is itself an
// expected-count density.
//
// AddPdf fails with *model.SignatureError if called with no
// components or if a component's own signature is ambiguous.
func AddPdf(components ...model.Model) (model.Model, error) {
	parts, merged, err := mergeComponents("addpdf", components)
	if err != nil {
		return nil, err
	}
	return &addPdf{parts, merged}, nil
}

// AddPdfNorm returns the convex combination of the component models:
//
//	f_0*m_0(x) + f_1*m_1(x) + ... + (1 - f_0 - ... - f_{k-2})*m_{k-1}(x)
//
// One new fraction parameter f_i is appended to the merged signature
// for every component except the last. Fractions outside [0, 1] are
// evaluated as-is; the resulting poor objective lets the minimizer
// discover the boundary rather than failing hard.
//
// AddPdfNorm fails with *model.SignatureError if fewer than two
// components are given or a generated fraction name collides with a
// component parameter.
func AddPdfNorm(components ...model.Model) (model.Model, error) {
	if len(components) < 2 {
		return nil, &model.SignatureError{Op: "addpdfnorm", Msg: "needs at least two components"}
	}
	parts, merged, err := mergeComponents("addpdfnorm", components)
	if err != nil {
		return nil, err
	}
	names := append([]string(nil), merged...)
	for i := 0; i < len(components)-1; i++ {
		names = append(names, fmt.Sprintf("f_%d", i))
	}
	if err := model.CheckDistinct("addpdfnorm", names); err != nil {
		return nil, err
	}
	return &addPdfNorm{parts, names, len(merged)}, nil
}

// A part is one component of a composed sum with its gather map from
// the merged parameter vector into the component's own argument order.
type part struct {
	m   model.Model
	idx []int
}

func (p *part) eval(x float64, params []float64) float64 {
	args := make([]float64, len(p.idx))
	return p.m.Eval(x, model.Gather(args, params, p.idx))
}

func mergeComponents(op string, components []model.Model) ([]part, []string, error) {
	if len(components) == 0 {
		return nil, nil, &model.SignatureError{Op: op, Msg: "no components"}
	}
	sigs := make([][]string, len(components))
	for i, m := range components {
		sigs[i] = m.Signature()
		if err := model.CheckDistinct(op, sigs[i]); err != nil {
			return nil, nil, err
		}
	}
	merged := model.Merge(sigs...)
	parts := make([]part, len(components))
	for i, m := range components {
		parts[i] = part{m, model.IndexMap(merged, sigs[i])}
	}
	return parts, merged, nil
}

type addPdf struct {
	parts []part
	names []string
}

func (a *addPdf) Signature() []string { return a.names }

func (a *addPdf) Eval(x float64, params []float64) float64 {
	sum := 0.0
	for i := range a.parts {
		sum += a.parts[i].eval(x, params)
	}
	return sum
}

type addPdfNorm struct {
	parts []part
	names []string
	nbase int // index of the first fraction parameter
}

func (a *addPdfNorm) Signature() []string { return a.names }

func (a *addPdfNorm) Eval(x float64, params []float64) float64 {
	fracs := params[a.nbase:]
	last := 1.0
	for _, f := range fracs {
		last -= f
	}
	sum := 0.0
	for i := range a.parts {
		f := last
		if i < len(fracs) {
			f = fracs[i]
		}
		sum += f * a.parts[i].eval(x, params)
	}
	return sum
}
