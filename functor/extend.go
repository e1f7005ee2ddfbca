// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functor

import (
	"fmt"

	"github.com/fitdist/go-fitdist/model"
)

// ExtendName is the yield parameter name Extended uses when the caller
// passes an empty name.
const ExtendName = "N"

// Extended returns a model with an extra trailing yield parameter:
// value = N * m(x, params). It turns a normalized density into an
// expected-count density for extended-likelihood and binned chi-square
// fits. extname is the yield parameter's name; "" means ExtendName.
//
// Extended fails with *model.SignatureError if extname is already a
// parameter of m. An analytic integral carried by m is preserved,
// scaled by the yield.
func Extended(m model.Model, extname string) (model.Model, error) {
	if extname == "" {
		extname = ExtendName
	}
	names := append(append([]string(nil), m.Signature()...), extname)
	if err := model.CheckDistinct("extend", names); err != nil {
		return nil, &model.SignatureError{
			Op:  "extend",
			Msg: fmt.Sprintf("yield name %q is already a parameter of the base model", extname),
		}
	}
	e := &extended{m, names}
	if a, ok := m.(model.Integrable); ok {
		return &extendedIntegrable{e, a}, nil
	}
	return e, nil
}

type extended struct {
	base  model.Model
	names []string
}

func (e *extended) Eval(x float64, params []float64) float64 {
	n := len(params) - 1
	return params[n] * e.base.Eval(x, params[:n])
}

func (e *extended) Signature() []string { return e.names }

type extendedIntegrable struct {
	*extended
	a model.Integrable
}

func (e *extendedIntegrable) Integral(b model.Bound, nodes int, params []float64) float64 {
	n := len(params) - 1
	return params[n] * e.a.Integral(b, nodes, params[:n])
}
