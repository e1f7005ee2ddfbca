// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functor

import (
	"fmt"

	"github.com/fitdist/go-fitdist/model"
)

// Rename returns a model numerically identical to m with its
// parameters renamed to names, position by position. Renaming is how
// identically-named parameters of sibling models are pulled apart to
// vary independently, or deliberately left equal so a later merge ties
// them to one fit parameter.
//
// names must have exactly one entry per parameter of m and contain no
// duplicates; otherwise Rename fails with *model.SignatureError. An
// analytic integral carried by m is preserved.
func Rename(m model.Model, names []string) (model.Model, error) {
	sig := m.Signature()
	if len(names) != len(sig) {
		return nil, &model.SignatureError{
			Op:  "rename",
			Msg: fmt.Sprintf("got %d names for %d parameters", len(names), len(sig)),
		}
	}
	if err := model.CheckDistinct("rename", names); err != nil {
		return nil, err
	}
	r := &renamed{m, append([]string(nil), names...)}
	if a, ok := m.(model.Integrable); ok {
		return &renamedIntegrable{r, a}, nil
	}
	return r, nil
}

type renamed struct {
	base  model.Model
	names []string
}

func (r *renamed) Eval(x float64, params []float64) float64 { return r.base.Eval(x, params) }

func (r *renamed) Signature() []string { return r.names }

type renamedIntegrable struct {
	*renamed
	a model.Integrable
}

func (r *renamedIntegrable) Integral(b model.Bound, nodes int, params []float64) float64 {
	return r.a.Integral(b, nodes, params)
}
