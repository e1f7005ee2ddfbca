// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// A SignatureError reports an invalid parameter-name operation, such
// as a rename with the wrong number of names or a merge that cannot
// bind call positions unambiguously.
type SignatureError struct {
	Op  string // the failing operation: "rename", "merge", ...
	Msg string
}

func (e *SignatureError) Error() string {
	return "signature: " + e.Op + ": " + e.Msg
}

// Merge combines parameter signatures into a single ordered,
// duplicate-free signature. Names are kept in first-seen order across
// the inputs; a name appearing in several signatures collapses to a
// single entry, which is how composed and simultaneous models share
// ("tie") a fit parameter.
//
// Merge is associative: Merge(Merge(a, b), c) and Merge(a, Merge(b, c))
// produce the same signature.
func Merge(sigs ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, sig := range sigs {
		for _, name := range sig {
			if !seen[name] {
				seen[name] = true
				merged = append(merged, name)
			}
		}
	}
	return merged
}

// IndexMap returns, for each name in sub, its index in merged. It is
// used by composed models to gather a component's argument vector out
// of the merged parameter vector. IndexMap panics if a name in sub is
// missing from merged; composed models always merge their components'
// signatures first, so a miss is a program bug.
func IndexMap(merged, sub []string) []int {
	idx := make([]int, len(sub))
	for i, name := range sub {
		j := indexOf(merged, name)
		if j < 0 {
			panic(fmt.Sprintf("signature: %q not in merged signature %v", name, merged))
		}
		idx[i] = j
	}
	return idx
}

// Gather copies params[idx[i]] into dst for each i and returns dst.
// dst must have len(idx) elements.
func Gather(dst, params []float64, idx []int) []float64 {
	for i, j := range idx {
		dst[i] = params[j]
	}
	return dst
}

func indexOf(sig []string, name string) int {
	for i, n := range sig {
		if n == name {
			return i
		}
	}
	return -1
}

// CheckDistinct returns a *SignatureError if names contains a
// duplicate. A signature with a repeated name would bind two distinct
// call positions to the same name in an ambiguous order. op names the
// operation being validated and appears in the error.
func CheckDistinct(op string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return &SignatureError{op, fmt.Sprintf("duplicate parameter name %q in [%s]", n, strings.Join(names, " "))}
		}
		seen[n] = true
	}
	return nil
}
