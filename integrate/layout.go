// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/fitdist/go-fitdist/model"
)

// A nodeLayout holds the abscissas and weights of a composite Simpson
// 3/8 rule over a fixed bound. Computing the layout is the dominant
// fixed cost of repeated integration during a fit, where the same
// (bound, node count) is integrated once per minimizer step, so
// layouts are memoized. Layouts are immutable after construction and
// safe for concurrent reuse.
type nodeLayout struct {
	xs, ws []float64
}

// layoutCacheLimit bounds the layout cache. Entries are idempotent:
// on overflow the whole map is dropped and misses recompute.
const layoutCacheLimit = 1024

var layoutCache struct {
	sync.Mutex
	m map[uint64]nodeLayout
}

func layoutKey(b model.Bound, n int) uint64 {
	var buf [20]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(b.Lo))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(b.Hi))
	binary.LittleEndian.PutUint32(buf[16:], uint32(n))
	return xxhash.Sum64(buf[:])
}

// nodeLayoutFor returns the cached node layout for b with n
// subintervals, computing and caching it on a miss. n must be a
// positive multiple of 3.
func nodeLayoutFor(b model.Bound, n int) (xs, ws []float64) {
	key := layoutKey(b, n)
	layoutCache.Lock()
	if l, ok := layoutCache.m[key]; ok {
		layoutCache.Unlock()
		return l.xs, l.ws
	}
	layoutCache.Unlock()

	// Composite Simpson 3/8: weights 3h/8 * [1 3 3 2 3 3 2 ... 3 3 1].
	h := b.Width() / float64(n)
	w := 3 * h / 8
	xs = make([]float64, n+1)
	ws = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		xs[i] = b.Lo + float64(i)*h
		switch {
		case i == 0 || i == n:
			ws[i] = w
		case i%3 == 0:
			ws[i] = 2 * w
		default:
			ws[i] = 3 * w
		}
	}
	xs[n] = b.Hi

	layoutCache.Lock()
	if layoutCache.m == nil || len(layoutCache.m) >= layoutCacheLimit {
		layoutCache.m = make(map[uint64]nodeLayout)
	}
	layoutCache.m[key] = nodeLayout{xs, ws}
	layoutCache.Unlock()
	return xs, ws
}
