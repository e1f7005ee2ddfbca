// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package functor composes base models into derived models:
// normalization, yield extension, summation, convolution and renaming.
// Every composed model resolves its merged parameter signature once at
// construction and is immutable afterwards.
package functor // import "github.com/fitdist/go-fitdist/functor"
