// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines 1-D parametric models and their parameter
// signatures, the building blocks that cost functions and composition
// functors operate on.
package model // import "github.com/fitdist/go-fitdist/model"
