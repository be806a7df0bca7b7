// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats models bounded, possibly unnormalized probability
// densities over a finite interval. It normalizes them by numerical
// integration and draws samples from them with a Metropolis chain so
// candidate models can be compared against an empirical dataset.
package stats // import "github.com/aclements/go-finitefunc/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
