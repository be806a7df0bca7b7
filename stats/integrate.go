// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Integrate approximates the integral of f over [lo, hi] with the
// composite trapezoidal rule on partitions equal-width sub-intervals.
//
// The result depends only on its arguments, so repeated calls return
// identical values. It converges to the analytic integral as
// partitions grows.
func Integrate(f func(x float64) float64, lo, hi float64, partitions int) (float64, error) {
	if partitions < 1 {
		return 0, invalidf("partition count must be positive, got %d", partitions)
	}
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return 0, invalidf("cannot integrate over [%v, %v]", lo, hi)
	}

	xs := floats.Span(make([]float64, partitions+1), lo, hi)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	v := integrate.Trapezoidal(xs, ys)
	if !isFinite(v) {
		return 0, numericalf("integral over [%v, %v] is %v", lo, hi, v)
	}
	return v, nil
}
