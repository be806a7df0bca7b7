// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileCI is a distribution-free confidence interval for a
// quantile of the population a sample was drawn from.
type QuantileCI struct {
	// Lo and Hi bound the interval. They are infinite if the
	// sample is too small for the requested confidence.
	Lo, Hi float64

	// Confidence is the actual coverage of the interval. It is
	// at least the requested confidence.
	Confidence float64
}

// QuantileCI returns a confidence interval for the q'th quantile,
// 0 < q < 1, at the given confidence level, 0 < confidence < 1.
//
// The number of observations below the population quantile follows
// the binomial distribution B(n, q), so the interval is bounded by the
// order statistics that cut off at most (1-confidence)/2 of that
// distribution in each tail.
func (s Sample) QuantileCI(q, confidence float64) (QuantileCI, error) {
	if len(s.Xs) == 0 {
		return QuantileCI{}, invalidf("no observations")
	}
	if !(q > 0 && q < 1) {
		return QuantileCI{}, invalidf("quantile must be in (0, 1), got %v", q)
	}
	if !(confidence > 0 && confidence < 1) {
		return QuantileCI{}, invalidf("confidence must be in (0, 1), got %v", confidence)
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	n := len(s.Xs)
	b := distuv.Binomial{N: float64(n), P: q}
	tail := (1 - confidence) / 2

	// Orders are 1-based. Order 0 stands for -∞ and n+1 for +∞.
	lo := 0
	for lo < n && b.CDF(float64(lo)) <= tail {
		lo++
	}
	hi := n + 1
	for hi > 1 && b.CDF(float64(hi-2)) >= 1-tail {
		hi--
	}

	ci := QuantileCI{Lo: -inf, Hi: inf, Confidence: b.CDF(float64(hi-1)) - b.CDF(float64(lo-1))}
	if lo >= 1 {
		ci.Lo = s.Xs[lo-1]
	}
	if hi <= n {
		ci.Hi = s.Xs[hi-1]
	}
	return ci, nil
}
