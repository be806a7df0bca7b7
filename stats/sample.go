// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a sequence of observations, either an empirical dataset
// or the states of a Metropolis chain.
type Sample struct {
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// StdDev returns the sample standard deviation of s. It is NaN for
// fewer than two observations.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, nil)
}

// Bounds returns the smallest and largest values in s. If s is
// empty, both are NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// Copy returns a copy of s that does not share storage with s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}

// Quantile returns the empirical q'th quantile of s, with q clamped
// to [0, 1]. It returns NaN if s is empty.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 || math.IsNaN(q) {
		return nan
	}
	q = math.Max(0, math.Min(1, q))
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return stat.Quantile(q, stat.Empirical, s.Xs, nil)
}

// Within returns the observations of s that fall in [lo, hi].
func (s Sample) Within(lo, hi float64) Sample {
	out := Sample{Sorted: s.Sorted}
	for _, x := range s.Xs {
		if lo <= x && x <= hi {
			out.Xs = append(out.Xs, x)
		}
	}
	return out
}

// Histogram counts the observations of s in bins equal-width bins
// spanning [lo, hi]. The last bin includes hi. Observations outside
// [lo, hi] are ignored.
func (s Sample) Histogram(bins int, lo, hi float64) ([]float64, error) {
	if bins < 1 {
		return nil, invalidf("bin count must be positive, got %d", bins)
	}
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return nil, invalidf("cannot bin over [%v, %v]", lo, hi)
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = math.Nextafter(hi, inf)

	in := s.Within(lo, hi)
	if len(in.Xs) == 0 {
		return make([]float64, bins), nil
	}
	in.Sort()
	return stat.Histogram(nil, dividers, in.Xs, nil), nil
}

// DensityHistogram is like Histogram, but scales the counts so the
// histogram has unit area over [lo, hi]. An empty histogram is all
// zeros.
func (s Sample) DensityHistogram(bins int, lo, hi float64) ([]float64, error) {
	counts, err := s.Histogram(bins, lo, hi)
	if err != nil {
		return nil, err
	}
	total := floats.Sum(counts)
	if total == 0 {
		return counts, nil
	}
	floats.Scale(float64(bins)/((hi-lo)*total), counts)
	return counts, nil
}

// KSDistance returns the two-sample Kolmogorov-Smirnov distance
// between a and b: the largest difference between their empirical
// CDFs. It is NaN if either sample is empty.
func KSDistance(a, b Sample) float64 {
	if len(a.Xs) == 0 || len(b.Xs) == 0 {
		return nan
	}
	if !a.Sorted {
		a = *a.Copy().Sort()
	}
	if !b.Sorted {
		b = *b.Copy().Sort()
	}
	return stat.KolmogorovSmirnov(a.Xs, nil, b.Xs, nil)
}
