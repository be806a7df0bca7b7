// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// KDE represents options for constructing a kernel density estimate
// of an empirical dataset over a finite domain.
//
// Kernel density estimation constructs an estimate ƒ̂(x) of an unknown
// density ƒ(x) given a sample from it. Unlike the parametric models
// in this package it makes no assumption about the shape of ƒ, which
// makes it a useful reference curve when comparing candidate models
// against the data. It is similar to a histogram, except that it is
// smooth and does not require choosing a bin size.
//
// The estimate uses a Gaussian kernel and corrects for the domain
// boundaries by reflection: for support [lo, hi],
// ƒ̂ᵣ(x) = ƒ̂(x) + ƒ̂(2lo-x) + ƒ̂(2hi-x). This enforces ƒ̂ᵣ'=0 at the
// boundaries.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel. If it is
	// zero, the bandwidth is computed from the data with
	// BandwidthScott.
	Bandwidth float64

	// Label names the resulting density. It defaults to "KDE".
	Label string
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(s Sample) float64 {
	return 1.06 * s.StdDev() * math.Pow(float64(len(s.Xs)), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	iqr := s.Quantile(0.75) - s.Quantile(0.25)
	hScale := 1.06 * math.Pow(float64(len(s.Xs)), -1.0/5)
	stdDev := s.StdDev()
	if stdDev < iqr/1.349 || iqr == 0 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// KDEDist is the density of a kernel density estimate. It is zero
// outside its domain.
type KDEDist struct {
	finite
	Bandwidth float64

	xs     []float64
	kernel distuv.Normal
}

// From returns the kernel density estimate of the observations of s
// that fall in [lo, hi].
func (k KDE) From(s Sample, lo, hi float64) (*KDEDist, error) {
	f, err := newFinite(lo, hi, k.Label, "KDE")
	if err != nil {
		return nil, err
	}
	in := s.Within(lo, hi)
	if len(in.Xs) == 0 {
		return nil, invalidf("no observations in [%v, %v] to estimate from", lo, hi)
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(in)
	}
	if !(h > 0) || !isFinite(h) {
		return nil, numericalf("kernel bandwidth is %v", h)
	}
	return &KDEDist{
		finite:    f,
		Bandwidth: h,
		xs:        in.Xs,
		kernel:    distuv.Normal{Mu: 0, Sigma: h},
	}, nil
}

// Evaluate returns the boundary-corrected estimate at x. The
// estimate already has unit area over the domain up to the error of
// the reflection, which is negligible when the bandwidth is small
// compared to the domain.
func (kde *KDEDist) Evaluate(x float64) float64 {
	if x < kde.lo || x > kde.hi {
		return 0
	}
	y := func(x float64) float64 {
		// Shift kernel to each of kde.xs and evaluate at x.
		sum := 0.0
		for _, xi := range kde.xs {
			sum += kde.kernel.Prob(x - xi)
		}
		return sum / float64(len(kde.xs))
	}
	return y(x) + y(2*kde.lo-x) + y(2*kde.hi-x)
}

func (kde *KDEDist) Normalize(partitions int) (float64, error) {
	return kde.normalize(kde.Evaluate, partitions)
}

func (kde *KDEDist) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Kernel Density Estimate ===\nObservations: %d\nBandwidth: %g\n", len(kde.xs), kde.Bandwidth); err != nil {
		return err
	}
	return kde.describe(w)
}
