// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"math"
)

// CrystalBallDist is a Crystal Ball density: a Gaussian core with mean
// Mu and width Sigma joined to a power-law tail of exponent N.
//
// In the standardized variable t = (x-Mu)/Sigma the density is
//
//	N·exp(-t²/2)        for t > -α
//	N·A·(B-t)^(-n)      for t ≤ -α
//
// The tail sits on the low side for positive Alpha. For negative
// Alpha it is mirrored onto the high side, so the two pieces join
// continuously for every legal Alpha.
type CrystalBallDist struct {
	finite
	Mu, Sigma, Alpha, N float64

	c CrystalBallConstants
}

// CrystalBallConstants are derived from α, n and σ when a
// CrystalBallDist is constructed. With a = |α|:
//
//	A = (n/a)^n · exp(-a²/2)
//	B = n/a - a
//	C = (n/a) · 1/(n-1) · exp(-a²/2)
//	D = sqrt(π/2) · (1 + erf(a/√2))
//	N = 1 / (σ(C+D))
//
// C·σ·N and D·σ·N are the tail and core weights over the whole line,
// so N makes the density integrate to 1.
type CrystalBallConstants struct {
	A, B, C, D, N float64
}

// NewCrystalBallDist returns a Crystal Ball density over [lo, hi].
// Sigma must be positive, alpha non-zero and n greater than 1; C
// diverges for n <= 1. Parameters whose derived constants overflow
// are rejected too.
func NewCrystalBallDist(mu, sigma, alpha, n, lo, hi float64, label string) (*CrystalBallDist, error) {
	switch {
	case !isFinite(mu):
		return nil, invalidf("crystal ball mean must be finite, got %v", mu)
	case !(sigma > 0) || !isFinite(sigma):
		return nil, invalidf("crystal ball sigma must be positive, got %v", sigma)
	case alpha == 0 || !isFinite(alpha):
		return nil, invalidf("crystal ball alpha must be non-zero, got %v", alpha)
	case !(n > 1) || !isFinite(n):
		return nil, invalidf("crystal ball n must be greater than 1, got %v", n)
	}
	f, err := newFinite(lo, hi, label, "CrystalBall")
	if err != nil {
		return nil, err
	}
	d := &CrystalBallDist{finite: f, Mu: mu, Sigma: sigma, Alpha: alpha, N: n}
	d.c = crystalBallConstants(sigma, alpha, n)
	if !isFinite(d.c.A) || !isFinite(d.c.B) || !isFinite(d.c.N) {
		return nil, invalidf("crystal ball constants are not finite for alpha %v, n %v: %+v", alpha, n, d.c)
	}
	return d, nil
}

func crystalBallConstants(sigma, alpha, n float64) CrystalBallConstants {
	a := math.Abs(alpha)
	g := math.Exp(-a * a / 2)
	var c CrystalBallConstants
	c.A = math.Pow(n/a, n) * g
	c.B = n/a - a
	c.C = n / a / (n - 1) * g
	c.D = math.Sqrt(math.Pi/2) * (1 + math.Erf(a/math.Sqrt2))
	c.N = 1 / (sigma * (c.C + c.D))
	return c
}

// Constants returns the constants derived at construction.
func (d *CrystalBallDist) Constants() CrystalBallConstants {
	return d.c
}

func (d *CrystalBallDist) Evaluate(x float64) float64 {
	t := (x - d.Mu) / d.Sigma
	if d.Alpha < 0 {
		t = -t
	}
	if t > -math.Abs(d.Alpha) {
		return d.c.N * math.Exp(-t*t/2)
	}
	return d.c.N * d.c.A * math.Pow(d.c.B-t, -d.N)
}

func (d *CrystalBallDist) Normalize(partitions int) (float64, error) {
	return d.normalize(d.Evaluate, partitions)
}

func (d *CrystalBallDist) Describe(w io.Writer) error {
	_, err := fmt.Fprintf(w, `=== Crystal Ball Distribution ===
Mean (mu): %g
Sigma: %g
Alpha: %g
n: %g
Computed constants:
  A = %g
  B = %g
  C = %g
  D = %g
  N = %g
`, d.Mu, d.Sigma, d.Alpha, d.N, d.c.A, d.c.B, d.c.C, d.c.D, d.c.N)
	if err != nil {
		return err
	}
	return d.describe(w)
}
