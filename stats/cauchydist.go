// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"math"
)

// CauchyDist is a Cauchy-Lorentz density with location X0 and scale
// Gamma. Its heavy tails put noticeably more weight outside a finite
// domain than a normal density with a comparable width.
type CauchyDist struct {
	finite
	X0, Gamma float64
}

// NewCauchyDist returns a Cauchy-Lorentz density over [lo, hi]. Gamma
// must be positive.
func NewCauchyDist(x0, gamma, lo, hi float64, label string) (*CauchyDist, error) {
	if !isFinite(x0) {
		return nil, invalidf("cauchy location must be finite, got %v", x0)
	}
	if !(gamma > 0) || !isFinite(gamma) {
		return nil, invalidf("cauchy gamma must be positive, got %v", gamma)
	}
	f, err := newFinite(lo, hi, label, "CauchyLorentz")
	if err != nil {
		return nil, err
	}
	return &CauchyDist{finite: f, X0: x0, Gamma: gamma}, nil
}

func (d *CauchyDist) Evaluate(x float64) float64 {
	z := (x - d.X0) / d.Gamma
	return 1 / (math.Pi * d.Gamma * (1 + z*z))
}

func (d *CauchyDist) Normalize(partitions int) (float64, error) {
	return d.normalize(d.Evaluate, partitions)
}

func (d *CauchyDist) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Cauchy-Lorentz Distribution ===\nLocation (x0): %g\nScale (gamma): %g\n", d.X0, d.Gamma); err != nil {
		return err
	}
	return d.describe(w)
}
