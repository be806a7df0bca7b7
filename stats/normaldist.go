// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) density with mean Mu and standard
// deviation Sigma, restricted to a finite domain for analysis.
//
// Evaluate is normalized in closed form over the whole real line, so
// the numerical integral over the domain is slightly below 1.
type NormalDist struct {
	finite
	Mu, Sigma float64

	pdf distuv.Normal
}

// NewNormalDist returns a normal density over [lo, hi]. Sigma must be
// positive.
func NewNormalDist(mu, sigma, lo, hi float64, label string) (*NormalDist, error) {
	if !isFinite(mu) {
		return nil, invalidf("normal mean must be finite, got %v", mu)
	}
	if !(sigma > 0) || !isFinite(sigma) {
		return nil, invalidf("normal sigma must be positive, got %v", sigma)
	}
	f, err := newFinite(lo, hi, label, "Normal")
	if err != nil {
		return nil, err
	}
	return &NormalDist{
		finite: f,
		Mu:     mu,
		Sigma:  sigma,
		pdf:    distuv.Normal{Mu: mu, Sigma: sigma},
	}, nil
}

func (d *NormalDist) Evaluate(x float64) float64 {
	return d.pdf.Prob(x)
}

func (d *NormalDist) Normalize(partitions int) (float64, error) {
	return d.normalize(d.Evaluate, partitions)
}

func (d *NormalDist) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Normal Distribution ===\nMean (mu): %g\nStd Dev (sigma): %g\n", d.Mu, d.Sigma); err != nil {
		return err
	}
	return d.describe(w)
}
