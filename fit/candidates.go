// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit compares candidate densities against an empirical
// dataset: it normalizes and describes each candidate, plots it over
// the data, samples from it with a Metropolis chain and scores the
// chain against the data.
package fit

import (
	"sort"

	"github.com/aclements/go-finitefunc/stats"
	"github.com/cockroachdb/errors"
)

// constructors builds the named densities over [lo, hi] with the
// parameters that best described the reference dataset.
var constructors = map[string]func(lo, hi float64) (stats.Density, error){
	"normal": func(lo, hi float64) (stats.Density, error) {
		return stats.NewNormalDist(0, 2, lo, hi, "Normal_Test")
	},
	"cauchy": func(lo, hi float64) (stats.Density, error) {
		return stats.NewCauchyDist(-2, 0.82, lo, hi, "CauchyLorentz_Test")
	},
	"crystalball": func(lo, hi float64) (stats.Density, error) {
		return stats.NewCrystalBallDist(-2, 1, 80, 2.5, lo, hi, "CrystalBall_Test")
	},
	"default": func(lo, hi float64) (stats.Density, error) {
		return stats.NewInverseSquareDist(lo, hi, "DefaultFunction")
	},
}

// Names returns the names accepted by NewDensity, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDensity returns the named density over [lo, hi].
func NewDensity(name string, lo, hi float64) (stats.Density, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(stats.ErrInvalidArgument, "unknown density %q, want one of %v", name, Names())
	}
	return c(lo, hi)
}

// DefaultNames names the models compared by default: Normal(0, 2),
// Cauchy-Lorentz(-2, 0.82) and Crystal Ball(-2, 1, 80, 2.5).
var DefaultNames = []string{"normal", "cauchy", "crystalball"}

// Candidates returns the named densities over [lo, hi], in order.
func Candidates(names []string, lo, hi float64) ([]stats.Density, error) {
	ds := make([]stats.Density, 0, len(names))
	for _, name := range names {
		d, err := NewDensity(name, lo, hi)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// DefaultCandidates returns the densities named by DefaultNames.
func DefaultCandidates(lo, hi float64) ([]stats.Density, error) {
	return Candidates(DefaultNames, lo, hi)
}
