// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
)

// A Density is a non-negative function over a finite domain. It need
// not integrate to 1 until it has been explicitly normalized.
type Density interface {
	// Evaluate returns the unnormalized value of the density at
	// x. It is defined for all real x, even outside the domain.
	Evaluate(x float64) float64

	// Normalize integrates Evaluate over the domain using the
	// given number of partitions and caches the result as the
	// normalization constant, which it returns. Evaluate is not
	// affected; divide by the constant to get absolute values.
	Normalize(partitions int) (float64, error)

	// Normalization returns the cached normalization constant.
	// The boolean is false if Normalize has not succeeded yet.
	Normalization() (float64, bool)

	// Domain returns the bounds [lo, hi] of the analysis domain.
	Domain() (lo, hi float64)

	// Label returns a human-readable name for this density.
	Label() string

	// Describe writes the domain, label and the parameters of
	// this density to w.
	Describe(w io.Writer) error
}

// A Target is the part of a Density that a Metropolis chain needs.
type Target interface {
	Evaluate(x float64) float64
	Domain() (lo, hi float64)
}

// Normalized returns Evaluate divided by d's normalization constant.
// If d has not been normalized, the raw Evaluate is returned.
func Normalized(d Density) func(x float64) float64 {
	norm, ok := d.Normalization()
	if !ok || norm == 0 {
		return d.Evaluate
	}
	return func(x float64) float64 {
		return d.Evaluate(x) / norm
	}
}

// finite holds the state every density shares: its domain, its label
// and the cached normalization.
type finite struct {
	lo, hi float64
	label  string

	// norm is only meaningful if normalized is set. partitions
	// records the partition count norm was computed with.
	norm       float64
	normalized bool
	partitions int
}

func newFinite(lo, hi float64, label, defaultLabel string) (finite, error) {
	if !isFinite(lo) || !isFinite(hi) {
		return finite{}, invalidf("domain [%v, %v] must be finite", lo, hi)
	}
	if lo >= hi {
		return finite{}, invalidf("domain lower bound %v must be less than upper bound %v", lo, hi)
	}
	if label == "" {
		label = defaultLabel
	}
	return finite{lo: lo, hi: hi, label: label}, nil
}

func (f *finite) Domain() (float64, float64) {
	return f.lo, f.hi
}

func (f *finite) Label() string {
	return f.label
}

func (f *finite) Normalization() (float64, bool) {
	return f.norm, f.normalized
}

// normalize integrates eval over the domain and caches the result.
// Asking again with the same partition count is a no-op.
func (f *finite) normalize(eval func(float64) float64, partitions int) (float64, error) {
	if f.normalized && f.partitions == partitions {
		return f.norm, nil
	}
	norm, err := Integrate(eval, f.lo, f.hi, partitions)
	if err != nil {
		return 0, err
	}
	f.norm, f.normalized, f.partitions = norm, true, partitions
	return norm, nil
}

// describe writes the state shared by all densities.
func (f *finite) describe(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Label: %s\nDomain: [%g, %g]\n", f.label, f.lo, f.hi)
	if err != nil {
		return err
	}
	if f.normalized {
		_, err = fmt.Fprintf(w, "Integral: %g (%d partitions)\n", f.norm, f.partitions)
	} else {
		_, err = fmt.Fprintf(w, "Integral: not normalized\n")
	}
	return err
}
