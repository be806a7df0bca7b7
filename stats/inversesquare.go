// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
)

// InverseSquareDist is the unnormalized density 1/(1+x²). It is the
// baseline model: it has no parameters and only becomes a proper
// density over its domain after Normalize.
type InverseSquareDist struct {
	finite
}

// NewInverseSquareDist returns 1/(1+x²) over [lo, hi].
func NewInverseSquareDist(lo, hi float64, label string) (*InverseSquareDist, error) {
	f, err := newFinite(lo, hi, label, "InverseSquare")
	if err != nil {
		return nil, err
	}
	return &InverseSquareDist{f}, nil
}

func (d *InverseSquareDist) Evaluate(x float64) float64 {
	return 1 / (1 + x*x)
}

func (d *InverseSquareDist) Normalize(partitions int) (float64, error) {
	return d.normalize(d.Evaluate, partitions)
}

func (d *InverseSquareDist) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Default Function ===\nf(x) = 1/(1+x^2)\n"); err != nil {
		return err
	}
	return d.describe(w)
}
