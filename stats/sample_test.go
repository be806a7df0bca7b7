// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{40, 15, 50, 20, 35}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.19: 15,
		.5:  35,
		1:   50,
		2:   50,
	})
	// Quantile must not reorder the caller's data.
	if s.Xs[0] != 40 {
		t.Errorf("Quantile sorted the sample in place: %v", s.Xs)
	}
	if q := (Sample{}).Quantile(0.5); !math.IsNaN(q) {
		t.Errorf("quantile of empty sample = %v, want NaN", q)
	}
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if m := s.Mean(); m != 5 {
		t.Errorf("mean = %v, want 5", m)
	}
	if sd, want := s.StdDev(), math.Sqrt(32.0/7); !aeq(want, sd) {
		t.Errorf("std dev = %v, want %v", sd, want)
	}
	lo, hi := s.Bounds()
	if lo != 2 || hi != 9 {
		t.Errorf("bounds = [%v, %v], want [2, 9]", lo, hi)
	}

	var empty Sample
	if !math.IsNaN(empty.Mean()) || !math.IsNaN(empty.StdDev()) {
		t.Errorf("empty sample moments = %v, %v, want NaN", empty.Mean(), empty.StdDev())
	}
	if lo, hi := empty.Bounds(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("empty sample bounds = [%v, %v], want NaN", lo, hi)
	}
}

func TestSampleHistogram(t *testing.T) {
	s := Sample{Xs: []float64{-20, -1, -0.5, 0, 0.25, 0.5, 1, 20}}
	counts, err := s.Histogram(4, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 1, 2, 2}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("histogram = %v, want %v", counts, want)
		}
	}

	dens, err := s.DensityHistogram(4, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	area := 0.0
	for _, h := range dens {
		area += h * 0.5
	}
	if !aeq(1, area) {
		t.Errorf("density histogram area = %v, want 1", area)
	}

	counts, err = (Sample{}).Histogram(3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 3 || counts[0]+counts[1]+counts[2] != 0 {
		t.Errorf("empty histogram = %v", counts)
	}

	if _, err := s.Histogram(0, -1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero bins: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := s.Histogram(4, 1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("reversed range: error = %v, want ErrInvalidArgument", err)
	}
}

func TestKSDistance(t *testing.T) {
	a := Sample{Xs: []float64{1, 2, 3, 4}}
	if d := KSDistance(a, a); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
	b := Sample{Xs: []float64{11, 12, 13, 14}}
	if d := KSDistance(a, b); !aeq(1, d) {
		t.Errorf("distance between disjoint samples = %v, want 1", d)
	}
	if d := KSDistance(a, Sample{}); !math.IsNaN(d) {
		t.Errorf("distance to empty sample = %v, want NaN", d)
	}
}
