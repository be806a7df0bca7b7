// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestKDEUnitArea(t *testing.T) {
	d, err := NewNormalDist(1, 2, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	chain, err := Metropolis{ProposalWidth: 2, Rand: newRand(5)}.Sample(d, 4000)
	if err != nil {
		t.Fatal(err)
	}
	kde, err := KDE{}.From(Sample{Xs: chain.Xs}, -10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if kde.Bandwidth <= 0 {
		t.Fatalf("bandwidth = %v", kde.Bandwidth)
	}
	norm, err := kde.Normalize(2000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(norm-1) > 0.01 {
		t.Errorf("KDE integral = %v, want ≅ 1", norm)
	}
	if kde.Evaluate(-11) != 0 || kde.Evaluate(11) != 0 {
		t.Errorf("KDE is non-zero outside its domain")
	}
}

func TestKDEReflection(t *testing.T) {
	// All of the data piles up against the lower boundary. Without
	// reflection half of the kernel weight would leak out.
	s := Sample{Xs: []float64{0, 0, 0, 0}}
	kde, err := KDE{Bandwidth: 0.1}.From(s, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	norm, err := kde.Normalize(10000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(norm-1) > 1e-3 {
		t.Errorf("reflected KDE integral = %v, want ≅ 1", norm)
	}
}

func TestKDEErrors(t *testing.T) {
	if _, err := (KDE{}).From(Sample{Xs: []float64{20, 30}}, -10, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("no data in domain: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := (KDE{}).From(Sample{Xs: []float64{1, 1, 1}}, -10, 10); !errors.Is(err, ErrNumerical) {
		t.Errorf("degenerate data: error = %v, want ErrNumerical", err)
	}
}

func TestBandwidth(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	silverman := BandwidthSilverman(s)
	if want := 1.06 * s.StdDev() * math.Pow(10, -0.2); !aeq(want, silverman) {
		t.Errorf("Silverman bandwidth = %v, want %v", silverman, want)
	}
	if scott := BandwidthScott(s); scott <= 0 || scott > silverman {
		t.Errorf("Scott bandwidth = %v, want in (0, %v]", scott, silverman)
	}
}
