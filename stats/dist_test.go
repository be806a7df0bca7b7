// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func mustDensities(t *testing.T) []Density {
	t.Helper()
	normal, err := NewNormalDist(0, 2, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	cauchy, err := NewCauchyDist(-2, 0.82, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	cb, err := NewCrystalBallDist(-2, 1, 1.5, 2.5, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	inv, err := NewInverseSquareDist(-10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	return []Density{normal, cauchy, cb, inv}
}

func TestDensityNonNegative(t *testing.T) {
	for _, d := range mustDensities(t) {
		lo, hi := d.Domain()
		for i := 0; i <= 2000; i++ {
			x := lo + (hi-lo)*float64(i)/2000
			if v := d.Evaluate(x); v < 0 || math.IsNaN(v) {
				t.Errorf("%s.Evaluate(%v) = %v, want >= 0", d.Label(), x, v)
			}
		}
	}
}

func TestNormalDist(t *testing.T) {
	d, err := NewNormalDist(0, 1, -10, 10, "std")
	if err != nil {
		t.Fatal(err)
	}
	testFunc(t, "Normal.Evaluate", d.Evaluate, map[float64]float64{
		-10000: 0,
		-1:     1 / math.Sqrt(2*math.Pi) * math.Exp(-0.5),
		0:      1 / math.Sqrt(2*math.Pi),
		1:      1 / math.Sqrt(2*math.Pi) * math.Exp(-0.5),
		10000:  0,
	})

	d, err = NewNormalDist(0, 2, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	norm, err := d.Normalize(1000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(norm-1) > 0.01 {
		t.Errorf("Normal(0,2) integral over [-10,10] = %v, want ≅ 1", norm)
	}
}

func TestCauchyDist(t *testing.T) {
	d, err := NewCauchyDist(0, 1, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	testFunc(t, "Cauchy.Evaluate", d.Evaluate, map[float64]float64{
		0:  1 / math.Pi,
		1:  1 / (2 * math.Pi),
		-1: 1 / (2 * math.Pi),
	})
	if got := d.Evaluate(0); math.Abs(got-0.3183) > 1e-4 {
		t.Errorf("Cauchy(0,1).Evaluate(0) = %v, want 0.3183", got)
	}

	// The heavy tails leave 2·atan(10)/π of the weight in the domain.
	norm, err := d.Normalize(1000)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * math.Atan(10) / math.Pi; math.Abs(norm-want) > 1e-4 {
		t.Errorf("Cauchy(0,1) integral = %v, want %v", norm, want)
	}
}

func TestInverseSquareDist(t *testing.T) {
	d, err := NewInverseSquareDist(-10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	if d.Label() != "InverseSquare" {
		t.Errorf("default label = %q", d.Label())
	}
	norm, err := d.Normalize(1000)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * math.Atan(10); math.Abs(norm-want) > 1e-4 {
		t.Errorf("integral of 1/(1+x²) = %v, want %v", norm, want)
	}
	f := Normalized(d)
	if got, want := f(0), 1/norm; !aeq(want, got) {
		t.Errorf("normalized value at 0 = %v, want %v", got, want)
	}
	if got := d.Evaluate(0); got != 1 {
		t.Errorf("Evaluate(0) after Normalize = %v, want 1", got)
	}
}

func TestNormalizeCaching(t *testing.T) {
	d, err := NewCauchyDist(0, 1, -10, 10, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Normalization(); ok {
		t.Fatal("fresh density reports a normalization")
	}
	if got := Normalized(d)(0); got != d.Evaluate(0) {
		t.Errorf("Normalized before Normalize = %v, want raw %v", got, d.Evaluate(0))
	}

	n1, err := d.Normalize(10)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := d.Normalize(10)
	if err != nil {
		t.Fatal(err)
	}
	if n1 != n2 {
		t.Errorf("repeated Normalize(10) = %v then %v", n1, n2)
	}
	n3, err := d.Normalize(1000)
	if err != nil {
		t.Fatal(err)
	}
	if n3 == n1 {
		t.Errorf("Normalize(1000) did not recompute: %v", n3)
	}
	if cached, ok := d.Normalization(); !ok || cached != n3 {
		t.Errorf("Normalization() = %v, %v, want %v, true", cached, ok, n3)
	}

	if _, err := d.Normalize(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Normalize(0) error = %v, want ErrInvalidArgument", err)
	}
	if cached, ok := d.Normalization(); !ok || cached != n3 {
		t.Errorf("failed Normalize changed cache to %v, %v", cached, ok)
	}
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name string
		make func() error
	}{
		{"normal zero sigma", func() error { _, err := NewNormalDist(0, 0, -1, 1, ""); return err }},
		{"normal negative sigma", func() error { _, err := NewNormalDist(0, -1, -1, 1, ""); return err }},
		{"normal NaN sigma", func() error { _, err := NewNormalDist(0, math.NaN(), -1, 1, ""); return err }},
		{"normal empty domain", func() error { _, err := NewNormalDist(0, 1, 1, 1, ""); return err }},
		{"normal reversed domain", func() error { _, err := NewNormalDist(0, 1, 1, -1, ""); return err }},
		{"normal infinite domain", func() error { _, err := NewNormalDist(0, 1, math.Inf(-1), 1, ""); return err }},
		{"cauchy zero gamma", func() error { _, err := NewCauchyDist(0, 0, -1, 1, ""); return err }},
		{"cauchy empty domain", func() error { _, err := NewCauchyDist(0, 1, 2, 1, ""); return err }},
		{"crystal ball zero sigma", func() error { _, err := NewCrystalBallDist(0, 0, 1, 2, -1, 1, ""); return err }},
		{"crystal ball zero alpha", func() error { _, err := NewCrystalBallDist(0, 1, 0, 2, -1, 1, ""); return err }},
		{"crystal ball n = 1", func() error { _, err := NewCrystalBallDist(0, 1, 1, 1, -1, 1, ""); return err }},
		{"crystal ball n < 1", func() error { _, err := NewCrystalBallDist(0, 1, 1, 0.5, -1, 1, ""); return err }},
		{"crystal ball overflowing A", func() error { _, err := NewCrystalBallDist(0, 1, 1e-3, 200, -1, 1, ""); return err }},
		{"inverse square empty domain", func() error { _, err := NewInverseSquareDist(0, 0, ""); return err }},
	}
	for _, test := range tests {
		if err := test.make(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want ErrInvalidArgument", test.name, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	for _, d := range mustDensities(t) {
		var buf bytes.Buffer
		if err := d.Describe(&buf); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"Label: " + d.Label(), "Domain: [-10, 10]", "not normalized"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s description missing %q:\n%s", d.Label(), want, out)
			}
		}

		if _, err := d.Normalize(100); err != nil {
			t.Fatal(err)
		}
		buf.Reset()
		if err := d.Describe(&buf); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "(100 partitions)") {
			t.Errorf("%s description after Normalize:\n%s", d.Label(), buf.String())
		}
	}
}
