// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is reported for bad constructor or call
	// parameters: a non-positive scale, an empty domain, a
	// non-positive partition count and so on. Use errors.Is to
	// test for it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumerical is reported when a computation produces a
	// value that cannot be used, such as a zero density at the
	// current chain state or a non-finite integral.
	ErrNumerical = errors.New("numerical error")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func numericalf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNumerical, format, args...)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
