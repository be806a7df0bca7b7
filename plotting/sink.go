// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotting draws densities and histograms of samples into
// image (PNG) or interactive (HTML) figures.
package plotting

import (
	"os"
	"path/filepath"

	"github.com/aclements/go-finitefunc/stats"
	"github.com/cockroachdb/errors"
)

//go:generate mockgen -source sink.go -destination sink_mock.go -package plotting

// A Sink accumulates curves and histograms into one figure. The
// figure is written when the sink is closed.
type Sink interface {
	// PlotDensity adds the curve of d over its domain. If d has
	// been normalized the curve is divided by the normalization
	// constant.
	PlotDensity(d stats.Density) error

	// PlotData adds a histogram of xs with the given number of
	// bins, scaled to unit area. Empirical data and sampled data
	// are drawn with different styles.
	PlotData(xs []float64, bins int, empirical bool) error

	// Close writes the figure.
	Close() error
}

// Formats lists the formats accepted by New.
var Formats = []string{"png", "html", "none"}

// New returns a sink writing the figure name to dir in the given
// format. The "none" format discards everything.
func New(format, dir, name string) (Sink, error) {
	if format == "none" {
		return Discard, nil
	}
	if format != "png" && format != "html" {
		return nil, errors.Wrapf(stats.ErrInvalidArgument, "unknown plot format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create plot directory %s", dir)
	}
	path := filepath.Join(dir, name+"."+format)
	if format == "png" {
		return newPNGFigure(path, name), nil
	}
	return newHTMLFigure(path, name), nil
}

// Discard is a Sink that draws nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) PlotDensity(stats.Density) error { return nil }

func (discard) PlotData(xs []float64, bins int, empirical bool) error { return nil }

func (discard) Close() error { return nil }

// domain tracks the x range shared by everything in a figure. It is
// set by the first density; until then histograms span their data.
type domain struct {
	lo, hi float64
	set    bool
}

func (d *domain) update(den stats.Density) {
	if !d.set {
		d.lo, d.hi = den.Domain()
		d.set = true
	}
}

// binned is a unit-area histogram with equal-width bins.
type binned struct {
	lo, width float64
	heights   []float64
}

func (b binned) centre(i int) float64 {
	return b.lo + b.width*(float64(i)+0.5)
}

// histogram bins xs over the figure's domain, or over the range of
// xs if no density has been plotted yet.
func (d *domain) histogram(xs []float64, bins int) (binned, error) {
	if bins < 1 {
		return binned{}, errors.Wrapf(stats.ErrInvalidArgument, "bin count must be positive, got %d", bins)
	}
	s := stats.Sample{Xs: xs}
	lo, hi := d.lo, d.hi
	if !d.set {
		if len(xs) == 0 {
			return binned{}, errors.Wrapf(stats.ErrInvalidArgument, "no data to plot")
		}
		lo, hi = s.Bounds()
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
	}
	heights, err := s.DensityHistogram(bins, lo, hi)
	if err != nil {
		return binned{}, err
	}
	return binned{lo: lo, width: (hi - lo) / float64(bins), heights: heights}, nil
}

func dataLabel(empirical bool) string {
	if empirical {
		return "Data"
	}
	return "Sampled data"
}
