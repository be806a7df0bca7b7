// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/aclements/go-finitefunc/config"
	"github.com/aclements/go-finitefunc/plotting"
	"github.com/aclements/go-finitefunc/stats"
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
)

// Result summarizes how one candidate compares to the data.
type Result struct {
	Label string

	// Normalization is the integral of the candidate over its
	// domain before normalization.
	Normalization float64

	// AcceptanceRate is the percentage of accepted Metropolis
	// proposals.
	AcceptanceRate float64

	// Mean and StdDev summarize the chain.
	Mean, StdDev float64

	// KS is the Kolmogorov-Smirnov distance between the chain and
	// the data. It is NaN without data.
	KS float64
}

// A Driver runs the comparison of candidates against a dataset.
type Driver struct {
	Config *config.Config

	// NewSink returns the sink for the figure of one candidate.
	NewSink func(name string) (plotting.Sink, error)

	Log  *logging.Logger
	Rand *rand.Rand

	// Out receives the description of every candidate.
	Out io.Writer
}

// NewDriver returns a driver that writes figures as configured by cfg
// and descriptions to out.
func NewDriver(cfg *config.Config, log *logging.Logger, out io.Writer) *Driver {
	return &Driver{
		Config: cfg,
		NewSink: func(name string) (plotting.Sink, error) {
			return plotting.New(cfg.PlotFormat, cfg.PlotDir, name)
		},
		Log:  log,
		Rand: cfg.Rand(),
		Out:  out,
	}
}

// Run compares each candidate against data in turn and returns one
// result per candidate. data may be empty, in which case only the
// candidates and their chains are plotted.
func (d *Driver) Run(candidates []stats.Density, data []float64) ([]Result, error) {
	results := make([]Result, 0, len(candidates))
	for _, den := range candidates {
		d.Log.Noticef("Testing %s", den.Label())
		r, err := d.runOne(den, data)
		if err != nil {
			return nil, errors.Wrapf(err, "candidate %s", den.Label())
		}
		results = append(results, r)
	}
	return results, nil
}

func (d *Driver) runOne(den stats.Density, data []float64) (r Result, err error) {
	cfg := d.Config
	norm, err := den.Normalize(cfg.Partitions)
	if err != nil {
		return r, err
	}
	d.Log.Debugf("%s integrates to %g over %d partitions", den.Label(), norm, cfg.Partitions)
	if err := den.Describe(d.Out); err != nil {
		return r, err
	}

	sink, err := d.NewSink(den.Label())
	if err != nil {
		return r, err
	}
	defer func() {
		if cerr := sink.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := sink.PlotDensity(den); err != nil {
		return r, err
	}
	if len(data) > 0 {
		if err := d.plotEmpirical(sink, den, data); err != nil {
			return r, err
		}
	}

	m := stats.Metropolis{ProposalWidth: cfg.ProposalWidth, Rand: d.Rand}
	chain, err := m.Sample(den, cfg.Samples)
	if err != nil {
		return r, err
	}
	fmt.Fprintf(d.Out, "Sampled %d points, acceptance rate %.2f%%\n\n", len(chain.Xs), chain.AcceptanceRate())
	if len(chain.Xs) > 0 {
		if err := sink.PlotData(chain.Xs, cfg.Bins, false); err != nil {
			return r, err
		}
	}

	s := stats.Sample{Xs: chain.Xs}
	return Result{
		Label:          den.Label(),
		Normalization:  norm,
		AcceptanceRate: chain.AcceptanceRate(),
		Mean:           s.Mean(),
		StdDev:         s.StdDev(),
		KS:             stats.KSDistance(s, stats.Sample{Xs: data}),
	}, nil
}

// plotEmpirical adds the data histogram and its kernel density
// estimate over the domain of den.
func (d *Driver) plotEmpirical(sink plotting.Sink, den stats.Density, data []float64) error {
	lo, hi := den.Domain()
	kde, err := stats.KDE{Label: "Data KDE"}.From(stats.Sample{Xs: data}, lo, hi)
	if err != nil {
		d.Log.Warningf("No kernel density estimate for %s: %v", den.Label(), err)
	} else {
		if _, err := kde.Normalize(d.Config.Partitions); err != nil {
			return err
		}
		if err := sink.PlotDensity(kde); err != nil {
			return err
		}
	}
	return sink.PlotData(data, d.Config.Bins, true)
}
