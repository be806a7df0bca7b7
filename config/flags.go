// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "github.com/urfave/cli/v2"

var (
	DataFileFlag = cli.PathFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "file of observed values, whitespace or newline separated (.gz accepted)",
	}
	PlotDirFlag = cli.PathFlag{
		Name:  "plot-dir",
		Usage: "directory plots are written to",
		Value: "Plots",
	}
	PlotFormatFlag = cli.StringFlag{
		Name:  "plot-format",
		Usage: "plot format: png, html or none",
		Value: "png",
	}
	RangeMinFlag = cli.Float64Flag{
		Name:  "range-min",
		Usage: "lower bound of the analysis domain",
		Value: -10,
	}
	RangeMaxFlag = cli.Float64Flag{
		Name:  "range-max",
		Usage: "upper bound of the analysis domain",
		Value: 10,
	}
	PartitionsFlag = cli.IntFlag{
		Name:  "partitions",
		Usage: "number of sub-intervals used to normalize densities",
		Value: 1000,
	}
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "number of histogram bins in plots",
		Value: 50,
	}
	SamplesFlag = cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of Metropolis steps per density",
		Value:   10000,
	}
	ProposalWidthFlag = cli.Float64Flag{
		Name:  "proposal-width",
		Usage: "standard deviation of Metropolis proposals",
		Value: 1.5,
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random source (default: random)",
	}
	CandidateFlag = cli.StringSliceFlag{
		Name:  "candidate",
		Usage: "density compared against the data (repeatable; default: normal, cauchy, crystalball)",
	}
	DensityFlag = cli.StringFlag{
		Name:  "density",
		Usage: "density to sample: normal, cauchy, crystalball or default",
		Value: "crystalball",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file the chain is written to (.gz compresses; default: stdout)",
	}
)
