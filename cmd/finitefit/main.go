// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// finitefit compares bounded densities against an empirical dataset
// and samples from them with a Metropolis chain.
//
// Usage:
//
//	finitefit describe [FILE...]
//	finitefit compare --data FILE [--candidate NAME...]
//	finitefit sample --density NAME [--output FILE]
package main

import (
	"fmt"
	"os"

	"github.com/aclements/go-finitefunc/config"
	"github.com/aclements/go-finitefunc/logger"
	"github.com/urfave/cli/v2"
)

// runFlags are shared by the commands that build a config.Config.
var runFlags = []cli.Flag{
	&config.DataFileFlag,
	&config.PlotDirFlag,
	&config.PlotFormatFlag,
	&config.RangeMinFlag,
	&config.RangeMaxFlag,
	&config.PartitionsFlag,
	&config.BinsFlag,
	&config.SamplesFlag,
	&config.ProposalWidthFlag,
	&config.SeedFlag,
	&logger.LogLevelFlag,
}

func main() {
	app := &cli.App{
		Name:     "finitefit",
		HelpName: "finitefit",
		Usage:    "compare and sample densities over a finite domain",
		Commands: []*cli.Command{
			{
				Name:      "describe",
				Usage:     "summarize a dataset read from files or stdin",
				ArgsUsage: "[FILE...]",
				Action:    describe,
			},
			{
				Name:   "compare",
				Usage:  "normalize, plot and sample candidate densities against a dataset",
				Flags:  append([]cli.Flag{&config.CandidateFlag}, runFlags...),
				Action: compare,
			},
			{
				Name:   "sample",
				Usage:  "draw a Metropolis chain from one density",
				Flags:  append([]cli.Flag{&config.DensityFlag, &config.OutputFlag}, runFlags...),
				Action: sample,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
