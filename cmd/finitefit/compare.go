// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-finitefunc/config"
	"github.com/aclements/go-finitefunc/dataset"
	"github.com/aclements/go-finitefunc/fit"
	"github.com/aclements/go-finitefunc/logger"
	"github.com/urfave/cli/v2"
)

// compare runs every candidate against the dataset and prints a
// report ranking them.
func compare(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "finitefit")
	log.Debugf("Seed %d", cfg.Seed)

	var data []float64
	if cfg.DataFile == "" {
		log.Warning("No --data given; comparing candidates without data")
	} else {
		data, err = dataset.Load(cfg.DataFile)
		if err != nil {
			return err
		}
		log.Infof("Read %d data points from %s", len(data), cfg.DataFile)
	}

	names := ctx.StringSlice(config.CandidateFlag.Name)
	if len(names) == 0 {
		names = fit.DefaultNames
	}
	candidates, err := fit.Candidates(names, cfg.RangeMin, cfg.RangeMax)
	if err != nil {
		return err
	}

	results, err := fit.NewDriver(cfg, log, ctx.App.Writer).Run(candidates, data)
	if err != nil {
		return err
	}
	fit.Report(ctx.App.Writer, results)
	if cfg.PlotFormat != "none" {
		log.Noticef("Plots written to %s", cfg.PlotDir)
	}
	return nil
}
