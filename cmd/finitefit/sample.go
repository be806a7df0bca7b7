// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-finitefunc/config"
	"github.com/aclements/go-finitefunc/dataset"
	"github.com/aclements/go-finitefunc/fit"
	"github.com/aclements/go-finitefunc/logger"
	"github.com/aclements/go-finitefunc/plotting"
	"github.com/aclements/go-finitefunc/stats"
	"github.com/urfave/cli/v2"
)

// sample draws a chain from one density, writes it as a dataset and
// plots it against the density.
func sample(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "finitefit")

	den, err := fit.NewDensity(ctx.String(config.DensityFlag.Name), cfg.RangeMin, cfg.RangeMax)
	if err != nil {
		return err
	}
	if _, err := den.Normalize(cfg.Partitions); err != nil {
		return err
	}

	log.Infof("Generating %d samples from %s (seed %d)", cfg.Samples, den.Label(), cfg.Seed)
	m := stats.Metropolis{ProposalWidth: cfg.ProposalWidth, Rand: cfg.Rand()}
	chain, err := m.Sample(den, cfg.Samples)
	if err != nil {
		return err
	}
	log.Noticef("Sampled %d points, acceptance rate %.2f%%", len(chain.Xs), chain.AcceptanceRate())

	if out := ctx.Path(config.OutputFlag.Name); out != "" {
		err = dataset.Save(out, chain.Xs)
	} else {
		err = dataset.Write(ctx.App.Writer, chain.Xs)
	}
	if err != nil {
		return err
	}

	if len(chain.Xs) == 0 {
		return nil
	}
	sink, err := plotting.New(cfg.PlotFormat, cfg.PlotDir, den.Label()+"_Sampled")
	if err != nil {
		return err
	}
	if err := sink.PlotDensity(den); err != nil {
		sink.Close()
		return err
	}
	if err := sink.PlotData(chain.Xs, cfg.Bins, false); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}
