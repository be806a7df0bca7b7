// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config assembles and validates the settings of a run from
// command line flags.
package config

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/aclements/go-finitefunc/logger"
	"github.com/aclements/go-finitefunc/plotting"
	"github.com/aclements/go-finitefunc/stats"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Config holds the settings shared by the finitefit commands.
type Config struct {
	DataFile   string
	PlotDir    string
	PlotFormat string

	RangeMin, RangeMax float64

	Partitions    int
	Bins          int
	Samples       int
	ProposalWidth float64

	// Seed seeds the random source. Zero means a random seed is
	// drawn once in NewConfig and stored here so the run can be
	// repeated.
	Seed uint64

	LogLevel string
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		PlotDir:       PlotDirFlag.Value,
		PlotFormat:    PlotFormatFlag.Value,
		RangeMin:      RangeMinFlag.Value,
		RangeMax:      RangeMaxFlag.Value,
		Partitions:    PartitionsFlag.Value,
		Bins:          BinsFlag.Value,
		Samples:       SamplesFlag.Value,
		ProposalWidth: ProposalWidthFlag.Value,
		LogLevel:      logger.LogLevelFlag.Value,
	}
}

// NewConfig reads the flags of ctx into a validated Config.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		DataFile:      ctx.Path(DataFileFlag.Name),
		PlotDir:       ctx.Path(PlotDirFlag.Name),
		PlotFormat:    ctx.String(PlotFormatFlag.Name),
		RangeMin:      ctx.Float64(RangeMinFlag.Name),
		RangeMax:      ctx.Float64(RangeMaxFlag.Name),
		Partitions:    ctx.Int(PartitionsFlag.Name),
		Bins:          ctx.Int(BinsFlag.Name),
		Samples:       ctx.Int(SamplesFlag.Name),
		ProposalWidth: ctx.Float64(ProposalWidthFlag.Name),
		Seed:          ctx.Uint64(SeedFlag.Name),
		LogLevel:      ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (cfg *Config) Validate() error {
	switch {
	case math.IsNaN(cfg.RangeMin) || math.IsInf(cfg.RangeMin, 0) ||
		math.IsNaN(cfg.RangeMax) || math.IsInf(cfg.RangeMax, 0) ||
		cfg.RangeMin >= cfg.RangeMax:
		return errors.Wrapf(stats.ErrInvalidArgument, "range [%v, %v] is empty or unbounded", cfg.RangeMin, cfg.RangeMax)
	case cfg.Partitions < 1:
		return errors.Wrapf(stats.ErrInvalidArgument, "partitions must be positive, got %d", cfg.Partitions)
	case cfg.Bins < 1:
		return errors.Wrapf(stats.ErrInvalidArgument, "bins must be positive, got %d", cfg.Bins)
	case cfg.Samples < 0:
		return errors.Wrapf(stats.ErrInvalidArgument, "samples must not be negative, got %d", cfg.Samples)
	case !(cfg.ProposalWidth > 0) || math.IsInf(cfg.ProposalWidth, 0):
		return errors.Wrapf(stats.ErrInvalidArgument, "proposal width must be positive, got %v", cfg.ProposalWidth)
	}
	if !slices.Contains(plotting.Formats, cfg.PlotFormat) {
		return errors.Wrapf(stats.ErrInvalidArgument, "unknown plot format %q, want one of %v", cfg.PlotFormat, plotting.Formats)
	}
	return nil
}

// Rand returns a random source seeded from cfg.Seed.
func (cfg *Config) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>32|cfg.Seed<<32))
}
