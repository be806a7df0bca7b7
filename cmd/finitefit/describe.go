// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-finitefunc/config"
	"github.com/aclements/go-finitefunc/dataset"
	"github.com/aclements/go-finitefunc/stats"
	"github.com/urfave/cli/v2"
)

// describe reads numbers from the files named on the command line,
// or stdin if there are none, and describes their distribution.
func describe(ctx *cli.Context) error {
	var s stats.Sample
	if ctx.NArg() == 0 {
		xs, err := dataset.Read(ctx.App.Reader)
		if err != nil {
			return err
		}
		s.Xs = xs
	}
	for _, path := range ctx.Args().Slice() {
		xs, err := dataset.Load(path)
		if err != nil {
			return err
		}
		s.Xs = append(s.Xs, xs...)
	}
	if len(s.Xs) == 0 {
		return cli.Exit("no data to describe", 1)
	}
	return printSummary(ctx.App.Writer, s)
}

func printSummary(w io.Writer, s stats.Sample) error {
	s.Sort()

	fmt.Fprintf(w, "N %d  mean %.6g  std dev %.6g\n", len(s.Xs), s.Mean(), s.StdDev())
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	if ci, err := s.QuantileCI(0.5, 0.95); err == nil {
		fmt.Fprintf(w, "median 95%% CI [%.6g, %.6g] (%.1f%% coverage)\n", ci.Lo, ci.Hi, 100*ci.Confidence)
	}
	fmt.Fprintln(w)

	// Kernel density estimate over the range of the data.
	lo, hi := s.Bounds()
	if lo == hi {
		return nil
	}
	kde, err := stats.KDE{}.From(s, lo, hi)
	if err != nil {
		return err
	}
	if _, err := kde.Normalize(config.PartitionsFlag.Value); err != nil {
		return err
	}
	return kde.Describe(w)
}
