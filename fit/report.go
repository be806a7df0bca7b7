// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Best returns the result whose chain is closest to the data by
// Kolmogorov-Smirnov distance. ok is false if no result has a
// distance.
func Best(results []Result) (best Result, ok bool) {
	for _, r := range results {
		if math.IsNaN(r.KS) {
			continue
		}
		if !ok || r.KS < best.KS {
			best, ok = r, true
		}
	}
	return best, ok
}

// Report writes results to w as a table, followed by the best fit.
func Report(w io.Writer, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Density", "Integral", "Acceptance %", "Mean", "Std dev", "KS distance"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.Label,
			fmt.Sprintf("%.6g", r.Normalization),
			fmt.Sprintf("%.2f", r.AcceptanceRate),
			fmt.Sprintf("%.4g", r.Mean),
			fmt.Sprintf("%.4g", r.StdDev),
			fmt.Sprintf("%.4f", r.KS),
		})
	}
	t.Render()

	if best, ok := Best(results); ok {
		fmt.Fprintf(w, "Best fit: %s (KS distance %.4f)\n", best.Label, best.KS)
	}
}
