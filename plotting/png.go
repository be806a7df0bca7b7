// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"image/color"

	"github.com/aclements/go-finitefunc/stats"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const curveSamples = 500

var (
	curveColors = []color.Color{
		color.RGBA{R: 204, A: 255},
		color.RGBA{G: 128, B: 204, A: 255},
		color.RGBA{R: 153, B: 153, A: 255},
	}
	empiricalFill = color.RGBA{R: 160, G: 160, B: 160, A: 160}
	sampledLine   = color.RGBA{B: 220, A: 255}
)

// pngFigure draws with gonum/plot and saves a PNG image on Close.
type pngFigure struct {
	path   string
	plot   *plot.Plot
	domain domain
	curves int
}

func newPNGFigure(path, title string) *pngFigure {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"
	p.Legend.Top = true
	return &pngFigure{path: path, plot: p}
}

func (f *pngFigure) PlotDensity(d stats.Density) error {
	f.domain.update(d)
	lo, hi := d.Domain()

	fn := plotter.NewFunction(stats.Normalized(d))
	fn.XMin, fn.XMax = lo, hi
	fn.Samples = curveSamples
	fn.Width = vg.Points(2)
	fn.Color = curveColors[f.curves%len(curveColors)]
	f.curves++

	f.plot.Add(fn)
	f.plot.Legend.Add(d.Label(), fn)
	return nil
}

func (f *pngFigure) PlotData(xs []float64, bins int, empirical bool) error {
	b, err := f.domain.histogram(xs, bins)
	if err != nil {
		return err
	}

	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(b.heights)),
		Width:     b.width,
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, y := range b.heights {
		min := b.lo + b.width*float64(i)
		h.Bins[i] = plotter.HistogramBin{Min: min, Max: min + b.width, Weight: y}
	}
	if empirical {
		h.FillColor = empiricalFill
	} else {
		h.LineStyle.Color = sampledLine
		h.LineStyle.Width = vg.Points(1.5)
	}

	f.plot.Add(h)
	f.plot.Legend.Add(dataLabel(empirical), h)
	return nil
}

func (f *pngFigure) Close() error {
	if err := f.plot.Save(8*vg.Inch, 5*vg.Inch, f.path); err != nil {
		return errors.Wrapf(err, "save plot %s", f.path)
	}
	return nil
}
