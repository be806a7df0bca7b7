// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"os"

	"github.com/aclements/go-finitefunc/stats"
	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"gonum.org/v1/gonum/floats"
)

// htmlCurvePoints is the number of points a curve is reduced to
// before it is embedded in the page.
const htmlCurvePoints = 120

// htmlFigure draws an echarts line chart and renders it to an HTML
// page on Close.
type htmlFigure struct {
	path   string
	chart  *charts.Line
	domain domain
}

func newHTMLFigure(path, title string) *htmlFigure {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: title,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "density"}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	return &htmlFigure{path: path, chart: chart}
}

// curvePoints samples f over [lo, hi] and compresses the polyline
// with the Visvalingam-Whyatt algorithm. See
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func curvePoints(f func(float64) float64, lo, hi float64) [][2]float64 {
	xs := floats.Span(make([]float64, curveSamples), lo, hi)
	ls := make(orb.LineString, len(xs))
	for i, x := range xs {
		ls[i] = orb.Point{x, f(x)}
	}
	simplified := simplify.VisvalingamKeep(htmlCurvePoints).Simplify(ls).(orb.LineString)
	points := make([][2]float64, len(simplified))
	for i := range simplified {
		points[i] = [2]float64(simplified[i])
	}
	return points
}

// convertCurveData converts curve points to chart points.
func convertCurveData(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

func (f *htmlFigure) PlotDensity(d stats.Density) error {
	f.domain.update(d)
	lo, hi := d.Domain()
	f.chart.AddSeries(d.Label(), convertCurveData(curvePoints(stats.Normalized(d), lo, hi)))
	return nil
}

func (f *htmlFigure) PlotData(xs []float64, bins int, empirical bool) error {
	b, err := f.domain.histogram(xs, bins)
	if err != nil {
		return err
	}
	points := make([][2]float64, len(b.heights))
	for i, y := range b.heights {
		points[i] = [2]float64{b.centre(i), y}
	}
	f.chart.AddSeries(dataLabel(empirical), convertCurveData(points))
	return nil
}

func (f *htmlFigure) Close() error {
	w, err := os.Create(f.path)
	if err != nil {
		return errors.Wrapf(err, "create plot %s", f.path)
	}
	if err := f.chart.Render(w); err != nil {
		w.Close()
		return errors.Wrapf(err, "render plot %s", f.path)
	}
	return w.Close()
}
