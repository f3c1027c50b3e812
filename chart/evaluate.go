// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/curves/learners"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// EvaluateTitle is the default title of a learner comparison figure.
const EvaluateTitle = "Performance Metrics for Supervised Learning Models"

// baselineDashes are the dash patterns of successive baselines.
var baselineDashes = [][]vg.Length{
	{vg.Points(6), vg.Points(3)},
	{vg.Points(2), vg.Points(2)},
	{vg.Points(6), vg.Points(2), vg.Points(2), vg.Points(2)},
}

// MetricPlot returns a grouped bar plot of the metric, with one bar per
// learner at each sample size, and dashed lines for the baselines of
// score metrics.
func MetricPlot(rs *learners.Results, m learners.Metric, baselines []learners.Baseline, opts *Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = m.Title()
	p.X.Label.Text = "Training Set Size"
	p.Y.Label.Text = m.YLabel()

	n := rs.Learners.Len()
	w := vg.Points(opts.BarWidth)
	for li := range n {
		bc, err := plotter.NewBarChart(plotter.Values(rs.Series(li, m)), w)
		if err != nil {
			return nil, fmt.Errorf("chart.MetricPlot: %s %s: %w", rs.Learners.KeyByIndex(li), m, err)
		}
		bc.Color = opts.paletteColor(li)
		bc.LineStyle.Width = 0
		bc.Offset = vg.Length(float64(li)-float64(n-1)/2) * w
		p.Add(bc)
		p.Legend.Add(rs.Learners.KeyByIndex(li), bc)
	}
	p.NominalX(rs.SampleLabels...)

	if m.IsTime() {
		p.Y.Min = 0
		return p, nil
	}
	lo, hi := rs.Range(m)
	for bi := range baselines {
		v, ok := baselines[bi].Value(m)
		if !ok {
			continue
		}
		fn := plotter.NewFunction(func(float64) float64 { return v })
		fn.Color = color.Black
		fn.Width = vg.Points(2)
		fn.Dashes = baselineDashes[bi%len(baselineDashes)]
		p.Add(fn)
		p.Legend.Add(baselines[bi].Name, fn)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	pad := math.Max((hi-lo)*0.1, 0.01)
	p.Y.Min = lo - pad
	p.Y.Max = hi + pad
	return p, nil
}

// Evaluate returns a two by three figure comparing the learners on
// each metric: training metrics on the top row and testing metrics on
// the bottom. The legend is drawn once, on the training accuracy panel,
// which has entries for both the learners and the baselines.
func Evaluate(rs *learners.Results, baselines []learners.Baseline, title string, opts *Options) (*Figure, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if title == "" {
		title = EvaluateTitle
	}
	f := NewFigure(title, 2, 3, opts)
	for m := range learners.MetricN {
		p, err := MetricPlot(rs, m, baselines, opts)
		if err != nil {
			return nil, err
		}
		if m != learners.AccTrain {
			p.Legend = plot.NewLegend()
		}
		p.Legend.Top = true
		f.Set(int(m)/3, int(m)%3, p)
	}
	return f, nil
}
