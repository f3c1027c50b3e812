// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"cogentcore.org/curves/curve"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CurvePanel is one learning or validation curve to draw.
type CurvePanel struct {
	// Label is the panel title.
	Label string

	Pair *curve.Pair
}

// CurveLabels name the parts of a curve chart.
type CurveLabels struct {
	Title     string
	XLabel    string
	YLabel    string
	TrainName string
	TestName  string
}

// Default fills in empty labels.
func (lb *CurveLabels) Default() {
	if lb.YLabel == "" {
		lb.YLabel = "Score"
	}
	if lb.TrainName == "" {
		lb.TrainName = "Training Score"
	}
	if lb.TestName == "" {
		lb.TestName = "Testing Score"
	}
}

// AddCurve adds a mean line with points, and a shaded band of one
// standard deviation on either side, for the aggregated curve.
// The curve is added to the legend under the given name.
func AddCurve(p *plot.Plot, ac curve.AggregatedCurve, clr color.Color, alpha float64, name string) error {
	if len(ac) == 0 {
		return fmt.Errorf("chart.AddCurve: %q has no points: %w", name, curve.ErrInvalidInput)
	}
	lo, hi := ac.Band()
	band := make(plotter.XYs, 0, 2*len(ac))
	for i := range ac {
		band = append(band, plotter.XY{X: ac[i].Sweep, Y: hi[i]})
	}
	for i := len(ac) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: ac[i].Sweep, Y: lo[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = WithAlpha(clr, alpha)
	poly.LineStyle.Width = 0

	means := make(plotter.XYs, len(ac))
	for i, pt := range ac {
		means[i] = plotter.XY{X: pt.Sweep, Y: pt.Mean}
	}
	line, pts, err := plotter.NewLinePoints(means)
	if err != nil {
		return err
	}
	line.Color = clr
	line.Width = vg.Points(1.5)
	pts.Color = clr
	pts.Shape = draw.CircleGlyph{}
	pts.Radius = vg.Points(2.5)

	p.Add(poly, line, pts)
	p.Legend.Add(name, line, pts)
	return nil
}

// CurvePlot returns a plot of the training and testing curves of a pair.
func CurvePlot(title string, pr *curve.Pair, lb CurveLabels, opts *Options) (*plot.Plot, error) {
	lb.Default()
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = lb.XLabel
	p.Y.Label.Text = lb.YLabel
	if err := AddCurve(p, pr.Train, opts.color(opts.TrainColor), opts.BandAlpha, lb.TrainName); err != nil {
		return nil, err
	}
	if err := AddCurve(p, pr.Test, opts.color(opts.TestColor), opts.BandAlpha, lb.TestName); err != nil {
		return nil, err
	}
	p.Y.Min = opts.ScoreMin
	p.Y.Max = opts.ScoreMax
	p.Legend.Top = false
	p.Legend.Left = false
	return p, nil
}

// Learning returns a figure with one learning curve panel per model,
// laid out opts.Columns to a row. Only the first panel has a legend.
func Learning(panels []CurvePanel, lb CurveLabels, opts *Options) (*Figure, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("chart.Learning: no panels: %w", curve.ErrInvalidInput)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	cols := min(max(opts.Columns, 1), len(panels))
	rows := (len(panels) + cols - 1) / cols
	f := NewFigure(lb.Title, rows, cols, opts)
	for i, pn := range panels {
		p, err := CurvePlot(pn.Label, pn.Pair, lb, opts)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", pn.Label, err)
		}
		if i > 0 {
			p.Legend = plot.NewLegend()
		}
		f.Set(i/cols, i%cols, p)
	}
	return f, nil
}

// Complexity returns a figure with a single validation curve,
// with the pair's testing curve named as the validation score.
func Complexity(pr *curve.Pair, lb CurveLabels, opts *Options) (*Figure, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if lb.TestName == "" {
		lb.TestName = "Validation Score"
	}
	p, err := CurvePlot(lb.Title, pr, lb, opts)
	if err != nil {
		return nil, err
	}
	f := NewFigure("", 1, 1, opts)
	f.Set(0, 0, p)
	return f, nil
}
