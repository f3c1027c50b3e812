// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"cogentcore.org/curves/importance"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// FeaturesTitle is the default title of a feature weight figure.
const FeaturesTitle = "Normalized Weights for Most Predictive Features"

// Features returns a figure of feature weights in rank order, with a
// narrower bar of the cumulative weight beside each.
func Features(fs []importance.Feature, title string, opts *Options) (*Figure, error) {
	if len(fs) == 0 {
		return nil, fmt.Errorf("chart.Features: no features: %w", importance.ErrInvalidInput)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if title == "" {
		title = FeaturesTitle
	}
	w := vg.Points(opts.BarWidth * 3)
	wt, err := plotter.NewBarChart(plotter.Values(importance.Weights(fs)), w)
	if err != nil {
		return nil, err
	}
	wt.Color = opts.paletteColor(2)
	wt.LineStyle.Width = 0

	cum, err := plotter.NewBarChart(plotter.Values(importance.Cumulatives(fs)), w/3)
	if err != nil {
		return nil, err
	}
	cum.Color = opts.paletteColor(1)
	cum.LineStyle.Width = 0
	cum.Offset = -w / 2

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Feature"
	p.Y.Label.Text = "Weight"
	p.Add(wt, cum)
	p.Legend.Add("Feature Weight", wt)
	p.Legend.Add("Cumulative Feature Weight", cum)
	p.Legend.Top = true
	p.NominalX(importance.Names(fs)...)
	p.Y.Min = 0

	f := NewFigure("", 1, 1, opts)
	f.Set(0, 0, p)
	return f, nil
}
