// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"cogentcore.org/curves/hist"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// DistributionTitle returns the figure title for distributions of the
// given subject, such as "Discrete Race Data Features".
func DistributionTitle(subject string, transformed bool) string {
	if subject == "" {
		subject = "Features"
	}
	if transformed {
		return "Log-transformed Distributions of " + subject
	}
	return "Skewed Distributions of " + subject
}

// HistogramPlot returns a histogram plot of one feature distribution.
func HistogramPlot(d *hist.Distribution, opts *Options) (*plot.Plot, error) {
	if len(d.Bins) == 0 {
		return nil, fmt.Errorf("chart.HistogramPlot: %q has no bins: %w", d.Feature, hist.ErrInvalidInput)
	}
	bins := make([]plotter.HistogramBin, len(d.Bins))
	for i, b := range d.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Lo, Max: b.Hi, Weight: float64(b.Count)}
	}
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     d.Bins[0].Width(),
		FillColor: opts.color(opts.HistColor),
		LineStyle: plotter.DefaultLineStyle,
	}
	h.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = fmt.Sprintf("'%s' Feature Distribution", d.Feature)
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Number of Records"
	p.Add(h)
	p.Y.Min = 0
	if opts.HistYMax > 0 {
		p.Y.Max = opts.HistYMax
	}
	return p, nil
}

// Distribution returns a figure with one histogram panel per feature,
// side by side.
func Distribution(ds []hist.Distribution, subject string, opts *Options) (*Figure, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("chart.Distribution: no features: %w", hist.ErrInvalidInput)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	f := NewFigure(DistributionTitle(subject, ds[0].Transformed()), 1, len(ds), opts)
	for i := range ds {
		p, err := HistogramPlot(&ds[i], opts)
		if err != nil {
			return nil, err
		}
		f.Set(0, i, p)
	}
	return f, nil
}
