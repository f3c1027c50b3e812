// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Options are the rendering options shared by all charts.
type Options struct {

	// Width of the figure in inches.
	Width float64 `toml:"width" validate:"gt=0"`

	// Height of the figure in inches.
	Height float64 `toml:"height" validate:"gt=0"`

	// DPI is the resolution of raster output.
	DPI int `toml:"dpi" validate:"gte=36,lte=1200"`

	// Font is the typeface: "default" or "latin-modern".
	Font string `toml:"font" validate:"oneof=default latin-modern"`

	// Columns is the number of panels per row of a learning curve figure.
	Columns int `toml:"columns" validate:"gte=1"`

	// TrainColor is the color of training score curves.
	TrainColor string `toml:"train_color" validate:"chartcolor"`

	// TestColor is the color of testing score curves.
	TestColor string `toml:"test_color" validate:"chartcolor"`

	// BandAlpha is the opacity of the standard deviation bands.
	BandAlpha float64 `toml:"band_alpha" validate:"gte=0,lte=1"`

	// ScoreMin and ScoreMax are the score axis range of curve charts.
	ScoreMin float64 `toml:"score_min"`
	ScoreMax float64 `toml:"score_max" validate:"gtfield=ScoreMin"`

	// HistColor is the fill color of histogram bars.
	HistColor string `toml:"hist_color" validate:"chartcolor"`

	// HistYMax caps the histogram count axis; zero fits the data.
	HistYMax float64 `toml:"hist_ymax" validate:"gte=0"`

	// Palette colors the learners of a comparison chart in order.
	Palette []string `toml:"palette" validate:"min=1,dive,chartcolor"`

	// BarWidth is the width of a single bar in points.
	BarWidth float64 `toml:"bar_width" validate:"gt=0"`
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.Width = 10
	o.Height = 7
	o.DPI = 96
	o.Font = "default"
	o.Columns = 2
	o.TrainColor = "red"
	o.TestColor = "green"
	o.BandAlpha = 0.15
	o.ScoreMin = -0.05
	o.ScoreMax = 1.05
	o.HistColor = "#00A0A0"
	o.HistYMax = 0
	o.Palette = []string{"#A00000", "#00A0A0", "#00A000", "#FB8B24", "#D90368"}
	o.BarWidth = 12
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// size returns the figure size.
func (o *Options) size() (w, h vg.Length) {
	return vg.Length(o.Width) * vg.Inch, vg.Length(o.Height) * vg.Inch
}

// color returns the parsed color, falling back to black
// for colors that do not parse.
func (o *Options) color(s string) color.Color {
	c, err := FromString(s)
	if err != nil {
		return color.Black
	}
	return c
}

// paletteColor returns the palette color for item i, cycling the palette.
func (o *Options) paletteColor(i int) color.Color {
	if len(o.Palette) == 0 {
		return color.Black
	}
	return o.color(o.Palette[i%len(o.Palette)])
}
