// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders aggregated curves, histograms and learner
// comparisons as figures of one or more gonum plots.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ErrFormat is returned for an unsupported output format.
var ErrFormat = errors.New("unsupported output format")

// Formats are the supported output formats.
var Formats = []string{"png", "jpg", "svg", "pdf"}

// Figure is a grid of plots drawn onto one canvas, with an
// optional title above the grid.
type Figure struct {
	Title string

	// TitleSize is the font size of the title.
	TitleSize vg.Length

	// Plots are the panels, in rows of equal length.
	Plots [][]*plot.Plot

	// Options are the options the figure was made with.
	Options *Options
}

// NewFigure returns a figure of rows by cols empty panels.
// Panels that are not replaced are drawn blank.
func NewFigure(title string, rows, cols int, opts *Options) *Figure {
	f := &Figure{Title: title, TitleSize: vg.Points(16), Options: opts}
	f.Plots = make([][]*plot.Plot, rows)
	for r := range f.Plots {
		f.Plots[r] = make([]*plot.Plot, cols)
		for c := range f.Plots[r] {
			blank := plot.New()
			blank.HideAxes()
			f.Plots[r][c] = blank
		}
	}
	return f
}

// Rows returns the number of rows of panels.
func (f *Figure) Rows() int { return len(f.Plots) }

// Cols returns the number of columns of panels.
func (f *Figure) Cols() int {
	if len(f.Plots) == 0 {
		return 0
	}
	return len(f.Plots[0])
}

// Set sets the panel at the given row and column.
func (f *Figure) Set(row, col int, p *plot.Plot) {
	f.Plots[row][col] = p
}

// Draw draws the figure onto the canvas.
func (f *Figure) Draw(dc draw.Canvas) {
	body := dc
	if f.Title != "" {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, f.TitleSize),
			XAlign:  text.XCenter,
			YAlign:  text.YTop,
			Handler: plot.DefaultTextHandler,
		}
		pad := f.TitleSize / 2
		x := (dc.Min.X + dc.Max.X) / 2
		dc.FillText(sty, vg.Point{X: x, Y: dc.Max.Y - pad}, f.Title)
		body = draw.Crop(dc, 0, 0, 0, -(sty.Height(f.Title) + 2*pad))
	}
	if f.Rows() == 0 || f.Cols() == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(f.Plots, tiles, body)
	for r, row := range f.Plots {
		for c, p := range row {
			p.Draw(canvases[r][c])
		}
	}
}

// canvasWriter is a canvas that can write itself out.
type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(format string, w, h vg.Length, dpi int) (canvasWriter, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("chart: %q: %w", format, ErrFormat)
}

// Encode renders the figure in the given format ("png", "svg", ...) to w.
func (f *Figure) Encode(w io.Writer, format string) error {
	opts := f.Options
	if opts == nil {
		opts = DefaultOptions()
	}
	wd, ht := opts.size()
	c, err := newCanvas(format, wd, ht, opts.DPI)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// Bytes renders the figure in the given format.
func (f *Figure) Bytes(format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save renders the figure to the named file, in the format
// given by the file extension.
func (f *Figure) Save(path string) error {
	b, err := f.Bytes(filepath.Ext(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
