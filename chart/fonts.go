// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
)

var (
	defaultFont = plot.DefaultFont
	lmOnce      sync.Once
	lmFont      = font.Font{Typeface: "Latin Modern", Variant: "Serif"}
	lmErr       error
)

// UseFont sets the typeface of charts created afterwards:
// "default" or "latin-modern".
func UseFont(name string) error {
	switch name {
	case "", "default":
		plot.DefaultFont = defaultFont
	case "latin-modern":
		lmOnce.Do(func() { lmErr = addLatinModern() })
		if lmErr != nil {
			return lmErr
		}
		plot.DefaultFont = lmFont
	default:
		return fmt.Errorf("chart.UseFont: unknown font %q", name)
	}
	plotter.DefaultFont = plot.DefaultFont
	return nil
}

func addLatinModern() error {
	faces := []struct {
		ttf    []byte
		style  xfont.Style
		weight xfont.Weight
	}{
		{lmroman10regular.TTF, xfont.StyleNormal, xfont.WeightNormal},
		{lmroman10bold.TTF, xfont.StyleNormal, xfont.WeightBold},
		{lmroman10italic.TTF, xfont.StyleItalic, xfont.WeightNormal},
	}
	var coll font.Collection
	for _, f := range faces {
		face, err := opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("chart.UseFont: latin-modern: %w", err)
		}
		fnt := lmFont
		fnt.Style = f.style
		fnt.Weight = f.weight
		coll = append(coll, font.Face{Font: fnt, Face: face})
	}
	font.DefaultCache.Add(coll)
	return nil
}
