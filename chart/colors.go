// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("chart.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string ("#rgb", "#rrggbb"
// or "#rrggbbaa") and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = errors.New("bad length")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("chart.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// FromString returns the color for a CSS color name or a hex string.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}
	return FromName(s)
}

// WithAlpha returns the color with its opacity set
// to the given fraction in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}
