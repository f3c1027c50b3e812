// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist bins feature values into equal-width histograms
// for plotting feature distributions.
package hist

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"cogentcore.org/curves/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidInput is returned for empty or non-finite data,
// a bin count below one, or values outside a transform's domain.
var ErrInvalidInput = errors.New("invalid input")

// Bin is a single histogram bin covering [Lo, Hi), except for the
// last bin of a histogram which also includes Hi.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Width returns the width of the bin.
func (b Bin) Width() float64 { return b.Hi - b.Lo }

// Histogram counts vals into nbins equal-width bins spanning the minimum
// to the maximum value. If all values are equal, the bins span v-0.5 to v+0.5.
func Histogram(vals []float64, nbins int) ([]Bin, error) {
	if nbins < 1 {
		return nil, fmt.Errorf("hist.Histogram: %d bins: %w", nbins, ErrInvalidInput)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("hist.Histogram: no values: %w", ErrInvalidInput)
	}
	if err := stats.CheckFinite(vals...); err != nil {
		return nil, fmt.Errorf("hist.Histogram: %w: %w", err, ErrInvalidInput)
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	edges := floats.Span(make([]float64, nbins+1), lo, hi)

	// stat.Histogram needs sorted data and excludes the upper divider
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	divs := slices.Clone(edges)
	divs[nbins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, divs, sorted, nil)

	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i] = Bin{Lo: edges[i], Hi: edges[i+1], Count: int(counts[i])}
	}
	return bins, nil
}

// Total returns the number of values counted in the bins.
func Total(bins []Bin) int {
	n := 0
	for _, b := range bins {
		n += b.Count
	}
	return n
}

// MaxCount returns the largest bin count.
func MaxCount(bins []Bin) int {
	mx := 0
	for _, b := range bins {
		mx = max(mx, b.Count)
	}
	return mx
}
