// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrNonFinite is returned by [CheckFinite] for NaN or Inf values.
var ErrNonFinite = errors.New("non-finite value")

// CheckFinite returns [ErrNonFinite] if any value is NaN or Inf.
func CheckFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n < 1 returns nil and n == 1 returns start.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Rint rounds each value to the nearest integer, with halves
// going to the even integer.
func Rint(vals []float64) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(math.RoundToEven(v))
	}
	return out
}
