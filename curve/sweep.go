// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"cogentcore.org/curves/stats"
)

// TrainSizes returns count training set sizes for a learning curve over
// nSamples records with testFrac held out for testing: evenly spaced from
// 1 up to one less than the training split, rounded to integers.
func TrainSizes(nSamples int, testFrac float64, count int) ([]int, error) {
	if nSamples < 2 || count < 1 || testFrac < 0 || testFrac >= 1 {
		return nil, fmt.Errorf("curve.TrainSizes: samples %d, test fraction %g, count %d: %w", nSamples, testFrac, count, ErrInvalidInput)
	}
	hi := float64(nSamples)*(1-testFrac) - 1
	if hi < 1 {
		return nil, fmt.Errorf("curve.TrainSizes: training split of %d samples is too small: %w", nSamples, ErrInvalidInput)
	}
	return stats.Rint(stats.Linspace(1, hi, count)), nil
}

// DepthRange returns the model complexity sweep lo, lo+1, ..., hi.
func DepthRange(lo, hi int) ([]int, error) {
	if lo < 1 || hi < lo {
		return nil, fmt.Errorf("curve.DepthRange: [%d, %d]: %w", lo, hi, ErrInvalidInput)
	}
	ds := make([]int, 0, hi-lo+1)
	for d := lo; d <= hi; d++ {
		ds = append(ds, d)
	}
	return ds, nil
}

// Floats converts integer sweep values to float64.
func Floats(vs []int) []float64 {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		fs[i] = float64(v)
	}
	return fs
}
