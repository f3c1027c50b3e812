// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve aggregates cross-validation scores measured over a
// parameter sweep (training set size or model complexity) into
// mean and standard deviation curves for plotting.
package curve

import (
	"errors"
	"fmt"

	"cogentcore.org/curves/stats"
)

// ErrInvalidInput is returned for a malformed [ScoreMatrix]:
// no points, a point with zero folds, ragged fold counts,
// a sweep of the wrong length, or non-finite values.
var ErrInvalidInput = errors.New("invalid input")

// ScoreMatrix holds the per-fold scores at each point of a parameter sweep.
type ScoreMatrix struct {

	// Sweep is the parameter value at each point. If nil, the index of
	// the point is used as its sweep value.
	Sweep []float64

	// Scores has one row per sweep point with one score per fold.
	// Every row must have the same number of folds.
	Scores [][]float64
}

// Point is one entry of an [AggregatedCurve].
type Point struct {
	Sweep float64 `json:"sweep" yaml:"sweep" toml:"sweep"`
	Mean  float64 `json:"mean" yaml:"mean" toml:"mean"`
	Std   float64 `json:"std" yaml:"std" toml:"std"`
}

// AggregatedCurve has one [Point] per sweep point, in sweep order.
type AggregatedCurve []Point

// Folds returns the number of folds per point, after checking
// that the matrix is well formed.
func (sm *ScoreMatrix) Folds() (int, error) {
	np := len(sm.Scores)
	if np == 0 {
		return 0, fmt.Errorf("curve.ScoreMatrix: no sweep points: %w", ErrInvalidInput)
	}
	if sm.Sweep != nil {
		if len(sm.Sweep) != np {
			return 0, fmt.Errorf("curve.ScoreMatrix: %d sweep values for %d points: %w", len(sm.Sweep), np, ErrInvalidInput)
		}
		if err := stats.CheckFinite(sm.Sweep...); err != nil {
			return 0, fmt.Errorf("curve.ScoreMatrix: sweep: %w: %w", err, ErrInvalidInput)
		}
	}
	nf := len(sm.Scores[0])
	for i, row := range sm.Scores {
		switch {
		case len(row) == 0:
			return 0, fmt.Errorf("curve.ScoreMatrix: point %d has no folds: %w", i, ErrInvalidInput)
		case len(row) != nf:
			return 0, fmt.Errorf("curve.ScoreMatrix: point %d has %d folds, expected %d: %w", i, len(row), nf, ErrInvalidInput)
		}
		if err := stats.CheckFinite(row...); err != nil {
			return 0, fmt.Errorf("curve.ScoreMatrix: point %d: %w: %w", i, err, ErrInvalidInput)
		}
	}
	return nf, nil
}

// SweepValue returns the sweep value of point i.
func (sm *ScoreMatrix) SweepValue(i int) float64 {
	if sm.Sweep == nil {
		return float64(i)
	}
	return sm.Sweep[i]
}

// Aggregate computes the mean and population standard deviation
// of the fold scores at each sweep point. The matrix is not modified
// and the result is a deterministic function of it.
func Aggregate(sm *ScoreMatrix) (AggregatedCurve, error) {
	if sm == nil {
		return nil, fmt.Errorf("curve.Aggregate: nil matrix: %w", ErrInvalidInput)
	}
	if _, err := sm.Folds(); err != nil {
		return nil, err
	}
	ac := make(AggregatedCurve, len(sm.Scores))
	for i, row := range sm.Scores {
		mean, std := stats.MeanStdPop(row)
		ac[i] = Point{Sweep: sm.SweepValue(i), Mean: mean, Std: std}
	}
	return ac, nil
}

// Sweeps returns the sweep value of each point.
func (ac AggregatedCurve) Sweeps() []float64 {
	vs := make([]float64, len(ac))
	for i, p := range ac {
		vs[i] = p.Sweep
	}
	return vs
}

// Means returns the mean of each point.
func (ac AggregatedCurve) Means() []float64 {
	vs := make([]float64, len(ac))
	for i, p := range ac {
		vs[i] = p.Mean
	}
	return vs
}

// Stds returns the standard deviation of each point.
func (ac AggregatedCurve) Stds() []float64 {
	vs := make([]float64, len(ac))
	for i, p := range ac {
		vs[i] = p.Std
	}
	return vs
}

// Band returns mean - std and mean + std at each point,
// the bounds of the shaded region drawn around a curve.
func (ac AggregatedCurve) Band() (lower, upper []float64) {
	lower = make([]float64, len(ac))
	upper = make([]float64, len(ac))
	for i, p := range ac {
		lower[i] = p.Mean - p.Std
		upper[i] = p.Mean + p.Std
	}
	return
}

// Best returns the index of the point with the highest mean,
// preferring the earliest point on ties, or -1 for an empty curve.
func (ac AggregatedCurve) Best() int {
	best := -1
	for i, p := range ac {
		if best < 0 || p.Mean > ac[best].Mean {
			best = i
		}
	}
	return best
}
