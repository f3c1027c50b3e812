// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package importance ranks features by their learned weights.
package importance

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/curves/stats"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidInput is returned for mismatched, empty or non-finite inputs.
var ErrInvalidInput = errors.New("invalid input")

// DefaultK is the number of features shown by default.
const DefaultK = 5

// Feature is a ranked feature weight.
type Feature struct {
	Name string

	// Index is the position of the feature in the input.
	Index int

	Weight float64

	// Cumulative is the sum of this weight and all higher ranked ones.
	Cumulative float64
}

// TopK returns the k features with the largest weights, in descending
// order of weight. Equal weights keep their input order.
// A k larger than the number of features returns all of them.
func TopK(names []string, weights []float64, k int) ([]Feature, error) {
	switch {
	case len(names) != len(weights):
		return nil, fmt.Errorf("importance.TopK: %d names for %d weights: %w", len(names), len(weights), ErrInvalidInput)
	case len(weights) == 0:
		return nil, fmt.Errorf("importance.TopK: no features: %w", ErrInvalidInput)
	case k < 1:
		return nil, fmt.Errorf("importance.TopK: k = %d: %w", k, ErrInvalidInput)
	}
	if err := stats.CheckFinite(weights...); err != nil {
		return nil, fmt.Errorf("importance.TopK: %w: %w", err, ErrInvalidInput)
	}
	k = min(k, len(weights))

	// a stable ascending sort of the negated weights is a
	// stable descending sort of the weights
	neg := slices.Clone(weights)
	floats.Scale(-1, neg)
	inds := make([]int, len(neg))
	floats.ArgsortStable(neg, inds)

	top := make([]float64, k)
	for i := range top {
		top[i] = weights[inds[i]]
	}
	cum := floats.CumSum(make([]float64, k), top)

	fs := make([]Feature, k)
	for i := range fs {
		fs[i] = Feature{Name: names[inds[i]], Index: inds[i], Weight: top[i], Cumulative: cum[i]}
	}
	return fs, nil
}

// Names returns the feature names.
func Names(fs []Feature) []string {
	nms := make([]string, len(fs))
	for i, f := range fs {
		nms[i] = f.Name
	}
	return nms
}

// Weights returns the feature weights.
func Weights(fs []Feature) []float64 {
	ws := make([]float64, len(fs))
	for i, f := range fs {
		ws[i] = f.Weight
	}
	return ws
}

// Cumulatives returns the cumulative feature weights.
func Cumulatives(fs []Feature) []float64 {
	cs := make([]float64, len(fs))
	for i, f := range fs {
		cs[i] = f.Cumulative
	}
	return cs
}
