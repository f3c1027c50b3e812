// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
)

// Pair is the training and testing curve of one learning or
// validation curve computation.
type Pair struct {
	Train AggregatedCurve
	Test  AggregatedCurve
}

// AggregatePair aggregates the training and testing scores measured
// at the same sweep points. The two score sets must cover the same
// number of points; fold counts are checked per set.
func AggregatePair(sweep []float64, train, test [][]float64) (*Pair, error) {
	if len(train) != len(test) {
		return nil, fmt.Errorf("curve.AggregatePair: %d training points but %d testing points: %w", len(train), len(test), ErrInvalidInput)
	}
	tr, err := Aggregate(&ScoreMatrix{Sweep: sweep, Scores: train})
	if err != nil {
		return nil, fmt.Errorf("training scores: %w", err)
	}
	te, err := Aggregate(&ScoreMatrix{Sweep: sweep, Scores: test})
	if err != nil {
		return nil, fmt.Errorf("testing scores: %w", err)
	}
	return &Pair{Train: tr, Test: te}, nil
}

// Gap returns the training minus testing mean at each point,
// a measure of how far the model overfits at that point.
func (pr *Pair) Gap() []float64 {
	gap := make([]float64, len(pr.Train))
	for i := range pr.Train {
		gap[i] = pr.Train[i].Mean - pr.Test[i].Mean
	}
	return gap
}
