// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package learners

import (
	"fmt"

	"cogentcore.org/curves/stats"
)

// Baseline is the accuracy and F-score of a reference predictor,
// drawn as horizontal lines on the score panels.
type Baseline struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Accuracy float64 `json:"accuracy" yaml:"accuracy" toml:"accuracy"`
	FScore   float64 `json:"fscore" yaml:"fscore" toml:"fscore"`
}

// Value returns the baseline value to draw on the panel of the given
// metric, and false for timing metrics, which have no baseline.
func (bl *Baseline) Value(m Metric) (float64, bool) {
	switch {
	case m.IsTime():
		return 0, false
	case m.IsAccuracy():
		return bl.Accuracy, true
	}
	return bl.FScore, true
}

// NaiveBaseline returns the scores of a predictor that always predicts
// the positive class, given the number of positive records out of total,
// with the F-score weighted by beta. Its precision equals its accuracy
// and its recall is one.
func NaiveBaseline(name string, positives, total int, beta float64) (Baseline, error) {
	if total <= 0 || positives < 0 || positives > total {
		return Baseline{}, fmt.Errorf("learners.NaiveBaseline: %d positives of %d: %w", positives, total, ErrInvalidInput)
	}
	if err := stats.CheckFinite(beta); err != nil || beta <= 0 {
		return Baseline{}, fmt.Errorf("learners.NaiveBaseline: beta %g: %w", beta, ErrInvalidInput)
	}
	acc := float64(positives) / float64(total)
	precision, recall := acc, 1.0
	b2 := beta * beta
	f := 0.0
	if precision > 0 {
		f = (1 + b2) * precision * recall / (b2*precision + recall)
	}
	return Baseline{Name: name, Accuracy: acc, FScore: f}, nil
}
