// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package learners holds the timing and score results of several
// supervised learners trained on increasing sample sizes, for
// side-by-side comparison against naive baselines.
package learners

import (
	"errors"
	"fmt"

	"cogentcore.org/curves/base/ordmap"
	"cogentcore.org/curves/stats"
)

// ErrInvalidInput is returned for inconsistent or non-finite results.
var ErrInvalidInput = errors.New("invalid input")

// DefaultSampleLabels are the labels of the training sample sizes,
// as fractions of the full training set.
var DefaultSampleLabels = []string{"1%", "10%", "100%"}

// Results are the per sample size metrics of each learner,
// in the order the learners were added.
type Results struct {

	// SampleLabels labels each training sample size.
	SampleLabels []string

	// Learners maps learner name to one Metrics per sample size.
	Learners *ordmap.Map[string, []Metrics]
}

// NewResults returns empty results for the given sample labels,
// using [DefaultSampleLabels] if none are given.
func NewResults(labels ...string) *Results {
	if len(labels) == 0 {
		labels = DefaultSampleLabels
	}
	return &Results{SampleLabels: labels, Learners: ordmap.New[string, []Metrics]()}
}

// Add adds the metrics of a learner, one per sample size.
// It is an error to add the same learner twice.
func (rs *Results) Add(learner string, ms ...Metrics) error {
	if learner == "" {
		return fmt.Errorf("learners.Add: empty learner name: %w", ErrInvalidInput)
	}
	if err := rs.Learners.AddUnique(learner, ms); err != nil {
		return fmt.Errorf("learners.Add: %w: %w", err, ErrInvalidInput)
	}
	return nil
}

// Names returns the learner names in order.
func (rs *Results) Names() []string { return rs.Learners.Keys() }

// Validate checks that there is at least one learner, that every
// learner has one entry per sample label, and that all values are finite.
func (rs *Results) Validate() error {
	if rs.Learners.Len() == 0 {
		return fmt.Errorf("learners.Validate: no learners: %w", ErrInvalidInput)
	}
	ns := len(rs.SampleLabels)
	if ns == 0 {
		return fmt.Errorf("learners.Validate: no sample sizes: %w", ErrInvalidInput)
	}
	for name, ms := range rs.Learners.All() {
		if len(ms) != ns {
			return fmt.Errorf("learners.Validate: learner %q has %d sample sizes, expected %d: %w", name, len(ms), ns, ErrInvalidInput)
		}
		for i := range ms {
			if err := stats.CheckFinite(ms[i].Values()...); err != nil {
				return fmt.Errorf("learners.Validate: learner %q sample %s: %w: %w", name, rs.SampleLabels[i], err, ErrInvalidInput)
			}
		}
	}
	return nil
}

// Series returns the value of the metric at each sample size for
// the learner at index li.
func (rs *Results) Series(li int, m Metric) []float64 {
	ms := rs.Learners.ValueByIndex(li)
	vs := make([]float64, len(ms))
	for i := range ms {
		vs[i] = ms[i].Value(m)
	}
	return vs
}

// Range returns the smallest and largest value of the metric
// over all learners and sample sizes.
func (rs *Results) Range(m Metric) (lo, hi float64) {
	var all []float64
	for li := range rs.Learners.Len() {
		all = append(all, rs.Series(li, m)...)
	}
	return stats.Min64(all), stats.Max64(all)
}

// Best returns the name of the learner with the highest value of the
// metric at the given sample index, preferring the earlier learner on ties.
func (rs *Results) Best(m Metric, sample int) string {
	best, bv := "", 0.0
	for name, ms := range rs.Learners.All() {
		if sample >= len(ms) {
			continue
		}
		v := ms[sample].Value(m)
		if best == "" || v > bv {
			best, bv = name, v
		}
	}
	return best
}
