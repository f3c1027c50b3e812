// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreio

import (
	"fmt"

	"cogentcore.org/curves/curve"
	"cogentcore.org/curves/importance"
	"cogentcore.org/curves/learners"
	"github.com/jinzhu/copier"
)

// Panel is the raw training and testing scores of one learning
// or validation curve, one row per sweep point and one column per fold.
type Panel struct {
	Label string      `json:"label" yaml:"label" toml:"label"`
	Sweep []float64   `json:"sweep" yaml:"sweep" toml:"sweep"`
	Train [][]float64 `json:"train" yaml:"train" toml:"train"`
	Test  [][]float64 `json:"test" yaml:"test" toml:"test"`
}

// Pair aggregates the panel scores.
func (p *Panel) Pair() (*curve.Pair, error) {
	pr, err := curve.AggregatePair(p.Sweep, p.Train, p.Test)
	if err != nil {
		return nil, fmt.Errorf("panel %q: %w", p.Label, err)
	}
	return pr, nil
}

// Curves is a document of learning or validation curve scores.
// A learning curve document typically has one panel per model
// configuration, and a validation curve document a single panel.
type Curves struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Title   string `json:"title" yaml:"title" toml:"title"`

	// Param is the name of the swept parameter, such as "max_depth".
	Param string `json:"param" yaml:"param" toml:"param"`

	// XLabel overrides the axis label derived from Param.
	XLabel string `json:"xlabel,omitempty" yaml:"xlabel,omitempty" toml:"xlabel,omitempty"`

	// TestLabel names the testing curve, such as "Validation Score".
	TestLabel string  `json:"test_label,omitempty" yaml:"test_label,omitempty" toml:"test_label,omitempty"`
	Panels    []Panel `json:"panels" yaml:"panels" toml:"panels"`
}

func (d *Curves) DocVersion() string { return d.Version }

// Pairs aggregates every panel, in order.
func (d *Curves) Pairs() ([]*curve.Pair, error) {
	if len(d.Panels) == 0 {
		return nil, fmt.Errorf("scoreio.Curves: no panels: %w", curve.ErrInvalidInput)
	}
	prs := make([]*curve.Pair, len(d.Panels))
	for i := range d.Panels {
		pr, err := d.Panels[i].Pair()
		if err != nil {
			return nil, err
		}
		prs[i] = pr
	}
	return prs, nil
}

// Clone returns a deep copy of the document.
func (d *Curves) Clone() (*Curves, error) {
	cp := &Curves{}
	if err := copier.CopyWithOption(cp, d, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return cp, nil
}

// Only returns a deep copy of the document holding just the panel at index i.
func (d *Curves) Only(i int) (*Curves, error) {
	if i < 0 || i >= len(d.Panels) {
		return nil, fmt.Errorf("scoreio.Curves: panel %d of %d: %w", i, len(d.Panels), curve.ErrInvalidInput)
	}
	cp, err := d.Clone()
	if err != nil {
		return nil, err
	}
	cp.Panels = cp.Panels[i : i+1]
	return cp, nil
}

// Learner is the results of one learner, one entry per sample size.
type Learner struct {
	Name  string             `json:"name" yaml:"name" toml:"name"`
	Sizes []learners.Metrics `json:"sizes" yaml:"sizes" toml:"sizes"`
}

// Results is a document of learner comparison results.
type Results struct {
	Version      string              `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Title        string              `json:"title" yaml:"title" toml:"title"`
	SampleLabels []string            `json:"sample_labels,omitempty" yaml:"sample_labels,omitempty" toml:"sample_labels,omitempty"`
	Learners     []Learner           `json:"learners" yaml:"learners" toml:"learners"`
	Baselines    []learners.Baseline `json:"baselines,omitempty" yaml:"baselines,omitempty" toml:"baselines,omitempty"`
}

func (d *Results) DocVersion() string { return d.Version }

// Results returns the validated learner results, in document order.
func (d *Results) Results() (*learners.Results, error) {
	rs := learners.NewResults(d.SampleLabels...)
	for _, lr := range d.Learners {
		if err := rs.Add(lr.Name, lr.Sizes...); err != nil {
			return nil, err
		}
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Weight is a named feature weight.
type Weight struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
}

// Importances is a document of learned feature weights.
type Importances struct {
	Version  string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Title    string   `json:"title" yaml:"title" toml:"title"`
	Features []Weight `json:"features" yaml:"features" toml:"features"`
}

func (d *Importances) DocVersion() string { return d.Version }

// TopK returns the k highest weighted features.
func (d *Importances) TopK(k int) ([]importance.Feature, error) {
	names := make([]string, len(d.Features))
	ws := make([]float64, len(d.Features))
	for i, f := range d.Features {
		names[i] = f.Name
		ws[i] = f.Weight
	}
	return importance.TopK(names, ws, k)
}

// AggregatedPanel is the aggregated form of a [Panel].
type AggregatedPanel struct {
	Label string        `json:"label" yaml:"label" toml:"label"`
	Train []curve.Point `json:"train" yaml:"train" toml:"train"`
	Test  []curve.Point `json:"test" yaml:"test" toml:"test"`
}

// Aggregated is the aggregated form of a [Curves] document,
// for handing to other rendering tools.
type Aggregated struct {
	Version string            `json:"version" yaml:"version" toml:"version"`
	Title   string            `json:"title" yaml:"title" toml:"title"`
	Param   string            `json:"param" yaml:"param" toml:"param"`
	Panels  []AggregatedPanel `json:"panels" yaml:"panels" toml:"panels"`
}

// Aggregate aggregates every panel of the document.
func (d *Curves) Aggregate() (*Aggregated, error) {
	prs, err := d.Pairs()
	if err != nil {
		return nil, err
	}
	ag := &Aggregated{Version: "1.0.0", Title: d.Title, Param: d.Param}
	for i, pr := range prs {
		ag.Panels = append(ag.Panels, AggregatedPanel{Label: d.Panels[i].Label, Train: pr.Train, Test: pr.Test})
	}
	return ag, nil
}
