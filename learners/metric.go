// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package learners

import (
	"fmt"
	"strings"
)

// Metric is one of the measurements recorded for a learner
// at each training sample size.
type Metric int32

const (
	// TrainTime is the time taken to train, in seconds.
	TrainTime Metric = iota

	// AccTrain is the accuracy on the training subset.
	AccTrain

	// FTrain is the F-score on the training subset.
	FTrain

	// PredTime is the time taken to predict, in seconds.
	PredTime

	// AccTest is the accuracy on the testing set.
	AccTest

	// FTest is the F-score on the testing set.
	FTest

	MetricN
)

type metricInfo struct {
	key, title, ylabel string
}

var metricInfos = [...]metricInfo{
	{"train_time", "Model Training", "Time (in seconds)"},
	{"acc_train", "Accuracy Score on Training Subset", "Accuracy Score"},
	{"f_train", "F-score on Training Subset", "F-score"},
	{"pred_time", "Model Predicting", "Time (in seconds)"},
	{"acc_test", "Accuracy Score on Testing Set", "Accuracy Score"},
	{"f_test", "F-score on Testing Set", "F-score"},
}

// String returns the document key of the metric, such as "acc_test".
func (m Metric) String() string {
	if m < 0 || m >= MetricN {
		return fmt.Sprintf("Metric(%d)", int32(m))
	}
	return metricInfos[m].key
}

// Title returns the panel title for the metric.
func (m Metric) Title() string { return metricInfos[m].title }

// YLabel returns the axis label for the metric.
func (m Metric) YLabel() string { return metricInfos[m].ylabel }

// IsTime returns whether the metric is a timing rather than a score.
func (m Metric) IsTime() bool { return m == TrainTime || m == PredTime }

// IsAccuracy returns whether the metric is an accuracy score.
func (m Metric) IsAccuracy() bool { return m == AccTrain || m == AccTest }

// MetricFromString returns the metric with the given key.
func MetricFromString(s string) (Metric, error) {
	for i, mi := range metricInfos {
		if strings.EqualFold(mi.key, s) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("learners.MetricFromString: %q is not a valid metric", s)
}

// Metrics are the measurements for a learner at one sample size.
type Metrics struct {
	TrainTime float64 `json:"train_time" yaml:"train_time" toml:"train_time"`
	AccTrain  float64 `json:"acc_train" yaml:"acc_train" toml:"acc_train"`
	FTrain    float64 `json:"f_train" yaml:"f_train" toml:"f_train"`
	PredTime  float64 `json:"pred_time" yaml:"pred_time" toml:"pred_time"`
	AccTest   float64 `json:"acc_test" yaml:"acc_test" toml:"acc_test"`
	FTest     float64 `json:"f_test" yaml:"f_test" toml:"f_test"`
}

// Value returns the value of the given metric.
func (ms *Metrics) Value(m Metric) float64 {
	switch m {
	case TrainTime:
		return ms.TrainTime
	case AccTrain:
		return ms.AccTrain
	case FTrain:
		return ms.FTrain
	case PredTime:
		return ms.PredTime
	case AccTest:
		return ms.AccTest
	case FTest:
		return ms.FTest
	}
	return 0
}

// Values returns all metric values, indexed by [Metric].
func (ms *Metrics) Values() []float64 {
	vs := make([]float64, MetricN)
	for m := range MetricN {
		vs[m] = ms.Value(m)
	}
	return vs
}
