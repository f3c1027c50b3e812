// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	sm := &ScoreMatrix{Scores: [][]float64{{0.5, 0.7}, {0.9, 0.9}}}
	ac, err := Aggregate(sm)
	require.NoError(t, err)
	require.Len(t, ac, 2)

	assert.InDeltaSlice(t, []float64{0.6, 0.9}, ac.Means(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.1, 0}, ac.Stds(), 1e-12)
	assert.Equal(t, []float64{0, 1}, ac.Sweeps())
}

func TestAggregateOrder(t *testing.T) {
	sm := &ScoreMatrix{
		Sweep:  []float64{10, 2, 7},
		Scores: [][]float64{{0.2, 0.4, 0.6}, {-0.5, 0.5, 0}, {1, 1, 0.4}},
	}
	ac, err := Aggregate(sm)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 2, 7}, ac.Sweeps())
	assert.InDeltaSlice(t, []float64{0.4, 0, 0.8}, ac.Means(), 1e-12)
	assert.InDelta(t, math.Sqrt(0.08/3), ac[0].Std, 1e-12)
	assert.InDelta(t, math.Sqrt(0.5/3), ac[1].Std, 1e-12)
}

func TestAggregateConstant(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, -0.7, 1} {
		sm := &ScoreMatrix{Scores: [][]float64{{v, v, v, v, v, v, v, v, v, v}}}
		ac, err := Aggregate(sm)
		require.NoError(t, err)
		assert.Equal(t, v, ac[0].Mean)
		assert.Equal(t, 0.0, ac[0].Std)
	}
}

func TestAggregateLargeMagnitude(t *testing.T) {
	sm := &ScoreMatrix{Scores: [][]float64{{1e308, -1e308}, {-1e308, 1e308}, {1e308, 1e308}}}
	ac, err := Aggregate(sm)
	require.NoError(t, err)
	for _, p := range ac {
		assert.False(t, math.IsInf(p.Mean, 0) || math.IsNaN(p.Mean))
		assert.False(t, math.IsInf(p.Std, 0) || math.IsNaN(p.Std))
	}
	assert.Equal(t, 0.0, ac[0].Mean)
	assert.InDelta(t, 1e308, ac[0].Std, 1e293)
	assert.Equal(t, 1e308, ac[2].Mean)
	assert.Equal(t, 0.0, ac[2].Std)

	ac, err = Aggregate(&ScoreMatrix{Scores: [][]float64{{-1e308, 1e308, 0}}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, ac[0].Mean)
	assert.InDelta(t, math.Sqrt(2.0/3)*1e308, ac[0].Std, 1e294)
}

func TestAggregateIdempotent(t *testing.T) {
	sm := &ScoreMatrix{
		Sweep:  []float64{1, 2, 3},
		Scores: [][]float64{{0.11, 0.23, 0.37}, {0.41, 0.53, 0.67}, {0.71, 0.83, 0.97}},
	}
	a1, err := Aggregate(sm)
	require.NoError(t, err)
	a2, err := Aggregate(sm)
	require.NoError(t, err)
	for i := range a1 {
		assert.Equal(t, math.Float64bits(a1[i].Mean), math.Float64bits(a2[i].Mean))
		assert.Equal(t, math.Float64bits(a1[i].Std), math.Float64bits(a2[i].Std))
	}
	assert.Equal(t, []float64{0.11, 0.23, 0.37}, sm.Scores[0])
}

func TestAggregateInvalid(t *testing.T) {
	tests := map[string]*ScoreMatrix{
		"nil":       nil,
		"empty":     {},
		"zero":      {Scores: [][]float64{{}, {}}},
		"ragged":    {Scores: [][]float64{{0.1, 0.2}, {0.3}}},
		"nan":       {Scores: [][]float64{{0.1, math.NaN()}}},
		"inf":       {Scores: [][]float64{{math.Inf(1), 0.2}}},
		"sweeplen":  {Sweep: []float64{1}, Scores: [][]float64{{0.1}, {0.2}}},
		"sweepnan":  {Sweep: []float64{math.NaN()}, Scores: [][]float64{{0.1}}},
		"raggedend": {Scores: [][]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6, 0.7}}},
	}
	for name, sm := range tests {
		t.Run(name, func(t *testing.T) {
			ac, err := Aggregate(sm)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, ac)
		})
	}
}

func TestBand(t *testing.T) {
	ac := AggregatedCurve{{Sweep: 1, Mean: 0.5, Std: 0.1}, {Sweep: 2, Mean: 0.8, Std: 0}}
	lo, hi := ac.Band()
	assert.InDeltaSlice(t, []float64{0.4, 0.8}, lo, 1e-12)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, hi, 1e-12)
	assert.Equal(t, 1, ac.Best())
	assert.Equal(t, -1, AggregatedCurve{}.Best())
}

func TestAggregatePair(t *testing.T) {
	pr, err := AggregatePair([]float64{1, 2},
		[][]float64{{1, 1}, {0.9, 0.7}},
		[][]float64{{0.4, 0.6}, {0.5, 0.7}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.8}, pr.Train.Means(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.6}, pr.Test.Means(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.2}, pr.Gap(), 1e-12)

	_, err = AggregatePair(nil, [][]float64{{1}}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = AggregatePair(nil, [][]float64{{1}}, [][]float64{{1, 2, 3}})
	assert.NoError(t, err)

	_, err = AggregatePair(nil, [][]float64{{1}}, [][]float64{{}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTrainSizes(t *testing.T) {
	sz, err := TrainSizes(100, 0.2, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 11, 20, 30, 40, 50, 60, 69, 79}, sz)

	_, err = TrainSizes(2, 0.2, 9)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = TrainSizes(100, 1, 9)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDepthRange(t *testing.T) {
	ds, err := DepthRange(1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ds)
	assert.Equal(t, []float64{1, 2, 3}, Floats(ds[:3]))

	_, err = DepthRange(5, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
