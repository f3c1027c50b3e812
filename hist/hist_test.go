// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(bins []Bin) []int {
	cs := make([]int, len(bins))
	for i, b := range bins {
		cs[i] = b.Count
	}
	return cs
}

func TestHistogram(t *testing.T) {
	vals := []float64{4, 0, 1, 2, 2, 3, 4, 4}
	bins, err := Histogram(vals, 4)
	require.NoError(t, err)
	require.Len(t, bins, 4)

	assert.Equal(t, []int{1, 1, 2, 4}, counts(bins))
	assert.Equal(t, 0.0, bins[0].Lo)
	assert.Equal(t, 4.0, bins[3].Hi)
	assert.Equal(t, 1.0, bins[1].Width())
	assert.Equal(t, len(vals), Total(bins))
	assert.Equal(t, 4, MaxCount(bins))
	assert.Equal(t, []float64{4, 0, 1, 2, 2, 3, 4, 4}, vals)
}

func TestHistogramConstant(t *testing.T) {
	bins, err := Histogram([]float64{7, 7, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, Bin{Lo: 6.5, Hi: 7, Count: 0}, bins[0])
	assert.Equal(t, Bin{Lo: 7, Hi: 7.5, Count: 3}, bins[1])
}

func TestHistogramInvalid(t *testing.T) {
	_, err := Histogram(nil, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Histogram([]float64{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Histogram([]float64{1, math.NaN()}, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransform(t *testing.T) {
	out, err := Log1p.Apply([]float64{0, math.E - 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1}, out, 1e-12)

	_, err = Log1p.Apply([]float64{-1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	var tr Transform
	require.NoError(t, tr.UnmarshalText([]byte("log1p")))
	assert.Equal(t, Log1p, tr)
	assert.Error(t, tr.UnmarshalText([]byte("sqrt")))
}

type columns map[string][]float64

func (c columns) Column(name string) ([]float64, error) {
	vs, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	return vs, nil
}

func TestDistributions(t *testing.T) {
	data := columns{
		"driverId":      {1, 1, 2, 3, 9},
		"constructorId": {0, 0, 0, 1},
	}
	ds, err := Distributions(data, []string{"driverId", "constructorId"}, 2, None)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "driverId", ds[0].Feature)
	assert.Equal(t, []int{4, 1}, counts(ds[0].Bins))
	assert.Equal(t, []int{3, 1}, counts(ds[1].Bins))
	assert.False(t, ds[0].Transformed())

	ds, err = Distributions(data, []string{"constructorId"}, 2, Log1p)
	require.NoError(t, err)
	assert.True(t, ds[0].Transformed())
	assert.InDelta(t, math.Log(2), ds[0].Bins[1].Hi, 1e-12)

	_, err = Distributions(data, []string{"raceId"}, 2, None)
	assert.Error(t, err)
	_, err = Distributions(data, nil, 2, None)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
