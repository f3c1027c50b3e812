// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CountFunc returns the number of values.
func CountFunc(vals []float64) float64 {
	return float64(len(vals))
}

// Sum64 returns the sum of the values.
func Sum64(vals []float64) float64 {
	return floats.Sum(vals)
}

// Min64 returns the minimum value, or NaN for no values.
func Min64(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return floats.Min(vals)
}

// Max64 returns the maximum value, or NaN for no values.
func Max64(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return floats.Max(vals)
}

// Mean64 returns the arithmetic mean of the values, or NaN for no values.
// A vector of identical values returns exactly that value.
func Mean64(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	if allEqual(vals) {
		return vals[0]
	}
	mean := floats.Sum(vals) / float64(n)
	if math.IsInf(mean, 0) || math.IsNaN(mean) {
		// partial sums overflowed; terms scaled by 1/n stay within range
		mean = 0
		for _, v := range vals {
			mean += v / float64(n)
		}
	}
	return mean
}

func allEqual(vals []float64) bool {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}

// SumSqDev64 returns the sum of squared deviations from the given mean.
func SumSqDev64(vals []float64, mean float64) float64 {
	ss := 0.0
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return ss
}

// Var64 returns the sample variance of the values:
// squared deviations from mean, divided by n-1. See also [VarPop64].
// Returns NaN for fewer than two values.
func Var64(vals []float64) float64 {
	n := len(vals)
	if n < 2 {
		return math.NaN()
	}
	return SumSqDev64(vals, Mean64(vals)) / float64(n-1)
}

// Std64 returns the sample standard deviation: sqrt of [Var64].
func Std64(vals []float64) float64 {
	return math.Sqrt(Var64(vals))
}

// VarPop64 returns the population variance of the values:
// squared deviations from mean, divided by n. See also [Var64].
func VarPop64(vals []float64) float64 {
	_, vr := MeanVarPop(vals)
	return vr
}

// StdPop64 returns the population standard deviation: sqrt of [VarPop64].
func StdPop64(vals []float64) float64 {
	_, sd := MeanStdPop(vals)
	return sd
}

// SemPop64 returns the population standard error of the mean:
// [StdPop64] divided by sqrt(n).
func SemPop64(vals []float64) float64 {
	_, sd := MeanStdPop(vals)
	return sd / math.Sqrt(float64(len(vals)))
}

// MeanVarPop returns the mean and population variance of the values,
// both NaN for no values.
func MeanVarPop(vals []float64) (mean, vr float64) {
	n := len(vals)
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	mean = Mean64(vals)
	vr = SumSqDev64(vals, mean) / float64(n)
	return
}

// MeanStdPop returns the mean and population standard deviation
// of the values, both NaN for no values. The standard deviation is
// finite for finite values, even when the variance is not.
func MeanStdPop(vals []float64) (mean, std float64) {
	mean, vr := MeanVarPop(vals)
	if !math.IsInf(vr, 1) {
		return mean, math.Sqrt(vr)
	}
	return mean, scaledStdPop(vals, mean)
}

// scaledStdPop is the population standard deviation computed from half
// deviations scaled by their largest magnitude, which cannot overflow.
func scaledStdPop(vals []float64, mean float64) float64 {
	hs := make([]float64, len(vals))
	for i, v := range vals {
		hs[i] = v/2 - mean/2
	}
	scale := math.Max(math.Abs(floats.Max(hs)), math.Abs(floats.Min(hs)))
	if scale == 0 {
		return 0
	}
	ss := 0.0
	for _, h := range hs {
		r := h / scale
		ss += r * r
	}
	return 2 * scale * math.Sqrt(ss/float64(len(vals)))
}
