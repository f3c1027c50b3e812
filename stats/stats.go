// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"
)

// StatsFunc is the signature of a registered stats function,
// computing a single value over a vector of values.
type StatsFunc func(vals []float64) float64

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[Count.String()] = CountFunc
	Funcs[Sum.String()] = Sum64
	Funcs[Min.String()] = Min64
	Funcs[Max.String()] = Max64
	Funcs[Mean.String()] = Mean64
	Funcs[Var.String()] = Var64
	Funcs[Std.String()] = Std64
	Funcs[VarPop.String()] = VarPop64
	Funcs[StdPop.String()] = StdPop64
	Funcs[SemPop.String()] = SemPop64
}

// Standard calls a standard Stats enum function on given values.
func Standard(stat Stats, vals []float64) float64 {
	return Funcs[stat.String()](vals)
}

// Call calls a registered stats function on given values.
// Returns an error if name not found.
func Call(name string, vals []float64) (float64, error) {
	f, ok := Funcs[name]
	if !ok {
		return 0, fmt.Errorf("stats.Call: function %q not registered", name)
	}
	return f(vals), nil
}

// Stats is a list of different standard aggregation functions, which can be used
// to choose an aggregation function
type Stats int32

const (
	// count of number of elements.
	Count Stats = iota

	// sum of elements.
	Sum

	// minimum value.
	Min

	// maximum value.
	Max

	// mean value = sum / count.
	Mean

	// sample variance (squared deviations from mean, divided by n-1).
	Var

	// sample standard deviation (sqrt of Var).
	Std

	// population variance (squared diffs from mean, divided by n).
	VarPop

	// population standard deviation (sqrt of VarPop).
	StdPop

	// population standard error of the mean (StdPop divided by sqrt(n)).
	SemPop

	StatsN
)

var statsNames = [...]string{"Count", "Sum", "Min", "Max", "Mean", "Var", "Std", "VarPop", "StdPop", "SemPop"}

// String returns the name of the stat.
func (s Stats) String() string {
	if s < 0 || s >= StatsN {
		return fmt.Sprintf("Stats(%d)", int32(s))
	}
	return statsNames[s]
}

// StatsFromString returns the stat with the given name,
// matched case-insensitively.
func StatsFromString(s string) (Stats, error) {
	for i, nm := range statsNames {
		if strings.EqualFold(nm, s) {
			return Stats(i), nil
		}
	}
	return 0, fmt.Errorf("stats.StatsFromString: %q is not a valid Stats", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Stats) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Stats) UnmarshalText(text []byte) error {
	st, err := StatsFromString(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
