// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"
	"strings"
)

// Transform is a value transform applied before binning,
// used to reduce the skew of a feature.
type Transform int32

const (
	// None leaves values unchanged.
	None Transform = iota

	// Log1p applies log(1 + v), defined for v > -1.
	Log1p

	TransformN
)

var transformNames = [...]string{"None", "Log1p"}

func (tr Transform) String() string {
	if tr < 0 || tr >= TransformN {
		return fmt.Sprintf("Transform(%d)", int32(tr))
	}
	return transformNames[tr]
}

// MarshalText implements [encoding.TextMarshaler].
func (tr Transform) MarshalText() ([]byte, error) {
	return []byte(tr.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tr *Transform) UnmarshalText(text []byte) error {
	for i, nm := range transformNames {
		if strings.EqualFold(nm, string(text)) {
			*tr = Transform(i)
			return nil
		}
	}
	return fmt.Errorf("hist.Transform: %q is not a valid transform", text)
}

// Apply returns the transformed values, leaving vals unchanged.
func (tr Transform) Apply(vals []float64) ([]float64, error) {
	out := make([]float64, len(vals))
	switch tr {
	case None:
		copy(out, vals)
	case Log1p:
		for i, v := range vals {
			if v <= -1 {
				return nil, fmt.Errorf("hist.Log1p: value %g at %d is outside the domain: %w", v, i, ErrInvalidInput)
			}
			out[i] = math.Log1p(v)
		}
	default:
		return nil, fmt.Errorf("hist.Transform: unknown transform %v: %w", tr, ErrInvalidInput)
	}
	return out, nil
}
