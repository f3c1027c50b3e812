// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import "fmt"

// Columns provides numeric data columns by name.
type Columns interface {
	Column(name string) ([]float64, error)
}

// Distribution is the histogram of one feature.
type Distribution struct {
	Feature   string
	Transform Transform
	Bins      []Bin
}

// Transformed returns whether the values were transformed before binning.
func (d *Distribution) Transformed() bool { return d.Transform != None }

// Distributions bins each of the named features of the data,
// after applying the transform.
func Distributions(data Columns, features []string, nbins int, tr Transform) ([]Distribution, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("hist.Distributions: no features: %w", ErrInvalidInput)
	}
	ds := make([]Distribution, len(features))
	for i, ft := range features {
		vals, err := data.Column(ft)
		if err != nil {
			return nil, err
		}
		vals, err = tr.Apply(vals)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", ft, err)
		}
		bins, err := Histogram(vals, nbins)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", ft, err)
		}
		ds[i] = Distribution{Feature: ft, Transform: tr, Bins: bins}
	}
	return ds, nil
}
