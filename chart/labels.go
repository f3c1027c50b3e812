// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var paramLabels = map[string]string{
	"max_depth":  "Maximum Depth",
	"train_size": "Number of Training Points",
	"n_samples":  "Number of Training Points",
}

// ParamLabel returns the axis label for a swept parameter name,
// such as "Maximum Depth" for "max_depth". Unknown names are
// title cased with underscores as spaces.
func ParamLabel(param string) string {
	if lb, ok := paramLabels[param]; ok {
		return lb
	}
	s := strings.Join(strings.FieldsFunc(param, func(r rune) bool { return r == '_' || r == '-' }), " ")
	return cases.Title(language.English).String(s)
}
