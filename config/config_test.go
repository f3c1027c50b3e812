// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/curves/hist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "curves.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := New()
	require.NoError(t, c.Validate())
	assert.Equal(t, 50, c.Hist.Bins)
	assert.Equal(t, 5, c.Features.K)
	assert.Equal(t, "red", c.Chart.TrainColor)
	assert.Equal(t, Duration(250*time.Millisecond), c.Watch.Debounce)
}

func TestOpen(t *testing.T) {
	path := writeConfig(t, `
out_dir = "figs"
format = "svg"

[chart]
font = "latin-modern"
train_color = "#A00000"
columns = 3

[hist]
bins = 842
features = ["driverId", "constructorId"]
transform = "Log1p"

[watch]
debounce = "1s"
`)
	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "figs", c.OutDir)
	assert.Equal(t, "svg", c.Format)
	assert.Equal(t, "latin-modern", c.Chart.Font)
	assert.Equal(t, "#A00000", c.Chart.TrainColor)
	assert.Equal(t, 3, c.Chart.Columns)
	// unset values keep their defaults
	assert.Equal(t, "green", c.Chart.TestColor)
	assert.Equal(t, 7.0, c.Chart.Height)
	assert.Equal(t, 842, c.Hist.Bins)
	assert.Equal(t, []string{"driverId", "constructorId"}, c.Hist.Features)
	assert.Equal(t, hist.Log1p, c.Hist.Transform)
	assert.Equal(t, Duration(time.Second), c.Watch.Debounce)
}

func TestOpenInvalid(t *testing.T) {
	tests := map[string]string{
		"color":   "[chart]\ntest_color = \"blurple\"\n",
		"palette": "[chart]\npalette = [\"red\", \"#12\"]\n",
		"font":    "[chart]\nfont = \"comic-sans\"\n",
		"bins":    "[hist]\nbins = 0\n",
		"range":   "[chart]\nscore_min = 1.0\nscore_max = 0.0\n",
		"format":  "format = \"gif\"\n",
		"k":       "[features]\nk = 0\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Open(writeConfig(t, text))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Open(writeConfig(t, "[hist\n"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave(t *testing.T) {
	c := New()
	c.Hist.Features = []string{"grid", "laps"}
	c.Hist.Transform = hist.Log1p
	c.Watch.Debounce = Duration(2 * time.Second)
	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, c.Save(path))

	o, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, c, o)
}

func TestChartColorValidation(t *testing.T) {
	assert.NoError(t, validate.Var("#0f0", "chartcolor"))
	assert.NoError(t, validate.Var("teal", "chartcolor"))
	assert.Error(t, validate.Var("blurple", "chartcolor"))
}
