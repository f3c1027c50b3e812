// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/curves/curve"
	"cogentcore.org/curves/learners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{"a.json": JSON, "b.YML": YAML, "c.yaml": YAML, "d.toml": TOML, "e.csv": CSV, "f.tsv": CSV} {
		f, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, f, path)
	}
	_, err := FormatFromPath("scores.xlsx")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestOpenCurvesYAML(t *testing.T) {
	var doc Curves
	require.NoError(t, Open("testdata/complexity.yaml", &doc))
	assert.Equal(t, "max_depth", doc.Param)
	assert.Equal(t, "Validation Score", doc.TestLabel)
	require.Len(t, doc.Panels, 1)

	prs, err := doc.Pairs()
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.InDeltaSlice(t, []float64{0.6, 0.9, 1}, prs[0].Train.Means(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.1, 0, 0}, prs[0].Train.Stds(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.6, 0.6}, prs[0].Test.Means(), 1e-12)
	assert.Equal(t, []float64{1, 2, 3}, prs[0].Test.Sweeps())
}

func TestOpenCurvesJSON(t *testing.T) {
	var doc Curves
	require.NoError(t, Open("testdata/learning.json", &doc))
	assert.Equal(t, "Number of Training Points", doc.XLabel)
	require.Len(t, doc.Panels, 2)
	assert.Equal(t, "max_depth = 10", doc.Panels[1].Label)

	ag, err := doc.Aggregate()
	require.NoError(t, err)
	require.Len(t, ag.Panels, 2)
	assert.Equal(t, 0.8, ag.Panels[0].Train[2].Mean)
	assert.Equal(t, 0.0, ag.Panels[0].Train[2].Std)
	assert.InDelta(t, 0.6, ag.Panels[0].Test[1].Mean, 1e-12)
}

func TestCurvesInvalid(t *testing.T) {
	doc := &Curves{Panels: []Panel{{Label: "ragged", Train: [][]float64{{1, 2}, {1}}, Test: [][]float64{{1, 2}, {1, 2}}}}}
	_, err := doc.Pairs()
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ragged")

	_, err = (&Curves{}).Pairs()
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
}

func TestClone(t *testing.T) {
	var doc Curves
	require.NoError(t, Open("testdata/complexity.yaml", &doc))
	cp, err := doc.Clone()
	require.NoError(t, err)
	assert.Equal(t, doc, *cp)
	cp.Panels[0].Train[0][0] = 99
	assert.Equal(t, 0.5, doc.Panels[0].Train[0][0])
}

func TestOnly(t *testing.T) {
	var doc Curves
	require.NoError(t, Open("testdata/learning.json", &doc))
	one, err := doc.Only(1)
	require.NoError(t, err)
	require.Len(t, one.Panels, 1)
	assert.Equal(t, "max_depth = 10", one.Panels[0].Label)
	assert.Equal(t, doc.Title, one.Title)
	assert.Len(t, doc.Panels, 2)
	one.Panels[0].Test[0][0] = 99
	assert.Equal(t, -0.5, doc.Panels[1].Test[0][0])

	_, err = doc.Only(2)
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
}

func TestOpenResultsTOML(t *testing.T) {
	var doc Results
	require.NoError(t, Open("testdata/results.toml", &doc))
	require.Len(t, doc.Baselines, 2)
	assert.Equal(t, "Majority Class", doc.Baselines[1].Name)

	rs, err := doc.Results()
	require.NoError(t, err)
	assert.Equal(t, []string{"DecisionTreeClassifier", "AdaBoostClassifier"}, rs.Names())
	assert.Equal(t, []float64{0.93, 0.94, 0.95}, rs.Series(0, learners.AccTest))
	assert.Equal(t, 9.5, rs.Series(1, learners.TrainTime)[2])

	doc.Learners[1].Sizes = doc.Learners[1].Sizes[:2]
	_, err = doc.Results()
	assert.ErrorIs(t, err, learners.ErrInvalidInput)
}

func TestOpenImportances(t *testing.T) {
	var doc Importances
	require.NoError(t, Open("testdata/importances.yaml", &doc))
	fs, err := doc.TopK(3)
	require.NoError(t, err)
	require.Len(t, fs, 3)
	assert.Equal(t, "laps", fs[0].Name)
	assert.Equal(t, "driverId", fs[2].Name)
	assert.InDelta(t, 0.8, fs[2].Cumulative, 1e-12)
}

func TestVersion(t *testing.T) {
	assert.NoError(t, CheckVersion(""))
	assert.NoError(t, CheckVersion("1.4.2"))
	assert.ErrorIs(t, CheckVersion("2.0.0"), ErrFormat)
	assert.ErrorIs(t, CheckVersion("one"), ErrFormat)

	var doc Curves
	assert.ErrorIs(t, Open("testdata/future.yaml", &doc), ErrFormat)
}

func TestBinaryInput(t *testing.T) {
	var doc Curves
	err := Open("testdata/notdata.json", &doc)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "png")
}

func TestSaveRoundTrip(t *testing.T) {
	var doc Curves
	require.NoError(t, Open("testdata/complexity.yaml", &doc))
	ag, err := doc.Aggregate()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		path := filepath.Join(dir, "agg"+ext)
		require.NoError(t, Save(path, ag), ext)
		var back Aggregated
		require.NoError(t, Open(path, &back), ext)
		assert.Equal(t, *ag, back, ext)
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, CSV, ag), ErrFormat)
}

func TestTable(t *testing.T) {
	dt, err := OpenCSV("testdata/races.csv", Detect)
	require.NoError(t, err)
	assert.Equal(t, []string{"raceId", "driverId", "constructorId", "circuit"}, dt.Headers)
	assert.Equal(t, 5, dt.NumRows())

	vals, err := dt.Column("driverId")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1, 3, 9}, vals)

	_, err = dt.Column("circuit")
	assert.Error(t, err)

	_, err = dt.Column("driverid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "driverId"`)

	_, err = dt.Column("lapTimes")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestTableTSV(t *testing.T) {
	dt, err := OpenCSV("testdata/races.tsv", Detect)
	require.NoError(t, err)
	vals, err := dt.Column("driverId")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, vals)

	_, err = ReadCSV(strings.NewReader(""), Comma)
	assert.ErrorIs(t, err, ErrFormat)
}
