// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/curves/config"
	"cogentcore.org/curves/curve"
	"cogentcore.org/curves/learners"
	"cogentcore.org/curves/scoreio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../scoreio/testdata"

// testConfig writes a config with a temporary output directory.
func testConfig(t *testing.T, extra string) (path, outDir string) {
	dir := t.TempDir()
	outDir = filepath.Join(dir, "out")
	path = filepath.Join(dir, "curves.toml")
	text := "out_dir = " + `"` + filepath.ToSlash(outDir) + `"` + "\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path, outDir
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAggregate(t *testing.T) {
	cfg, _ := testConfig(t, "")
	out, err := execute(t, "--config", cfg, "aggregate", filepath.Join(testdata, "complexity.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Decision Tree Classifier Complexity Performance")
	assert.Contains(t, out, "max_depth")
	assert.Contains(t, out, "0.6000")

	out, err = execute(t, "--config", cfg, "aggregate", "-f", "yaml", filepath.Join(testdata, "complexity.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "label: complexity")
	assert.Contains(t, out, "mean:")

	path := filepath.Join(t.TempDir(), "agg.json")
	_, err = execute(t, "--config", cfg, "aggregate", "-o", path, filepath.Join(testdata, "learning.json"))
	require.NoError(t, err)
	ag := &scoreio.Aggregated{}
	require.NoError(t, scoreio.Open(path, ag))
	require.Len(t, ag.Panels, 2)
	assert.Equal(t, "max_depth = 10", ag.Panels[1].Label)
	assert.Len(t, ag.Panels[1].Test, 3)

	_, err = execute(t, "--config", cfg, "aggregate", "-f", "csv", filepath.Join(testdata, "complexity.yaml"))
	assert.ErrorIs(t, err, scoreio.ErrFormat)
}

func TestAggregateStats(t *testing.T) {
	cfg, _ := testConfig(t, "")
	out, err := execute(t, "--config", cfg, "aggregate", "--stat", "Min,SemPop", filepath.Join(testdata, "complexity.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "test min")
	assert.Contains(t, out, "test sempop")
	// test folds of max_depth 1 are 0.4 and 0.6
	assert.Contains(t, out, "0.4000")

	_, err = execute(t, "--config", cfg, "aggregate", "--stat", "Median", filepath.Join(testdata, "complexity.yaml"))
	assert.ErrorContains(t, err, "Median")
}

func TestSweep(t *testing.T) {
	cfg, _ := testConfig(t, "")
	out, err := execute(t, "--config", cfg, "sweep", "train-sizes", "--count", "9", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "sweep:")
	doc := &struct {
		Sweep []float64 `yaml:"sweep"`
	}{}
	require.NoError(t, scoreio.Decode([]byte(out), scoreio.YAML, doc))
	assert.Equal(t, []float64{1, 11, 20, 30, 40, 50, 60, 69, 79}, doc.Sweep)

	out, err = execute(t, "--config", cfg, "sweep", "depths", "-f", "json", "1", "4")
	require.NoError(t, err)
	require.NoError(t, scoreio.Decode([]byte(out), scoreio.JSON, doc))
	assert.Equal(t, []float64{1, 2, 3, 4}, doc.Sweep)

	_, err = execute(t, "--config", cfg, "sweep", "depths", "5", "2")
	assert.ErrorIs(t, err, curve.ErrInvalidInput)
}

func TestComplexityFirstPanel(t *testing.T) {
	cfg, outDir := testConfig(t, "format = \"svg\"\n")
	_, err := execute(t, "--config", cfg, "complexity", filepath.Join(testdata, "learning.json"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(outDir, "learning.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Validation Score")
}

func TestCharts(t *testing.T) {
	cfg, outDir := testConfig(t, "format = \"svg\"\n")
	tests := []struct {
		args []string
		file string
		want string
	}{
		{[]string{"learning", filepath.Join(testdata, "learning.json")}, "learning.svg", "Number of Training Points"},
		{[]string{"complexity", filepath.Join(testdata, "complexity.yaml")}, "complexity.svg", "Validation Score"},
		{[]string{"evaluate", "--positives", "100", "--total", "400", filepath.Join(testdata, "results.toml")}, "results.svg", "Naive Predictor"},
		{[]string{"features", "-k", "3", filepath.Join(testdata, "importances.yaml")}, "importances.svg", "laps"},
		{[]string{"distribution", "--bins", "4", "--transform", "log1p", filepath.Join(testdata, "races.csv")}, "races.svg", "Log-transformed"},
	}
	for _, test := range tests {
		t.Run(test.args[0], func(t *testing.T) {
			_, err := execute(t, append([]string{"--config", cfg}, test.args...)...)
			require.NoError(t, err)
			b, err := os.ReadFile(filepath.Join(outDir, test.file))
			require.NoError(t, err)
			assert.Contains(t, string(b), "<svg")
			assert.Contains(t, string(b), test.want)
		})
	}
}

func TestOutput(t *testing.T) {
	cfg, _ := testConfig(t, "")
	path := filepath.Join(t.TempDir(), "chart")
	_, err := execute(t, "--config", cfg, "complexity", "-o", path, filepath.Join(testdata, "complexity.yaml"))
	require.NoError(t, err)
	assert.FileExists(t, path+".png")

	path = filepath.Join(t.TempDir(), "chart.pdf")
	_, err = execute(t, "--config", cfg, "features", "-o", path, filepath.Join(testdata, "importances.yaml"))
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestErrors(t *testing.T) {
	cfg, _ := testConfig(t, "")
	_, err := execute(t, "--config", cfg, "learning", filepath.Join(testdata, "notdata.json"))
	assert.ErrorIs(t, err, scoreio.ErrFormat)
	_, err = execute(t, "--config", cfg, "learning", filepath.Join(testdata, "future.yaml"))
	assert.ErrorIs(t, err, scoreio.ErrFormat)
	_, err = execute(t, "--config", cfg, "features", "-k", "0", filepath.Join(testdata, "importances.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	_, err = execute(t, "--config", cfg, "distribution", "--features", "driverID", filepath.Join(testdata, "races.csv"))
	assert.ErrorContains(t, err, "driverId")
	_, err = execute(t, "--config", cfg, "evaluate", "--positives", "10", filepath.Join(testdata, "results.toml"))
	assert.ErrorIs(t, err, learners.ErrInvalidInput)
	_, err = execute(t, "--log-level", "loud", "--config", cfg, "aggregate", filepath.Join(testdata, "complexity.yaml"))
	assert.Error(t, err)

	bad, _ := testConfig(t, "[chart]\ntrain_color = \"blurple\"\n")
	_, err = execute(t, "--config", bad, "aggregate", filepath.Join(testdata, "complexity.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestReport(t *testing.T) {
	cfg, _ := testConfig(t, "")
	dir := t.TempDir()
	output := filepath.Join(dir, "report.md")
	inputs := []string{"learning.json", "complexity.yaml", "results.toml", "importances.yaml", "races.csv"}
	args := []string{"--config", cfg, "report", "--html", "--title", "Race Models", "-o", output}
	for _, in := range inputs {
		args = append(args, filepath.Join(testdata, in))
	}
	_, err := execute(t, args...)
	require.NoError(t, err)

	for _, f := range []string{"learning.png", "complexity.png", "results.png", "importances.png", "races.png", "report.html"} {
		assert.FileExists(t, filepath.Join(dir, f))
	}
	b, err := os.ReadFile(output)
	require.NoError(t, err)
	md := string(b)
	assert.Contains(t, md, "# Race Models\n")
	assert.Contains(t, md, "## Decision Tree Classifier Complexity Performance: complexity")
	assert.Contains(t, md, "## Performance Metrics for Three Supervised Learning Models")
	assert.Contains(t, md, "![races.csv](races.png)")
	// sections follow the input order
	assert.Less(t, bytes.Index(b, []byte("max_depth = 3")), bytes.Index(b, []byte("AdaBoostClassifier")))

	_, err = execute(t, "--config", cfg, "report", "-o", output, filepath.Join(testdata, "future.yaml"))
	assert.ErrorIs(t, err, scoreio.ErrFormat)
}

func TestConfigCmd(t *testing.T) {
	cfg, _ := testConfig(t, "[hist]\nbins = 7\n")
	path := filepath.Join(t.TempDir(), "saved.toml")
	_, err := execute(t, "--config", cfg, "config", path)
	require.NoError(t, err)
	c, err := config.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Hist.Bins)

	_, err = execute(t, "--config", cfg, "config", filepath.Join(t.TempDir(), "saved.yaml"))
	assert.ErrorIs(t, err, scoreio.ErrFormat)
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, []string{path}, 10*time.Millisecond, func() error {
			calls.Add(1)
			return nil
		})
	}()

	assert.Eventually(t, func() bool {
		// keep writing until the watcher has started
		_ = os.WriteFile(path, []byte("b"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}
