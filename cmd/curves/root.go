// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/curves/chart"
	"cogentcore.org/curves/config"
	"cogentcore.org/curves/logx"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands.
type app struct {
	cfgPath  string
	logLevel string
	watch    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "curves",
		Short: "Render model evaluation charts from score files",
		Long: `curves aggregates cross-validated scores into mean and standard
deviation curves, and renders learning curves, complexity curves, feature
distributions, learner comparisons and feature weights.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "TOML config file (default "+config.DefaultPath+" if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.watch, "watch", false, "render again whenever an input file changes")

	root.AddCommand(
		a.aggregateCmd(),
		a.learningCmd(),
		a.complexityCmd(),
		a.distributionCmd(),
		a.evaluateCmd(),
		a.featuresCmd(),
		a.reportCmd(),
		a.sweepCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.logLevel != "" {
		lvl, err := logx.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		logx.SetLevel(lvl)
	}
	cfg, err := config.Open(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	slog.Debug("config", "path", a.cfgPath, "out_dir", cfg.OutDir, "format", cfg.Format)
	return chart.UseFont(cfg.Chart.Font)
}

// output returns the path to write the chart for the given input to.
// An empty output names the file after the input in the output
// directory, and an output without an extension gets the configured
// format.
func (a *app) output(input, output, ext string) string {
	if ext == "" {
		ext = a.cfg.Format
	}
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return filepath.Join(a.cfg.OutDir, base+"."+ext)
	}
	if filepath.Ext(output) == "" {
		return output + "." + ext
	}
	return output
}

// run calls fn once, and again on every change of the inputs
// when --watch is set, until the command is canceled.
func (a *app) run(cmd *cobra.Command, inputs []string, fn func() error) error {
	if err := fn(); err != nil {
		if !a.watch {
			return err
		}
		slog.Error(err.Error())
	}
	if !a.watch {
		return nil
	}
	return watch(cmd.Context(), inputs, time.Duration(a.cfg.Watch.Debounce), fn)
}

// save writes the figure, creating the output directory as needed.
func save(f *chart.Figure, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := f.Save(path); err != nil {
		return err
	}
	slog.Info("wrote", "file", path)
	return nil
}
