// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/curves/chart"
	"cogentcore.org/curves/curve"
	"cogentcore.org/curves/hist"
	"cogentcore.org/curves/learners"
	"cogentcore.org/curves/scoreio"
	"cogentcore.org/curves/stats"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func (a *app) aggregateCmd() *cobra.Command {
	var format, output string
	var extra []string
	cmd := &cobra.Command{
		Use:   "aggregate <curves-file>",
		Short: "Print the mean and standard deviation of curve scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				doc := &scoreio.Curves{}
				if err := scoreio.Open(args[0], doc); err != nil {
					return err
				}
				ag, err := doc.Aggregate()
				if err != nil {
					return err
				}
				if output != "" {
					return scoreio.Save(output, ag)
				}
				if format == "text" {
					cols, err := extraColumns(doc, extra)
					if err != nil {
						return err
					}
					printAggregated(cmd.OutOrStdout(), ag, extra, cols)
					return nil
				}
				f, err := scoreio.FormatFromPath("." + format)
				if err != nil {
					return err
				}
				return scoreio.Encode(cmd.OutOrStdout(), f, ag)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to the file instead, in the format of its extension")
	cmd.Flags().StringSliceVar(&extra, "stat", nil, "extra statistics of the test folds in text output, such as SemPop or Min")
	return cmd
}

// extraColumns returns the named statistics of the test folds of each
// point, indexed by panel, point and statistic.
func extraColumns(doc *scoreio.Curves, names []string) ([][][]float64, error) {
	cols := make([][][]float64, len(doc.Panels))
	for pi, pn := range doc.Panels {
		cols[pi] = make([][]float64, len(pn.Test))
		for i, row := range pn.Test {
			for _, nm := range names {
				v, err := stats.Call(nm, row)
				if err != nil {
					return nil, fmt.Errorf("--stat: %w", err)
				}
				cols[pi][i] = append(cols[pi][i], v)
			}
		}
	}
	return cols, nil
}

func aggregate(path string) (*scoreio.Aggregated, error) {
	doc := &scoreio.Curves{}
	if err := scoreio.Open(path, doc); err != nil {
		return nil, err
	}
	return doc.Aggregate()
}

// printAggregated writes a table of each aggregated panel,
// with the extra named columns of each point.
func printAggregated(w io.Writer, ag *scoreio.Aggregated, names []string, extra [][][]float64) {
	out := termenv.NewOutput(w)
	param := ag.Param
	if param == "" {
		param = "sweep"
	}
	if ag.Title != "" {
		fmt.Fprintln(w, out.String(ag.Title).Bold())
	}
	header := fmt.Sprintf("%12s %12s %12s %12s %12s", param, "train mean", "train std", "test mean", "test std")
	for _, nm := range names {
		header += fmt.Sprintf(" %12s", "test "+strings.ToLower(nm))
	}
	for pi, pn := range ag.Panels {
		fmt.Fprintln(w, out.String(pn.Label).Underline())
		fmt.Fprintln(w, out.String(header).Faint())
		best := curve.AggregatedCurve(pn.Test).Best()
		for i := range pn.Train {
			tr, te := pn.Train[i], pn.Test[i]
			line := fmt.Sprintf("%12g %12.4f %12.4f %12.4f %12.4f", tr.Sweep, tr.Mean, tr.Std, te.Mean, te.Std)
			if pi < len(extra) && i < len(extra[pi]) {
				for _, v := range extra[pi][i] {
					line += fmt.Sprintf(" %12.4f", v)
				}
			}
			if i == best {
				fmt.Fprintln(w, out.String(line).Foreground(out.Color("2")))
				continue
			}
			fmt.Fprintln(w, line)
		}
	}
}

// curveLabels returns the chart labels of a curves document.
func curveLabels(doc *scoreio.Curves, defaultParam string) chart.CurveLabels {
	lb := chart.CurveLabels{Title: doc.Title, XLabel: doc.XLabel, TestName: doc.TestLabel}
	if lb.XLabel == "" {
		param := doc.Param
		if param == "" {
			param = defaultParam
		}
		lb.XLabel = chart.ParamLabel(param)
	}
	return lb
}

func (a *app) learning(input, output string) error {
	doc := &scoreio.Curves{}
	if err := scoreio.Open(input, doc); err != nil {
		return err
	}
	prs, err := doc.Pairs()
	if err != nil {
		return err
	}
	panels := make([]chart.CurvePanel, len(prs))
	for i, pr := range prs {
		panels[i] = chart.CurvePanel{Label: doc.Panels[i].Label, Pair: pr}
	}
	f, err := chart.Learning(panels, curveLabels(doc, "train_size"), &a.cfg.Chart)
	if err != nil {
		return err
	}
	return save(f, output)
}

func (a *app) learningCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "learning <curves-file>",
		Short: "Render a grid of learning curves, one panel per model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				return a.learning(args[0], a.output(args[0], output, ""))
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "chart file (png, jpg, svg or pdf)")
	return cmd
}

func (a *app) complexity(input, output string) error {
	doc := &scoreio.Curves{}
	if err := scoreio.Open(input, doc); err != nil {
		return err
	}
	if len(doc.Panels) > 1 {
		slog.Warn("complexity: only the first panel is drawn", "file", input, "panels", len(doc.Panels))
	}
	first, err := doc.Only(0)
	if err != nil {
		return err
	}
	prs, err := first.Pairs()
	if err != nil {
		return err
	}
	f, err := chart.Complexity(prs[0], curveLabels(first, "max_depth"), &a.cfg.Chart)
	if err != nil {
		return err
	}
	return save(f, output)
}

func (a *app) complexityCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "complexity <curves-file>",
		Short: "Render a model complexity (validation) curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				return a.complexity(args[0], a.output(args[0], output, ""))
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "chart file (png, jpg, svg or pdf)")
	return cmd
}

// numericColumns returns the headers of the columns that parse as numbers.
func numericColumns(dt *scoreio.Table) []string {
	var fs []string
	for _, h := range dt.Headers {
		if _, err := dt.Column(h); err != nil {
			slog.Debug("skipping column", "column", h, "err", err)
			continue
		}
		fs = append(fs, h)
	}
	return fs
}

func (a *app) distribution(input, output string) error {
	dt, err := scoreio.OpenCSV(input, scoreio.Detect)
	if err != nil {
		return err
	}
	hc := &a.cfg.Hist
	features := hc.Features
	if len(features) == 0 {
		features = numericColumns(dt)
	}
	ds, err := hist.Distributions(dt, features, hc.Bins, hc.Transform)
	if err != nil {
		return err
	}
	f, err := chart.Distribution(ds, hc.Subject, &a.cfg.Chart)
	if err != nil {
		return err
	}
	return save(f, output)
}

func (a *app) distributionCmd() *cobra.Command {
	var output, transform string
	cmd := &cobra.Command{
		Use:   "distribution <csv-file>",
		Short: "Render histograms of feature columns of a delimited table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hc := &a.cfg.Hist
			fl := cmd.Flags()
			if fl.Changed("features") {
				hc.Features, _ = fl.GetStringSlice("features")
			}
			if fl.Changed("bins") {
				hc.Bins, _ = fl.GetInt("bins")
			}
			if fl.Changed("subject") {
				hc.Subject, _ = fl.GetString("subject")
			}
			if transform != "" {
				if err := hc.Transform.UnmarshalText([]byte(transform)); err != nil {
					return err
				}
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.run(cmd, args, func() error {
				return a.distribution(args[0], a.output(args[0], output, ""))
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&output, "output", "o", "", "chart file (png, jpg, svg or pdf)")
	fl.StringSlice("features", nil, "columns to plot (default all numeric columns)")
	fl.Int("bins", 0, "number of bins per feature (default from config)")
	fl.String("subject", "", "name of the features in the title")
	fl.StringVar(&transform, "transform", "", "transform values before binning: none or log1p")
	return cmd
}

// baselineFlags are the flags of a naive predictor baseline.
type baselineFlags struct {
	positives, total int
	beta             float64
}

func (bf *baselineFlags) add(rs []learners.Baseline) ([]learners.Baseline, error) {
	if bf.total == 0 {
		if bf.positives > 0 {
			return nil, fmt.Errorf("--positives %d needs --total: %w", bf.positives, learners.ErrInvalidInput)
		}
		return rs, nil
	}
	bl, err := learners.NaiveBaseline("Naive Predictor", bf.positives, bf.total, bf.beta)
	if err != nil {
		return nil, err
	}
	return append(rs, bl), nil
}

func (a *app) evaluate(input, output string, bf *baselineFlags) error {
	doc := &scoreio.Results{}
	if err := scoreio.Open(input, doc); err != nil {
		return err
	}
	rs, err := doc.Results()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	bls, err := bf.add(doc.Baselines)
	if err != nil {
		return err
	}
	f, err := chart.Evaluate(rs, bls, doc.Title, &a.cfg.Chart)
	if err != nil {
		return err
	}
	return save(f, output)
}

func (a *app) evaluateCmd() *cobra.Command {
	var output string
	bf := &baselineFlags{}
	cmd := &cobra.Command{
		Use:   "evaluate <results-file>",
		Short: "Render a comparison of learners on time, accuracy and F-score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				return a.evaluate(args[0], a.output(args[0], output, ""), bf)
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&output, "output", "o", "", "chart file (png, jpg, svg or pdf)")
	fl.IntVar(&bf.positives, "positives", 0, "positive records, for a naive predictor baseline")
	fl.IntVar(&bf.total, "total", 0, "total records, for a naive predictor baseline")
	fl.Float64Var(&bf.beta, "beta", 0.5, "beta of the naive predictor F-score")
	return cmd
}

func (a *app) features(input, output string) error {
	doc := &scoreio.Importances{}
	if err := scoreio.Open(input, doc); err != nil {
		return err
	}
	fs, err := doc.TopK(a.cfg.Features.K)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	f, err := chart.Features(fs, doc.Title, &a.cfg.Chart)
	if err != nil {
		return err
	}
	return save(f, output)
}

func (a *app) featuresCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "features <importances-file>",
		Short: "Render the top ranked feature weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("top") {
				a.cfg.Features.K, _ = cmd.Flags().GetInt("top")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.run(cmd, args, func() error {
				return a.features(args[0], a.output(args[0], output, ""))
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "chart file (png, jpg, svg or pdf)")
	cmd.Flags().IntP("top", "k", 0, "number of features (default from config)")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "Write the current configuration to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasSuffix(args[0], ".toml") {
				return fmt.Errorf("config: %q is not a .toml file: %w", args[0], scoreio.ErrFormat)
			}
			return a.cfg.Save(args[0])
		},
	}
}
