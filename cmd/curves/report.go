// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cogentcore.org/curves/report"
	"cogentcore.org/curves/scoreio"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// docKind is the kind of an input file.
type docKind int

const (
	learningDoc docKind = iota
	complexityDoc
	resultsDoc
	importancesDoc
	tableDoc
)

// probe is decoded to tell the document kinds apart.
type probe struct {
	Version  string `json:"version" yaml:"version" toml:"version"`
	Panels   []any  `json:"panels" yaml:"panels" toml:"panels"`
	Learners []any  `json:"learners" yaml:"learners" toml:"learners"`
	Features []any  `json:"features" yaml:"features" toml:"features"`
}

func (pb *probe) DocVersion() string { return pb.Version }

// kindOf returns the kind of document in the file.
func kindOf(path string) (docKind, error) {
	f, err := scoreio.FormatFromPath(path)
	if err != nil {
		return 0, err
	}
	if f == scoreio.CSV {
		return tableDoc, nil
	}
	pb := &probe{}
	if err := scoreio.Open(path, pb); err != nil {
		return 0, err
	}
	switch {
	case len(pb.Panels) == 1:
		return complexityDoc, nil
	case len(pb.Panels) > 1:
		return learningDoc, nil
	case len(pb.Learners) > 0:
		return resultsDoc, nil
	case len(pb.Features) > 0:
		return importancesDoc, nil
	}
	return 0, fmt.Errorf("%s: no panels, learners or features: %w", path, scoreio.ErrFormat)
}

// part is the rendered chart of one input and its report section.
type part struct {
	figure string
	add    func(r *report.Report) error
}

// reportPart renders the chart for the input into dir and returns
// the part of the report for it.
func (a *app) reportPart(input, dir string) (*part, error) {
	kind, err := kindOf(input)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	pt := &part{figure: base + "." + a.cfg.Format}
	out := filepath.Join(dir, pt.figure)
	switch kind {
	case learningDoc, complexityDoc:
		ag, err := aggregate(input)
		if err != nil {
			return nil, err
		}
		if kind == learningDoc {
			err = a.learning(input, out)
		} else {
			err = a.complexity(input, out)
		}
		if err != nil {
			return nil, err
		}
		pt.add = func(r *report.Report) error { return r.AddCurves(ag) }
	case resultsDoc:
		doc := &scoreio.Results{}
		if err := scoreio.Open(input, doc); err != nil {
			return nil, err
		}
		rs, err := doc.Results()
		if err != nil {
			return nil, err
		}
		if err := a.evaluate(input, out, &baselineFlags{}); err != nil {
			return nil, err
		}
		pt.add = func(r *report.Report) error { return r.AddResults(doc.Title, rs, doc.Baselines) }
	case importancesDoc:
		doc := &scoreio.Importances{}
		if err := scoreio.Open(input, doc); err != nil {
			return nil, err
		}
		fs, err := doc.TopK(a.cfg.Features.K)
		if err != nil {
			return nil, err
		}
		if err := a.features(input, out); err != nil {
			return nil, err
		}
		pt.add = func(r *report.Report) error { return r.AddFeatures(doc.Title, fs) }
	case tableDoc:
		if err := a.distribution(input, out); err != nil {
			return nil, err
		}
	}
	return pt, nil
}

// writeReport renders the charts of all inputs concurrently, and then
// writes the report with a section per input in input order.
func (a *app) writeReport(inputs []string, output string, withHTML bool) error {
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	parts := make([]*part, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			pt, err := a.reportPart(in, dir)
			if err != nil {
				return err
			}
			parts[i] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r := report.New(a.cfg.Report.Title)
	for i, pt := range parts {
		if pt.add != nil {
			if err := pt.add(r); err != nil {
				return fmt.Errorf("%s: %w", inputs[i], err)
			}
		}
		r.AddFigure(filepath.Base(inputs[i]), pt.figure)
	}
	_, err := r.Save(output, withHTML)
	return err
}

func (a *app) reportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "report <file>...",
		Short: "Render charts for all inputs and write a Markdown report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			if fl.Changed("html") {
				a.cfg.Report.HTML, _ = fl.GetBool("html")
			}
			if fl.Changed("title") {
				a.cfg.Report.Title, _ = fl.GetString("title")
			}
			if output == "" {
				output = filepath.Join(a.cfg.OutDir, "report.md")
			}
			return a.run(cmd, args, func() error {
				return a.writeReport(args, output, a.cfg.Report.HTML)
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&output, "output", "o", "", "report file (default report.md in the output directory)")
	fl.Bool("html", false, "also write the report as HTML")
	fl.String("title", "", "report title")
	return cmd
}
