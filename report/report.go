// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes Markdown and HTML summaries of
// aggregated curves, learner results and feature weights.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/curves/curve"
	"cogentcore.org/curves/importance"
	"cogentcore.org/curves/learners"
	"cogentcore.org/curves/scoreio"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"
)

// Report is a document made of titled sections.
type Report struct {
	Title string

	// ID identifies the run that produced the report.
	ID uuid.UUID

	Created time.Time

	sections []*section
}

type section struct {
	heading string
	body    bytes.Buffer
}

// New returns an empty report with a new random run ID.
func New(title string) *Report {
	return &Report{Title: title, ID: uuid.New(), Created: time.Now()}
}

func (r *Report) add(heading string) *bytes.Buffer {
	s := &section{heading: heading}
	r.sections = append(r.sections, s)
	return &s.body
}

// Len returns the number of sections.
func (r *Report) Len() int { return len(r.sections) }

func num(v float64) string { return fmt.Sprintf("%.4f", v) }

// AddCurves adds a section per panel of the aggregated curves document,
// with the mean and standard deviation of the training and testing
// scores at each sweep value, and the best testing score.
func (r *Report) AddCurves(ag *scoreio.Aggregated) error {
	if len(ag.Panels) == 0 {
		return fmt.Errorf("report.AddCurves: no panels: %w", curve.ErrInvalidInput)
	}
	param := ag.Param
	if param == "" {
		param = "sweep"
	}
	for _, pn := range ag.Panels {
		heading := pn.Label
		if ag.Title != "" {
			heading = ag.Title + ": " + heading
		}
		b := r.add(heading)
		fmt.Fprintf(b, "| %s | train mean | train std | test mean | test std |\n", param)
		b.WriteString("|---:|---:|---:|---:|---:|\n")
		for i := range pn.Train {
			tr, te := pn.Train[i], pn.Test[i]
			fmt.Fprintf(b, "| %g | %s | %s | %s | %s |\n", tr.Sweep, num(tr.Mean), num(tr.Std), num(te.Mean), num(te.Std))
		}
		if bi := curve.AggregatedCurve(pn.Test).Best(); bi >= 0 {
			bp := pn.Test[bi]
			fmt.Fprintf(b, "\nBest test score %s ± %s at %s = %g.\n", num(bp.Mean), num(bp.Std), param, bp.Sweep)
		}
	}
	return nil
}

// AddResults adds a section with a table per metric of the learner
// results, naming the best learner on each score metric at the largest
// sample size, and a table of the baselines.
func (r *Report) AddResults(title string, rs *learners.Results, baselines []learners.Baseline) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	if title == "" {
		title = "Learner Comparison"
	}
	b := r.add(title)
	last := len(rs.SampleLabels) - 1
	for m := range learners.MetricN {
		fmt.Fprintf(b, "**%s**\n\n| learner | %s |\n", m.Title(), strings.Join(rs.SampleLabels, " | "))
		b.WriteString("|---|" + strings.Repeat("---:|", len(rs.SampleLabels)) + "\n")
		for li, name := range rs.Names() {
			vs := rs.Series(li, m)
			cells := make([]string, len(vs))
			for i, v := range vs {
				cells[i] = num(v)
			}
			fmt.Fprintf(b, "| %s | %s |\n", name, strings.Join(cells, " | "))
		}
		if !m.IsTime() {
			fmt.Fprintf(b, "\nBest at %s: %s.\n", rs.SampleLabels[last], rs.Best(m, last))
		}
		b.WriteString("\n")
	}
	if len(baselines) > 0 {
		b.WriteString("| baseline | accuracy | F-score |\n|---|---:|---:|\n")
		for _, bl := range baselines {
			fmt.Fprintf(b, "| %s | %s | %s |\n", bl.Name, num(bl.Accuracy), num(bl.FScore))
		}
	}
	return nil
}

// AddFeatures adds a section with the ranked feature weights.
func (r *Report) AddFeatures(title string, fs []importance.Feature) error {
	if len(fs) == 0 {
		return fmt.Errorf("report.AddFeatures: no features: %w", importance.ErrInvalidInput)
	}
	if title == "" {
		title = "Feature Weights"
	}
	b := r.add(title)
	b.WriteString("| rank | feature | weight | cumulative |\n|---:|---|---:|---:|\n")
	for i, f := range fs {
		fmt.Fprintf(b, "| %d | %s | %s | %s |\n", i+1, f.Name, num(f.Weight), num(f.Cumulative))
	}
	return nil
}

// AddFigure adds a section showing the image at the given path,
// relative to the report file.
func (r *Report) AddFigure(caption, path string) {
	b := r.add(caption)
	fmt.Fprintf(b, "![%s](%s)\n", caption, filepath.ToSlash(path))
}

// Markdown returns the report as Markdown.
func (r *Report) Markdown() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "Run `%s`, %s.\n", r.ID, r.Created.UTC().Format(time.RFC3339))
	for _, s := range r.sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.heading)
		b.Write(s.body.Bytes())
	}
	return b.Bytes()
}

// HTML returns the report rendered as a complete HTML page.
func (r *Report) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	rd := html.NewRenderer(html.RendererOptions{
		Title: r.Title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(r.Markdown(), p, rd)
}

// Save writes the report to the named Markdown file, and when withHTML is
// set, also to the same name with an .html extension. It returns the
// paths written.
func (r *Report) Save(path string, withHTML bool) ([]string, error) {
	if err := os.WriteFile(path, r.Markdown(), 0o644); err != nil {
		return nil, err
	}
	paths := []string{path}
	if withHTML {
		hp := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
		if err := os.WriteFile(hp, r.HTML(), 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, hp)
	}
	return paths, nil
}
