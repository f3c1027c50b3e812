// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// DetectDelim returns Tab if the line has tabs, otherwise Comma.
func DetectDelim(line string) Delims {
	if strings.Contains(line, "\t") {
		return Tab
	}
	return Comma
}

// Table is a table of records read from a delimited file whose first
// row holds the column headers. Cells are kept as strings and parsed
// as numbers per column on demand, so non-numeric columns are fine
// as long as they are not requested.
type Table struct {
	Headers []string
	Records [][]string
}

// OpenCSV reads a table from a delimited file.
func OpenCSV(filename string, delim Delims) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	dt, err := ReadCSV(bufio.NewReader(fp), delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return dt, nil
}

// ReadCSV reads a table from delimited records, using the Go standard
// encoding/csv reader. The first record is the header row.
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	if delim == Detect {
		br := bufio.NewReader(r)
		head, err := br.Peek(4096)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, err
		}
		if err := CheckText(head); err != nil {
			return nil, err
		}
		line, _, _ := bytes.Cut(head, []byte("\n"))
		delim = DetectDelim(string(line))
		r = br
	}
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	cr.TrimLeadingSpace = true
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("scoreio.ReadCSV: %w", err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("scoreio.ReadCSV: no header row: %w", ErrFormat)
	}
	return &Table{Headers: rec[0], Records: rec[1:]}, nil
}

// NumRows returns the number of data rows.
func (dt *Table) NumRows() int { return len(dt.Records) }

// ColumnIndex returns the index of the named column. An unknown name
// returns an error suggesting the most similar header.
func (dt *Table) ColumnIndex(name string) (int, error) {
	for i, h := range dt.Headers {
		if h == name {
			return i, nil
		}
	}
	if s := dt.Suggest(name); s != "" {
		return -1, fmt.Errorf("scoreio.Table: no column %q, did you mean %q?", name, s)
	}
	return -1, fmt.Errorf("scoreio.Table: no column %q", name)
}

// Suggest returns the header most similar to name,
// or "" if none is reasonably close.
func (dt *Table) Suggest(name string) string {
	best, bsim := "", 0.5
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	for _, h := range dt.Headers {
		if sim := strutil.Similarity(name, h, lev); sim >= bsim {
			best, bsim = h, sim
		}
	}
	return best
}

// Column returns the values of the named column parsed as numbers.
// Empty cells are an error, as are cells that do not parse.
func (dt *Table) Column(name string) ([]float64, error) {
	ci, err := dt.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(dt.Records))
	for ri, rec := range dt.Records {
		if ci >= len(rec) {
			return nil, fmt.Errorf("scoreio.Table: row %d has no %q value", ri+1, name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[ci]), 64)
		if err != nil {
			return nil, fmt.Errorf("scoreio.Table: row %d column %q: %w", ri+1, name, err)
		}
		vals[ri] = v
	}
	return vals, nil
}
