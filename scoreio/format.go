// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/h2non/filetype"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for files that cannot be decoded: an unknown
// extension, binary content, or an unsupported document version.
var ErrFormat = errors.New("unsupported format")

// VersionConstraint is the range of document versions that can be read.
const VersionConstraint = "^1"

// Format is a document encoding.
type Format int32

const (
	JSON Format = iota
	YAML
	TOML
	CSV

	FormatN
)

var formatNames = [...]string{"JSON", "YAML", "TOML", "CSV"}

func (f Format) String() string {
	if f < 0 || f >= FormatN {
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return formatNames[f]
}

// FormatFromPath returns the format for the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".csv", ".tsv", ".txt":
		return CSV, nil
	}
	return 0, fmt.Errorf("scoreio: no format for file %q: %w", path, ErrFormat)
}

// Versioned is implemented by documents that carry a format version.
type Versioned interface {
	DocVersion() string
}

// CheckVersion returns an error if a non-empty version is not
// within [VersionConstraint].
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("scoreio: version %q: %w: %w", version, err, ErrFormat)
	}
	c, err := semver.NewConstraint(VersionConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("scoreio: version %s is not %s: %w", v, VersionConstraint, ErrFormat)
	}
	return nil
}

// CheckText returns an error if the head of a file is recognized
// as a binary file type, such as an image passed in place of data.
func CheckText(head []byte) error {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return nil
	}
	return fmt.Errorf("scoreio: input is a binary %s (%s) file: %w", kind.Extension, kind.MIME.Value, ErrFormat)
}

// Decode decodes a document in the given format into v.
func Decode(data []byte, f Format, v any) error {
	if err := CheckText(data); err != nil {
		return err
	}
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	case TOML:
		err = toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("scoreio.Decode: cannot decode %v documents: %w", f, ErrFormat)
	}
	if err != nil {
		return fmt.Errorf("scoreio.Decode: %v: %w", f, err)
	}
	if vd, ok := v.(Versioned); ok {
		return CheckVersion(vd.DocVersion())
	}
	return nil
}

// Open decodes the document in the given file into v,
// with the format given by the file extension.
func Open(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Decode(data, f, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("scoreio.Encode: cannot encode %v documents: %w", f, ErrFormat)
}

// Save writes v to the given file, with the format given by the file extension.
func Save(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, f, v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
