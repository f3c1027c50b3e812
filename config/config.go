// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the curves tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"cogentcore.org/curves/chart"
	"cogentcore.org/curves/hist"
	"cogentcore.org/curves/importance"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file read when none is given, if it exists.
const DefaultPath = "~/.config/curves/curves.toml"

// ErrInvalid is returned for a config that fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the main config struct
// that contains all of the configuration
// options for the curves tool.
type Config struct {

	// OutDir is the directory that charts and reports are written to.
	OutDir string `toml:"out_dir" validate:"required"`

	// Format is the chart format used when an output name has no extension.
	Format string `toml:"format" validate:"oneof=png jpg svg pdf"`

	// Chart holds the rendering options shared by all charts.
	Chart chart.Options `toml:"chart"`

	// Hist holds the options of the distribution command.
	Hist Hist `toml:"hist"`

	// Features holds the options of the features command.
	Features Features `toml:"features"`

	// Report holds the options of the report command.
	Report Report `toml:"report"`

	// Watch holds the options of the --watch mode.
	Watch Watch `toml:"watch"`
}

type Hist struct {

	// Bins is the number of equal width bins per feature.
	Bins int `toml:"bins" validate:"gte=1"`

	// Features are the columns to plot; empty means all columns.
	Features []string `toml:"features"`

	// Transform is applied to values before binning.
	Transform hist.Transform `toml:"transform"`

	// Subject names the features in the figure title.
	Subject string `toml:"subject"`
}

type Features struct {

	// K is the number of top ranked features to plot.
	K int `toml:"k" validate:"gte=1"`
}

type Report struct {

	// Title is the report heading.
	Title string `toml:"title"`

	// HTML also writes the report rendered as HTML.
	HTML bool `toml:"html"`
}

type Watch struct {

	// Debounce is how long to wait after a change before rendering again.
	Debounce Duration `toml:"debounce" validate:"gte=0"`
}

// Duration is a [time.Duration] that reads and writes
// as a string such as "250ms".
type Duration time.Duration

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.OutDir = "."
	c.Format = "png"
	c.Chart.Defaults()
	c.Hist.Bins = 50
	c.Hist.Transform = hist.None
	c.Features.K = importance.DefaultK
	c.Report.Title = "Model Evaluation Report"
	c.Watch.Debounce = Duration(250 * time.Millisecond)
}

// New returns a config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("chartcolor", validateColor); err != nil {
		panic(fmt.Errorf("config: registering chartcolor: %w", err))
	}
}

// validateColor accepts CSS color names and hex colors.
func validateColor(fl validator.FieldLevel) bool {
	_, err := chart.FromString(fl.Field().String())
	return err == nil
}

// Validate checks the config values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config.Validate: %w: %w", err, ErrInvalid)
	}
	return nil
}

// Open reads the TOML config file on top of the defaults and validates
// the result. A leading ~ in the path is expanded to the home directory.
// An empty path reads [DefaultPath] if it exists, and otherwise returns
// the defaults.
func Open(path string) (*Config, error) {
	c := New()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	fp, err := homedir.Expand(path)
	if err != nil {
		if !explicit {
			return c, nil
		}
		return nil, fmt.Errorf("config.Open: %w", err)
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config.Open: %w", err)
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", fp, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fp, err)
	}
	return c, nil
}

// Save writes the config to the named TOML file.
func (c *Config) Save(path string) error {
	fp, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return os.WriteFile(fp, b, 0o644)
}
