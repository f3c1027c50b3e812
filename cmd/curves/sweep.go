// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"cogentcore.org/curves/curve"
	"cogentcore.org/curves/scoreio"
	"github.com/spf13/cobra"
)

// sweepDoc is the sweep field of a curves document panel.
type sweepDoc struct {
	Sweep []float64 `json:"sweep" yaml:"sweep" toml:"sweep"`
}

func encodeSweep(cmd *cobra.Command, format string, vs []int) error {
	f, err := scoreio.FormatFromPath("." + format)
	if err != nil {
		return err
	}
	return scoreio.Encode(cmd.OutOrStdout(), f, &sweepDoc{Sweep: curve.Floats(vs)})
}

func (a *app) sweepCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print the sweep values of a learning or complexity curve",
	}
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "yaml", "output format: json, yaml or toml")

	var testFrac float64
	var count int
	sizes := &cobra.Command{
		Use:   "train-sizes <samples>",
		Short: "Evenly spaced training set sizes for a learning curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("samples: %w", err)
			}
			vs, err := curve.TrainSizes(n, testFrac, count)
			if err != nil {
				return err
			}
			return encodeSweep(cmd, format, vs)
		},
	}
	sizes.Flags().Float64Var(&testFrac, "test-frac", 0.2, "fraction of records held out for testing")
	sizes.Flags().IntVar(&count, "count", 10, "number of training set sizes")

	depths := &cobra.Command{
		Use:   "depths <lo> <hi>",
		Short: "Maximum depths lo to hi for a complexity curve",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("lo: %w", err)
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("hi: %w", err)
			}
			vs, err := curve.DepthRange(lo, hi)
			if err != nil {
				return err
			}
			return encodeSweep(cmd, format, vs)
		},
	}
	cmd.AddCommand(sizes, depths)
	return cmd
}
