// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command curves renders learning curves, complexity curves, feature
// distributions, learner comparisons and feature weights from score files.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/curves/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
