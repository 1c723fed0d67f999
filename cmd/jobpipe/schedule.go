// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/kraklabs/jobpipe/internal/ui"
)

// runScheduled runs the pipeline repeatedly on a 5-field cron expression
// via robfig/cron/v3, supplementing the original one-shot invocation (whose
// periodicity came from an external cron entry) with an optional in-process
// scheduler. Blocks until SIGINT/SIGTERM.
func runScheduled(expr string, opts runOptions) {
	c := cron.New()

	entryID, err := c.AddFunc(expr, func() {
		runOnce(opts)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --schedule expression %q: %v\n", expr, err)
		os.Exit(1)
	}

	ui.Infof("scheduled: entry %d, cron %q — running once immediately, then on schedule", entryID, expr)
	c.Start()
	defer c.Stop()

	// Run once immediately so operators see output without waiting for the
	// first scheduled tick, then let the cron entry take over.
	runOnce(opts)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	slog.Default().Info("shutdown.signal", "signal", sig.String())
}
