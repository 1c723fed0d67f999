// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main implements the jobpipe CLI: a single invocation that fetches,
// normalizes, tags, resolves, de-duplicates, and persists early-career job
// postings from a curated list of companies.
//
// Usage:
//
//	jobpipe                              Run once against the local sqlite adapter
//	jobpipe --prod                        Run once against the remote adapter
//	jobpipe --limit=50                    Truncate the company list to 50 entries
//	jobpipe --schedule "0 */6 * * *"       Run repeatedly on a cron schedule
//	jobpipe --log-file=run.log --log       Append per-company outcomes, verbose
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/jobpipe/internal/ui"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	var (
		prod        = flag.Bool("prod", false, "Use the remote persistence adapter instead of local sqlite")
		limit       = flag.Int("limit", 0, "Truncate the company list to N entries (0 = no limit)")
		logFile     = flag.String("log-file", "", "Append per-company outcomes to PATH")
		verbose     = flag.CountP("log", "l", "Increase log verbosity (-l for info, -ll for debug)")
		configPath  = flag.StringP("config", "c", "", "Path to an optional YAML config file")
		schedule    = flag.String("schedule", "", "Run repeatedly on this 5-field cron expression instead of once")
		metricsAddr = flag.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty disables)")
		jsonOutput  = flag.Bool("json", false, "Report the run summary as JSON instead of text")
		noColor     = flag.Bool("no-color", false, "Disable color output")
		showVersion = flag.BoolP("version", "V", false, "Show version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `jobpipe - early-career job aggregation pipeline

Pulls job postings from a curated list of ATS-hosted companies, filters them
by title keyword and recency, enriches missing descriptions, tags and
location-resolves every posting, de-duplicates against a persisted cache,
and writes the result to a relational store in batches.

Usage:
  jobpipe [options]

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment Variables:
  SLUGS_FILE                Path to the company descriptor list (default: slugs.json)
  CONCURRENCY                Outer fan-out width over companies (default: 25)
  KEYWORDS_REGEX             Positive title filter regex
  NEGATIVE_KEYWORDS_REGEX    Negative title filter regex
  JOBPIPE_BASE_URL           Remote adapter base URL (--prod)
  JOBPIPE_ACCOUNT            Remote adapter account (--prod)
  JOBPIPE_DATABASE           Remote adapter database (--prod)
  JOBPIPE_TOKEN              Remote adapter API token (--prod)

Examples:
  jobpipe
  jobpipe --prod --limit=25
  jobpipe --schedule "0 */6 * * *" --metrics-addr :9090
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("jobpipe version %s\n", version)
		os.Exit(0)
	}

	ui.InitColors(*noColor)

	opts := runOptions{
		prod:        *prod,
		limit:       *limit,
		logFile:     *logFile,
		verbose:     *verbose,
		configPath:  *configPath,
		metricsAddr: *metricsAddr,
		jsonOutput:  *jsonOutput,
	}

	if *schedule != "" {
		runScheduled(*schedule, opts)
		return
	}

	runOnce(opts)
}
