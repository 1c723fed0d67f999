// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters mirroring the run's atomic progress counters, served
// by the default registry behind --metrics-addr. Registered once at package
// init; Run adds to them alongside the atomics so a scheduled deployment
// accumulates totals across runs.
var (
	metricCompaniesAttempted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobpipe_companies_attempted_total",
		Help: "Companies attempted across all runs of this process.",
	})
	metricCompaniesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobpipe_companies_failed_total",
		Help: "Companies whose fetch or parse failed.",
	})
	metricJobsDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobpipe_jobs_discovered_total",
		Help: "Jobs that survived the title and recency filters.",
	})
	metricJobsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobpipe_jobs_inserted_total",
		Help: "Jobs written to the persistence adapter.",
	})
)
