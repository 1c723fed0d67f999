// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"

	"github.com/kraklabs/jobpipe/internal/config"
	jperrors "github.com/kraklabs/jobpipe/internal/errors"
	"github.com/kraklabs/jobpipe/internal/ui"
	"github.com/kraklabs/jobpipe/pkg/geo"
	"github.com/kraklabs/jobpipe/pkg/pipeline"
	"github.com/kraklabs/jobpipe/pkg/storage"
)

// runOptions holds the parsed CLI flags runOnce needs, kept separate from
// the pflag variables themselves so runScheduled can pass the same struct
// into repeated invocations.
type runOptions struct {
	prod        bool
	limit       int
	logFile     string
	verbose     int
	configPath  string
	metricsAddr string
	jsonOutput  bool
}

// geoDataDir resolves the directory the three Geonames-format gazetteer
// files live in. GEODATA_DIR overrides the current directory default.
func geoDataDir() string {
	if v := os.Getenv("GEODATA_DIR"); v != "" {
		return v
	}
	return "."
}

// jsonResult is the --json run-summary shape.
type jsonResult struct {
	CompaniesAttempted int64   `json:"companies_attempted"`
	CompaniesSucceeded int64   `json:"companies_succeeded"`
	CompaniesFailed    int64   `json:"companies_failed"`
	JobsDiscovered     int64   `json:"jobs_discovered"`
	JobsInserted       int64   `json:"jobs_inserted"`
	DurationSeconds    float64 `json:"duration_seconds"`
}

// runOnce performs exactly one pipeline run: load config, build the shared
// engines, fan out over companies, flush the dedup cache, and report a
// summary. Exits nonzero on any unrecoverable (category 1, "configuration")
// error; per-company failures never reach this far since the orchestrator
// swallows and counts them.
func runOnce(opts runOptions) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		jperrors.FatalError(err, opts.jsonOutput)
	}

	logger, closeLog := buildLogger(opts)
	if closeLog != nil {
		defer closeLog()
	}

	if opts.metricsAddr != "" {
		startMetricsServer(opts.metricsAddr, logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("shutdown.signal", "signal", sig.String())
		cancel()
	}()

	companies, err := pipeline.LoadCompanies(cfg.SlugsFile)
	if err != nil {
		jperrors.FatalError(jperrors.NewInputError(
			"Cannot load company list",
			fmt.Sprintf("Failed to read %s", cfg.SlugsFile),
			"Check the SLUGS_FILE path and that the file is valid JSON",
			err,
		), opts.jsonOutput)
	}
	if opts.limit > 0 && opts.limit < len(companies) {
		companies = companies[:opts.limit]
	}

	backend, err := buildBackend(ctx, opts, cfg)
	if err != nil {
		jperrors.FatalError(err, opts.jsonOutput)
	}
	defer func() { _ = backend.Close() }()

	places := geo.NewGazetteer()
	dir := geoDataDir()
	if err := places.Load(logger,
		filepath.Join(dir, "countryInfo.txt"),
		filepath.Join(dir, "admin1CodesASCII.txt"),
		filepath.Join(dir, "cities15000.txt"),
	); err != nil {
		jperrors.FatalError(jperrors.NewConfigError(
			"Cannot load gazetteer files",
			"Failed to read one or more Geonames-format reference files",
			"Set GEODATA_DIR to the directory containing cities15000.txt, admin1CodesASCII.txt, and countryInfo.txt",
			err,
		), opts.jsonOutput)
	}
	if err := backend.InitializeGeoTables(ctx, places.Countries(), regionRows(places.Regions())); err != nil {
		logger.Warn("geo.init.failed", "err", err)
	}

	dedup, err := loadDedup(ctx, cfg.CacheFile, backend)
	if err != nil {
		logger.Warn("cache.load.failed", "err", err)
		dedup = make(map[string]struct{})
	}

	pcfg := pipeline.Config{
		Concurrency:      cfg.Concurrency,
		BatchSize:        200,
		Keywords:         cfg.KeywordsRegex,
		NegativeKeywords: cfg.NegativeKeywords,
	}

	p, err := pipeline.NewPipeline(pcfg, logger, backend, places)
	if err != nil {
		jperrors.FatalError(jperrors.NewConfigError(
			"Invalid filter configuration",
			"Failed to compile the keyword filter regexes",
			"Check KEYWORDS_REGEX and NEGATIVE_KEYWORDS_REGEX",
			err,
		), opts.jsonOutput)
	}

	bar := progressbar.NewOptions(len(companies),
		progressbar.OptionSetDescription("Fetching companies"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)
	p.SetProgressCallback(func(current, total int64) {
		_ = bar.Set64(current)
	})

	logger.Info("pipeline.start", "companies", len(companies), "concurrency", pcfg.Concurrency)

	result, err := p.Run(ctx, companies, dedup)
	_ = bar.Finish()
	if err != nil {
		jperrors.FatalError(jperrors.NewInternalError(
			"Pipeline run failed",
			"An unexpected error terminated the run",
			"Check the logs above for the underlying cause",
			err,
		), opts.jsonOutput)
	}

	if err := pipeline.SaveCacheFile(cfg.CacheFile, dedupKeys(dedup)); err != nil {
		logger.Warn("cache.save.failed", "err", err)
	}

	printResult(result, opts.jsonOutput)
}

// buildBackend selects the local sqlite adapter or the remote HTTP adapter
// per --prod, validating remote credentials up front rather than letting
// the adapter fail opaquely on first request.
func buildBackend(ctx context.Context, opts runOptions, cfg config.Config) (storage.Backend, error) {
	if !opts.prod {
		backend, err := storage.NewSQLiteBackend("jobpipe.db")
		if err != nil {
			return nil, jperrors.NewDatabaseError(
				"Cannot open local database",
				"Failed to open or initialize jobpipe.db",
				"Check file permissions in the current directory",
				err,
			)
		}
		return backend, nil
	}

	if err := cfg.ValidateRemote(); err != nil {
		return nil, err
	}
	return storage.NewRemoteBackend(storage.RemoteConfig{
		BaseURL:  cfg.Remote.BaseURL,
		Account:  cfg.Remote.Account,
		Database: cfg.Remote.Database,
		Token:    cfg.Remote.Token,
	}, nil), nil
}

// loadDedup builds the initial dedup set as the union of the persisted
// cache file and every id already present in the store.
func loadDedup(ctx context.Context, cachePath string, backend storage.Backend) (map[string]struct{}, error) {
	ids, err := pipeline.LoadCacheFile(cachePath)
	if err != nil {
		return nil, err
	}

	dedup := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		dedup[id] = struct{}{}
	}

	existing, err := backend.GetExistingIDs(ctx)
	if err != nil {
		return dedup, err
	}
	for id := range existing {
		dedup[id] = struct{}{}
	}
	return dedup, nil
}

func dedupKeys(dedup map[string]struct{}) []string {
	out := make([]string, 0, len(dedup))
	for id := range dedup {
		out = append(out, id)
	}
	return out
}

func regionRows(regions map[string]string) map[string]storage.RegionRow {
	out := make(map[string]storage.RegionRow, len(regions))
	for id, name := range regions {
		cc := id
		if idx := strings.IndexByte(id, '.'); idx >= 0 {
			cc = id[:idx]
		}
		out[id] = storage.RegionRow{CountryCode: cc, Name: name}
	}
	return out
}

// buildLogger wires slog per the verbose count (0=warn, 1=info, 2+=debug),
// writing to stdout and, when --log-file is set, also to an append-mode
// file guarded by its own mutex. Returns a close func for the log file,
// nil if none was opened.
func buildLogger(opts runOptions) (*slog.Logger, func()) {
	level := slog.LevelWarn
	switch {
	case opts.verbose >= 2:
		level = slog.LevelDebug
	case opts.verbose == 1:
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stdout
	var closer func()

	if opts.logFile != "" {
		lf, err := ui.OpenLogFile(opts.logFile)
		if err != nil {
			ui.Warningf("could not open log file %s: %v", opts.logFile, err)
		} else {
			w = io.MultiWriter(os.Stdout, lf)
			closer = func() { _ = lf.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer
}

// startMetricsServer exposes the default Prometheus registry over HTTP.
func startMetricsServer(addr string, logger *slog.Logger) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		logger.Info("metrics.http.start", "addr", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics.http.error", "err", err)
		}
	}()
}

func printResult(result *pipeline.Result, jsonOutput bool) {
	if jsonOutput {
		data, _ := json.Marshal(jsonResult{
			CompaniesAttempted: result.CompaniesAttempted,
			CompaniesSucceeded: result.CompaniesSucceeded,
			CompaniesFailed:    result.CompaniesFailed,
			JobsDiscovered:     result.JobsDiscovered,
			JobsInserted:       result.JobsInserted,
			DurationSeconds:    result.Duration.Seconds(),
		})
		fmt.Println(string(data))
		return
	}

	ui.Header("Run summary")
	ui.Infof("%s %d/%d", ui.Label("Companies"), result.CompaniesSucceeded, result.CompaniesAttempted)
	ui.Infof("%s %d", ui.Label("Jobs discovered"), result.JobsDiscovered)
	ui.Infof("%s %d", ui.Label("Jobs inserted"), result.JobsInserted)
	ui.Infof("%s %s", ui.Label("Duration"), result.Duration.Round(time.Millisecond))
	if result.CompaniesFailed > 0 {
		ui.Warningf("%d companies failed — see logs for details", result.CompaniesFailed)
	} else {
		ui.Success("All companies processed successfully")
	}
}
