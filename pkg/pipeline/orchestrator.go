// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kraklabs/jobpipe/pkg/ats"
	"github.com/kraklabs/jobpipe/pkg/geo"
	"github.com/kraklabs/jobpipe/pkg/model"
	"github.com/kraklabs/jobpipe/pkg/storage"
	"github.com/kraklabs/jobpipe/pkg/tagengine"
)

// httpTimeout bounds every HTTP request the pipeline issues: list fetch,
// per-job detail fetch, remote batch submission.
const httpTimeout = 30 * time.Second

// Config configures a Pipeline run.
type Config struct {
	// Concurrency is the outer fan-out width over companies (N). Default 25.
	Concurrency int

	// BatchSize is the write-buffer flush threshold (B).
	BatchSize int

	Keywords         string
	NegativeKeywords string
}

// DefaultConfig returns the pipeline's default concurrency and batch size.
func DefaultConfig() Config {
	return Config{
		Concurrency: 25,
		BatchSize:   200,
	}
}

// ProgressCallback reports progress as companies are attempted.
type ProgressCallback func(current, total int64)

// Result summarizes one pipeline run.
type Result struct {
	CompaniesAttempted int64
	CompaniesSucceeded int64
	CompaniesFailed    int64
	JobsDiscovered     int64
	JobsInserted       int64
	Duration           time.Duration
}

// sharedState is the pipeline's single critical section: the write buffer
// and the in-memory dedup set, guarded by one mutex acquired in one order
// (check membership, append, check size, drain, release — all I/O happens
// after release).
type sharedState struct {
	mu     sync.Mutex
	buffer []model.Job
	seen   map[string]struct{}
}

// Pipeline orchestrates ingestion across companies: the concurrent
// fetch/parse/filter/enrich/dedupe/batch-write engine. Constructed once per
// run; every shared engine (HTTP client, tag engine, education detector,
// location engine) is built before the fan-out begins and never mutated
// after, so workers read them without locking.
type Pipeline struct {
	cfg     Config
	logger  *slog.Logger
	client  *http.Client
	enrich  *ats.Enricher
	tags    *tagengine.Engine
	edu     *tagengine.EducationDetector
	places  *geo.Gazetteer
	backend storage.Backend
	filter  *Filter

	onProgress ProgressCallback
}

// NewPipeline builds a Pipeline, wiring the HTTP client, tag engine,
// education detector, location engine, and persistence adapter once.
func NewPipeline(cfg Config, logger *slog.Logger, backend storage.Backend, places *geo.Gazetteer) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 25
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}

	keywords, negativeKeywords, err := compileKeywordRegexes(cfg.Keywords, cfg.NegativeKeywords)
	if err != nil {
		return nil, fmt.Errorf("compile keyword regexes: %w", err)
	}

	client := &http.Client{Timeout: httpTimeout}

	return &Pipeline{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		enrich:  ats.NewEnricher(client, logger),
		tags:    tagengine.NewEngine(),
		edu:     tagengine.NewEducationDetector(),
		places:  places,
		backend: backend,
		filter:  NewFilter(keywords, negativeKeywords),
	}, nil
}

// SetProgressCallback sets an optional callback invoked as companies are
// attempted.
func (p *Pipeline) SetProgressCallback(cb ProgressCallback) {
	p.onProgress = cb
}

// Run streams companies through the bounded worker pool of width
// p.cfg.Concurrency, filtering, enriching, tagging, and resolving the
// location of every discovered job, de-duplicating against dedup, and
// batching writes to the persistence adapter. A final flush drains the
// buffer at shutdown, whether or not it reached the batch threshold.
func (p *Pipeline) Run(ctx context.Context, companies []model.Company, dedup map[string]struct{}) (*Result, error) {
	start := time.Now()

	state := &sharedState{seen: dedup}
	if state.seen == nil {
		state.seen = make(map[string]struct{})
	}

	var attempted, succeeded, failed, discovered, inserted int64

	jobs := make(chan int, len(companies))
	var wg sync.WaitGroup

	for w := 0; w < p.cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				company := companies[i]
				atomic.AddInt64(&attempted, 1)
				metricCompaniesAttempted.Inc()

				found, err := p.processCompany(ctx, company)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					metricCompaniesFailed.Inc()
					p.logger.Warn("pipeline.company_failed", "company", company.Name, "ats", company.Type, "err", err)
					p.reportProgress(&attempted, int64(len(companies)))
					continue
				}

				atomic.AddInt64(&succeeded, 1)
				atomic.AddInt64(&discovered, int64(len(found)))
				metricJobsDiscovered.Add(float64(len(found)))

				n, err := p.admit(ctx, state, found)
				if err != nil {
					p.logger.Warn("pipeline.flush_failed", "err", err)
				}
				atomic.AddInt64(&inserted, int64(n))
				metricJobsInserted.Add(float64(n))

				p.reportProgress(&attempted, int64(len(companies)))
			}
		}()
	}

	for i := range companies {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Final flush: drain whatever remains in the buffer regardless of
	// whether it reached the threshold.
	state.mu.Lock()
	remaining := state.buffer
	state.buffer = nil
	state.mu.Unlock()

	if len(remaining) > 0 {
		n, err := p.flush(ctx, remaining)
		if err != nil {
			p.logger.Warn("pipeline.final_flush_failed", "err", err)
			p.forget(state, remaining)
		}
		atomic.AddInt64(&inserted, int64(n))
		metricJobsInserted.Add(float64(n))
	}

	return &Result{
		CompaniesAttempted: atomic.LoadInt64(&attempted),
		CompaniesSucceeded: atomic.LoadInt64(&succeeded),
		CompaniesFailed:    atomic.LoadInt64(&failed),
		JobsDiscovered:     atomic.LoadInt64(&discovered),
		JobsInserted:       atomic.LoadInt64(&inserted),
		Duration:           time.Since(start),
	}, nil
}

func (p *Pipeline) reportProgress(attempted *int64, total int64) {
	if p.onProgress != nil {
		p.onProgress(atomic.LoadInt64(attempted), total)
	}
}

// admit inserts newly discovered jobs into the shared buffer under the
// single mutex protecting both the buffer and the dedup set, draining the
// buffer (outside the lock) if it reached the batch threshold.
func (p *Pipeline) admit(ctx context.Context, state *sharedState, found []model.Job) (int, error) {
	state.mu.Lock()
	var toFlush []model.Job
	for _, j := range found {
		if err := validateJob(j); err != nil {
			p.logger.Warn("pipeline.job_invalid", "job_id", j.ID, "err", err)
			continue
		}
		if _, dup := state.seen[j.ID]; dup {
			continue
		}
		state.seen[j.ID] = struct{}{}
		state.buffer = append(state.buffer, j)
	}
	if len(state.buffer) >= p.cfg.BatchSize {
		toFlush = state.buffer
		state.buffer = nil
	}
	state.mu.Unlock()

	if len(toFlush) == 0 {
		return 0, nil
	}
	n, err := p.flush(ctx, toFlush)
	if err != nil {
		p.forget(state, toFlush)
	}
	return n, err
}

// forget removes a failed batch's ids from the dedup set so the jobs are
// rediscovered and re-written on the next run instead of being recorded in
// the cache file as if they had been persisted.
func (p *Pipeline) forget(state *sharedState, batch []model.Job) {
	state.mu.Lock()
	for _, j := range batch {
		delete(state.seen, j.ID)
	}
	state.mu.Unlock()
}

// flush performs the batched write outside any lock. A write failure is
// logged and the jobs are dropped — they were never added to the
// persisted cache, so they will be rediscovered on the next run.
func (p *Pipeline) flush(ctx context.Context, batch []model.Job) (int, error) {
	stmts := storage.BuildInsertJobStatements(batch)
	if err := p.backend.ExecuteBatch(ctx, stmts); err != nil {
		return 0, fmt.Errorf("flush batch of %d jobs: %w", len(batch), err)
	}
	return len(batch), nil
}

// processCompany fetches, parses, filters, enriches, tags, and
// location-resolves one company's job postings. Per-company failures
// (HTTP error, JSON decode failure, parser error) are returned to the
// caller for logging and counting; they never abort the pipeline.
func (p *Pipeline) processCompany(ctx context.Context, company model.Company) ([]model.Job, error) {
	data, err := p.fetch(ctx, company.APIURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", company.APIURL, err)
	}

	parsed, err := ats.Parse(company, data)
	if err != nil {
		p.logger.Debug("pipeline.payload_sample", "company", company.Name, "sample", payloadSample(data))
		return nil, fmt.Errorf("parse %s payload: %w", company.Type, err)
	}

	ats.CheckParsingHealth(p.logger, company, data, parsed)

	filtered := parsed[:0]
	for _, j := range parsed {
		if p.filter.Accept(j) {
			filtered = append(filtered, j)
		}
	}

	p.enrich.EnrichAll(ctx, filtered, company)

	for i := range filtered {
		p.annotate(&filtered[i])
	}

	return filtered, nil
}

// annotate runs the tag engine, education detector, and location resolver
// over one job: tags from title+description, then education info from the
// same combined text, then location resolution (only overwriting the
// location display string when resolution produced something), then a
// final work-mode tag when the job isn't in-office.
func (p *Pipeline) annotate(j *model.Job) {
	// Vendor dates the normalizer couldn't parse pass through verbatim;
	// blank them here so the stored value is always empty or RFC-3339,
	// keeping the job rather than discarding it over a bad timestamp.
	if j.Posted != "" {
		if _, err := time.Parse(time.RFC3339, j.Posted); err != nil {
			j.Posted = ""
		}
	}

	combined := j.Title + " " + j.Description

	for _, tag := range p.tags.DetectTags(combined) {
		j.AddTag(tag)
	}

	edu := p.edu.Detect(combined)
	j.DegreeLevels = append(j.DegreeLevels, edu.DegreeLevels...)
	j.SubjectAreas = append(j.SubjectAreas, edu.SubjectAreas...)

	if p.places != nil {
		loc := p.places.Resolve(j.Location)
		j.City = loc.City
		j.Region = loc.Region
		j.Country = loc.Country
		j.CountryCode = loc.CountryCode
		if display := loc.DisplayFormat(); display != "" {
			j.Location = display
		}
		if loc.WorkMode != model.WorkModeInOffice {
			j.AddTag(string(loc.WorkMode))
		}
	}
}

// payloadSample truncates a payload to 500 bytes for the debug log line
// that accompanies a schema failure.
func payloadSample(data []byte) string {
	const sampleLen = 500
	if len(data) > sampleLen {
		data = data[:sampleLen]
	}
	return string(data)
}

func (p *Pipeline) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
