// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kraklabs/jobpipe/pkg/geo"
	"github.com/kraklabs/jobpipe/pkg/model"
	"github.com/kraklabs/jobpipe/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is an in-memory storage.Backend recording every statement
// batch it receives, standing in for the sqlite/remote adapters in tests
// that only care about the orchestrator's behavior.
type fakeBackend struct {
	mu       sync.Mutex
	executed int
	ids      map[string]struct{}
	fail     bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{ids: make(map[string]struct{})}
}

func (b *fakeBackend) ExecuteBatch(ctx context.Context, stmts []storage.Statement) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return assert.AnError
	}
	b.executed += len(stmts)
	return nil
}

func (b *fakeBackend) GetExistingIDs(ctx context.Context) (map[string]struct{}, error) {
	return b.ids, nil
}

func (b *fakeBackend) InitializeGeoTables(ctx context.Context, countries map[string]string, regions map[string]storage.RegionRow) error {
	return nil
}

func (b *fakeBackend) Close() error { return nil }

const greenhousePayload = `{"jobs":[
	{"id": 1, "title": "Junior Software Engineer Intern", "absolute_url": "https://boards.greenhouse.io/acme/jobs/1", "content": "Write Go code.", "updated_at": "2026-07-20T00:00:00Z", "location": {"name": "Remote - San Jose"}},
	{"id": 2, "title": "Senior Staff Engineer", "absolute_url": "https://boards.greenhouse.io/acme/jobs/2", "content": "Lead a team.", "updated_at": "2026-07-20T00:00:00Z"}
]}`

// fixedNow pins the recency gate's clock shortly after the fixtures'
// updated_at dates, so the 60-day cutoff does not depend on the day the
// tests run.
func fixedNow() time.Time { return time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC) }

func TestPipelineRunFiltersAndInsertsJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(greenhousePayload))
	}))
	defer srv.Close()

	backend := newFakeBackend()
	p, err := NewPipeline(DefaultConfig(), nil, backend, geo.NewGazetteer())
	require.NoError(t, err)
	p.filter.now = fixedNow

	companies := []model.Company{
		{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme", APIURL: srv.URL},
	}

	result, err := p.Run(context.Background(), companies, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.CompaniesAttempted)
	assert.EqualValues(t, 1, result.CompaniesSucceeded)
	assert.EqualValues(t, 0, result.CompaniesFailed)
	assert.EqualValues(t, 1, result.JobsDiscovered) // only the intern title survives the filter
	assert.EqualValues(t, 1, result.JobsInserted)
	assert.Greater(t, backend.executed, 0)
}

func TestPipelineRunIsolatesPerCompanyFailures(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(greenhousePayload))
	}))
	defer good.Close()

	backend := newFakeBackend()
	p, err := NewPipeline(DefaultConfig(), nil, backend, geo.NewGazetteer())
	require.NoError(t, err)
	p.filter.now = fixedNow

	companies := []model.Company{
		{Name: "Broken Co", Type: model.AtsGreenhouse, Slug: "broken", APIURL: bad.URL},
		{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme", APIURL: good.URL},
	}

	result, err := p.Run(context.Background(), companies, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 2, result.CompaniesAttempted)
	assert.EqualValues(t, 1, result.CompaniesSucceeded)
	assert.EqualValues(t, 1, result.CompaniesFailed)
	assert.EqualValues(t, 1, result.JobsInserted)
}

func TestPipelineRunKeepsJobsWithUnparseableTimestamps(t *testing.T) {
	// A vendor date the normalizer can't parse passes through verbatim;
	// the job must still be inserted, with its posted value blanked.
	payload := `{"jobs":[
		{"id": 7, "title": "Graduate Software Engineer", "absolute_url": "https://boards.greenhouse.io/acme/jobs/7", "content": "Write Go code.", "updated_at": "31/07/2026"}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	backend := newFakeBackend()
	p, err := NewPipeline(DefaultConfig(), nil, backend, geo.NewGazetteer())
	require.NoError(t, err)
	p.filter.now = fixedNow

	companies := []model.Company{
		{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme", APIURL: srv.URL},
	}

	dedup := make(map[string]struct{})
	result, err := p.Run(context.Background(), companies, dedup)
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.JobsDiscovered)
	assert.EqualValues(t, 1, result.JobsInserted)
	assert.Contains(t, dedup, "greenhouse-7")
}

func TestPipelineRunForgetsJobsOnBatchWriteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(greenhousePayload))
	}))
	defer srv.Close()

	backend := newFakeBackend()
	backend.fail = true
	p, err := NewPipeline(DefaultConfig(), nil, backend, geo.NewGazetteer())
	require.NoError(t, err)
	p.filter.now = fixedNow

	companies := []model.Company{
		{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme", APIURL: srv.URL},
	}

	dedup := make(map[string]struct{})
	result, err := p.Run(context.Background(), companies, dedup)
	require.NoError(t, err)

	// The failed batch never reaches the store, so its ids must not be
	// recorded as persisted — they are rediscovered on the next run.
	assert.EqualValues(t, 0, result.JobsInserted)
	assert.Empty(t, dedup)
}

func TestPipelineRunDeduplicatesAcrossRuns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(greenhousePayload))
	}))
	defer srv.Close()

	backend := newFakeBackend()
	p, err := NewPipeline(DefaultConfig(), nil, backend, geo.NewGazetteer())
	require.NoError(t, err)
	p.filter.now = fixedNow

	companies := []model.Company{
		{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme", APIURL: srv.URL},
	}

	dedup := make(map[string]struct{})
	first, err := p.Run(context.Background(), companies, dedup)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.JobsInserted)

	// Re-running with the same (now grown) dedup set rediscovers the same
	// job but inserts nothing new.
	second, err := p.Run(context.Background(), companies, dedup)
	require.NoError(t, err)
	assert.EqualValues(t, 0, second.JobsInserted)
}
