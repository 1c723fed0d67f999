// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kraklabs/jobpipe/pkg/model"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobpipe_test.db")
	backend, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func countRows(t *testing.T, b *SQLiteBackend, table string) int {
	t.Helper()
	var n int
	err := b.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	require.NoError(t, err)
	return n
}

// TestInsertJobsIsIdempotent feeds the same batch twice and checks that row
// counts in jobs and every join table are identical after the second call.
func TestInsertJobsIsIdempotent(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	jobs := []model.Job{
		{
			ID: "smartrecruiters-1", Title: "Junior Engineer", Description: "Build things.",
			Company: "Acme", Slug: "acme", Ats: model.AtsSmartRecruiters, URL: "https://example.com/1",
			Location: "Austin, TX, US", City: "Austin", Region: "Texas", Country: "United States", CountryCode: "US",
			Tags: []string{"Go", "Remote"}, Departments: []string{"Engineering"},
		},
		{
			ID: "smartrecruiters-2", Title: "Junior Analyst", Description: "Analyze things.",
			Company: "Acme", Slug: "acme", Ats: model.AtsSmartRecruiters, URL: "https://example.com/2",
			Tags: []string{"SQL"},
		},
	}

	stmts := BuildInsertJobStatements(jobs)
	require.NoError(t, backend.ExecuteBatch(ctx, stmts))

	jobsAfterFirst := countRows(t, backend, "jobs")
	tagsAfterFirst := countRows(t, backend, "job_tags")
	deptsAfterFirst := countRows(t, backend, "job_departments")

	stmts2 := BuildInsertJobStatements(jobs)
	require.NoError(t, backend.ExecuteBatch(ctx, stmts2))

	require.Equal(t, jobsAfterFirst, countRows(t, backend, "jobs"))
	require.Equal(t, tagsAfterFirst, countRows(t, backend, "job_tags"))
	require.Equal(t, deptsAfterFirst, countRows(t, backend, "job_departments"))
	require.Equal(t, 2, countRows(t, backend, "jobs"))
}

func TestGetExistingIDsReflectsInsertedJobs(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	jobs := []model.Job{{ID: "lever-1", Title: "Engineer"}}
	require.NoError(t, backend.ExecuteBatch(ctx, BuildInsertJobStatements(jobs)))

	ids, err := backend.GetExistingIDs(ctx)
	require.NoError(t, err)
	require.Contains(t, ids, "lever-1")
}

func TestInitializeGeoTablesIsIdempotent(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	countries := map[string]string{"US": "United States"}
	regions := map[string]RegionRow{"US.CA": {CountryCode: "US", Name: "California"}}

	require.NoError(t, backend.InitializeGeoTables(ctx, countries, regions))
	require.Equal(t, 1, countRows(t, backend, "countries"))

	// Second call with different data is a no-op because countries is
	// already populated.
	require.NoError(t, backend.InitializeGeoTables(ctx, map[string]string{"FR": "France"}, nil))
	require.Equal(t, 1, countRows(t, backend, "countries"))
}
