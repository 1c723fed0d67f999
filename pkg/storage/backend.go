// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage implements the persistence adapter: a local
// modernc.org/sqlite-backed realization and a remote HTTP realization of
// the same narrow contract, plus the adapter-independent insert_jobs batch
// logic that sits on top of either one.
package storage

import "context"

// Backend is the persistence adapter's narrow contract: batch execution,
// existing-id retrieval, and one-time gazetteer seeding. Both the local
// sqlite adapter and the remote HTTP adapter implement it.
type Backend interface {
	// ExecuteBatch runs a batch of statements built by BuildInsertJobStatements.
	// The local adapter binds Args natively; the remote adapter renders each
	// statement to a flat string before posting it as one request.
	ExecuteBatch(ctx context.Context, statements []Statement) error

	// GetExistingIDs returns every job id currently present in the jobs
	// table, used to seed the de-duplication cache alongside the cache file.
	GetExistingIDs(ctx context.Context) (map[string]struct{}, error)

	// InitializeGeoTables populates the countries and regions tables if they
	// are not already populated. The local adapter checks a row count first
	// and skips when countries has rows; the remote adapter sends the rows
	// without a count and leaves that check to the server.
	InitializeGeoTables(ctx context.Context, countries map[string]string, regions map[string]RegionRow) error

	// Close releases any resources held by the backend.
	Close() error
}

// RegionRow is one row of the regions table minus its composite id, which
// is the key of the map the row is stored under: country code and display
// name.
type RegionRow struct {
	CountryCode string
	Name        string
}
