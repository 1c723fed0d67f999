// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteBackend is the local development realization of Backend: a
// mutex-guarded struct around a database/sql handle, driven by
// modernc.org/sqlite so local builds stay pure-Go and CGO-free.
type SQLiteBackend struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// localChunkSize is the number of statements per transaction for the local
// adapter.
const localChunkSize = 1000

// NewSQLiteBackend opens (creating if absent) the sqlite database at path
// and ensures the schema exists.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return b, nil
}

// EnsureSchema creates the jobs tables, join tables, and gazetteer tables if
// they don't exist. Idempotent and safe to call multiple times. Production
// stores are provisioned externally — this exists only so the local
// development backend is usable standalone.
func (b *SQLiteBackend) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT,
			description TEXT,
			company TEXT,
			slug TEXT,
			ats TEXT,
			url TEXT,
			company_url TEXT,
			location TEXT,
			city TEXT,
			region TEXT,
			country TEXT,
			country_code TEXT,
			posted TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS job_departments (job_id TEXT, name TEXT)`,
		`CREATE TABLE IF NOT EXISTS job_offices (job_id TEXT, name TEXT)`,
		`CREATE TABLE IF NOT EXISTS job_tags (job_id TEXT, name TEXT)`,
		`CREATE TABLE IF NOT EXISTS job_degree_levels (job_id TEXT, name TEXT)`,
		`CREATE TABLE IF NOT EXISTS job_subject_areas (job_id TEXT, name TEXT)`,
		`CREATE TABLE IF NOT EXISTS countries (code TEXT PRIMARY KEY, name TEXT)`,
		`CREATE TABLE IF NOT EXISTS regions (id TEXT PRIMARY KEY, country_code TEXT, name TEXT)`,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, stmt := range statements {
		if _, err := b.db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// ExecuteBatch runs statements in chunks of localChunkSize, each chunk
// wrapped in its own transaction, binding Args natively rather than
// rendering them into the SQL text.
func (b *SQLiteBackend) ExecuteBatch(ctx context.Context, stmts []Statement) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("backend is closed")
	}

	for start := 0; start < len(stmts); start += localChunkSize {
		end := min(start+localChunkSize, len(stmts))
		if err := b.execChunk(ctx, stmts[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (b *SQLiteBackend) execChunk(ctx context.Context, chunk []Statement) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, stmt := range chunk {
		if _, err := tx.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetExistingIDs returns every job id currently present in the jobs table.
func (b *SQLiteBackend) GetExistingIDs(ctx context.Context) (map[string]struct{}, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, fmt.Errorf("backend is closed")
	}

	rows, err := b.db.QueryContext(ctx, "SELECT id FROM jobs")
	if err != nil {
		return nil, fmt.Errorf("query existing ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// InitializeGeoTables populates the countries and regions tables, but only
// if they are currently empty — checked via a row count, so repeated runs
// are no-ops.
func (b *SQLiteBackend) InitializeGeoTables(ctx context.Context, countries map[string]string, regions map[string]RegionRow) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("backend is closed")
	}

	var count int
	if err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM countries").Scan(&count); err != nil {
		return fmt.Errorf("count countries: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for code, name := range countries {
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO countries (code, name) VALUES (?, ?)", code, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert country: %w", err)
		}
	}
	for id, region := range regions {
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO regions (id, country_code, name) VALUES (?, ?, ?)", id, region.CountryCode, region.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert region: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the underlying database handle.
func (b *SQLiteBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}
