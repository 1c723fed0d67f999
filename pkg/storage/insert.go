// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"strings"

	"github.com/kraklabs/jobpipe/pkg/model"
)

// labelTable names a join table keyed by job_id plus the Job field it is
// populated from.
type labelTable struct {
	name   string
	labels func(model.Job) []string
}

var labelTables = []labelTable{
	{"job_departments", func(j model.Job) []string { return j.Departments }},
	{"job_offices", func(j model.Job) []string { return j.Offices }},
	{"job_tags", func(j model.Job) []string { return j.Tags }},
	{"job_degree_levels", func(j model.Job) []string { return j.DegreeLevels }},
	{"job_subject_areas", func(j model.Job) []string { return j.SubjectAreas }},
}

// BuildInsertJobStatements renders the adapter-independent insert_jobs
// sequence: one DELETE per label table over every job id in the batch, one
// change-detecting UPSERT per job against the main table, then one INSERT
// OR IGNORE per label per job. The statement order matters — deletes must
// run before the re-inserts that follow — but it is adapter-independent:
// the same sequence runs whether the backend binds Args natively or renders
// them to a flat string.
func BuildInsertJobStatements(jobs []model.Job) []Statement {
	if len(jobs) == 0 {
		return nil
	}

	var stmts []Statement

	ids := make([]any, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	for _, table := range labelTables {
		stmts = append(stmts, deleteByJobIDs(table.name, ids))
	}

	for _, j := range jobs {
		stmts = append(stmts, upsertJob(j))
	}

	for _, j := range jobs {
		for _, table := range labelTables {
			for _, label := range table.labels(j) {
				stmts = append(stmts, Statement{
					SQL:  fmt.Sprintf("INSERT OR IGNORE INTO %s (job_id, name) VALUES (?1, ?2)", table.name),
					Args: []any{j.ID, label},
				})
			}
		}
	}

	return stmts
}

func deleteByJobIDs(table string, ids []any) Statement {
	placeholders := make([]string, len(ids))
	for i := range ids {
		placeholders[i] = fmt.Sprintf("?%d", i+1)
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE job_id IN (%s)", table, strings.Join(placeholders, ", "))
	return Statement{SQL: sql, Args: ids}
}

func upsertJob(j model.Job) Statement {
	const sql = `INSERT INTO jobs (id, title, description, company, slug, ats, url, company_url, location, city, region, country, country_code, posted)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14)
ON CONFLICT(id) DO UPDATE SET
  title = excluded.title,
  description = excluded.description,
  company = excluded.company,
  slug = excluded.slug,
  ats = excluded.ats,
  url = excluded.url,
  company_url = excluded.company_url,
  location = excluded.location,
  city = excluded.city,
  region = excluded.region,
  country = excluded.country,
  country_code = excluded.country_code,
  posted = excluded.posted
WHERE jobs.title != excluded.title
   OR jobs.description != excluded.description
   OR jobs.location != excluded.location
   OR jobs.city != excluded.city
   OR jobs.region != excluded.region
   OR jobs.country != excluded.country
   OR jobs.country_code != excluded.country_code`

	return Statement{
		SQL: sql,
		Args: []any{
			j.ID, j.Title, j.Description, j.Company, j.Slug, string(j.Ats), j.URL, j.CompanyURL,
			j.Location, j.City, j.Region, j.Country, j.CountryCode, j.Posted,
		},
	}
}
