// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/kraklabs/jobpipe/pkg/model"
)

type rawAshbyJob struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	JobURL          string            `json:"jobUrl"`
	Location        *flexibleLocation `json:"location"`
	PublishedAt     string            `json:"publishedAt"`
	DescriptionHTML string            `json:"descriptionHtml"`
	Department      string            `json:"department"`
}

type rawAshbyResponse struct {
	Jobs []rawAshbyJob `json:"jobs"`
}

func parseAshby(company model.Company, data []byte) ([]model.Job, error) {
	var resp rawAshbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("ashby parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		job := newJob(company, j.ID, j.Title, j.JobURL)
		if j.Location != nil {
			job.Location = j.Location.text
		}
		job.Posted = normalizeDate(j.PublishedAt)
		job.Description = cleanHTML(j.DescriptionHTML)
		if j.Department != "" {
			job.AddDepartment(j.Department)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func countAshby(data []byte) int {
	return int(gjson.GetBytes(data, "jobs.#").Int())
}
