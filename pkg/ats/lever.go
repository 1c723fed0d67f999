// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kraklabs/jobpipe/pkg/model"
)

type rawLeverCategories struct {
	Location   string `json:"location"`
	Team       string `json:"team"`
	Department string `json:"department"`
	Commitment string `json:"commitment"`
}

type rawLeverJob struct {
	ID          string             `json:"id"`
	Text        string             `json:"text"`
	HostedURL   string             `json:"hostedUrl"`
	Description string             `json:"description"`
	CreatedAt   json.Number        `json:"createdAt"`
	Categories  rawLeverCategories `json:"categories"`
}

func parseLever(company model.Company, data []byte) ([]model.Job, error) {
	var items []rawLeverJob
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("lever parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(items))
	for _, j := range items {
		job := newJob(company, j.ID, j.Text, j.HostedURL)
		job.Description = cleanHTML(j.Description)
		job.Location = j.Categories.Location

		createdAt := ""
		if ms, err := j.CreatedAt.Int64(); err == nil && ms != 0 {
			createdAt = strconv.FormatInt(ms, 10)
		}
		job.Posted = normalizeDate(createdAt)

		dept := j.Categories.Team
		if dept == "" {
			dept = j.Categories.Department
		}
		job.AddDepartment(dept)

		if j.Categories.Commitment != "" {
			job.AddTag(j.Categories.Commitment)
		}

		jobs = append(jobs, job)
	}
	return jobs, nil
}
