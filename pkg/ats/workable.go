// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"encoding/json"
	"fmt"

	"github.com/kraklabs/jobpipe/pkg/model"
)

type rawWorkableJob struct {
	Shortcode    string `json:"shortcode"`
	Title        string `json:"title"`
	City         string `json:"city"`
	Country      string `json:"country"`
	CreatedAt    string `json:"created_at"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

type rawWorkableResponse struct {
	Jobs []rawWorkableJob `json:"jobs"`
}

func parseWorkable(company model.Company, data []byte) ([]model.Job, error) {
	var resp rawWorkableResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("workable parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		url := fmt.Sprintf("https://apply.workable.com/%s/j/%s/", company.Slug, j.Shortcode)
		job := newJob(company, j.Shortcode, j.Title, url)
		job.Location = fmt.Sprintf("%s, %s", j.City, j.Country)
		job.Posted = normalizeDate(j.CreatedAt)

		desc := j.Description
		if j.Requirements != "" {
			desc += "<h3>Requirements</h3>" + j.Requirements
		}
		if j.Benefits != "" {
			desc += "<h3>Benefits</h3>" + j.Benefits
		}
		job.Description = cleanHTML(desc)

		jobs = append(jobs, job)
	}
	return jobs, nil
}
