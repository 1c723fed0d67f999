// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"encoding/json"
	"fmt"

	"github.com/kraklabs/jobpipe/pkg/model"
)

type rawRecruiteeDepartment struct {
	Name string `json:"name"`
}

type rawRecruiteeTag struct {
	Name string `json:"name"`
}

type rawRecruiteeJob struct {
	ID           int                     `json:"id"`
	Title        string                  `json:"title"`
	CareersURL   string                  `json:"careers_url"`
	Description  string                  `json:"description"`
	Requirements string                  `json:"requirements"`
	City         string                  `json:"city"`
	Country      string                  `json:"country"`
	CreatedAt    string                  `json:"created_at"`
	RemoteStatus string                  `json:"remote_status"`
	Department   *rawRecruiteeDepartment `json:"department"`
	Tags         []rawRecruiteeTag       `json:"tags"`
}

type rawRecruiteeResponse struct {
	Offers []rawRecruiteeJob `json:"offers"`
}

func parseRecruitee(company model.Company, data []byte) ([]model.Job, error) {
	var resp rawRecruiteeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("recruitee parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(resp.Offers))
	for _, j := range resp.Offers {
		job := newJob(company, fmt.Sprintf("%d", j.ID), j.Title, j.CareersURL)
		job.Location = fmt.Sprintf("%s, %s", j.City, j.Country)
		job.Posted = normalizeDate(j.CreatedAt)

		desc := j.Description
		if j.Requirements != "" {
			desc += "<h3>Requirements</h3>" + j.Requirements
		}
		job.Description = cleanHTML(desc)

		if j.Department != nil && j.Department.Name != "" {
			job.AddDepartment(j.Department.Name)
		}
		if j.RemoteStatus != "" && j.RemoteStatus != "none" {
			job.AddTag(j.RemoteStatus)
		}
		for _, t := range j.Tags {
			if t.Name != "" {
				job.AddTag(t.Name)
			}
		}

		jobs = append(jobs, job)
	}
	return jobs, nil
}
