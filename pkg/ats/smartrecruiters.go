// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kraklabs/jobpipe/pkg/model"
)

type rawSmartRecruitersLocation struct {
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	FullLocation string `json:"fullLocation"`
}

type rawSmartRecruitersLabel struct {
	Label string `json:"label"`
}

type rawSmartRecruitersCustomField struct {
	FieldLabel string `json:"fieldLabel"`
	ValueLabel string `json:"valueLabel"`
}

type rawSmartRecruitersJob struct {
	ID               string                          `json:"id"`
	Name             string                          `json:"name"`
	PostingURL       string                          `json:"postingUrl"`
	ReleasedDate     string                          `json:"releasedDate"`
	Location         rawSmartRecruitersLocation      `json:"location"`
	Department       *rawSmartRecruitersLabel        `json:"department"`
	TypeOfEmployment *rawSmartRecruitersLabel        `json:"typeOfEmployment"`
	CustomField      []rawSmartRecruitersCustomField `json:"customField"`
}

type rawSmartRecruitersResponse struct {
	Content []rawSmartRecruitersJob `json:"content"`
}

func parseSmartRecruiters(company model.Company, data []byte) ([]model.Job, error) {
	var resp rawSmartRecruitersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("smartrecruiters parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(resp.Content))
	for _, j := range resp.Content {
		url := j.PostingURL
		if url == "" {
			url = fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", company.Slug, j.ID)
		}
		job := newJob(company, j.ID, j.Name, url)

		var locParts []string
		if j.Location.City != "" {
			locParts = append(locParts, j.Location.City)
		}
		if j.Location.Region != "" {
			locParts = append(locParts, j.Location.Region)
		}
		if j.Location.Country != "" {
			locParts = append(locParts, j.Location.Country)
		}
		if len(locParts) == 0 {
			job.Location = j.Location.FullLocation
		} else {
			job.Location = strings.Join(locParts, ", ")
		}

		job.Posted = normalizeDate(j.ReleasedDate)

		if j.Department != nil && j.Department.Label != "" {
			job.AddDepartment(j.Department.Label)
		}

		if j.TypeOfEmployment != nil && j.TypeOfEmployment.Label != "" {
			job.AddTag(j.TypeOfEmployment.Label)
		}

		for _, field := range j.CustomField {
			if strings.Contains(field.FieldLabel, "Work Space") || strings.Contains(field.FieldLabel, "Remote") {
				if field.ValueLabel != "" {
					job.AddTag(field.ValueLabel)
				}
			}
		}

		jobs = append(jobs, job)
	}
	return jobs, nil
}
