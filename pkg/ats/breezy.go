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

type rawBreezyCountry struct {
	Name string `json:"name"`
}

type rawBreezyRemoteDetails struct {
	Label string `json:"label"`
}

type rawBreezyLocation struct {
	Name          string                  `json:"name"`
	Country       *rawBreezyCountry       `json:"country"`
	IsRemote      bool                    `json:"is_remote"`
	RemoteDetails *rawBreezyRemoteDetails `json:"remote_details"`
}

type rawBreezyNamed struct {
	Name string `json:"name"`
}

type rawBreezyJob struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	URL            string             `json:"url"`
	PublishedDate  string             `json:"published_date"`
	Type           *rawBreezyNamed    `json:"type"`
	Location       *rawBreezyLocation `json:"location"`
	Department     string             `json:"department"`
	EmploymentType *rawBreezyNamed    `json:"employment_type"`
	Salary         string             `json:"salary"`
}

func parseBreezy(company model.Company, data []byte) ([]model.Job, error) {
	var items []rawBreezyJob
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("breezy parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(items))
	for _, j := range items {
		url := j.URL
		if url == "" {
			url = fmt.Sprintf("https://%s.breezy.hr/p/%s", company.Slug, j.ID)
		}
		job := newJob(company, j.ID, j.Name, url)

		if j.Location != nil {
			var locParts []string
			if j.Location.Name != "" {
				locParts = append(locParts, j.Location.Name)
			}
			if j.Location.Country != nil && j.Location.Country.Name != "" {
				locParts = append(locParts, j.Location.Country.Name)
			}
			job.Location = strings.Join(locParts, ", ")

			if j.Location.IsRemote {
				job.AddTag("Remote")
			}
			if j.Location.RemoteDetails != nil && j.Location.RemoteDetails.Label != "" {
				job.AddTag(j.Location.RemoteDetails.Label)
			}
		}

		job.Posted = normalizeDate(j.PublishedDate)

		if j.Department != "" {
			job.AddDepartment(j.Department)
		}
		if j.Type != nil && j.Type.Name != "" {
			job.AddTag(j.Type.Name)
		}
		if j.EmploymentType != nil && j.EmploymentType.Name != "" {
			job.AddTag(j.EmploymentType.Name)
		}
		if j.Salary != "" {
			job.AddTag("Salary: " + j.Salary)
		}

		jobs = append(jobs, job)
	}
	return jobs, nil
}
