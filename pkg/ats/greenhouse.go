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

type rawGreenhouseDept struct {
	Name string `json:"name"`
}

type rawGreenhouseOffice struct {
	Name string `json:"name"`
}

type rawGreenhouseMetadataItem struct {
	Name  string                `json:"name"`
	Label string                `json:"label"`
	Value flexibleMetadataValue `json:"value"`
}

type rawGreenhouseJob struct {
	ID          flexibleID                  `json:"id"`
	Title       string                      `json:"title"`
	AbsoluteURL string                      `json:"absolute_url"`
	Description *flexibleText               `json:"-"`
	Location    *flexibleLocation           `json:"location"`
	UpdatedAt   string                      `json:"updated_at"`
	Departments []rawGreenhouseDept         `json:"departments"`
	Offices     []rawGreenhouseOffice       `json:"offices"`
	Education   *flexibleEducation          `json:"education"`
	Metadata    []rawGreenhouseMetadataItem `json:"metadata"`
}

// UnmarshalJSON handles Greenhouse's two observed field names for the
// description payload: "content" (job board API) and "description" (some
// partner feeds).
func (rj *rawGreenhouseJob) UnmarshalJSON(data []byte) error {
	type alias rawGreenhouseJob
	aux := struct {
		*alias
		Content     *flexibleText `json:"content"`
		Description *flexibleText `json:"description"`
	}{alias: (*alias)(rj)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Content != nil {
		rj.Description = aux.Content
	} else {
		rj.Description = aux.Description
	}
	return nil
}

const (
	eduOptionalValue = "education_optional"
	eduFieldName     = "Education"
)

// getRawGreenhouseJobs accepts the three shapes Greenhouse is known to
// return: an object with a "jobs" array, a bare array, or a bare single
// object.
func getRawGreenhouseJobs(data []byte) ([]rawGreenhouseJob, error) {
	var withJobsField struct {
		Jobs []rawGreenhouseJob `json:"jobs"`
	}
	if err := json.Unmarshal(data, &withJobsField); err == nil && withJobsField.Jobs != nil {
		return withJobsField.Jobs, nil
	}

	var asArray []rawGreenhouseJob
	if err := json.Unmarshal(data, &asArray); err == nil {
		return asArray, nil
	}

	var single rawGreenhouseJob
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []rawGreenhouseJob{single}, nil
}

func isGreenhouseEducationOptional(rj rawGreenhouseJob) bool {
	if rj.Education != nil && rj.Education.value == eduOptionalValue {
		return true
	}
	for _, item := range rj.Metadata {
		name := item.Name
		if name == "" {
			name = item.Label
		}
		if name != eduFieldName {
			continue
		}
		if v, ok := item.Value.asString(); ok && v == eduOptionalValue {
			return true
		}
	}
	return false
}

func parseGreenhouse(company model.Company, data []byte) ([]model.Job, error) {
	rawJobs, err := getRawGreenhouseJobs(data)
	if err != nil {
		return nil, fmt.Errorf("greenhouse parsing failed for %s: %w", company.Name, err)
	}

	jobs := make([]model.Job, 0, len(rawJobs))
	for _, rj := range rawJobs {
		job := newJob(company, rj.ID.String(), rj.Title, rj.AbsoluteURL)

		if rj.Description != nil {
			job.Description = cleanHTML(rj.Description.String())
		}
		job.Posted = normalizeDate(rj.UpdatedAt)

		// Only the object shape with neither "name" nor "city" present falls
		// back to "Unknown"; a bare string (even empty) or an absent field
		// passes through as-is.
		if rj.Location != nil {
			job.Location = rj.Location.text
			if rj.Location.isObject && job.Location == "" {
				job.Location = "Unknown"
			}
		}

		if isGreenhouseEducationOptional(rj) {
			job.AddTag("Education Optional")
		}

		for _, d := range rj.Departments {
			job.AddDepartment(d.Name)
		}
		for _, o := range rj.Offices {
			job.AddOffice(o.Name)
		}

		jobs = append(jobs, job)
	}
	return jobs, nil
}

// countGreenhouse estimates the raw item count without committing to a
// struct shape, using gjson's cheap path queries. It counts the "jobs"
// object shape and the bare-array shape; a bare single object reports zero.
func countGreenhouse(data []byte) int {
	if n := gjson.GetBytes(data, "jobs.#"); n.Exists() {
		return int(n.Int())
	}
	parsed := gjson.ParseBytes(data)
	if parsed.IsArray() {
		return len(parsed.Array())
	}
	return 0
}
