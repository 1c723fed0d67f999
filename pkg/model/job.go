// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model holds the canonical data types shared across the pipeline:
// company descriptors, the Job record, and resolved location info.
package model

// AtsKind is the closed enumeration of supported applicant-tracking vendors.
type AtsKind string

const (
	AtsGreenhouse      AtsKind = "greenhouse"
	AtsLever           AtsKind = "lever"
	AtsSmartRecruiters AtsKind = "smartrecruiters"
	AtsAshby           AtsKind = "ashby"
	AtsWorkable        AtsKind = "workable"
	AtsRecruitee       AtsKind = "recruitee"
	AtsBreezy          AtsKind = "breezy"
	AtsUnknown         AtsKind = "unknown"
)

// Company is an immutable input record describing where to fetch a single
// company's job postings from. Loaded once per run from slugs.json.
type Company struct {
	Name   string  `json:"name"`
	Type   AtsKind `json:"type"`
	Slug   string  `json:"slug"`
	APIURL string  `json:"api_url"`
	Domain string  `json:"domain,omitempty"`
}

// Job is the canonical output entity produced by the ATS parser family,
// enriched by the tag engine, education detector, and location resolver.
type Job struct {
	ID          string  `json:"id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Company     string  `json:"company"`
	Slug        string  `json:"slug"`
	Ats         AtsKind `json:"ats"`
	URL         string  `json:"url"`
	CompanyURL  string  `json:"company_url,omitempty"`

	Location    string `json:"location"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty" validate:"omitempty,len=2"`

	// Posted is empty, or a valid RFC-3339 UTC timestamp.
	Posted string `json:"posted,omitempty" validate:"rfc3339_or_empty"`

	Departments  []string `json:"departments,omitempty"`
	Offices      []string `json:"offices,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	DegreeLevels []string `json:"degree_levels,omitempty"`
	SubjectAreas []string `json:"subject_areas,omitempty"`
}

// AddTag appends tag if it is not already present. Label lists never hold
// duplicates.
func (j *Job) AddTag(tag string) {
	j.Tags = appendUnique(j.Tags, tag)
}

// AddDepartment appends a department name without duplication.
func (j *Job) AddDepartment(name string) {
	j.Departments = appendUnique(j.Departments, name)
}

// AddOffice appends an office name without duplication.
func (j *Job) AddOffice(name string) {
	j.Offices = appendUnique(j.Offices, name)
}

func appendUnique(list []string, value string) []string {
	if value == "" {
		return list
	}
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

// WorkMode is the coarse remote/hybrid/in-office classification the
// location resolver derives from keywords in the raw location string.
type WorkMode string

const (
	WorkModeRemote   WorkMode = "Remote"
	WorkModeHybrid   WorkMode = "Hybrid"
	WorkModeInOffice WorkMode = "InOffice"
)

// LocationInfo is the structured result of resolving a free-text location
// string against the gazetteer.
type LocationInfo struct {
	City        string
	Region      string
	Country     string
	CountryCode string
	WorkMode    WorkMode
}

// DisplayFormat joins the present components in city/region/country order,
// suppressing any component whose string is already present (exact,
// case-sensitive match) among the parts already joined. This is what
// collapses "Singapore, Singapore, Singapore" into "Singapore".
func (l LocationInfo) DisplayFormat() string {
	var parts []string
	push := func(candidate string) {
		if candidate == "" {
			return
		}
		for _, p := range parts {
			if p == candidate {
				return
			}
		}
		parts = append(parts, candidate)
	}
	push(l.City)
	push(l.Region)
	push(l.Country)

	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
