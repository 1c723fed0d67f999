// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/jobpipe/pkg/model"
)

func TestParseSmartRecruiters(t *testing.T) {
	company := model.Company{
		Name:   "Air New Zealand",
		Type:   model.AtsSmartRecruiters,
		Slug:   "airnewzealand",
		APIURL: "https://api.smartrecruiters.com/v1/companies/airnewzealand/postings",
		Domain: "airnewzealand.com",
	}

	data := []byte(`{
		"content": [
			{
				"id": "6000000000788236",
				"name": "Senior Software Engineer (iOS)",
				"releasedDate": "2026-01-08T21:57:15.644Z",
				"location": {
					"city": "Auckland",
					"region": "Auckland",
					"country": "nz",
					"fullLocation": "Auckland, Auckland, New Zealand"
				},
				"typeOfEmployment": { "label": "Full-time" },
				"customField": [
					{
						"fieldId": "6663765cd273aa35722c76da",
						"fieldLabel": "Work Space ",
						"valueLabel": "Auckland Airport - Campus (AKL35K)"
					}
				]
			}
		]
	}`)

	jobs, err := Parse(company, data)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Senior Software Engineer (iOS)", job.Title)
	assert.Equal(t, "Auckland, Auckland, nz", job.Location)
	assert.Equal(t, "https://jobs.smartrecruiters.com/airnewzealand/6000000000788236", job.URL)
	assert.Contains(t, job.Tags, "Full-time")
	assert.Contains(t, job.Tags, "Auckland Airport - Campus (AKL35K)")
}

func TestParseBreezy(t *testing.T) {
	company := model.Company{
		Name:   "Cal.com",
		Type:   model.AtsBreezy,
		Slug:   "cal-com",
		APIURL: "https://cal-com.breezy.hr/json",
		Domain: "cal.com",
	}

	data := []byte(`[
		{
			"id": "df04fa464882",
			"name": "Executive Assistant (EA)",
			"url": "https://cal-com.breezy.hr/p/df04fa464882-executive-assistant-ea",
			"published_date": "2026-01-09T13:27:24.490Z",
			"type": { "name": "Full-Time" },
			"location": {
				"country": { "name": "United States" },
				"is_remote": true,
				"remote_details": { "label": "Fully remote, no location restrictions" },
				"name": "United States"
			},
			"salary": "$60k"
		}
	]`)

	jobs, err := Parse(company, data)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "Executive Assistant (EA)", job.Title)
	assert.Equal(t, "United States, United States", job.Location)
	assert.Equal(t, "https://cal-com.breezy.hr/p/df04fa464882-executive-assistant-ea", job.URL)
	assert.Contains(t, job.Tags, "Full-Time")
	assert.Contains(t, job.Tags, "Remote")
	assert.Contains(t, job.Tags, "Fully remote, no location restrictions")
	assert.Contains(t, job.Tags, "Salary: $60k")
}

func TestParseGreenhouseAcceptsContentAndDescriptionKeys(t *testing.T) {
	company := model.Company{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme"}

	withContent := []byte(`{"jobs":[{"id":1,"title":"Engineer","absolute_url":"https://x/1","content":"hello"}]}`)
	jobs, err := Parse(company, withContent)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "hello", jobs[0].Description)

	withDescription := []byte(`{"jobs":[{"id":1,"title":"Engineer","absolute_url":"https://x/1","description":"world"}]}`)
	jobs, err = Parse(company, withDescription)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "world", jobs[0].Description)
}

func TestParseGreenhouseThreeShapes(t *testing.T) {
	company := model.Company{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme"}

	objectShape := []byte(`{"jobs":[{"id":1,"title":"A","absolute_url":"https://x/1"}]}`)
	arrayShape := []byte(`[{"id":1,"title":"A","absolute_url":"https://x/1"}]`)
	singleShape := []byte(`{"id":1,"title":"A","absolute_url":"https://x/1"}`)

	for _, data := range [][]byte{objectShape, arrayShape, singleShape} {
		jobs, err := Parse(company, data)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "A", jobs[0].Title)
	}
}

func TestParseGreenhouseLocationFallback(t *testing.T) {
	company := model.Company{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme"}

	noField := []byte(`{"jobs":[{"id":1,"title":"A","absolute_url":"https://x/1"}]}`)
	jobs, err := Parse(company, noField)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "", jobs[0].Location, "absent location field should stay empty, not \"Unknown\"")

	emptyString := []byte(`{"jobs":[{"id":1,"title":"A","absolute_url":"https://x/1","location":""}]}`)
	jobs, err = Parse(company, emptyString)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "", jobs[0].Location, "bare empty string location should stay empty, not \"Unknown\"")

	emptyObject := []byte(`{"jobs":[{"id":1,"title":"A","absolute_url":"https://x/1","location":{}}]}`)
	jobs, err = Parse(company, emptyObject)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Unknown", jobs[0].Location, "object location with neither name nor city falls back to Unknown")
}

func TestParseUnknownAtsKindReturnsEmpty(t *testing.T) {
	company := model.Company{Name: "Acme", Type: model.AtsUnknown, Slug: "acme"}
	jobs, err := Parse(company, []byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, jobs)
}

func TestParseEmptyPayloadsYieldEmptyLists(t *testing.T) {
	cases := []struct {
		name string
		kind model.AtsKind
		data []byte
	}{
		{"lever", model.AtsLever, []byte(`[]`)},
		{"smartrecruiters", model.AtsSmartRecruiters, []byte(`{"content":[]}`)},
		{"ashby", model.AtsAshby, []byte(`{"jobs":[]}`)},
		{"workable", model.AtsWorkable, []byte(`{"jobs":[]}`)},
		{"recruitee", model.AtsRecruitee, []byte(`{"offers":[]}`)},
		{"breezy", model.AtsBreezy, []byte(`[]`)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			company := model.Company{Name: "Acme", Type: c.kind, Slug: "acme"}
			jobs, err := Parse(company, c.data)
			require.NoError(t, err)
			assert.Empty(t, jobs)
		})
	}
}

// TestParseRoundTripPerVendor serializes a canonical job back into each
// vendor's list shape and checks that parsing it recovers the same id,
// title, and url.
func TestParseRoundTripPerVendor(t *testing.T) {
	const (
		vendorID = "123"
		title    = "Junior Platform Engineer"
	)

	cases := []struct {
		kind    model.AtsKind
		payload string
		wantURL string
	}{
		{
			kind:    model.AtsGreenhouse,
			payload: `{"jobs":[{"id":"123","title":"Junior Platform Engineer","absolute_url":"https://boards.greenhouse.io/acme/jobs/123"}]}`,
			wantURL: "https://boards.greenhouse.io/acme/jobs/123",
		},
		{
			kind:    model.AtsLever,
			payload: `[{"id":"123","text":"Junior Platform Engineer","hostedUrl":"https://jobs.lever.co/acme/123"}]`,
			wantURL: "https://jobs.lever.co/acme/123",
		},
		{
			kind:    model.AtsSmartRecruiters,
			payload: `{"content":[{"id":"123","name":"Junior Platform Engineer","postingUrl":"https://jobs.smartrecruiters.com/acme/123"}]}`,
			wantURL: "https://jobs.smartrecruiters.com/acme/123",
		},
		{
			kind:    model.AtsAshby,
			payload: `{"jobs":[{"id":"123","title":"Junior Platform Engineer","jobUrl":"https://jobs.ashbyhq.com/acme/123"}]}`,
			wantURL: "https://jobs.ashbyhq.com/acme/123",
		},
		{
			kind:    model.AtsWorkable,
			payload: `{"jobs":[{"shortcode":"123","title":"Junior Platform Engineer"}]}`,
			wantURL: "https://apply.workable.com/acme/j/123/",
		},
		{
			kind:    model.AtsRecruitee,
			payload: `{"offers":[{"id":123,"title":"Junior Platform Engineer","careers_url":"https://acme.recruitee.com/o/junior-platform-engineer"}]}`,
			wantURL: "https://acme.recruitee.com/o/junior-platform-engineer",
		},
		{
			kind:    model.AtsBreezy,
			payload: `[{"id":"123","name":"Junior Platform Engineer","url":"https://acme.breezy.hr/p/123"}]`,
			wantURL: "https://acme.breezy.hr/p/123",
		},
	}

	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			company := model.Company{Name: "Acme", Type: c.kind, Slug: "acme"}
			jobs, err := Parse(company, []byte(c.payload))
			require.NoError(t, err)
			require.Len(t, jobs, 1)

			assert.Equal(t, string(c.kind)+"-"+vendorID, jobs[0].ID)
			assert.Equal(t, title, jobs[0].Title)
			assert.Equal(t, c.wantURL, jobs[0].URL)
		})
	}
}

func TestCheckParsingHealthWarnsOnDrift(t *testing.T) {
	company := model.Company{Name: "Acme", Type: model.AtsGreenhouse, Slug: "acme"}
	data := []byte(`{"jobs":[{"id":1,"title":"A"},{"id":2,"title":"B"}]}`)

	var buf testLogBuffer
	logger := newTestLogger(&buf)
	CheckParsingHealth(logger, company, data, nil)
	assert.Contains(t, buf.String(), "PARSING HEALTH ALERT")
}

func TestCheckParsingHealthSilentForUnwatchedVendors(t *testing.T) {
	company := model.Company{Name: "Acme", Type: model.AtsLever, Slug: "acme"}
	data := []byte(`[{"id":"1"},{"id":"2"}]`)

	var buf testLogBuffer
	logger := newTestLogger(&buf)
	CheckParsingHealth(logger, company, data, nil)
	assert.Empty(t, buf.String())
}
