// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/kraklabs/jobpipe/pkg/model"
)

type workableDetail struct {
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

type smartRecruitersSection struct {
	Text string `json:"text"`
}

type smartRecruitersSections struct {
	JobDescription        *smartRecruitersSection `json:"jobDescription"`
	Qualifications        *smartRecruitersSection `json:"qualifications"`
	AdditionalInformation *smartRecruitersSection `json:"additionalInformation"`
}

type smartRecruitersDetail struct {
	JobAd struct {
		Sections smartRecruitersSections `json:"sections"`
	} `json:"jobAd"`
}

type recruiteeOffer struct {
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

type recruiteeDetailResponse struct {
	Offer recruiteeOffer `json:"offer"`
}

// enrichConcurrency bounds the per-job secondary-fetch fan-out inside a
// single company's enrichment pass.
const enrichConcurrency = 10

// Enricher fetches the full job description for vendors whose list payload
// omits it, requiring a per-job detail call. Only Workable, SmartRecruiters
// and Recruitee are known to do this.
type Enricher struct {
	client *http.Client
	logger *slog.Logger
}

// NewEnricher builds an Enricher with the given HTTP client and logger.
func NewEnricher(client *http.Client, logger *slog.Logger) *Enricher {
	return &Enricher{client: client, logger: logger}
}

// EnrichAll fetches missing descriptions for every job in jobs that needs
// one, bounded to enrichConcurrency concurrent requests. Enrichment failures
// degrade silently: the job keeps its empty description rather than failing
// the whole company.
func (e *Enricher) EnrichAll(ctx context.Context, jobs []model.Job, company model.Company) {
	sem := make(chan struct{}, enrichConcurrency)
	var wg sync.WaitGroup

	for i := range jobs {
		if jobs[i].Description != "" {
			continue
		}
		if !needsEnrichment(jobs[i].Ats) {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			e.enrichOne(ctx, &jobs[idx], company)
		}(i)
	}

	wg.Wait()
}

func needsEnrichment(kind model.AtsKind) bool {
	switch kind {
	case model.AtsWorkable, model.AtsSmartRecruiters, model.AtsRecruitee:
		return true
	default:
		return false
	}
}

func (e *Enricher) enrichOne(ctx context.Context, j *model.Job, company model.Company) {
	var desc string
	var err error

	switch j.Ats {
	case model.AtsWorkable:
		desc, err = e.enrichWorkable(ctx, j, company)
	case model.AtsSmartRecruiters:
		desc, err = e.enrichSmartRecruiters(ctx, j, company)
	case model.AtsRecruitee:
		desc, err = e.enrichRecruitee(ctx, j, company)
	default:
		return
	}

	if err != nil {
		e.logger.Debug("job enrichment failed", "job_id", j.ID, "ats", j.Ats, "error", err)
		return
	}
	j.Description = cleanHTML(desc)
}

func (e *Enricher) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("enrichment request to %s returned status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (e *Enricher) enrichWorkable(ctx context.Context, j *model.Job, company model.Company) (string, error) {
	id := strings.TrimPrefix(j.ID, "workable-")
	url := fmt.Sprintf("https://apply.workable.com/api/v2/accounts/%s/jobs/%s", company.Slug, id)

	var detail workableDetail
	if err := e.fetchJSON(ctx, url, &detail); err != nil {
		return "", err
	}

	desc := detail.Description
	if detail.Requirements != "" {
		desc += "<h3>Requirements</h3>" + detail.Requirements
	}
	if detail.Benefits != "" {
		desc += "<h3>Benefits</h3>" + detail.Benefits
	}
	return desc, nil
}

func (e *Enricher) enrichSmartRecruiters(ctx context.Context, j *model.Job, company model.Company) (string, error) {
	id := strings.TrimPrefix(j.ID, "smartrecruiters-")
	url := fmt.Sprintf("https://api.smartrecruiters.com/v1/companies/%s/postings/%s", company.Slug, id)

	var detail smartRecruitersDetail
	if err := e.fetchJSON(ctx, url, &detail); err != nil {
		return "", err
	}

	var desc strings.Builder
	if s := detail.JobAd.Sections.JobDescription; s != nil && s.Text != "" {
		desc.WriteString(s.Text)
	}
	if s := detail.JobAd.Sections.Qualifications; s != nil && s.Text != "" {
		desc.WriteString("<h3>Qualifications</h3>")
		desc.WriteString(s.Text)
	}
	if s := detail.JobAd.Sections.AdditionalInformation; s != nil && s.Text != "" {
		desc.WriteString("<h3>Additional Information</h3>")
		desc.WriteString(s.Text)
	}
	return desc.String(), nil
}

func (e *Enricher) enrichRecruitee(ctx context.Context, j *model.Job, company model.Company) (string, error) {
	parts := strings.Split(j.URL, "/o/")
	if len(parts) < 2 {
		return "", fmt.Errorf("recruitee job url %q has no /o/ slug segment", j.URL)
	}
	slug := parts[len(parts)-1]
	url := fmt.Sprintf("https://%s.recruitee.com/api/offers/%s", company.Slug, slug)

	var detail recruiteeDetailResponse
	if err := e.fetchJSON(ctx, url, &detail); err != nil {
		return "", err
	}

	desc := detail.Offer.Description
	if detail.Offer.Requirements != "" {
		desc += "<h3>Requirements</h3>" + detail.Offer.Requirements
	}
	if detail.Offer.Benefits != "" {
		desc += "<h3>Benefits</h3>" + detail.Offer.Benefits
	}
	return desc, nil
}
