// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pipeline implements the concurrent fetch/parse/filter/enrich/dedupe/
// batch-write orchestrator: the core engine that drives the ATS parser
// family, tag engine, education detector, and location resolver over a
// bounded worker pool of companies.
package pipeline

import (
	"regexp"
	"time"

	"github.com/kraklabs/jobpipe/pkg/model"
)

// defaultCutoff is how far back a job's posted timestamp may be before it is
// filtered out, relaxed to eoiCutoff for expression-of-interest postings.
const (
	defaultCutoff = 60 * 24 * time.Hour
	eoiCutoff     = 120 * 24 * time.Hour
)

var eoiTitle = regexp.MustCompile(`(?i)expression of interest|\beoi\b`)

// Defaults for KEYWORDS_REGEX / NEGATIVE_KEYWORDS_REGEX when the
// environment or config supplies neither: the early-career titles this
// corpus targets, and the seniority words that disqualify a posting.
const (
	DefaultKeywordsPattern         = `(?i)\b(intern|internship|graduate|new grad|entry.level|junior|early career)\b`
	DefaultNegativeKeywordsPattern = `(?i)\b(senior|sr\.?|lead|principal|staff|manager|director|head of|vp|vice president)\b`
)

// compileKeywordRegexes compiles the positive and negative keyword
// patterns, falling back to the package defaults when either is empty.
func compileKeywordRegexes(keywords, negativeKeywords string) (*regexp.Regexp, *regexp.Regexp, error) {
	if keywords == "" {
		keywords = DefaultKeywordsPattern
	}
	if negativeKeywords == "" {
		negativeKeywords = DefaultNegativeKeywordsPattern
	}

	kw, err := regexp.Compile(keywords)
	if err != nil {
		return nil, nil, err
	}
	nkw, err := regexp.Compile(negativeKeywords)
	if err != nil {
		return nil, nil, err
	}
	return kw, nkw, nil
}

// Filter applies the title keyword gate and recency cutoff: a job survives
// only if its title matches keywords, does not match negativeKeywords, and
// either has no parseable posted timestamp or one newer than the
// applicable cutoff.
type Filter struct {
	keywords         *regexp.Regexp
	negativeKeywords *regexp.Regexp
	now              func() time.Time
}

// NewFilter builds a Filter from already compiled positive and negative
// keyword regexes (see compileKeywordRegexes).
func NewFilter(keywords, negativeKeywords *regexp.Regexp) *Filter {
	return &Filter{keywords: keywords, negativeKeywords: negativeKeywords, now: time.Now}
}

// Accept reports whether job j passes the title and recency gates.
func (f *Filter) Accept(j model.Job) bool {
	if !f.keywords.MatchString(j.Title) {
		return false
	}
	if f.negativeKeywords != nil && f.negativeKeywords.MatchString(j.Title) {
		return false
	}
	return f.acceptRecency(j)
}

func (f *Filter) acceptRecency(j model.Job) bool {
	if j.Posted == "" {
		return true
	}
	posted, err := time.Parse(time.RFC3339, j.Posted)
	if err != nil {
		return true
	}

	cutoff := defaultCutoff
	if eoiTitle.MatchString(j.Title) {
		cutoff = eoiCutoff
	}

	now := time.Now
	if f.now != nil {
		now = f.now
	}
	return posted.After(now().Add(-cutoff))
}
