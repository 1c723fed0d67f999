// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package tagengine

import "regexp"

// eduIndicatorWords gates the education detector: its rules only fire when
// the text also contains one of these, so a job description that merely
// mentions "Bachelor's preferred" for an unrelated senior role doesn't get
// tagged as an early-career listing on a bare keyword hit.
var eduIndicatorWords = regexp.MustCompile(`(?i)\b(studying|enrolled|pursuing|degree|student|graduate|candidate|major|studies)\b`)

// degreeRules and subjectRules are distance-free multi-pattern tables, same
// shape as the tag engine's unconditional rules, emitting into two disjoint
// label sets.
var degreeRules = []ruleSpec{
	{tag: "Associate's", pattern: `(?i)\bassociate'?s?\b`},
	{tag: "Bachelor's", pattern: `(?i)\bbachelor'?s?\b|\bb\.?a\.?\b|\bb\.?s\.?\b|\bundergraduate\b`},
	{tag: "Master's", pattern: `(?i)\bmaster'?s?\b|\bm\.?s\.?\b|\bm\.?a\.?\b|\bmba\b`},
	{tag: "PhD", pattern: `(?i)\bph\.?d\.?\b|\bdoctorate\b|\bdoctoral\b`},
	{tag: "Professional Degree", pattern: `(?i)\bj\.?d\.?\b|\bm\.?d\.?\b|\bpharm\.?d\.?\b|\bprofessional degree\b`},
}

var subjectRules = []ruleSpec{
	{tag: "Computer Science", pattern: `(?i)\bcomputer science\b|\bcs degree\b`},
	{tag: "Informatics", pattern: `(?i)\binformatics\b`},
	{tag: "Data Science", pattern: `(?i)\bdata science\b`},
	{tag: "Engineering", pattern: `(?i)\b(electrical|mechanical|civil|chemical|industrial|biomedical) engineering\b`},
	{tag: "Business Administration", pattern: `(?i)\bbusiness administration\b`},
	{tag: "Finance", pattern: `(?i)\bfinance\b`},
	{tag: "Accounting", pattern: `(?i)\baccounting\b`},
	{tag: "Economics", pattern: `(?i)\beconomics\b`},
	{tag: "Marketing", pattern: `(?i)\bmarketing\b`},
	{tag: "Law", pattern: `(?i)\blaw degree\b|\bjuris doctor\b`},
	{tag: "Medicine", pattern: `(?i)\bmedicine\b|\bmedical school\b`},
	{tag: "Nursing", pattern: `(?i)\bnursing\b`},
	{tag: "Biology", pattern: `(?i)\bbiology\b`},
	{tag: "Chemistry", pattern: `(?i)\bchemistry\b`},
	{tag: "Physics", pattern: `(?i)\bphysics\b`},
	{tag: "Mathematics", pattern: `(?i)\bmathematics\b|\bmath degree\b`},
	{tag: "Statistics", pattern: `(?i)\bstatistics\b`},
	{tag: "Psychology", pattern: `(?i)\bpsychology\b`},
	{tag: "Communications", pattern: `(?i)\bcommunications\b`},
	{tag: "Design", pattern: `(?i)\b(graphic|industrial|product) design\b`},
}

// EducationInfo is the disjoint-label-set result of the education detector:
// degree levels (Bachelor's, Master's, ...) and subject areas (Computer
// Science, Law, ...) found in a job's combined title+description text.
type EducationInfo struct {
	DegreeLevels []string
	SubjectAreas []string
}

// EducationDetector finds degree-level and subject-area mentions, gated on
// the presence of an education-indicating word anywhere in the text. The
// gate is text-wide, not distance-based: a single check runs before either
// rule table, not per match.
type EducationDetector struct {
	degree  []compiledRule
	subject []compiledRule
}

// NewEducationDetector compiles the built-in degree and subject tables.
func NewEducationDetector() *EducationDetector {
	return &EducationDetector{
		degree:  compileRules(degreeRules),
		subject: compileRules(subjectRules),
	}
}

// Detect returns the degree levels and subject areas mentioned in text, but
// only if text also contains an education-indicating word; otherwise both
// sets are empty.
func (d *EducationDetector) Detect(text string) EducationInfo {
	if !eduIndicatorWords.MatchString(text) {
		return EducationInfo{}
	}

	var info EducationInfo
	for _, rule := range d.degree {
		if rule.re.MatchString(text) {
			info.DegreeLevels = append(info.DegreeLevels, rule.tag)
		}
	}
	for _, rule := range d.subject {
		if rule.re.MatchString(text) {
			info.SubjectAreas = append(info.SubjectAreas, rule.tag)
		}
	}
	return info
}
