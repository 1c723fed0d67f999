// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"regexp"
	"testing"
	"time"

	"github.com/kraklabs/jobpipe/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilter(t *testing.T) *Filter {
	t.Helper()
	kw, nkw, err := compileKeywordRegexes(DefaultKeywordsPattern, DefaultNegativeKeywordsPattern)
	require.NoError(t, err)
	f := NewFilter(kw, nkw)
	f.now = func() time.Time { return time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestFilterAcceptsMatchingTitle(t *testing.T) {
	f := newTestFilter(t)
	assert.True(t, f.Accept(model.Job{Title: "Junior Software Engineer"}))
}

func TestFilterRejectsNonMatchingTitle(t *testing.T) {
	f := newTestFilter(t)
	assert.False(t, f.Accept(model.Job{Title: "Staff Software Engineer"}))
}

func TestFilterRejectsSeniorTitle(t *testing.T) {
	f := newTestFilter(t)
	assert.False(t, f.Accept(model.Job{Title: "Senior Graduate Program Manager"}))
}

func TestFilterDefaultCutoffRejectsOldPosting(t *testing.T) {
	f := newTestFilter(t)
	old := f.now().Add(-90 * 24 * time.Hour).Format(time.RFC3339)
	assert.False(t, f.Accept(model.Job{Title: "Junior Engineer", Posted: old}))
}

func TestFilterEOIRelaxesCutoffTo120Days(t *testing.T) {
	f := newTestFilter(t)
	posted := f.now().Add(-90 * 24 * time.Hour).Format(time.RFC3339)
	assert.True(t, f.Accept(model.Job{Title: "Junior Engineer Expression of Interest", Posted: posted}))
}

func TestFilterPassesEmptyOrUnparseableTimestamp(t *testing.T) {
	f := newTestFilter(t)
	assert.True(t, f.Accept(model.Job{Title: "Junior Engineer", Posted: ""}))
	assert.True(t, f.Accept(model.Job{Title: "Junior Engineer", Posted: "not-a-date"}))
}

func TestFilterRejectsTitleMatchingNeitherRegex(t *testing.T) {
	// Title must match the positive regex and must not match the negative
	// regex; a title matching neither is rejected on the positive check.
	f := NewFilter(regexp.MustCompile(`(?i)intern`), regexp.MustCompile(`(?i)senior`))
	assert.False(t, f.Accept(model.Job{Title: "Accountant"}))
}
