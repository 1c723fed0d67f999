// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package tagengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationDetectorGatedOnIndicatorWord(t *testing.T) {
	d := NewEducationDetector()

	info := d.Detect("5 years experience required, Bachelor's degree preferred.")
	assert.Contains(t, info.DegreeLevels, "Bachelor's")

	noIndicator := d.Detect("5 years experience required, Bachelor's accepted but not necessary.")
	assert.Empty(t, noIndicator.DegreeLevels)
}

func TestEducationDetectorFindsDegreeAndSubject(t *testing.T) {
	d := NewEducationDetector()
	info := d.Detect("Currently pursuing a Bachelor's degree in Computer Science.")

	assert.Contains(t, info.DegreeLevels, "Bachelor's")
	assert.Contains(t, info.SubjectAreas, "Computer Science")
}

func TestEducationDetectorEmptyWithoutIndicator(t *testing.T) {
	d := NewEducationDetector()
	info := d.Detect("We are hiring a Bachelor of fine taste in software design.")
	assert.Empty(t, info.DegreeLevels)
	assert.Empty(t, info.SubjectAreas)
}

func TestEducationDetectorDisjointLabelSets(t *testing.T) {
	d := NewEducationDetector()
	info := d.Detect("Enrolled student pursuing a Master's and a law degree at a top university.")

	assert.Contains(t, info.DegreeLevels, "Master's")
	assert.Contains(t, info.SubjectAreas, "Law")
	assert.NotContains(t, info.DegreeLevels, "Law")
	assert.NotContains(t, info.SubjectAreas, "Master's")
}
