// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package tagengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTagsPositiveContext(t *testing.T) {
	e := NewEngine()

	assert.NotContains(t, e.DetectTags("We are a B2B company focused on excellence."), "B2B")
	assert.Contains(t, e.DetectTags("Looking for a B2B Sales Associate to drive growth."), "B2B")
}

func TestDetectTagsNegativeContext(t *testing.T) {
	e := NewEngine()

	assert.Contains(t, e.DetectTags("I know Java well."), "Java")
	assert.NotContains(t, e.DetectTags("I know Java Script."), "Java")
}

func TestDetectTagsIsIdempotentAndOrderIndependent(t *testing.T) {
	e := NewEngine()
	text := "We use Python and Docker and Kubernetes here."

	first := e.DetectTags(text)
	second := e.DetectTags(text)
	assert.ElementsMatch(t, first, second)
}

func TestDetectTagsSimpleRule(t *testing.T) {
	e := NewEngine()
	assert.Contains(t, e.DetectTags("Experience with Rust required."), "Rust")
}

func TestDetectTagsGoRequiresLanguageContextNearby(t *testing.T) {
	e := NewEngine()
	assert.Contains(t, e.DetectTags("We write Go as our primary language here."), "Go")
	assert.NotContains(t, e.DetectTags("Just go to the store."), "Go")
}
