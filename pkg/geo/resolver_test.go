// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package geo

import (
	"testing"

	"github.com/kraklabs/jobpipe/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockGazetteer builds a small, hand-populated gazetteer covering the
// handful of countries, regions, and cities the resolver tests exercise,
// rather than loading real Geonames files.
func newMockGazetteer() *Gazetteer {
	g := NewGazetteer()

	g.countries["US"] = "United States"
	g.countryLookup["us"] = countryEntry{code: "US", name: "United States"}
	g.countryLookup["united states"] = countryEntry{code: "US", name: "United States"}

	g.regions["US.CA"] = "California"
	g.regionLookup["us.ca"] = regionEntry{id: "US.CA", name: "California"}
	g.regionLookup["us.california"] = regionEntry{id: "US.CA", name: "California"}

	g.regions["US.TX"] = "Texas"
	g.regionLookup["us.tx"] = regionEntry{id: "US.TX", name: "Texas"}
	g.regionLookup["us.texas"] = regionEntry{id: "US.TX", name: "Texas"}
	g.admin1Infer["texas"] = "US"

	g.cities["san jose"] = []cityEntry{
		{name: "San Jose", countryCode: "US", admin1: "CA", population: 1000000},
	}
	g.cities["paris"] = []cityEntry{
		{name: "Paris", countryCode: "FR", admin1: "11", population: 2000000},
		{name: "Paris", countryCode: "US", admin1: "TX", population: 25000},
	}
	g.countries["FR"] = "France"
	g.countryLookup["fr"] = countryEntry{code: "FR", name: "France"}

	return g
}

func TestResolveFullCityRegionCountry(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("San Jose, California, US")

	assert.Equal(t, "San Jose", loc.City)
	assert.Equal(t, "California", loc.Region)
	assert.Equal(t, "United States", loc.Country)
	assert.Equal(t, "US", loc.CountryCode)
	assert.Equal(t, model.WorkModeInOffice, loc.WorkMode)
}

func TestResolveRemoteKeywordExtraction(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("Remote - San Jose")

	require.Equal(t, model.WorkModeRemote, loc.WorkMode)
	assert.Equal(t, "San Jose", loc.City)
}

func TestResolveHybridKeyword(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("Hybrid")

	assert.Equal(t, model.WorkModeHybrid, loc.WorkMode)
	assert.Empty(t, loc.City)
}

func TestResolveParisTexasRegionWithoutCountry(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("Paris, Texas")

	assert.Equal(t, "US", loc.CountryCode)
	assert.Equal(t, "Texas", loc.Region)
	assert.Equal(t, "Paris", loc.City)
}

func TestResolveEmptyStringYieldsInOfficeOnly(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("")

	assert.Empty(t, loc.City)
	assert.Empty(t, loc.Region)
	assert.Empty(t, loc.Country)
	assert.Empty(t, loc.CountryCode)
	assert.Equal(t, model.WorkModeInOffice, loc.WorkMode)
}

func TestResolveDisplayFormatJoinsAllComponents(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("San Jose, California, US")

	assert.Equal(t, "San Jose, California, United States", loc.DisplayFormat())
}

func TestDisplayFormatSuppressesRepeatedComponents(t *testing.T) {
	loc := model.LocationInfo{City: "Singapore", Region: "Singapore", Country: "Singapore"}
	assert.Equal(t, "Singapore", loc.DisplayFormat())

	newYork := model.LocationInfo{City: "New York", Region: "New York", Country: "United States"}
	assert.Equal(t, "New York, United States", newYork.DisplayFormat())
}

func TestDisplayFormatStableUnderCaseAndWhitespaceChanges(t *testing.T) {
	g := newMockGazetteer()

	base := g.Resolve("San Jose, California, US").DisplayFormat()
	assert.Equal(t, base, g.Resolve("san jose, california, us  ").DisplayFormat())
	assert.Equal(t, base, g.Resolve("SAN JOSE, CALIFORNIA, US").DisplayFormat())
}

func TestResolveUnknownLocationFallsBackToAllEmpty(t *testing.T) {
	g := newMockGazetteer()
	loc := g.Resolve("Nowhereville, Atlantis")

	assert.Empty(t, loc.City)
	assert.Empty(t, loc.Country)
	assert.Equal(t, model.WorkModeInOffice, loc.WorkMode)
}
