// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoDataDirDefaultsToCurrentDirectory(t *testing.T) {
	t.Setenv("GEODATA_DIR", "")
	assert.Equal(t, ".", geoDataDir())
}

func TestGeoDataDirHonorsEnvOverride(t *testing.T) {
	t.Setenv("GEODATA_DIR", "/opt/geonames")
	assert.Equal(t, "/opt/geonames", geoDataDir())
}

func TestRegionRowsSplitsCompositeID(t *testing.T) {
	rows := regionRows(map[string]string{
		"US.CA": "California",
		"FR.75": "Paris",
	})

	assert.Equal(t, "US", rows["US.CA"].CountryCode)
	assert.Equal(t, "California", rows["US.CA"].Name)
	assert.Equal(t, "FR", rows["FR.75"].CountryCode)
}

func TestDedupKeysReturnsAllIDs(t *testing.T) {
	keys := dedupKeys(map[string]struct{}{"a": {}, "b": {}})
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}
