// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package geo

import (
	"regexp"
	"strings"

	"github.com/kraklabs/jobpipe/pkg/model"
)

// workModeKeywords jointly matches remote and hybrid keywords in a single
// pass so the matched substring can be removed before the rest of the
// string is tokenized.
var workModeKeywords = regexp.MustCompile(`\b(remote|anywhere|wfh|hybrid)\b`)

var remoteKeywords = map[string]bool{"remote": true, "anywhere": true, "wfh": true}

// Resolve converts a free-text location string into a structured
// LocationInfo, trying, in order: country identification from the last
// comma/pipe/slash-separated part, region identification (with country
// inference when no country was found), city identification (preferring a
// candidate consistent with the identified country/region, else the
// highest-population candidate), and finally a region/country-only or
// token-scan fallback.
func (g *Gazetteer) Resolve(raw string) model.LocationInfo {
	cleaned, workMode := g.extractWorkMode(raw)

	if cleaned == "" {
		return model.LocationInfo{WorkMode: workMode}
	}

	parts := splitParts(cleaned)
	if len(parts) == 0 {
		return model.LocationInfo{WorkMode: workMode}
	}

	country, hasCountry := g.identifyCountry(parts)
	region, hasRegion := g.identifyRegion(parts, country, hasCountry)

	if loc, ok := g.identifyCity(parts, country, hasCountry, region, hasRegion, workMode); ok {
		return loc
	}

	return g.fallback(country, hasCountry, region, hasRegion, workMode, parts)
}

// extractWorkMode lowercases raw, removes every work-mode keyword match
// (remote takes precedence over hybrid when both are present), and trims
// the result of non-alphanumeric edges and a leading "or "/"and ".
func (g *Gazetteer) extractWorkMode(raw string) (string, model.WorkMode) {
	lower := strings.ToLower(raw)
	workMode := model.WorkModeInOffice

	detectedRemote := false
	detectedHybrid := false

	cleaned := workModeKeywords.ReplaceAllStringFunc(lower, func(match string) string {
		if remoteKeywords[match] {
			detectedRemote = true
		} else {
			detectedHybrid = true
		}
		return ""
	})

	if detectedRemote {
		workMode = model.WorkModeRemote
	} else if detectedHybrid {
		workMode = model.WorkModeHybrid
	}

	cleaned = trimNonAlphanumericEdges(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "or ")
	if strings.HasPrefix(cleaned, "and ") {
		cleaned = cleaned[len("and "):]
	}
	cleaned = strings.TrimSpace(cleaned)

	return cleaned, workMode
}

// trimNonAlphanumericEdges strips leading/trailing characters that are
// either non-alphanumeric-and-not-a-space, or whitespace.
func trimNonAlphanumericEdges(s string) string {
	isBoundary := func(r rune) bool {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum && r != ' ' {
			return true
		}
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}
	return strings.TrimFunc(s, isBoundary)
}

func splitParts(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == '/'
	})
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			parts = append(parts, f)
		}
	}
	return parts
}

func (g *Gazetteer) identifyCountry(parts []string) (countryEntry, bool) {
	last := parts[len(parts)-1]
	entry, ok := g.countryLookup[last]
	return entry, ok
}

func (g *Gazetteer) identifyRegion(parts []string, country countryEntry, hasCountry bool) (regionEntry, bool) {
	var idx int
	if hasCountry {
		if len(parts) < 2 {
			return regionEntry{}, false
		}
		idx = len(parts) - 2
	} else {
		idx = len(parts) - 1
	}
	part := parts[idx]

	if hasCountry {
		key := strings.ToLower(country.code) + "." + part
		if entry, ok := g.regionLookup[key]; ok {
			return entry, true
		}
		return regionEntry{}, false
	}

	inferredCC, ok := g.admin1Infer[part]
	if !ok {
		return regionEntry{}, false
	}
	key := strings.ToLower(inferredCC) + "." + part
	entry, ok := g.regionLookup[key]
	return entry, ok
}

func (g *Gazetteer) identifyCity(parts []string, country countryEntry, hasCountry bool, region regionEntry, hasRegion bool, workMode model.WorkMode) (model.LocationInfo, bool) {
	var idx int
	if hasRegion && !hasCountry {
		// "Paris, TX": the city token is the second-to-last part.
		if len(parts) < 2 {
			return model.LocationInfo{}, false
		}
		idx = len(parts) - 2
	} else {
		idx = 0
	}

	cityPart := parts[idx]
	candidates, ok := g.cities[cityPart]
	if !ok || len(candidates) == 0 {
		return model.LocationInfo{}, false
	}

	best := candidates[0]
	for _, c := range candidates {
		if hasCountry && c.countryCode != country.code {
			continue
		}
		if hasRegion && c.countryCode+"."+c.admin1 != region.id {
			continue
		}
		best = c
		break
	}

	regionKey := best.countryCode + "." + best.admin1
	return model.LocationInfo{
		City:        best.name,
		Region:      g.regions[regionKey],
		Country:     g.countries[best.countryCode],
		CountryCode: best.countryCode,
		WorkMode:    workMode,
	}, true
}

func (g *Gazetteer) fallback(country countryEntry, hasCountry bool, region regionEntry, hasRegion bool, workMode model.WorkMode, parts []string) model.LocationInfo {
	if hasRegion || hasCountry {
		if !hasCountry && hasRegion {
			code := strings.SplitN(region.id, ".", 2)[0]
			if name, ok := g.countries[code]; ok {
				country = countryEntry{code: code, name: name}
				hasCountry = true
			}
		}

		loc := model.LocationInfo{WorkMode: workMode}
		if hasRegion {
			loc.Region = region.name
		}
		if hasCountry {
			loc.Country = country.name
			loc.CountryCode = country.code
		}
		return loc
	}

	for _, part := range parts {
		for _, token := range strings.Fields(part) {
			candidates, ok := g.cities[strings.ToLower(token)]
			if !ok || len(candidates) == 0 {
				continue
			}
			best := candidates[0]
			regionKey := best.countryCode + "." + best.admin1
			return model.LocationInfo{
				City:        best.name,
				Region:      g.regions[regionKey],
				Country:     g.countries[best.countryCode],
				CountryCode: best.countryCode,
				WorkMode:    workMode,
			}
		}
	}

	return model.LocationInfo{WorkMode: workMode}
}
