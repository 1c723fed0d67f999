// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ats converts vendor-specific ATS JSON payloads into the canonical
// model.Job record: one parse function per vendor, dispatched over a closed
// enumeration, never subclassing.
package ats

import (
	"fmt"
	"log/slog"

	"github.com/kraklabs/jobpipe/pkg/model"
)

// parseFunc is the per-variant parse function signature every vendor
// implements.
type parseFunc func(company model.Company, data []byte) ([]model.Job, error)

// countFunc estimates the number of raw items a payload appears to contain,
// used only by the observability check for vendors known to drift.
type countFunc func(data []byte) int

var parsers = map[model.AtsKind]parseFunc{
	model.AtsGreenhouse:      parseGreenhouse,
	model.AtsLever:           parseLever,
	model.AtsSmartRecruiters: parseSmartRecruiters,
	model.AtsAshby:           parseAshby,
	model.AtsWorkable:        parseWorkable,
	model.AtsRecruitee:       parseRecruitee,
	model.AtsBreezy:          parseBreezy,
}

var counters = map[model.AtsKind]countFunc{
	model.AtsGreenhouse: countGreenhouse,
	model.AtsAshby:      countAshby,
}

// Parse converts a vendor payload into canonical jobs. Unknown ATS kinds
// yield an empty result, never an error.
func Parse(company model.Company, data []byte) ([]model.Job, error) {
	fn, ok := parsers[company.Type]
	if !ok {
		return nil, nil
	}
	return fn(company, data)
}

// EstimateRawItemCount returns the number of raw items a payload appears to
// contain. Only Greenhouse and Ashby implement it — they are the vendors
// whose schemas have drifted in the past; all other vendors report zero,
// which disables the observability check for them.
func EstimateRawItemCount(kind model.AtsKind, data []byte) int {
	if fn, ok := counters[kind]; ok {
		return fn(data)
	}
	return 0
}

// CheckParsingHealth emits the "PARSING HEALTH ALERT" warning when a vendor
// known to drift (Greenhouse, Ashby) reports raw items but the parse
// produced none — the primary signal of vendor schema drift.
func CheckParsingHealth(logger *slog.Logger, company model.Company, data []byte, parsed []model.Job) {
	if _, watched := counters[company.Type]; !watched {
		return
	}
	rawCount := EstimateRawItemCount(company.Type, data)
	if rawCount > 0 && len(parsed) == 0 {
		logger.Warn("PARSING HEALTH ALERT",
			"company", company.Name,
			"ats", company.Type,
			"raw_item_count", rawCount,
		)
	}
}

// newJob builds a Job with the fields common to every vendor. The id is
// "<ats>-<vendor_id>", globally unique per run.
func newJob(company model.Company, id, title, url string) model.Job {
	return model.Job{
		ID:         fmt.Sprintf("%s-%s", company.Type, id),
		Title:      title,
		Company:    company.Name,
		Slug:       company.Slug,
		Ats:        company.Type,
		URL:        url,
		CompanyURL: company.Domain,
	}
}
