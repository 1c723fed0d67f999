// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kraklabs/jobpipe/pkg/model"
)

// LoadCompanies reads the company descriptor list (slugs.json): a JSON
// array of {name, type, slug, api_url, domain} records, loaded once per
// run. Discovery of new companies is out of scope — this file is curated
// externally.
func LoadCompanies(path string) ([]model.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slugs file: %w", err)
	}

	var companies []model.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("decode slugs file: %w", err)
	}
	return companies, nil
}
