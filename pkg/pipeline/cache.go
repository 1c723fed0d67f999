// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCacheFile reads the persisted de-duplication cache: a JSON array of
// job identifiers. A missing file is treated as an empty cache (first run),
// not an error.
func LoadCacheFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode cache file: %w", err)
	}
	return ids, nil
}

// SaveCacheFile writes ids to path as a JSON array, overwriting any
// previous contents. Called once at shutdown to flush the grown
// de-duplication set.
func SaveCacheFile(path string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}
