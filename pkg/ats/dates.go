// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"strconv"
	"time"
)

// epochMillisThreshold distinguishes second-resolution from
// millisecond-resolution epoch integers: anything above ten billion cannot
// be a second-resolution timestamp within a few centuries of the present.
const epochMillisThreshold = 10_000_000_000

// normalizeDate accepts RFC-3339, RFC-2822, or an integer epoch (seconds if
// <= epochMillisThreshold, milliseconds otherwise) and emits RFC-3339 UTC.
// On failure it passes the original string through unchanged.
func normalizeDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}

	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.UTC().Format(time.RFC3339)
	}

	if t, err := time.Parse(time.RFC1123Z, dateStr); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	if t, err := time.Parse(time.RFC822Z, dateStr); err == nil {
		return t.UTC().Format(time.RFC3339)
	}

	if ts, err := strconv.ParseInt(dateStr, 10, 64); err == nil {
		var t time.Time
		if ts > epochMillisThreshold {
			t = time.UnixMilli(ts)
		} else {
			t = time.Unix(ts, 0)
		}
		return t.UTC().Format(time.RFC3339)
	}

	return dateStr
}
