// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ats

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// descriptionPolicy is the allowlist sanitizer policy applied to every job
// description. UGCPolicy permits the common formatting tags ATS vendors embed
// in descriptions (headings, lists, links, emphasis) while stripping scripts,
// styles, and event-handler attributes.
var descriptionPolicy = bluemonday.UGCPolicy()

// entityReplacements handles double-escaped payloads: vendors occasionally
// return HTML that was itself entity-encoded, so a bare "&lt;p&gt;" never
// gets tag-stripped unless decoded first.
var entityReplacements = []struct{ from, to string }{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&quot;", "\""},
	{"&#39;", "'"},
	{"&nbsp;", " "},
}

// cleanHTML decodes common double-escaped entities (when present) and then
// strips all tags/attributes not on the sanitizer's allowlist.
func cleanHTML(html string) string {
	if html == "" {
		return ""
	}

	decoded := html
	if strings.Contains(html, "&lt;") || strings.Contains(html, "&gt;") || strings.Contains(html, "&amp;") {
		for _, r := range entityReplacements {
			decoded = strings.ReplaceAll(decoded, r.from, r.to)
		}
	}

	return descriptionPolicy.Sanitize(decoded)
}
