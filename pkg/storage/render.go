// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches SQLite's numbered-parameter syntax, `?1`,
// `?2`, and so on, exactly the `\?(\d+)` scheme the persistence adapter
// design specifies for remote query rendering.
var placeholderPattern = regexp.MustCompile(`\?(\d+)`)

// renderStatement substitutes stmt.Args into stmt.SQL by the single
// pre-compiled placeholder replacement, for adapters with no bind-parameter
// channel of their own. Strings are single-quoted with embedded `'`
// doubled; booleans render as 1/0; nil as NULL; everything else via its
// default string formatting. Substitution is safe here because every
// string argument has already passed through either HTML sanitization
// (descriptions) or originates from a restricted character set
// (identifiers, URLs, location tokens).
func renderStatement(stmt Statement) string {
	return placeholderPattern.ReplaceAllStringFunc(stmt.SQL, func(match string) string {
		n, err := strconv.Atoi(match[1:])
		if err != nil || n < 1 || n > len(stmt.Args) {
			return match
		}
		return renderValue(stmt.Args[n-1])
	})
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", val)
	}
}
