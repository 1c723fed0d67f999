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

// Package tagengine detects keyword tags inside job descriptions. Most rules
// are unconditional; a minority require a nearby context word (or the
// absence of a nearby forbidden word) before the tag fires, which is how
// overloaded acronyms like "go" or "b2b" avoid tagging every unrelated post.
package tagengine

import "regexp"

// ruleSpec is the declarative, uncompiled form a rule is authored in. See
// rules.go for the full table.
type ruleSpec struct {
	tag                      string
	pattern                  string
	context                  string
	maxWordDistance          int
	forbiddenContext         string
	forbiddenMaxWordDistance int
}

// compiledRule is a ruleSpec with every regex compiled once at engine
// construction time.
type compiledRule struct {
	tag                      string
	re                       *regexp.Regexp
	context                  *regexp.Regexp
	maxWordDistance          int
	forbiddenContext         *regexp.Regexp
	forbiddenMaxWordDistance int
}

// Engine detects keyword tags in free text against a fixed rule table.
type Engine struct {
	rules []compiledRule
}

// NewEngine compiles the built-in rule table. Panics on an invalid pattern,
// which can only happen if rules.go itself is broken — every pattern here is
// a compile-time constant, never user input.
func NewEngine() *Engine {
	return &Engine{rules: compileRules(tagRules)}
}

func compileRules(specs []ruleSpec) []compiledRule {
	rules := make([]compiledRule, 0, len(specs))
	for _, s := range specs {
		r := compiledRule{
			tag:                      s.tag,
			re:                       regexp.MustCompile(s.pattern),
			maxWordDistance:          s.maxWordDistance,
			forbiddenMaxWordDistance: s.forbiddenMaxWordDistance,
		}
		if s.context != "" {
			r.context = regexp.MustCompile(s.context)
		}
		if s.forbiddenContext != "" {
			r.forbiddenContext = regexp.MustCompile(s.forbiddenContext)
		}
		rules = append(rules, r)
	}
	return rules
}

// DetectTags returns every tag whose rule fires against text, in rule-table
// order, deduplicated by the caller (model.Job.AddTag already does this).
// Every rule's regex runs against text directly; at a few hundred rules the
// scan is cheap relative to the HTTP fetches surrounding it.
func (e *Engine) DetectTags(text string) []string {
	var tags []string
	for _, rule := range e.rules {
		if !rule.re.MatchString(text) {
			continue
		}
		if !passesContext(text, rule) {
			continue
		}
		if failsForbiddenContext(text, rule) {
			continue
		}
		tags = append(tags, rule.tag)
	}
	return tags
}

func passesContext(text string, rule compiledRule) bool {
	if rule.context == nil {
		return true
	}
	if !rule.context.MatchString(text) {
		return false
	}
	if rule.maxWordDistance == 0 {
		return true
	}
	return checkDistance(text, rule.re, rule.context, rule.maxWordDistance)
}

func failsForbiddenContext(text string, rule compiledRule) bool {
	if rule.forbiddenContext == nil || !rule.forbiddenContext.MatchString(text) {
		return false
	}
	if rule.forbiddenMaxWordDistance == 0 {
		return true
	}
	return checkDistance(text, rule.re, rule.forbiddenContext, rule.forbiddenMaxWordDistance)
}

// checkDistance reports whether any occurrence of keyword and any occurrence
// of context are within maxDist words of each other.
func checkDistance(text string, keyword, context *regexp.Regexp, maxDist int) bool {
	keywordIdx := matchStarts(keyword, text)
	contextIdx := matchStarts(context, text)

	for _, k := range keywordIdx {
		for _, c := range contextIdx {
			start, end := k, c
			if c < k {
				start, end = c, k
			}
			if countWords(text[start:end]) <= maxDist {
				return true
			}
		}
	}
	return false
}

func matchStarts(re *regexp.Regexp, text string) []int {
	locs := re.FindAllStringIndex(text, -1)
	starts := make([]int, len(locs))
	for i, l := range locs {
		starts[i] = l[0]
	}
	return starts
}

// countWords counts whitespace-terminated words in s. A trailing word with
// no whitespace after it (the match sitting at the slice boundary) does not
// count.
func countWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			if inWord {
				count++
				inWord = false
			}
		} else {
			inWord = true
		}
	}
	return count
}
