// Copyright 2024 Irfan Sharif.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package stringutil holds the small text-shaping helpers the rewriter
// needs to splice a payload into source: indenting it to match the call
// site, and deciding whether it can be embedded as a raw string literal
// at all.
package stringutil

import "strings"

// Indent prepends prefix to every non-empty line of payload. Empty lines
// are left alone, so a blank line in a snapshot doesn't pick up trailing
// whitespace.
func Indent(payload, prefix string) string {
	if payload == "" {
		return payload
	}
	lines := strings.Split(payload, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// NeedsQuotedFallback reports whether payload can be embedded as a Go
// raw string literal (backtick-delimited) without alteration, or whether
// it must instead be synthesized as a quoted, escaped string literal.
//
// Go's raw string literals have no pound-delimiter escape hatch the way
// Swift's """ literals do: a backtick always closes the literal, and a
// carriage return is disallowed outright. So unlike
// poundDelimiterCount's graduated "k pounds" answer, this is a binary
// decision - either the payload is backtick-clean, or it isn't and a
// strconv.Quote-based literal is used instead.
func NeedsQuotedFallback(payload string) bool {
	return strings.ContainsAny(payload, "`\r")
}
