// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import (
	"strings"

	"golang.org/x/text/cases"
)

// Reference is a resolved [link reference definition].
//
// [link reference definition]: https://spec.commonmark.org/0.30/#link-reference-definitions
type Reference struct {
	Destination string
	Title       string
}

// ReferenceMap collects link reference definitions stripped from
// paragraphs during finalization, keyed by normalized
// label. It is the block parser's side of the reference-link feature;
// resolving an actual link reference against it is an [InlineParser]'s job.
type ReferenceMap struct {
	entries map[string]Reference
}

func newReferenceMap() *ReferenceMap {
	return &ReferenceMap{entries: make(map[string]Reference)}
}

// Lookup finds a reference by label, normalizing it the same way
// definitions are normalized when registered: trimmed, internal
// whitespace collapsed, and Unicode case-folded.
func (m *ReferenceMap) Lookup(label string) (Reference, bool) {
	if m == nil {
		return Reference{}, false
	}
	r, ok := m.entries[normalizeLabel(label)]
	return r, ok
}

// Len reports the number of distinct labels registered.
func (m *ReferenceMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

var labelFold = cases.Fold()

// normalizeLabel implements CommonMark's reference label matching rule:
// strip leading/trailing whitespace, collapse internal whitespace runs to
// a single space, and case-fold. cases.Fold gives correct Unicode
// case-insensitive matching where a naive strings.ToUpper would not.
func normalizeLabel(label string) string {
	return labelFold.String(strings.Join(strings.Fields(label), " "))
}

// parseDefinition attempts to parse a single link reference definition at
// the start of content. It returns the number of bytes consumed, or 0 if
// content does not begin with a well-formed definition. On success, the
// definition is registered (first definition for a given label wins, per
// CommonMark).
func (m *ReferenceMap) parseDefinition(content []byte) int {
	pos := 0
	if pos >= len(content) || content[pos] != '[' {
		return 0
	}
	pos++
	labelStart := pos
	for pos < len(content) && content[pos] != ']' {
		if content[pos] == '\\' && pos+1 < len(content) {
			pos += 2
			continue
		}
		if content[pos] == '[' {
			return 0
		}
		pos++
	}
	if pos >= len(content) {
		return 0
	}
	label := string(content[labelStart:pos])
	pos++ // ']'
	if pos >= len(content) || content[pos] != ':' {
		return 0
	}
	pos++

	pos = skipRefSpace(content, pos)
	destStart := pos
	var dest string
	if pos < len(content) && content[pos] == '<' {
		end := pos + 1
		for end < len(content) && content[end] != '>' && content[end] != '\n' {
			if content[end] == '\\' && end+1 < len(content) {
				end++
			}
			end++
		}
		if end >= len(content) || content[end] != '>' {
			return 0
		}
		dest = string(content[destStart+1 : end])
		pos = end + 1
	} else {
		end := pos
		depth := 0
	scanDest:
		for end < len(content) && !isSpaceTabOrLineEnding(content[end]) {
			switch content[end] {
			case '\\':
				if end+1 < len(content) {
					end++
				}
			case '(':
				depth++
			case ')':
				if depth == 0 {
					break scanDest
				}
				depth--
			}
			end++
		}
		if end == destStart {
			return 0
		}
		dest = string(content[destStart:end])
		pos = end
	}
	dest = unescapeBackslashes(dest)

	// Optional title, possibly on the next line.
	savePos := pos
	title, titleEnd, ok := parseRefTitle(content, skipRefSpace(content, pos))
	if ok && skipToLineEnd(content, titleEnd) >= 0 {
		pos = consumeLineEnding(content, titleEnd)
	} else {
		// No title, or trailing garbage after one: back up and require the
		// destination's line to end cleanly instead.
		title = ""
		if skipToLineEnd(content, savePos) < 0 {
			return 0
		}
		pos = consumeLineEnding(content, savePos)
	}

	label = normalizeLabel(label)
	if label == "" {
		return 0
	}
	if _, exists := m.entries[label]; !exists {
		m.entries[label] = Reference{Destination: dest, Title: title}
	}
	return pos
}

func skipRefSpace(content []byte, pos int) int {
	for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
		pos++
	}
	if pos < len(content) && content[pos] == '\n' {
		pos++
		for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
			pos++
		}
	}
	return pos
}

// parseRefTitle parses a quoted or parenthesized title starting at pos.
func parseRefTitle(content []byte, pos int) (title string, end int, ok bool) {
	if pos >= len(content) {
		return "", 0, false
	}
	var closer byte
	switch content[pos] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return "", 0, false
	}
	start := pos + 1
	i := start
	for i < len(content) && content[i] != closer {
		if content[i] == '\\' && i+1 < len(content) {
			i++
		}
		i++
	}
	if i >= len(content) {
		return "", 0, false
	}
	return unescapeBackslashes(string(content[start:i])), i + 1, true
}

// skipToLineEnd verifies only whitespace remains until the next '\n' (or
// end of content) starting at pos, returning pos unchanged if so, or -1.
func skipToLineEnd(content []byte, pos int) int {
	for i := pos; i < len(content); i++ {
		switch content[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return pos
		default:
			return -1
		}
	}
	return pos
}

func consumeLineEnding(content []byte, pos int) int {
	for pos < len(content) && content[pos] != '\n' {
		pos++
	}
	if pos < len(content) {
		pos++
	}
	return pos
}

// unescapeBackslashes replaces a backslash-escaped ASCII punctuation byte
// with the literal byte, per CommonMark's backslash escape rule.
func unescapeBackslashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]) {
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func isASCIIPunct(c byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", c) >= 0
}
