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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseThematicBreak(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"***\n", 3},
		{"---\n", 3},
		{"___\n", 3},
		{"- - -\n", 5},
		{"**\n", -1},
		{"-- \n", -1},
		{"a***\n", -1},
		{"***a\n", -1},
	}
	for _, test := range tests {
		got := parseThematicBreak([]byte(test.line))
		if got != test.want {
			t.Errorf("parseThematicBreak(%q) = %d; want %d", test.line, got, test.want)
		}
	}
}

func TestParseATXHeading(t *testing.T) {
	tests := []struct {
		line string
		want atxHeading
	}{
		{"# foo\n", atxHeading{level: 1, content: Span{2, 5}}},
		{"## foo ##\n", atxHeading{level: 2, content: Span{3, 6}}},
		{"###### foo\n", atxHeading{level: 6, content: Span{7, 10}}},
		{"####### foo\n", atxHeading{}},
		{"#\n", atxHeading{level: 1, content: Span{1, 1}}},
		{"#foo\n", atxHeading{}},
	}
	for _, test := range tests {
		got := parseATXHeading([]byte(test.line))
		if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(atxHeading{}, Span{})); diff != "" {
			t.Errorf("parseATXHeading(%q) (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestParseSetextHeadingUnderline(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"===\n", 1},
		{"---\n", 2},
		{"== =\n", 0},
		{"-\n", 2},
		{"\n", 0},
	}
	for _, test := range tests {
		got := parseSetextHeadingUnderline([]byte(test.line))
		if got != test.want {
			t.Errorf("parseSetextHeadingUnderline(%q) = %d; want %d", test.line, got, test.want)
		}
	}
}

func TestParseCodeFence(t *testing.T) {
	tests := []struct {
		line string
		want codeFence
	}{
		{"```\n", codeFence{char: '`', n: 3, info: NullSpan()}},
		{"~~~~ go\n", codeFence{char: '~', n: 4, info: Span{5, 7}}},
		{"``` go `x`\n", codeFence{info: NullSpan()}},
		{"ab\n", codeFence{info: NullSpan()}},
	}
	for _, test := range tests {
		got := parseCodeFence([]byte(test.line))
		if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(codeFence{}, Span{})); diff != "" {
			t.Errorf("parseCodeFence(%q) (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestParseListMarker(t *testing.T) {
	tests := []struct {
		line string
		want listMarker
	}{
		{"- foo\n", listMarker{delim: '-', end: 1}},
		{"1. foo\n", listMarker{delim: '.', n: 1, end: 2}},
		{"10) foo\n", listMarker{delim: ')', n: 10, end: 3}},
		{"-foo\n", listMarker{end: -1}},
		{"1foo\n", listMarker{end: -1}},
	}
	for _, test := range tests {
		got := parseListMarker([]byte(test.line))
		if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(listMarker{})); diff != "" {
			t.Errorf("parseListMarker(%q) (-want +got):\n%s", test.line, diff)
		}
	}
}
