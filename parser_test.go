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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// treeSnap is a comparable, exported-only view of a Node subtree, used so
// tests can diff with go-cmp without reaching into Node's unexported fields.
type treeSnap struct {
	Kind     NodeKind
	Text     string
	Literal  string
	Info     string
	Level    int
	Setext   bool
	Tight    bool
	Filename string
	Children []treeSnap `cmp:",omitempty"`
}

func snapshot(n *Node) treeSnap {
	s := treeSnap{
		Kind:     n.Kind(),
		Literal:  n.Literal(),
		Info:     n.InfoString(),
		Filename: n.Filename(),
	}
	if n.Kind() == HeaderKind {
		s.Level = n.HeaderLevel()
		s.Setext = n.Setext()
	}
	if n.Kind() == ListKind {
		s.Tight = n.Tight()
	}
	for _, in := range n.Inlines() {
		s.Text += in.Text()
	}
	for _, c := range n.Children() {
		s.Children = append(s.Children, snapshot(c))
	}
	return s
}

func parse(t *testing.T, source string) *Node {
	t.Helper()
	return ParseDocument([]byte(source), 0, nil)
}

func TestBlockQuoteContinuation(t *testing.T) {
	got := snapshot(parse(t, "> foo\n> bar\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: BlockQuoteKind, Children: []treeSnap{
				{Kind: ParagraphKind, Text: "foo\nbar\n"},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestLazyParagraphContinuation(t *testing.T) {
	got := snapshot(parse(t, "> foo\nbar\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: BlockQuoteKind, Children: []treeSnap{
				{Kind: ParagraphKind, Text: "foo\nbar\n"},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestTightList(t *testing.T) {
	got := snapshot(parse(t, "- a\n- b\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: ListKind, Tight: true, Children: []treeSnap{
				{Kind: ItemKind, Children: []treeSnap{{Kind: ParagraphKind, Text: "a\n"}}},
				{Kind: ItemKind, Children: []treeSnap{{Kind: ParagraphKind, Text: "b\n"}}},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestLooseList(t *testing.T) {
	got := snapshot(parse(t, "- a\n\n- b\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: ListKind, Tight: false, Children: []treeSnap{
				{Kind: ItemKind, Children: []treeSnap{{Kind: ParagraphKind, Text: "a\n"}}},
				{Kind: ItemKind, Children: []treeSnap{{Kind: ParagraphKind, Text: "b\n"}}},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestFencedCodeBlock(t *testing.T) {
	got := snapshot(parse(t, "```go\nfunc f() {}\n```\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: CodeBlockKind, Info: "go", Literal: "func f() {}\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestIndentedCodeBlock(t *testing.T) {
	got := snapshot(parse(t, "    foo\n    bar\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: CodeBlockKind, Literal: "foo\nbar\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestATXHeadingTrailingHashes(t *testing.T) {
	got := snapshot(parse(t, "## foo ##\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: HeaderKind, Level: 2, Text: "foo"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestSetextHeading(t *testing.T) {
	got := snapshot(parse(t, "foo\n===\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: HeaderKind, Level: 1, Setext: true, Text: "foo\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestSecondBlankLineBreaksList(t *testing.T) {
	got := snapshot(parse(t, "- a\n\n\nb\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: ListKind, Tight: true, Children: []treeSnap{
				{Kind: ItemKind, Children: []treeSnap{{Kind: ParagraphKind, Text: "a\n"}}},
			}},
			{Kind: ParagraphKind, Text: "b\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestIndentedCodeCannotInterruptParagraph(t *testing.T) {
	got := snapshot(parse(t, "foo\n    bar\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: ParagraphKind, Text: "foo\nbar\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestThematicBreak(t *testing.T) {
	got := snapshot(parse(t, "foo\n\n***\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: ParagraphKind, Text: "foo\n"},
			{Kind: HRuleKind},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestReferenceDefinitionStripped(t *testing.T) {
	p := NewParser(0, nil)
	p.Feed([]byte("[foo]: /url \"title\"\n\nuses [foo] here\n"))
	root := p.Finish()

	got := snapshot(root)
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: ParagraphKind, Text: "uses [foo] here\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}

	ref, ok := p.ReferenceMap().Lookup("FOO")
	if !ok {
		t.Fatal("reference \"foo\" not found")
	}
	if ref.Destination != "/url" || ref.Title != "title" {
		t.Errorf("reference = %+v; want {/url title}", ref)
	}
}

func TestIncludeDirectiveHeadBody(t *testing.T) {
	got := snapshot(parse(t, "<<chapter1.md>>\n\nfoo\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: HeadKind, Children: []treeSnap{
				{Kind: IncludeKind, Filename: "chapter1.md"},
			}},
			{Kind: BodyKind, Children: []treeSnap{
				{Kind: ParagraphKind, Text: "foo\n"},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestAddIncludeAfterFinish(t *testing.T) {
	root := parse(t, "foo\n")
	AddInclude(root, "extra.md")
	got := snapshot(root)
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: HeadKind, Children: []treeSnap{
				{Kind: IncludeKind, Filename: "extra.md"},
			}},
			{Kind: ParagraphKind, Text: "foo\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestAddIncludePanicsOnNonDocument(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AddInclude on a non-Document node did not panic")
		}
	}()
	root := parse(t, "foo\n")
	AddInclude(root.FirstChild(), "x.md")
}

func TestHTMLBlock(t *testing.T) {
	got := snapshot(parse(t, "<div>\nfoo\n</div>\n\nbar\n"))
	want := treeSnap{
		Kind: DocumentKind,
		Children: []treeSnap{
			{Kind: HTMLKind, Literal: "<div>\nfoo\n</div>\n"},
			{Kind: ParagraphKind, Text: "bar\n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parse (-want +got):\n%s", diff)
	}
}

func TestParseFile(t *testing.T) {
	const source = "# heading\n\n> quoted\ntext\n"
	got, err := ParseFile(strings.NewReader(source), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := snapshot(parse(t, source))
	if diff := cmp.Diff(want, snapshot(got)); diff != "" {
		t.Errorf("ParseFile differs from ParseDocument (-want +got):\n%s", diff)
	}
}

func TestFeedChunking(t *testing.T) {
	const source = "# heading\n\nsome *paragraph* text\nspanning lines\n"
	whole := snapshot(parse(t, source))
	for _, split := range []int{1, 5, 12, 20, len(source)} {
		p := NewParser(0, nil)
		p.Feed([]byte(source[:split]))
		p.Feed([]byte(source[split:]))
		got := snapshot(p.Finish())
		if diff := cmp.Diff(whole, got); diff != "" {
			t.Errorf("splitting at %d changed the tree (-want +got):\n%s", split, diff)
		}
	}
}

func FuzzFeedChunking(f *testing.F) {
	f.Add("# heading\n\n- a\n- b\n\n> quote\n", 3)
	f.Add("```go\ncode\n```\n", 7)
	f.Add("[x]: /url\n\nsee [x]\n", 11)
	f.Fuzz(func(t *testing.T, source string, split int) {
		if split < 0 || split > len(source) {
			t.Skip()
		}
		whole := snapshot(ParseDocument([]byte(source), 0, nil))
		p := NewParser(0, nil)
		p.Feed([]byte(source[:split]))
		p.Feed([]byte(source[split:]))
		got := snapshot(p.Finish())
		if diff := cmp.Diff(whole, got); diff != "" {
			t.Errorf("splitting %q at %d changed the tree (-want +got):\n%s", source, split, diff)
		}
	})
}
