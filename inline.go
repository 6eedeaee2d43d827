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

// InlineKind is an enumeration of inline node variants.
type InlineKind uint8

const (
	// TextKind is a run of literal, unexpanded text.
	//
	// The block parser only ever produces TextKind inline nodes: expansion
	// into emphasis, links, code spans, etc. is an [InlineParser]'s job.
	TextKind InlineKind = 1 + iota
)

// Inline is a placeholder for inline content owned by a leaf [Node].
// The block parser only ever constructs [TextKind] inlines directly from a
// leaf's accumulated [Node.StringContent]; everything else is the
// responsibility of an [InlineParser].
type Inline struct {
	kind     InlineKind
	text     string
	children []*Inline
}

// Kind returns the inline node's variant, or zero for a nil node.
func (in *Inline) Kind() InlineKind {
	if in == nil {
		return 0
	}
	return in.kind
}

// Text returns the literal text of a [TextKind] inline.
func (in *Inline) Text() string {
	if in == nil {
		return ""
	}
	return in.text
}

// Children returns the inline node's children, if any.
func (in *Inline) Children() []*Inline {
	if in == nil {
		return nil
	}
	return in.children
}

// InlineParser expands a leaf [Node]'s accumulated [Node.StringContent]
// into a tree of [Inline] nodes. The block parser invokes Rewrite exactly
// once per text-bearing block (Paragraph, Header), at end of input, after
// the block tree has been fully constructed and reference definitions have
// been stripped out.
//
// Rewrite receives the parser's [ReferenceMap] so that link references
// collected during the block phase can be resolved.
//
// Rewrite is the seam for an external collaborator:
// this package only ships the trivial default that preserves the raw text
// verbatim as a single [TextKind] child. Callers that need emphasis, links,
// or code spans supply their own InlineParser.
type InlineParser interface {
	Rewrite(n *Node, refs *ReferenceMap)
}

// defaultInlineParser is the zero-cost InlineParser used when [NewParser]
// isn't given one: it copies a leaf's raw string content into a single
// TextKind child, performing no expansion.
type defaultInlineParser struct{}

func (defaultInlineParser) Rewrite(n *Node, _ *ReferenceMap) {
	if n == nil || len(n.inline) > 0 {
		return
	}
	text := n.stringContent.String()
	if text == "" {
		return
	}
	n.inline = []*Inline{{kind: TextKind, text: text}}
}

// rewriteInlines walks root, invoking ip on every Paragraph and Header node.
func rewriteInlines(root *Node, ip InlineParser, refs *ReferenceMap) {
	Walk(root, func(n *Node) bool {
		if n.Kind() == ParagraphKind || n.Kind() == HeaderKind {
			ip.Rewrite(n, refs)
		}
		return true
	})
}
