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

import "bytes"

//go:generate stringer -type=NodeKind,InlineKind -output=kindstring.go

// NodeKind is an enumeration of block node variants.
type NodeKind uint8

const (
	// DocumentKind is the root of every tree returned by this package.
	DocumentKind NodeKind = 1 + iota
	BlockQuoteKind
	ListKind
	ItemKind
	CodeBlockKind
	HTMLKind
	ParagraphKind
	HeaderKind
	HRuleKind

	// HeadKind and IncludeKind are only produced by [AddInclude], and
	// BodyKind only by [RewriteHeadBody].
	HeadKind
	IncludeKind
	BodyKind
)

// ListType enumerates the two flavors of [ListKind] (and their [ItemKind] children).
type ListType uint8

const (
	Bullet ListType = 1 + iota
	Ordered
)

// ListDelimiter enumerates the punctuation that follows an ordered list marker.
type ListDelimiter uint8

const (
	Period ListDelimiter = 1 + iota
	Paren
)

// Node is a single block in the tree produced by [Parser].
//
// A Node is exclusively owned by its parent; the [DocumentKind] root is owned
// by the Parser until [Parser.Finish] transfers it to the caller.
type Node struct {
	kind NodeKind
	open bool

	startLine, startColumn int
	endLine, endColumn     int

	lastLineBlank bool

	parent, firstChild, lastChild, prev, next *Node

	// stringContent accumulates raw source text for leaf blocks
	// (Paragraph, Header, CodeBlock, Html).
	stringContent bytes.Buffer

	// inline holds the parsed inline children once a downstream
	// InlineParser has expanded stringContent. Nil until then.
	inline []*Inline

	// list holds marker data shared between List and Item nodes.
	list listData

	// code holds fenced/indented code block data.
	code codeData

	// header holds heading level/setext data.
	header headerData

	// literal holds the finalized text for CodeBlock/Html nodes.
	literal string
	// info holds the finalized fenced-code info string.
	info string

	// filename holds the target of an Include node.
	filename string
}

type listData struct {
	listType     ListType
	bulletChar   byte
	delimiter    ListDelimiter
	start        int
	tight        bool
	markerOffset int
	padding      int
}

type codeData struct {
	fenced      bool
	fenceChar   byte
	fenceLength int
	fenceOffset int
}

type headerData struct {
	level  int
	setext bool
}

// newNode allocates a detached, open node of the given kind starting at (line, column).
func newNode(kind NodeKind, line, column int) *Node {
	return &Node{
		kind:      kind,
		open:      true,
		startLine: line, startColumn: column,
		endLine: line,
	}
}

// Kind returns the node's variant, or zero for a nil node.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return 0
	}
	return n.kind
}

// IsOpen reports whether the node can still absorb lines.
func (n *Node) IsOpen() bool {
	return n != nil && n.open
}

// Parent, FirstChild, LastChild, Prev, and Next walk the tree's links.
// Each returns nil past the edge of the tree.
func (n *Node) Parent() *Node     { return derefSafe(n, func(n *Node) *Node { return n.parent }) }
func (n *Node) FirstChild() *Node { return derefSafe(n, func(n *Node) *Node { return n.firstChild }) }
func (n *Node) LastChild() *Node  { return derefSafe(n, func(n *Node) *Node { return n.lastChild }) }
func (n *Node) Prev() *Node       { return derefSafe(n, func(n *Node) *Node { return n.prev }) }
func (n *Node) Next() *Node       { return derefSafe(n, func(n *Node) *Node { return n.next }) }

func derefSafe(n *Node, f func(*Node) *Node) *Node {
	if n == nil {
		return nil
	}
	return f(n)
}

// StartLine, StartColumn, EndLine, and EndColumn return the node's 1-based,
// inclusive position range.
func (n *Node) StartLine() int   { return n.startLine }
func (n *Node) StartColumn() int { return n.startColumn }
func (n *Node) EndLine() int     { return n.endLine }
func (n *Node) EndColumn() int   { return n.endColumn }

// LastLineBlank reports whether the last input line attributed to this node was blank.
func (n *Node) LastLineBlank() bool { return n.lastLineBlank }

// ChildCount returns the number of block children.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	count := 0
	for c := n.firstChild; c != nil; c = c.next {
		count++
	}
	return count
}

// Children returns the node's block children in order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	children := make([]*Node, 0, n.ChildCount())
	for c := n.firstChild; c != nil; c = c.next {
		children = append(children, c)
	}
	return children
}

// Inlines returns the parsed inline content of a leaf block,
// or nil if an [InlineParser] has not yet run.
func (n *Node) Inlines() []*Inline {
	if n == nil {
		return nil
	}
	return n.inline
}

// StringContent returns the raw, unparsed source text accumulated for a leaf block.
func (n *Node) StringContent() []byte {
	if n == nil {
		return nil
	}
	return n.stringContent.Bytes()
}

// Literal returns the finalized literal text of a CodeBlock or Html node.
// An Include node's target is returned by [Node.Filename] instead.
func (n *Node) Literal() string {
	if n == nil {
		return ""
	}
	return n.literal
}

// InfoString returns the finalized info string of a fenced CodeBlock.
func (n *Node) InfoString() string {
	if n == nil {
		return ""
	}
	return n.info
}

// Filename returns the target path of an Include node.
func (n *Node) Filename() string {
	if n == nil {
		return ""
	}
	return n.filename
}

// ListType, BulletChar, Delimiter, and ListStart return marker data for List and Item nodes.
func (n *Node) ListType() ListType        { return n.list.listType }
func (n *Node) BulletChar() byte          { return n.list.bulletChar }
func (n *Node) Delimiter() ListDelimiter  { return n.list.delimiter }
func (n *Node) ListStart() int            { return n.list.start }
func (n *Node) MarkerOffset() int         { return n.list.markerOffset }
func (n *Node) Padding() int              { return n.list.padding }

// Tight reports whether a List is tight. Tightness is only computed for
// List nodes; an Item always reports false.
func (n *Node) Tight() bool { return n.list.tight }

// Fenced reports whether a CodeBlock was opened with a fence rather than indentation.
func (n *Node) Fenced() bool { return n.code.fenced }

// FenceChar and FenceLength describe the opening fence of a fenced CodeBlock.
func (n *Node) FenceChar() byte   { return n.code.fenceChar }
func (n *Node) FenceLength() int  { return n.code.fenceLength }
func (n *Node) FenceOffset() int  { return n.code.fenceOffset }

// HeaderLevel returns the 1-based level of a Header node.
func (n *Node) HeaderLevel() int { return n.header.level }

// Setext reports whether a Header was produced by underlining rather than ATX hashes.
func (n *Node) Setext() bool { return n.header.setext }

// canContain reports whether a node of parentKind may directly contain a
// child of childKind. Document, BlockQuote, and Item accept any block;
// List accepts only Item; leaf blocks accept none.
func canContain(parentKind, childKind NodeKind) bool {
	switch parentKind {
	case DocumentKind, BlockQuoteKind, ItemKind, HeadKind, BodyKind:
		return true
	case ListKind:
		return childKind == ItemKind
	default:
		return false
	}
}

// acceptsLines reports whether a node of this kind directly accumulates
// raw line text. Html blocks absorb lines too, but through their own
// verbatim path rather than the leaf appender's.
func acceptsLines(kind NodeKind) bool {
	return kind == ParagraphKind || kind == HeaderKind || kind == CodeBlockKind
}

// appendChild links child as the new last child of parent.
func appendChild(parent, child *Node) {
	child.parent = parent
	if parent.lastChild != nil {
		parent.lastChild.next = child
		child.prev = parent.lastChild
	} else {
		parent.firstChild = child
	}
	parent.lastChild = child
}

// unlink detaches n from its parent and siblings. n keeps its own subtree.
func unlink(n *Node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else if n.parent != nil {
		n.parent.firstChild = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if n.parent != nil {
		n.parent.lastChild = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
}

// prependChild links child as the new first child of parent.
func prependChild(parent, child *Node) {
	child.parent = parent
	if parent.firstChild != nil {
		parent.firstChild.prev = child
		child.next = parent.firstChild
	} else {
		parent.lastChild = child
	}
	parent.firstChild = child
}
