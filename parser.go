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
	"fmt"
	"io"
)

// ParseOption is a bitset of parsing behaviors.
type ParseOption uint

const (
	// Normalize merges adjacent TextKind inline siblings produced by the
	// InlineParser into single nodes after parsing finishes.
	Normalize ParseOption = 1 << iota

	// DebugNodes validates the finished tree's structural invariants
	// (all nodes closed, no child starting before its parent's start line,
	// can-contain-respecting; end lines are not compared) and panics with
	// a diagnostic if any is violated. Meant for development builds,
	// not production ones.
	DebugNodes
)

// Parser incrementally builds a block tree from a byte stream. Feed any
// number of chunks, then call Finish to obtain the completed, closed
// Document. This is the package's primary API.
type Parser struct {
	root    *Node
	current *Node
	refmap  *ReferenceMap

	lineNumber     int
	lastLineLength int
	curline        []byte // prepared (tab-expanded) bytes of the line currently being processed; nil between lines

	buf     lineBuffer
	options ParseOption
	ip      InlineParser

	finished bool
}

// NewParser creates a parser ready to receive input via Feed. If ip is
// nil, a trivial [InlineParser] that copies each leaf's raw text into a
// single TextKind child is used.
func NewParser(options ParseOption, ip InlineParser) *Parser {
	if ip == nil {
		ip = defaultInlineParser{}
	}
	root := newNode(DocumentKind, 1, 1)
	return &Parser{
		root:    root,
		current: root,
		refmap:  newReferenceMap(),
		options: options,
		ip:      ip,
	}
}

// Feed appends chunk to the parser's input. Chunks need not align with
// line boundaries; a partial trailing line is buffered until the next
// Feed or Finish call, so Feed(a); Feed(b) produces the same tree as
// Feed(a+b) for any split point.
func (p *Parser) Feed(chunk []byte) {
	if p.finished {
		panic("commonmark: Feed called after Finish")
	}
	p.buf.feed(chunk, p.processLine)
}

// Finish flushes any buffered partial line, closes every remaining open
// container, runs the configured [InlineParser] over every text-bearing
// leaf, applies [RewriteHeadBody], and returns the completed Document.
// The Parser must not be used again afterward.
func (p *Parser) Finish() *Node {
	if p.finished {
		panic("commonmark: Finish called twice")
	}
	p.buf.flush(p.processLine)
	p.finished = true

	for p.current != p.root {
		p.current = finalizeNode(p, p.current)
	}
	finalizeNode(p, p.root)

	rewriteInlines(p.root, p.ip, p.refmap)
	if p.options&Normalize != 0 {
		consolidateText(p.root)
	}

	root := RewriteHeadBody(p.root)
	if p.options&DebugNodes != 0 {
		if err := checkInvariants(root); err != nil {
			panic("commonmark: DebugNodes: " + err.Error())
		}
	}
	return root
}

// ReferenceMap returns the link reference definitions collected while
// parsing. It is only meaningful after Finish has been called.
func (p *Parser) ReferenceMap() *ReferenceMap {
	return p.refmap
}

// processLine runs the per-line state machine: prepare the
// line, descend the open spine matching containers to it, try to open
// new containers, and append whatever's left to a leaf.
func (p *Parser) processLine(raw []byte) {
	prepared := prepareLine(raw)
	p.lineNumber++
	p.curline = prepared
	defer func() { p.curline = nil }()

	c := &lineCursor{line: prepared}
	lastMatched, blank, fenceClosed, allMatched := p.descendSpine(c)
	if fenceClosed {
		p.lastLineLength = lineLength(prepared)
		return
	}

	// Second blank line in a row inside a list: close the whole list.
	// Openers restart at the list's parent, but lastMatched stays put so
	// the leaf appender's finalize walk below doesn't revisit the nodes
	// breakOutOfLists already closed.
	container := lastMatched
	if blank && lastMatched.lastLineBlank {
		container = p.breakOutOfLists(lastMatched)
	}

	maybeLazy := p.current.Kind() == ParagraphKind
	container = p.openNewBlocks(container, c, maybeLazy, allMatched)
	p.appendLeafLine(container, lastMatched, c)

	p.lastLineLength = lineLength(prepared)
}

func lineLength(line []byte) int {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		return len(line) - 1
	}
	return len(line)
}

// ParseDocument parses a complete, in-memory source document in one call.
func ParseDocument(source []byte, options ParseOption, ip InlineParser) *Node {
	p := NewParser(options, ip)
	p.Feed(source)
	return p.Finish()
}

// ParseFile reads r to completion in 4 KiB chunks and parses it, returning
// any I/O error encountered (parsing itself never fails).
func ParseFile(r io.Reader, options ParseOption, ip InlineParser) (*Node, error) {
	p := NewParser(options, ip)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			p.Feed(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("commonmark: parse file: %w", err)
		}
	}
	return p.Finish(), nil
}

// consolidateText merges runs of adjacent TextKind inline siblings into a
// single node. It only has anything to merge when a caller's InlineParser
// produces multiple adjacent text runs; [defaultInlineParser] never does.
func consolidateText(root *Node) {
	Walk(root, func(n *Node) bool {
		n.inline = consolidateInlines(n.inline)
		for _, in := range n.inline {
			in.children = consolidateInlines(in.children)
		}
		return true
	})
}

func consolidateInlines(inlines []*Inline) []*Inline {
	if len(inlines) < 2 {
		return inlines
	}
	out := inlines[:0:0]
	for _, in := range inlines {
		if in.kind == TextKind && len(out) > 0 && out[len(out)-1].kind == TextKind {
			out[len(out)-1].text += in.text
			continue
		}
		out = append(out, in)
	}
	return out
}
