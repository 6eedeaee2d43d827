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

// openNewBlocks tries each block-start rule in the CommonMark priority
// order (indented code, blockquote, ATX header, fenced code, HTML block,
// setext underline, thematic break, list marker) against the remainder of
// the line, opening containers as each rule matches. It stops as soon as
// the current container is a leaf that cannot itself contain other
// containers (a CodeBlock or Html), or as soon as no rule matches.
//
// maybeLazy reports whether the container that was open when this line
// started was a Paragraph; allMatched reports whether every container on
// the spine matched this line as a continuation. Both gate whether a
// thematic break or indented code block is allowed to interrupt a
// paragraph.
func (p *Parser) openNewBlocks(container *Node, c *lineCursor, maybeLazy, allMatched bool) *Node {
	for container.kind != CodeBlockKind && container.kind != HTMLKind {
		fns := c.firstNonspace()
		indent := fns - c.i
		blank := fns < len(c.line) && c.line[fns] == '\n'
		rest := c.line[fns:]

		switch {
		case indent >= codeBlockIndentLimit:
			if maybeLazy || blank {
				return container
			}
			c.advance(codeBlockIndentLimit)
			container = addChild(p, container, CodeBlockKind, c.i+1)

		case fns < len(c.line) && c.line[fns] == blockQuotePrefix:
			c.advanceTo(fns + 1)
			if c.i < len(c.line) && c.line[c.i] == ' ' {
				c.advance(1)
			}
			container = addChild(p, container, BlockQuoteKind, c.i+1)

		case parseATXHeading(rest).level > 0:
			h := parseATXHeading(rest)
			c.advanceTo(fns + h.content.Start)
			container = addChild(p, container, HeaderKind, c.i+1)
			container.header = headerData{level: h.level}

		case parseCodeFence(rest).n > 0:
			f := parseCodeFence(rest)
			container = addChild(p, container, CodeBlockKind, fns+1)
			container.code = codeData{
				fenced:      true,
				fenceChar:   f.char,
				fenceLength: f.n,
				fenceOffset: indent,
			}
			c.advanceTo(fns + f.n)

		case matchHTMLBlockStart(container, rest) >= 0:
			// The tag is part of the content, so the cursor stays put.
			container = addChild(p, container, HTMLKind, fns+1)

		case container.kind == ParagraphKind &&
			parseSetextHeadingUnderline(rest) > 0 &&
			bytes.Count(container.stringContent.Bytes(), []byte{'\n'}) <= 1:
			level := parseSetextHeadingUnderline(rest)
			container.kind = HeaderKind
			container.header = headerData{level: level, setext: true}
			// Leave the cursor on the line's trailing newline rather than
			// past it, so the next firstNonspace lookup still sees it.
			c.advanceTo(len(c.line) - 1)

		case !(container.kind == ParagraphKind && !allMatched) && parseThematicBreak(rest) >= 0:
			// Only now do we know the line is not a setext underline.
			c.advanceTo(len(c.line) - 1)
			container = addChild(p, container, HRuleKind, fns+1)
			container = finalizeNode(p, container)

		case parseListMarker(rest).end >= 0:
			lm := parseListMarker(rest)
			end := fns + lm.end
			spaces := 0
			for spaces <= 5 && end+spaces < len(c.line) && c.line[end+spaces] == ' ' {
				spaces++
			}
			var padding int
			if spaces >= 5 || spaces < 1 || end+spaces >= len(c.line) || c.line[end+spaces] == '\n' {
				padding = lm.end + 1
				if spaces > 0 {
					end++
				}
			} else {
				padding = lm.end + spaces
				end += spaces
			}
			data := listData{
				listType:     lm.listType(),
				delimiter:    lm.listDelimiter(),
				start:        1,
				markerOffset: indent,
				padding:      padding,
			}
			if lm.isOrdered() {
				data.start = lm.n
			} else {
				data.bulletChar = lm.delim
			}
			if container.kind != ListKind || !listsMatch(container.list, data) {
				container = addChild(p, container, ListKind, fns+1)
				container.list = data
			}
			container = addChild(p, container, ItemKind, fns+1)
			container.list = data
			c.advanceTo(end)

		default:
			return container
		}

		if acceptsLines(container.kind) {
			return container
		}
		// Lazy continuation only applies before anything new opens.
		maybeLazy = false
	}
	return container
}

// listsMatch reports whether an item's marker data belongs to the same
// list as an already-open list.
func listsMatch(list, item listData) bool {
	return list.listType == item.listType &&
		list.delimiter == item.delimiter &&
		list.bulletChar == item.bulletChar
}

// matchHTMLBlockStart returns the index into htmlBlockConditions whose
// start condition matches rest, honoring the rule that only conditions
// that can interrupt a paragraph may open inside one. Returns -1 if none match.
func matchHTMLBlockStart(container *Node, rest []byte) int {
	for i, cond := range htmlBlockConditions {
		if container.kind == ParagraphKind && !cond.canInterruptParagraph {
			continue
		}
		if cond.startCondition(rest) {
			return i
		}
	}
	return -1
}

// addChild creates a new open node of kind as the last child of the first
// ancestor (starting at parent) that can contain it, finalizing any
// intervening nodes that cannot.
func addChild(p *Parser, parent *Node, kind NodeKind, startColumn int) *Node {
	for !canContain(parent.kind, kind) {
		parent = finalizeNode(p, parent)
	}
	child := newNode(kind, p.lineNumber, startColumn)
	appendChild(parent, child)
	return child
}
