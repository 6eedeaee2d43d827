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

// appendLeafLine attaches what remains of the line to container (creating
// a Paragraph if nothing else will take the text), the leaf appender and
// its lazy-continuation special case.
//
// lastMatched is the container descendSpine settled on before openNewBlocks
// ran; container is what openNewBlocks returned (often the same node, when
// no new block was opened).
func (p *Parser) appendLeafLine(container, lastMatched *Node, c *lineCursor) {
	fns := c.firstNonspace()
	blank := fns < len(c.line) && c.line[fns] == '\n'

	if blank && container.lastChild != nil {
		container.lastChild.lastLineBlank = true
	}
	container.lastLineBlank = blank &&
		container.kind != BlockQuoteKind &&
		container.kind != HeaderKind &&
		!(container.kind == CodeBlockKind && container.code.fenced) &&
		!(container.kind == ItemKind && container.firstChild == nil && container.startLine == p.lineNumber)
	for cont := container; cont.parent != nil; cont = cont.parent {
		cont.parent.lastLineBlank = false
	}

	// A lazy continuation line: the previously open node is a non-empty
	// Paragraph, no new container was opened this line, and the line
	// isn't blank. It gets appended verbatim (not re-indented).
	if p.current != lastMatched && container == lastMatched && !blank &&
		p.current.Kind() == ParagraphKind && p.current.stringContent.Len() > 0 {
		p.current.stringContent.Write(c.rest())
		return
	}

	for p.current != lastMatched {
		p.current = finalizeNode(p, p.current)
	}

	switch {
	case container.kind == CodeBlockKind || container.kind == HTMLKind:
		container.stringContent.Write(c.rest())
	case blank:
		// Nothing to attach.
	case acceptsLines(container.kind):
		if container.kind == HeaderKind && !container.header.setext {
			chopTrailingHashtags(c)
		}
		if fns < len(c.line) {
			container.stringContent.Write(c.line[fns:])
		}
	default:
		container = addChild(p, container, ParagraphKind, fns+1)
		container.stringContent.Write(c.line[fns:])
	}
	p.current = container
}

// chopTrailingHashtags right-trims the line and removes an ATX heading's
// optional closing run of '#' characters (which must follow a space).
// The trailing newline goes with the trim, so ATX heading content never
// ends in one.
func chopTrailingHashtags(c *lineCursor) {
	end := len(c.line)
	for end > c.i && isSpaceTabOrLineEnding(c.line[end-1]) {
		end--
	}
	n := end
	for n > c.i && c.line[n-1] == '#' {
		n--
	}
	if n != end && n > c.i && c.line[n-1] == ' ' {
		end = n
		for end > c.i && isSpaceTabOrLineEnding(c.line[end-1]) {
			end--
		}
	}
	c.line = c.line[:end]
}
