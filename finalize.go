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
	"bytes"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

// asciiPunct lists the ASCII punctuation bytes CommonMark allows a
// backslash to escape.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// backslashUnescaper strips a leading backslash from any escaped ASCII
// punctuation byte, built once from asciiPunct. It is shared by the
// fenced-code info string and the include-directive filename.
var backslashUnescaper = func() *bytereplacer.Replacer {
	pairs := make([]string, 0, 2*len(asciiPunct))
	for i := 0; i < len(asciiPunct); i++ {
		pairs = append(pairs, "\\"+string(asciiPunct[i]), string(asciiPunct[i]))
	}
	return bytereplacer.New(pairs...)
}()

// finalizeInfoString implements a fenced-code info string's
// rule: HTML-entity-unescape, backslash-unescape, then trim.
func finalizeInfoString(raw []byte) string {
	s := html.UnescapeString(string(raw))
	s = string(backslashUnescaper.Replace([]byte(s)))
	return strings.TrimSpace(s)
}

// finalizeNode closes b, computes its end position, and performs any
// kind-specific content extraction (reference/include stripping, fenced
// code info-string extraction, tight/loose list determination). It
// returns b's parent, which the caller uses to keep walking up the tree.
//
// finalizeNode must only be called on an open node.
func finalizeNode(p *Parser, b *Node) *Node {
	parent := b.parent
	b.open = false

	if len(p.curline) == 0 {
		b.endLine = p.lineNumber
		b.endColumn = p.lastLineLength
	} else if b.kind == DocumentKind ||
		(b.kind == CodeBlockKind && b.code.fenced) ||
		(b.kind == HeaderKind && b.header.setext) {
		b.endLine = p.lineNumber
		b.endColumn = len(p.curline)
		if p.curline[len(p.curline)-1] == '\n' {
			b.endColumn--
		}
	} else {
		b.endLine = p.lineNumber - 1
		b.endColumn = p.lastLineLength
	}

	switch b.kind {
	case ParagraphKind:
		finalizeParagraph(p, b)

	case CodeBlockKind:
		if !b.code.fenced {
			removeTrailingBlankLines(&b.stringContent)
			b.stringContent.WriteByte('\n')
		} else {
			content := b.stringContent.Bytes()
			firstLineLen := bytes.IndexByte(content, '\n')
			if firstLineLen < 0 {
				firstLineLen = len(content)
			}
			b.info = finalizeInfoString(content[:firstLineLen])
			rest := content[min(firstLineLen+1, len(content)):]
			b.stringContent.Reset()
			b.stringContent.Write(rest)
		}
		b.literal = b.stringContent.String()
		b.stringContent.Reset()

	case HTMLKind:
		b.literal = b.stringContent.String()
		b.stringContent.Reset()

	case ListKind:
		finalizeListTightness(b)
	}

	return parent
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// finalizeParagraph strips leading reference definitions and include
// directives from a freshly closed Paragraph. If nothing but whitespace
// remains, the paragraph is unlinked entirely (it was purely a
// reference/include block).
func finalizeParagraph(p *Parser, b *Node) {
	for {
		content := b.stringContent.Bytes()
		if len(content) == 0 {
			return
		}
		switch {
		case content[0] == '[':
			n := p.refmap.parseDefinition(content)
			if n <= 0 {
				return
			}
			dropFront(&b.stringContent, n)
		case len(content) > 1 && content[0] == '<' && content[1] == '<':
			n, filename := parseIncludeInline(content)
			if n <= 0 {
				return
			}
			AddInclude(p.root, filename)
			dropFront(&b.stringContent, n)
		default:
			return
		}
		if isBlankLine(b.stringContent.Bytes()) {
			unlink(b)
			return
		}
	}
}

// dropFront removes the first n bytes from buf's contents.
func dropFront(buf *bytes.Buffer, n int) {
	rest := append([]byte{}, buf.Bytes()[n:]...)
	buf.Reset()
	buf.Write(rest)
}

// removeTrailingBlankLines trims every wholly-blank line from the end of
// an indented code block's accumulated content.
func removeTrailingBlankLines(buf *bytes.Buffer) {
	content := buf.Bytes()
	i := len(content) - 1
	for ; i >= 0; i-- {
		c := content[i]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			break
		}
	}
	if i < 0 {
		buf.Reset()
		return
	}
	nl := bytes.IndexByte(content[i:], '\n')
	if nl >= 0 {
		buf.Truncate(i + nl)
	}
}

// endsWithBlankLine reports whether n (or, for List/Item, its last
// descendant) ended on a blank line. Used by finalizeListTightness.
func endsWithBlankLine(n *Node) bool {
	for n != nil {
		if n.lastLineBlank {
			return true
		}
		if n.kind == ListKind || n.kind == ItemKind {
			n = n.lastChild
		} else {
			n = nil
		}
	}
	return false
}

// finalizeListTightness determines whether a List is tight (no blank
// lines between any of its items' content).
func finalizeListTightness(list *Node) {
	list.list.tight = true
	for item := list.firstChild; item != nil; item = item.next {
		if item.lastLineBlank && item.next != nil {
			list.list.tight = false
			return
		}
		for subitem := item.firstChild; subitem != nil; subitem = subitem.next {
			if endsWithBlankLine(subitem) && (item.next != nil || subitem.next != nil) {
				list.list.tight = false
				return
			}
		}
	}
}
