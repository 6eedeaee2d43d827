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

import "golang.org/x/net/html/atom"

// htmlBlockCondition is one of the seven numbered [HTML block] start
// conditions.
//
// Continuation (when an already-open Html block ends) is not part of this
// table: an Html block of any condition continues until a blank line, so
// only the opening side varies by condition. See matcher.go's HTMLKind case.
//
// [HTML block]: https://spec.commonmark.org/0.30/#html-blocks
type htmlBlockCondition struct {
	startCondition        func(line []byte) bool
	canInterruptParagraph bool
}

// htmlBlockConditions is indexed the same way the CommonMark spec numbers
// HTML block conditions 1-7 (zero-based here).
var htmlBlockConditions = []htmlBlockCondition{
	{
		// Condition 1: <script>, <pre>, <style>, <textarea>.
		startCondition: func(line []byte) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if len(rest) == 0 || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{
		// Condition 2: HTML comment.
		startCondition:        func(line []byte) bool { return hasBytePrefix(line, "<!--") },
		canInterruptParagraph: true,
	},
	{
		// Condition 3: processing instruction.
		startCondition:        func(line []byte) bool { return hasBytePrefix(line, "<?") },
		canInterruptParagraph: true,
	},
	{
		// Condition 4: declaration.
		startCondition: func(line []byte) bool {
			return hasBytePrefix(line, "<!") && len(line) >= 3 && isASCIILetter(line[2])
		},
		canInterruptParagraph: true,
	},
	{
		// Condition 5: CDATA section.
		startCondition:        func(line []byte) bool { return hasBytePrefix(line, "<![CDATA[") },
		canInterruptParagraph: true,
	},
	{
		// Condition 6: a line beginning with a tag from a known block-level set.
		startCondition: func(line []byte) bool {
			switch {
			case hasBytePrefix(line, "</"):
				line = line[2:]
			case hasBytePrefix(line, "<"):
				line = line[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if len(rest) == 0 || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' || hasBytePrefix(rest, "/>") {
						return true
					}
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{
		// Condition 7: a complete open or closing tag (of any name), alone on its line.
		startCondition: func(line []byte) bool {
			return parseBareHTMLTag(line) >= 0
		},
		canInterruptParagraph: false,
	},
}

// parseBareHTMLTag reports the end offset of an HTML open or closing tag at
// the start of line, provided only whitespace follows it on the line, or -1
// if none is found. It is a simplified stand-in for full inline HTML tag
// parsing (out of scope here): it only needs to tell
// condition 7 apart from ordinary text, not build an inline node.
func parseBareHTMLTag(line []byte) int {
	if len(line) == 0 || line[0] != '<' {
		return -1
	}
	i := 1
	if i < len(line) && line[i] == '/' {
		i++
	}
	start := i
	for i < len(line) && (isASCIILetter(line[i]) || isASCIIDigit(line[i]) || line[i] == '-') {
		i++
	}
	if i == start {
		return -1
	}
	depth := 0
	for i < len(line) {
		switch line[i] {
		case '"', '\'':
			quote := line[i]
			i++
			for i < len(line) && line[i] != quote {
				i++
			}
		case '<':
			depth++
		case '>':
			if depth == 0 {
				i++
				if isBlankLine(line[i:]) {
					return i
				}
				return -1
			}
			depth--
		}
		i++
	}
	return -1
}

var (
	htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}

	// htmlBlockStarters6 is the set of HTML5 block-level tag names that
	// can open an HTML block under condition 6, taken from the "flow
	// content" and sectioning elements of the HTML5 element catalog.
	htmlBlockStarters6 = []string{
		atom.Address.String(), atom.Article.String(), atom.Aside.String(),
		atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
		atom.Body.String(), atom.Caption.String(), atom.Center.String(),
		atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
		atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
		atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
		atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
		atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
		atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
		atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
		atom.Head.String(), atom.Header.String(), atom.Hr.String(),
		atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
		atom.Li.String(), atom.Link.String(), atom.Main.String(),
		atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
		atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
		atom.Option.String(), atom.P.String(), atom.Param.String(),
		atom.Section.String(), atom.Source.String(), atom.Summary.String(),
		atom.Table.String(), atom.Tbody.String(), atom.Td.String(),
		atom.Tfoot.String(), atom.Th.String(), atom.Thead.String(),
		atom.Title.String(), atom.Tr.String(), atom.Track.String(),
		atom.Ul.String(),
	}
)
