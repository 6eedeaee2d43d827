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

// matchState is the three-state automaton assigned to each
// container visited while descending the spine for a single line.
type matchState int8

const (
	stateMatching matchState = iota
	stateMismatched
	stateFenceClosedHere
)

// descendSpine walks the currently open spine top-down, deciding how far
// the line continues each open container.
//
// It returns the last container that matched (the spine-walk stops at the
// first mismatch, falling back to that container's parent), whether the
// line looked blank to the last container examined, and whether a fenced
// code block's closing fence ended line processing entirely.
func (p *Parser) descendSpine(c *lineCursor) (lastMatched *Node, blank, fenceClosed, allMatched bool) {
	container := p.root
	for container.lastChild != nil && container.lastChild.open {
		container = container.lastChild

		var state matchState
		state, blank = matchContainer(container, c)
		switch state {
		case stateMismatched:
			container = container.parent
			return container, blank, false, false
		case stateFenceClosedHere:
			p.current = finalizeNode(p, container)
			return container, blank, true, false
		}
	}
	return container, blank, false, true
}

// matchContainer applies the per-kind continuation rule from the
// table, advancing c on success.
func matchContainer(container *Node, c *lineCursor) (matchState, bool) {
	firstNonspace := c.firstNonspace()
	indent := firstNonspace - c.i
	blank := c.line[firstNonspace] == '\n'

	switch container.kind {
	case BlockQuoteKind:
		if indent <= 3 && firstNonspace < len(c.line) && c.line[firstNonspace] == blockQuotePrefix {
			c.advanceTo(firstNonspace + 1)
			if c.i < len(c.line) && c.line[c.i] == ' ' {
				c.advance(1)
			}
			return stateMatching, blank
		}
		return stateMismatched, blank

	case ItemKind:
		switch {
		case indent >= container.list.markerOffset+container.list.padding:
			c.advance(container.list.markerOffset + container.list.padding)
			return stateMatching, blank
		case blank:
			c.advanceTo(firstNonspace)
			return stateMatching, blank
		default:
			return stateMismatched, blank
		}

	case CodeBlockKind:
		if !container.code.fenced {
			switch {
			case indent >= codeBlockIndentLimit:
				c.advance(codeBlockIndentLimit)
				return stateMatching, blank
			case blank:
				c.advanceTo(firstNonspace)
				return stateMatching, blank
			default:
				return stateMismatched, blank
			}
		}
		// Fenced: check for a closing fence.
		if indent <= 3 && firstNonspace < len(c.line) && c.line[firstNonspace] == container.code.fenceChar {
			f := parseCodeFence(c.line[firstNonspace:])
			if f.n >= container.code.fenceLength && f.char == container.code.fenceChar && !f.info.IsValid() {
				c.advanceTo(len(c.line))
				return stateFenceClosedHere, blank
			}
		}
		i := container.code.fenceOffset
		for i > 0 && c.i < len(c.line) && c.line[c.i] == ' ' {
			c.advance(1)
			i--
		}
		return stateMatching, blank

	case HeaderKind:
		// A header never continues onto a second line.
		return stateMismatched, blank

	case HTMLKind:
		// An Html block ends only on the first blank line, regardless of
		// which tag opened it.
		if blank {
			return stateMismatched, blank
		}
		return stateMatching, blank

	case ParagraphKind:
		if blank {
			return stateMismatched, blank
		}
		return stateMatching, blank

	default: // Document, List, and other pure containers always continue.
		return stateMatching, blank
	}
}

// breakOutOfLists implements the "second blank line in a list" rule: when
// the matched line is blank and the last matched container was already
// blank, the outermost List on the spine and everything nested inside it
// is closed, and new openers resume at that List's parent.
func (p *Parser) breakOutOfLists(container *Node) *Node {
	var list *Node
	for b := p.root; b != nil; b = b.lastChild {
		if b.kind == ListKind {
			list = b
			break
		}
	}
	if list == nil {
		return container
	}
	for container != nil && container != list {
		container = finalizeNode(p, container)
	}
	finalizeNode(p, list)
	return list.parent
}
