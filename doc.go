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

// Package commonmark provides the block-structure half of a CommonMark-dialect
// Markdown parser.
//
// Given a byte stream, [Parser] builds a tree of block nodes line by line:
// it decides which open containers a line continues, which new containers
// it opens, and which leaf block absorbs the remaining text. Inline content
// (emphasis, links, code spans) is left as unparsed text for a
// downstream [InlineParser] to expand at the end of input.
//
// The parser also recognizes [link reference definitions], stripping them
// out of paragraph text and recording them in a [ReferenceMap], and a small
// extension on top of CommonMark: a head/body partition driven by `<<file>>`
// include directives (see [AddInclude]).
//
// [link reference definitions]: https://spec.commonmark.org/0.30/#link-reference-definitions
package commonmark
