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

// RewriteHeadBody partitions root into a Head (any Include directives
// gathered at the front) and a Body (everything else), wrapping both
// under a fresh Document. If root has no Head child, it is returned
// unchanged.
//
// This runs automatically at the end of
// [Parser.Finish]; it's exposed so callers that build a tree by other
// means (tests, [AddInclude] on an already-finished tree) can apply the
// same rewrite.
func RewriteHeadBody(root *Node) *Node {
	if root.Kind() != DocumentKind {
		panic("commonmark: RewriteHeadBody called on a non-Document node")
	}
	if root.firstChild == nil || root.firstChild.kind != HeadKind {
		return root
	}

	head := root.firstChild
	unlink(head)
	root.kind = BodyKind

	newRoot := newNode(DocumentKind, root.startLine, root.startColumn)
	newRoot.endLine, newRoot.endColumn = root.endLine, root.endColumn
	newRoot.open = root.open
	newRoot.lastLineBlank = root.lastLineBlank

	appendChild(newRoot, root)
	prependChild(newRoot, head)
	return newRoot
}
