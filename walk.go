// Copyright 2024 Ross Light
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

// Walk traverses the block tree rooted at n in pre-order, calling visit for
// each node. If visit returns false, n's children are skipped but its
// siblings are still visited.
//
// Walk is used internally by [rewriteInlines] and [consolidateText]; it is
// exported because
// callers commonly need the same traversal (e.g. to find the first
// non-Include content node, see [FirstContentNode]).
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for c := n.firstChild; c != nil; {
		next := c.next // visit may detach c from its siblings
		Walk(c, visit)
		c = next
	}
}

// FirstContentNode returns the first descendant of root that is neither a
// Document nor an Include node, or nil if none exists.
//
// Include nodes only occur under a Head node, and a Head node is not
// skipped, so in a tree that has a Head (after [AddInclude] or
// [RewriteHeadBody]) the Head itself is returned.
func FirstContentNode(root *Node) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Kind() != DocumentKind && n.Kind() != IncludeKind {
			found = n
			return false
		}
		return true
	})
	return found
}
