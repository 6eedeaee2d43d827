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

import "fmt"

// checkInvariants validates the structural invariants every finished tree
// must satisfy: every node is closed, no child starts on a line before its
// parent's start line, and every parent/child kind pairing is one
// canContain allows. End lines are not compared. It is the [DebugNodes]
// option's validation pass.
func checkInvariants(root *Node) error {
	var err error
	Walk(root, func(n *Node) bool {
		if err != nil {
			return false
		}
		if n.open {
			err = fmt.Errorf("node %v (line %d) still open after Finish", n.kind, n.startLine)
			return false
		}
		for c := n.firstChild; c != nil; c = c.next {
			if !canContain(n.kind, c.kind) {
				err = fmt.Errorf("node %v cannot contain child %v", n.kind, c.kind)
				return false
			}
			if c.startLine < n.startLine {
				err = fmt.Errorf("child %v starts before parent %v", c.kind, n.kind)
				return false
			}
		}
		return true
	})
	return err
}
