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

// lineBuffer joins byte chunks handed to [Parser.Feed] into logical lines,
// holding onto a trailing partial line across calls so that feeding a
// source one byte at a time produces the same tree as feeding it whole.
type lineBuffer struct {
	pending []byte
}

// feed splits chunk on '\n', invoking emit once per completed line
// (including its trailing '\n'). Any bytes after the last newline are held
// until the next feed or flush call.
func (lb *lineBuffer) feed(chunk []byte, emit func(line []byte)) {
	for len(chunk) > 0 {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			lb.pending = append(lb.pending, chunk...)
			return
		}
		line := chunk[:i+1]
		chunk = chunk[i+1:]
		if len(lb.pending) > 0 {
			full := append(lb.pending, line...)
			lb.pending = nil
			emit(full)
		} else {
			emit(line)
		}
	}
}

// flush emits any held partial line (without a trailing '\n') as a final
// line, as [Parser.Finish] does with a non-empty parser->linebuf.
func (lb *lineBuffer) flush(emit func(line []byte)) {
	if len(lb.pending) > 0 {
		emit(lb.pending)
		lb.pending = nil
	}
}
