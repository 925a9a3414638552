// Copyright 2026 The shaderpp Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package preprocessor

import "strings"

// chunkSize mirrors the original pretty-printer's fixed 64KiB BufferList
// node size. Go's strings.Builder already grows geometrically and needs no
// chunking of its own, but pretty-printed shader output can run to many
// megabytes during a batch run, and capping how far a single Grow() can
// reallocate keeps one pathological source file from forcing a single
// multi-hundred-megabyte contiguous allocation.
const chunkSize = 64 * 1024

// Buffer accumulates pretty-printed output incrementally, the same shape
// as the original's Buffer/BufferList chain of fixed-size chunks, rewritten
// around strings.Builder chunks instead of manual buffer math.
type Buffer struct {
	chunks []strings.Builder
	total  int
}

// WriteString appends s to the buffer, starting a new chunk whenever the
// current one would exceed chunkSize.
func (b *Buffer) WriteString(s string) {
	b.total += len(s)
	if len(b.chunks) == 0 {
		b.chunks = append(b.chunks, strings.Builder{})
	}
	for len(s) > 0 {
		cur := &b.chunks[len(b.chunks)-1]
		avail := chunkSize - cur.Len()
		if avail <= 0 {
			b.chunks = append(b.chunks, strings.Builder{})
			cur = &b.chunks[len(b.chunks)-1]
			avail = chunkSize
		}
		n := len(s)
		if n > avail {
			n = avail
		}
		cur.WriteString(s[:n])
		s = s[n:]
	}
}

// Indent appends n copies of a 4-space indent unit when newline is true, or
// a single space otherwise — the original engine's indent_buffer: a bare
// single space keeps same-line continuations from gluing two tokens
// together, while a real line break gets the full per-level indent.
func (b *Buffer) Indent(n int, newline bool) {
	if !newline {
		b.WriteString(" ")
		return
	}
	for i := 0; i < n; i++ {
		b.WriteString("    ")
	}
}

// Len reports the total number of bytes written so far.
func (b *Buffer) Len() int {
	return b.total
}

// String flattens every chunk into one contiguous string, mirroring
// flatten_buffer.
func (b *Buffer) String() string {
	var out strings.Builder
	out.Grow(b.total)
	for i := range b.chunks {
		out.WriteString(b.chunks[i].String())
	}
	return out.String()
}
