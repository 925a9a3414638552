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

// conditionalKind records which directive opened a conditional frame.
type conditionalKind int

const (
	conditionalIfdef conditionalKind = iota
	conditionalIfndef
	conditionalElse
)

// unterminatedConditionalMessage is the diagnostic text for a conditional
// still open when its source frame runs out of bytes, naming the
// directive that opened it the same way the reference engine's
// unterminated_pp_condition switch does.
func unterminatedConditionalMessage(kind conditionalKind) string {
	switch kind {
	case conditionalIfdef:
		return "Unterminated #ifdef"
	case conditionalIfndef:
		return "Unterminated #ifndef"
	case conditionalElse:
		return "Unterminated #else"
	default:
		return "Unterminated conditional"
	}
}

// conditionalFrame is one entry of a source frame's #if*/#else/#endif
// nesting stack. Frames are singly linked (innermost first) and are
// recycled through a per-engine free list instead of being garbage
// collected individually, the way the original engine pooled them: a file
// with deeply nested conditionals that gets #included repeatedly should
// not force a fresh allocation on every visit.
type conditionalFrame struct {
	kind     conditionalKind
	line     int
	skipping bool // true while tokens under this frame are discarded
	chosen   bool // true once some branch in this chain has been taken
	next     *conditionalFrame
}

// conditionalPool is a free list of conditionalFrame values.
type conditionalPool struct {
	free *conditionalFrame
}

// get returns a conditionalFrame with the given fields set, reusing a
// freed frame if one is available. next is always nil; the caller links
// it onto the active stack.
func (p *conditionalPool) get(kind conditionalKind, line int, skipping, chosen bool) *conditionalFrame {
	f := p.free
	if f == nil {
		f = &conditionalFrame{}
	} else {
		p.free = f.next
	}
	f.kind = kind
	f.line = line
	f.skipping = skipping
	f.chosen = chosen
	f.next = nil
	return f
}

// putAll returns an entire conditional chain (as found, e.g., still
// attached to a source frame being popped) to the free list, prepending
// it in its existing order.
func (p *conditionalPool) putAll(head *conditionalFrame) {
	if head == nil {
		return
	}
	tail := head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = p.free
	p.free = head
}
