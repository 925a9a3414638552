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

import "github.com/shaderpp/shaderpp/internal/cc/lexer"

// frame is one entry of the include stack: the bytes remaining to be
// lexed in one source file, that file's own #if*/#else nesting, and a
// link to whoever #included it. The stack is a plain linked list (not a
// slice) because frames are pushed and popped strictly in LIFO order and
// a popped frame's conditional chain is recycled rather than discarded.
type frame struct {
	filename *string // interned; compare by pointer, not value
	data     []byte  // unconsumed bytes of this file
	pos      lexer.Position
	included bool // false only for the engine's top-level frame
	closer   func()
	conditionals *conditionalFrame
	parent       *frame
}

// push opens a new frame on top of the stack, to be lexed next.
func (e *Engine) push(filename string, data []byte, closer func()) {
	e.top = &frame{
		filename: e.filenames.Intern(filename),
		data:     data,
		pos:      lexer.StartPosition,
		included: true,
		closer:   closer,
		parent:   e.top,
	}
}

// pop discards the current frame, invoking its closer (if any) and
// returning its conditional chain to the free list, and resumes the
// parent. It reports whether there was a frame to pop at all.
func (e *Engine) pop() bool {
	if e.top == nil {
		return false
	}
	f := e.top
	e.conditionals.putAll(f.conditionals)
	if f.closer != nil {
		f.closer()
	}
	e.top = f.parent
	return true
}

// atEOF reports whether the current frame has no more bytes to lex.
func (f *frame) atEOF() bool {
	return len(f.data) == 0
}

// skipping reports whether tokens in the current frame should be
// discarded because they're inside a false #if*/#else branch.
func (f *frame) skipping() bool {
	return f.conditionals != nil && f.conditionals.skipping
}

// pushConditional opens a new conditional nesting level on f.
func (e *Engine) pushConditional(kind conditionalKind, line int, skipping, chosen bool) {
	cf := e.conditionals.get(kind, line, skipping, chosen)
	cf.next = e.top.conditionals
	e.top.conditionals = cf
}

// popConditional closes the innermost conditional nesting level on the
// current frame, returning it to the free list. It reports whether there
// was one to pop.
func (e *Engine) popConditional() bool {
	f := e.top
	if f.conditionals == nil {
		return false
	}
	cf := f.conditionals
	f.conditionals = cf.next
	cf.next = nil
	e.conditionals.putAll(cf)
	return true
}
