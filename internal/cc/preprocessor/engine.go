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

// Package preprocessor is the streaming engine behind the public pp
// package: a pull-driven tokenizer that walks a stack of source frames,
// tracks #if*/#else/#endif nesting, maintains a table of defined macro
// names, and resolves #include directives through a caller-supplied
// opener. Callers pull tokens one at a time with NextToken; nothing here
// buffers a whole translation unit in memory beyond the current include
// stack.
package preprocessor

import (
	"fmt"

	"github.com/shaderpp/shaderpp/internal/cc/budget"
	"github.com/shaderpp/shaderpp/internal/cc/intern"
	"github.com/shaderpp/shaderpp/internal/cc/lexer"
)

// Define is one caller-supplied macro seed, equivalent to a "-D
// NAME=VALUE" compiler flag. Seeds are a slice rather than a map so that
// a caller repeating the same name twice (by mistake, or by concatenating
// two -D lists) is detectable as the duplicate-definition error it would
// be for a real compiler invocation, instead of silently collapsing to
// whichever entry a map iteration visited last.
type Define struct {
	Name  string
	Value string
}

// IncludeKind distinguishes the two #include spellings.
type IncludeKind int

const (
	// IncludeLocal is #include "name" — the quoted form.
	IncludeLocal IncludeKind = iota
	// IncludeSystem is #include <name> — the angle-bracket form.
	IncludeSystem
)

// OpenInclude resolves an #include directive. kind tells the opener which
// spelling was used; requestedPath is exactly the text between the
// delimiters; parentFilename is the (already-interned) name of the file
// containing the directive, for relative-path resolution. A false ok means
// the file could not be found or opened; the engine then latches the
// diagnostic "Include callback failed". err is not inspected by the
// engine and does not appear in that diagnostic. closer, if non-nil, is invoked
// exactly once, when this frame is popped off the include stack.
type OpenInclude func(kind IncludeKind, requestedPath, parentFilename string) (resolvedName string, data []byte, closer func(), ok bool, err error)

// Options configures a new Engine.
type Options struct {
	// Open resolves #include directives. If nil, #include always fails
	// with an "Include callback failed" diagnostic.
	Open OpenInclude
	// Budget, if non-nil, is consulted (and charged) for every byte of
	// include-file content pulled into the engine. A nil Budget never
	// reports out-of-memory, matching ordinary Go allocation.
	Budget *budget.Budget
	// Defines seeds the macro table before the first token is pulled,
	// equivalent to -D flags on a real C compiler invocation. Listing the
	// same name twice is an error (see New).
	Defines []Define
}

// Engine is one preprocessing run over one top-level source file plus
// whatever it transitively #includes. An Engine is not safe for concurrent
// use by multiple goroutines; run one per source file and fan out across
// files instead (see the cmd/shaderppc batch runner).
type Engine struct {
	top          *frame
	conditionals conditionalPool
	macros       macroTable
	filenames    intern.Pool
	budget       *budget.Budget
	openInclude  OpenInclude
	diag         diagnosticState
}

// New creates an Engine positioned at the start of the given top-level
// source. filename is used for diagnostics and #line reporting; it need
// not correspond to a real path.
//
// New fails if opts.Defines repeats a name: a real compiler invocation
// with the same -D twice is almost always a mistake, and silently keeping
// the last one (as a map would) hides it instead of reporting it.
func New(opts Options, filename string, data []byte) (*Engine, error) {
	e := &Engine{
		budget:      opts.Budget,
		openInclude: opts.Open,
	}
	for _, d := range opts.Defines {
		if _, already := e.macros.find(d.Name); already {
			return nil, fmt.Errorf("'%s' already defined", d.Name)
		}
		e.macros.add(d.Name, d.Value)
	}
	name := e.filenames.Intern(filename)
	e.top = &frame{
		filename: name,
		data:     data,
		pos:      lexer.StartPosition,
		included: false,
	}
	return e, nil
}

// OutOfMemory reports whether the engine's budget (if any) has ever been
// exceeded. Once true it stays true for the life of the Engine.
func (e *Engine) OutOfMemory() bool {
	return e.budget.OutOfMemory()
}

// Failed reports whether the engine has latched a diagnostic.
func (e *Engine) Failed() bool {
	return e.diag.isFailed()
}

// SourcePos returns the filename and line of the token the engine would
// report next (i.e. the position the pump is currently sitting at), for
// error messages that want to point at "where we are" rather than "where
// the last token came from".
func (e *Engine) SourcePos() (filename string, line int) {
	if e.top == nil {
		return "", 0
	}
	return *e.top.filename, e.top.pos.Line
}
