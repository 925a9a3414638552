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

// Package pp is the public front end of the shaderpp preprocessor: a
// thin, stable surface (Start/NextToken/SourcePos/OutOfMemory/End, plus the
// pretty-print convenience wrapper in pretty.go) over the pull-driven
// engine in internal/cc/preprocessor. Callers that want raw streaming
// control use this package directly; callers that just want preprocessed
// text use Preprocess instead.
package pp

import (
	"github.com/shaderpp/shaderpp/internal/cc/budget"
	"github.com/shaderpp/shaderpp/internal/cc/lexer"
	"github.com/shaderpp/shaderpp/internal/cc/preprocessor"
)

// Define seeds one macro before the first token is pulled, equivalent to a
// "-D NAME=VALUE" compiler flag. Listing the same name twice is an error.
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

// IncludeCloser releases whatever IncludeOpener allocated for one included
// file. It is invoked exactly once, when that file's frame is popped.
type IncludeCloser func()

// IncludeOpener resolves one #include directive. kind tells the opener
// which spelling was used; requestedPath is exactly the text between the
// delimiters; parentFilename is the name of the file containing the
// directive. A false ok means the file could not be opened, and the
// directive is reported as "Include callback failed"; err is not
// inspected and does not appear in that diagnostic.
type IncludeOpener func(kind IncludeKind, requestedPath, parentFilename string) (resolvedName string, data []byte, closer IncludeCloser, ok bool, err error)

// Options configures a Preprocessor.
type Options struct {
	// Open resolves #include directives. A nil Open makes every #include
	// fail.
	Open IncludeOpener
	// BudgetBytes, if positive, caps the total bytes of include content
	// this run will pull in before latching OutOfMemory permanently. Zero
	// means unlimited.
	BudgetBytes int
	// Defines seeds the macro table. Repeating a name is an error from
	// Start.
	Defines []Define
}

// TokenKind mirrors the handful of token shapes a caller of the streaming
// API needs to branch on; it does not expose the full internal lexer
// vocabulary (ordinary source text is just Kind Other with its own byte
// value preserved in Text).
type TokenKind int

const (
	// Other is any ordinary token: an identifier, literal, punctuation
	// byte, or a directive keyword this engine doesn't evaluate
	// (#define/#if/#elif) passed through unchanged.
	Other TokenKind = iota
	// Newline is a single '\n'.
	Newline
	// EOI is end-of-input: every field of Token is zero except Kind.
	EOI
)

// Token is one unit of the preprocessed stream.
type Token struct {
	Kind TokenKind
	Text string
}

// Preprocessor is one streaming preprocessing run. Not safe for concurrent
// use by multiple goroutines; start one per source file.
type Preprocessor struct {
	eng *preprocessor.Engine
}

// Start begins preprocessing data as filename. filename need not be a real
// path; it is only used for diagnostics, source positions, and as the
// default parent for relative #include resolution.
//
// Start fails if opts.Defines repeats a name (see preprocessor.New).
func Start(filename string, data []byte, opts Options) (*Preprocessor, error) {
	var open preprocessor.OpenInclude
	if opts.Open != nil {
		open = func(kind preprocessor.IncludeKind, path, parent string) (string, []byte, func(), bool, error) {
			resolved, content, closer, ok, err := opts.Open(IncludeKind(kind), path, parent)
			var c func()
			if closer != nil {
				c = func() { closer() }
			}
			return resolved, content, c, ok, err
		}
	}

	defines := make([]preprocessor.Define, len(opts.Defines))
	for i, d := range opts.Defines {
		defines[i] = preprocessor.Define{Name: d.Name, Value: d.Value}
	}

	eng, err := preprocessor.New(preprocessor.Options{
		Open:    open,
		Budget:  budget.New(opts.BudgetBytes),
		Defines: defines,
	}, filename, data)
	if err != nil {
		return nil, err
	}
	return &Preprocessor{eng: eng}, nil
}

// NextToken pulls the next token of the preprocessed stream. A non-nil
// error carries a diagnostic message rather than source text; the
// preprocessor recovers and keeps producing tokens on the calls after it,
// the same way a single latched diagnostic is reported once and cleared.
// Once the stream is exhausted, NextToken returns Token{Kind: EOI} with a
// nil error forever.
func (p *Preprocessor) NextToken() (Token, error) {
	tok, err := p.eng.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case lexer.EOF:
		return Token{Kind: EOI}, nil
	case lexer.Newline:
		return Token{Kind: Newline, Text: tok.Text}, nil
	default:
		return Token{Kind: Other, Text: tok.Text}, nil
	}
}

// SourcePos returns the filename and line the preprocessor is currently
// positioned at, for callers building their own diagnostics.
func (p *Preprocessor) SourcePos() (filename string, line int) {
	return p.eng.SourcePos()
}

// OutOfMemory reports whether this run's budget (if any) has ever been
// exceeded. Once true, it stays true.
func (p *Preprocessor) OutOfMemory() bool {
	return p.eng.OutOfMemory()
}

// End releases the Preprocessor. Present for symmetry with the streaming
// API's start/end pairing; Go's garbage collector reclaims everything
// else, but End(p) still reads naturally at a call site ported from code
// that used to free an opaque handle.
func (p *Preprocessor) End() {}
