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

import (
	"bytes"
	"strconv"

	"github.com/shaderpp/shaderpp/internal/cc/lexer"
)

// nextSignificant lexes tokens off the current frame, silently consuming
// horizontal whitespace, and returns the first token that isn't
// whitespace. Directive handlers use this to find their argument without
// caring how much space separates it from the directive keyword.
func (e *Engine) nextSignificant() lexer.Token {
	f := e.top
	for {
		tok, rest, pos := lexer.Next(f.data, f.pos)
		f.data, f.pos = rest, pos
		switch tok.Kind {
		case lexer.Whitespace, lexer.SingleLineComment, lexer.MultiLineComment:
			continue
		}
		return tok
	}
}

// requireNewline asserts that nothing but whitespace and comments remains
// before the end of the current line, without consuming any of it: it
// saves the frame's cursor, lexes ahead to look, and restores the saved
// cursor unconditionally, so the pump's own Newline handling runs exactly
// as if requireNewline had never peeked. A directive with trailing junk
// still gets a diagnostic, but parsing is not aborted.
func (e *Engine) requireNewline(directive string) {
	if !e.requireNewlineOK() {
		e.diag.failf("%s: unexpected tokens after directive", directive)
	}
}

// requireNewlineOK is requireNewline without an opinion on the diagnostic
// message, for handlers (like #line) that need a different message
// depending on which of several mandatory arguments was missing.
func (e *Engine) requireNewlineOK() bool {
	data, pos := e.top.data, e.top.pos
	for {
		tok, rest, next := lexer.Next(data, pos)
		switch tok.Kind {
		case lexer.Whitespace, lexer.SingleLineComment, lexer.MultiLineComment:
			data, pos = rest, next
			continue
		case lexer.Newline, lexer.EOF:
			return true
		default:
			return false
		}
	}
}

// handleInclude implements #include "local" and #include <system>. The
// system form is scanned byte-by-byte straight off the frame's remaining
// data rather than through the lexer, because the lexer has no notion of
// an angle-bracket-delimited path and would otherwise mistokenize a '/'
// inside it.
func (e *Engine) handleInclude() {
	tok := e.nextSignificant()

	var kind IncludeKind
	var path string

	switch {
	case tok.Kind == lexer.StringLiteral:
		kind = IncludeLocal
		path = unquote(tok.Text)

	case tok.Kind == lexer.Kind('<'):
		kind = IncludeSystem
		end := bytes.IndexAny(e.top.data, ">\r\n")
		if end < 0 || e.top.data[end] != '>' {
			e.diag.fail("Invalid #include directive")
			return
		}
		path = string(e.top.data[:end])
		consumed := e.top.data[:end+1]
		e.top.data = e.top.data[end+1:]
		e.top.pos = e.top.pos.Advance(string(consumed))

	default:
		e.diag.fail("Invalid #include directive")
		return
	}

	if !e.requireNewlineOK() {
		e.diag.fail("Invalid #include directive")
		return
	}

	if e.openInclude == nil {
		e.diag.fail("Include callback failed")
		return
	}

	parent := ""
	if e.top.filename != nil {
		parent = *e.top.filename
	}
	resolved, data, closer, ok, _ := e.openInclude(kind, path, parent)
	if !ok {
		e.diag.fail("Include callback failed")
		return
	}

	// Budget exhaustion is reported through OutOfMemory, not the
	// diagnostic latch, matching the original's assert(out_of_memory)
	// on a failed push_source — it closes the just-opened buffer and
	// simply does not push a new frame.
	if e.budget != nil && !e.budget.Reserve(len(data)) {
		if closer != nil {
			closer()
		}
		return
	}

	e.push(resolved, data, closer)
}

// handleLine implements #line NUMBER "FILENAME". Both arguments are
// mandatory; either missing one fails with "Invalid #line directive".
func (e *Engine) handleLine() {
	numTok := e.nextSignificant()
	if numTok.Kind != lexer.IntegerLiteral {
		e.diag.fail("Invalid #line directive")
		return
	}
	n, err := strconv.ParseInt(numTok.Text, 0, 64)
	if err != nil {
		e.diag.fail("Invalid #line directive")
		return
	}

	filenameTok := e.nextSignificant()
	if filenameTok.Kind != lexer.StringLiteral {
		e.diag.fail("Invalid #line directive")
		return
	}
	if !e.requireNewlineOK() {
		e.diag.fail("Invalid #line directive")
		return
	}

	e.top.filename = e.filenames.Intern(unquote(filenameTok.Text))
	e.top.pos.Line = int(n)
}

// handleUndef implements #undef NAME.
func (e *Engine) handleUndef() {
	tok := e.nextSignificant()
	if tok.Kind != lexer.Identifier {
		e.diag.fail("Macro names must be identifiers")
		return
	}
	if !e.requireNewlineOK() {
		e.diag.fail("Invalid #undef directive")
		return
	}
	e.macros.remove(tok.Text)
}

// handleIfdefFamily implements both #ifdef and #ifndef, which differ only
// in whether "defined" or "not defined" selects the branch.
func (e *Engine) handleIfdefFamily(kind conditionalKind) {
	line := e.top.pos.Line
	directiveName := "#ifdef"
	if kind == conditionalIfndef {
		directiveName = "#ifndef"
	}

	tok := e.nextSignificant()
	if tok.Kind != lexer.Identifier {
		e.diag.fail("Macro names must be identifiers")
		return
	}
	if !e.requireNewlineOK() {
		e.diag.failf("Invalid %s directive", directiveName)
		return
	}

	_, defined := e.macros.find(tok.Text)
	want := kind == conditionalIfdef
	matched := defined == want

	parentSkip := e.parentSkipping()
	chosen := matched && !parentSkip
	skip := parentSkip || !matched

	e.pushConditional(kind, line, skip, chosen)
}

// handleElse implements #else. Deliberately consults only this
// conditional's own chosen flag, not any enclosing conditional's skip
// state directly: chosen already baked in the enclosing skip at the time
// the #if/#ifdef/#ifndef was opened (see handleIfdefFamily), so re-deriving
// it here would be redundant in the ordinary case. It also means an
// #else nested inside an already-skipped outer block is, like the
// reference engine, judged solely by its own chosen flag — preserved
// faithfully rather than "fixed" into a stricter recomputation.
func (e *Engine) handleElse() {
	f := e.top
	if f.conditionals == nil {
		e.diag.fail("#else without #if")
		return
	}
	if f.conditionals.kind == conditionalElse {
		e.diag.fail("#else after #else")
		return
	}

	f.conditionals.skipping = f.conditionals.chosen
	f.conditionals.chosen = true
	f.conditionals.kind = conditionalElse

	e.requireNewline("#else")
}

// handleEndif implements #endif.
func (e *Engine) handleEndif() {
	if !e.popConditional() {
		e.diag.fail("Unmatched #endif")
		return
	}
	e.requireNewline("#endif")
}

// handleError implements #error. The rest of the line is taken verbatim,
// byte for byte, as the diagnostic text: no escape processing, matching a
// compiler's "#error" which just echoes its argument.
func (e *Engine) handleError() {
	data := e.top.data
	// Skip a single separating space, if present, the way "#error foo"
	// reads more naturally than "#error" immediately glued to "foo".
	if len(data) > 0 && data[0] == ' ' {
		data = data[1:]
	}
	end := bytes.IndexByte(data, '\n')
	if end < 0 {
		end = len(data)
	}
	text := string(data[:end])
	consumedLen := len(e.top.data) - len(data[end:])
	consumed := e.top.data[:consumedLen]
	e.top.pos = e.top.pos.Advance(string(consumed))
	e.top.data = data[end:]
	e.diag.fail("#error " + text)
}

// parentSkipping reports the skipping state of the conditional directly
// enclosing a not-yet-pushed #ifdef/#ifndef (false if there is none), i.e.
// whatever e.top.conditionals currently points to, since that is the
// parent the new conditional frame will link to once pushed. #ifdef and
// #ifndef consult this to decide whether the branch they're about to open
// is itself nested inside an already-skipped one.
func (e *Engine) parentSkipping() bool {
	if e.top.conditionals == nil {
		return false
	}
	return e.top.conditionals.skipping
}

// unquote strips the surrounding double quotes from a StringLiteral
// token's text. It assumes the lexer only ever produces well-formed
// "...'-delimited text here (scanStringLiteral guarantees the closing
// quote), so no bounds checking is needed beyond the length itself.
func unquote(text string) string {
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}
