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
	"errors"

	"github.com/shaderpp/shaderpp/internal/cc/lexer"
)

// NextToken pulls the next token of the preprocessed stream. A non-nil
// error means the token carries a diagnostic message instead of real
// source text (errors.Is-compatible sentinel checking isn't meaningful
// here: every preprocessing failure is freeform text, the way #error's
// argument always was). Once the include stack is fully unwound,
// NextToken returns a lexer.EOF token with a nil error forever after.
//
// The loop below is a direct, case-for-case port of the reference engine's
// pull loop: check for a latched failure, check for an empty include
// stack, lex one token, then route it through an ordered set of
// special-cases (end of frame, incomplete comment, directives that apply
// even while skipping, the skipping discard itself, directives that only
// apply when not skipping) before finally returning it as an ordinary
// token.
func (e *Engine) NextToken() (lexer.Token, error) {
	for {
		if e.diag.isFailed() {
			return lexer.Token{}, errors.New(e.diag.take())
		}

		if e.top == nil {
			return lexer.Token{Kind: lexer.EOF}, nil
		}

		skipping := e.top.skipping()

		if e.top.atEOF() {
			if e.top.conditionals != nil {
				e.diag.fail(unterminatedConditionalMessage(e.top.conditionals.kind))
				// Pop just the innermost conditional and report it; if
				// more remain, the next pull (still at EOF) reports the
				// next one, same as the reference engine's "we'll report
				// the next error next time" comment.
				rest := e.top.conditionals.next
				e.top.conditionals.next = nil
				e.conditionals.putAll(e.top.conditionals)
				e.top.conditionals = rest
				continue // reports the error at the top of the loop
			}
			e.pop()
			continue // resume the parent frame, right after its #include
		}

		tok, rest, pos := lexer.Next(e.top.data, e.top.pos)

		// Horizontal whitespace and complete comments are never surfaced
		// as tokens of their own, matching the reference lexer: they are
		// skipped transparently while scanning for the next real token,
		// the same way nextSignificant/requireNewlineOK already treat
		// them for directive arguments.
		switch tok.Kind {
		case lexer.Whitespace, lexer.SingleLineComment, lexer.MultiLineComment:
			e.top.data, e.top.pos = rest, pos
			continue
		}

		if tok.Kind == lexer.IncompleteComment {
			e.top.data, e.top.pos = rest, pos
			e.diag.fail("Incomplete multiline comment")
			continue
		}

		switch tok.Kind {
		case lexer.DirectiveIfdef:
			e.top.data, e.top.pos = rest, pos
			e.handleIfdefFamily(conditionalIfdef)
			continue
		case lexer.DirectiveIfndef:
			e.top.data, e.top.pos = rest, pos
			e.handleIfdefFamily(conditionalIfndef)
			continue
		case lexer.DirectiveEndif:
			e.top.data, e.top.pos = rest, pos
			e.handleEndif()
			continue
		case lexer.DirectiveElse:
			e.top.data, e.top.pos = rest, pos
			e.handleElse()
			continue
		}

		// Conditionals are handled above the skipping test deliberately:
		// #else/#endif must still be seen while their own branch is
		// being skipped, or the nesting could never close.
		if skipping {
			e.top.data, e.top.pos = rest, pos
			continue
		}

		switch tok.Kind {
		case lexer.DirectiveInclude:
			e.top.data, e.top.pos = rest, pos
			e.handleInclude()
			continue
		case lexer.DirectiveLine:
			e.top.data, e.top.pos = rest, pos
			e.handleLine()
			continue
		case lexer.DirectiveError:
			e.top.data, e.top.pos = rest, pos
			e.handleError()
			continue
		case lexer.DirectiveUndef:
			e.top.data, e.top.pos = rest, pos
			e.handleUndef()
			continue
		}

		// DirectiveDefine, DirectiveIf, and DirectiveElif are recognized by
		// the lexer but intentionally left undispatched here: this engine
		// does not evaluate constant expressions or perform macro-body
		// substitution, so those directive keywords simply fall through
		// and are returned as ordinary tokens, same as any identifier.
		e.top.data, e.top.pos = rest, pos
		return tok, nil
	}
}
