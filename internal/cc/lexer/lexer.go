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

package lexer

import (
	"bytes"
	"regexp"
)

var (
	reIdentifier     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
	reIntegerLiteral = regexp.MustCompile(`(?i)^(?:0x[0-9a-f]+|0b[01]+|0[0-7]*|[1-9][0-9]*)`)
)

// directiveKeywords maps a directive keyword to its Kind. Longer keywords
// that share a prefix with a shorter one ("ifdef" and "ifndef" vs "if")
// must be listed before their prefix to match correctly.
var directiveKeywords = []struct {
	keyword string
	kind    Kind
}{
	{"ifdef", DirectiveIfdef},
	{"ifndef", DirectiveIfndef},
	{"include", DirectiveInclude},
	{"line", DirectiveLine},
	{"define", DirectiveDefine},
	{"undef", DirectiveUndef},
	{"elif", DirectiveElif},
	{"else", DirectiveElse},
	{"endif", DirectiveEndif},
	{"error", DirectiveError},
	{"if", DirectiveIf},
}

func isHorizontalSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func skipHorizontalSpace(data []byte) int {
	i := 0
	for i < len(data) && isHorizontalSpace(data[i]) {
		i++
	}
	return i
}

// Next pulls one token from the front of data, which must be positioned at
// pos. It returns the token, the unconsumed remainder of data, and the
// position just past the token. Next never blocks and never returns an
// empty-length token except for Kind == EOF.
//
// This is the lex(frame) contract of the preprocessing engine (the caller
// owns the frame; Next is a pure function of its cursor state).
func Next(data []byte, pos Position) (Token, []byte, Position) {
	if len(data) == 0 {
		return Token{Kind: EOF, Start: pos}, data, pos
	}

	length := 1
	kind := Kind(data[0])

	switch data[0] {
	case '\n':
		kind = Newline

	case ' ', '\t', '\v', '\f', '\r':
		kind = Whitespace
		length = skipHorizontalSpace(data)

	case '\\':
		if n := skipHorizontalSpace(data[1:]); 1+n < len(data) && data[1+n] == '\n' {
			kind = LineContinuation
			length = 1 + n + 1
		}

	case '"':
		if end := scanStringLiteral(data); end > 0 {
			kind = StringLiteral
			length = end
		}

	case '/':
		switch {
		case bytes.HasPrefix(data, []byte("//")):
			kind = SingleLineComment
			if end := bytes.IndexByte(data, '\n'); end >= 0 {
				length = end
			} else {
				length = len(data)
			}
		case bytes.HasPrefix(data, []byte("/*")):
			if end := bytes.Index(data, []byte("*/")); end >= 0 {
				kind = MultiLineComment
				length = end + 2
			} else {
				kind = IncompleteComment
				length = len(data)
			}
		}

	case '#':
		if directiveKind, directiveLen, ok := matchDirective(data); ok {
			kind = directiveKind
			length = directiveLen
		}

	default:
		if match := reIdentifier.Find(data); match != nil {
			kind = Identifier
			length = len(match)
		} else if match := reIntegerLiteral.Find(data); match != nil {
			kind = IntegerLiteral
			length = len(match)
		}
	}

	token := Token{Kind: kind, Start: pos, Text: string(data[:length])}
	return token, data[length:], pos.Advance(token.Text)
}

// matchDirective recognizes '#' optionally followed by horizontal
// whitespace and then one of the known directive keywords.
func matchDirective(data []byte) (Kind, int, bool) {
	begin := 1 + skipHorizontalSpace(data[1:])
	for _, d := range directiveKeywords {
		if bytes.HasPrefix(data[begin:], []byte(d.keyword)) {
			return d.kind, begin + len(d.keyword), true
		}
	}
	return 0, 0, false
}

// scanStringLiteral returns the length of the double-quoted string literal
// starting at data[0], honoring backslash escapes and never crossing a
// newline. Returns 0 if data does not hold a complete, well-formed literal
// (the caller then falls back to treating the quote as a single bad byte,
// so the tokenizer always makes forward progress).
func scanStringLiteral(data []byte) int {
	for i := 1; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++ // skip the escaped byte, whatever it is
		case '\n':
			return 0
		case '"':
			return i + 1
		}
	}
	return 0
}
