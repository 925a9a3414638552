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

// Package lexer implements the tokenizer consumed by the preprocessing
// engine. It classifies the next token starting at a frame's cursor and
// reports how far the cursor advanced, but it owns no state of its own: the
// caller (internal/cc/preprocessor) supplies the bytes and the cursor.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position tracks a 1-based line/column location within a source buffer.
type Position struct {
	Line, Column int
}

// StartPosition is the position of the first byte of any source buffer.
var StartPosition = Position{Line: 1, Column: 1}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Advance returns the position reached after consuming consumed, which must
// be the bytes starting at p. Newlines in consumed increment the line and
// reset the column; everything else advances the column by its rune count.
func (p Position) Advance(consumed string) Position {
	newlines := strings.Count(consumed, "\n")
	if newlines == 0 {
		p.Column += utf8.RuneCountInString(consumed)
		return p
	}
	tailStart := 1 + strings.LastIndexByte(consumed, '\n')
	p.Line += newlines
	p.Column = 1 + utf8.RuneCountInString(consumed[tailStart:])
	return p
}
