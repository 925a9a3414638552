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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaderpp/shaderpp/internal/cc/lexer"
)

// These tests mirror the literal token-stream scenarios, one test per
// scenario, asserting the exact (text, kind) sequence rather than just the
// filtered text collectText produces elsewhere in this package.

func TestScenario1PurePassthrough(t *testing.T) {
	e := mustNew(t, Options{}, "main.glsl", []byte("a b\n"))

	tok, err := e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.Identifier, tok.Kind)
	assert.Equal(t, "a", tok.Text)

	tok, err = e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.Identifier, tok.Kind)
	assert.Equal(t, "b", tok.Text)

	tok, err = e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.Newline, tok.Kind)

	tok, err = e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.EOF, tok.Kind)
}

func TestScenario2IfdefTaken(t *testing.T) {
	e := mustNew(t, Options{Defines: []Define{{Name: "FOO", Value: "1"}}}, "main.glsl",
		[]byte("#ifdef FOO\nx\n#endif\ny\n"))

	// The #ifdef branch is taken, so its own trailing newline and the
	// body between it and #endif are both surfaced as real tokens,
	// same as the #endif line's own trailing newline afterwards.
	assertTokenSequence(t, e,
		kindTok{lexer.Newline, ""},
		kindTok{lexer.Identifier, "x"},
		kindTok{lexer.Newline, ""},
		kindTok{lexer.Newline, ""},
		kindTok{lexer.Identifier, "y"},
		kindTok{lexer.Newline, ""},
		kindTok{lexer.EOF, ""},
	)
}

func TestScenario3IfdefNotTakenElseActive(t *testing.T) {
	e := mustNew(t, Options{}, "main.glsl", []byte("#ifdef FOO\nx\n#else\ny\n#endif\n"))

	// The #ifdef branch is skipped, so its own trailing newline and "x"
	// are both discarded silently rather than surfaced as tokens; only
	// once #else flips the branch active does its own trailing newline
	// start appearing as a real token.
	assertTokenSequence(t, e,
		kindTok{lexer.Newline, ""},
		kindTok{lexer.Identifier, "y"},
		kindTok{lexer.Newline, ""},
		kindTok{lexer.Newline, ""},
		kindTok{lexer.EOF, ""},
	)
}

// kindTok is one expected (kind, text) pair; an empty text means "don't
// check the text for this token" (used for newlines and end-of-input,
// where the kind alone identifies the token).
type kindTok struct {
	kind lexer.Kind
	text string
}

func assertTokenSequence(t *testing.T, e *Engine, want ...kindTok) {
	t.Helper()
	for i, w := range want {
		tok, err := e.NextToken()
		require.NoError(t, err)
		assert.Equalf(t, w.kind, tok.Kind, "token %d kind", i)
		if w.text != "" {
			assert.Equalf(t, w.text, tok.Text, "token %d text", i)
		}
	}
}

func TestScenario4UnterminatedIfdef(t *testing.T) {
	e := mustNew(t, Options{}, "main.glsl", []byte("#ifdef FOO\nx\n"))
	_, err := e.NextToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated #ifdef")

	tok, err := e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.EOF, tok.Kind)
}

func TestScenario5ErrorPassthrough(t *testing.T) {
	e := mustNew(t, Options{}, "main.glsl", []byte("#error do not use\n"))
	_, err := e.NextToken()
	require.Error(t, err)
	assert.Equal(t, "#error do not use", err.Error())

	// The directive's own trailing newline is left for ordinary
	// consumption (see handleError), so it is still pulled as a real
	// token before end-of-input.
	tok, err := e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.Newline, tok.Kind)

	tok, err = e.NextToken()
	require.NoError(t, err)
	assert.Equal(t, lexer.EOF, tok.Kind)
}
