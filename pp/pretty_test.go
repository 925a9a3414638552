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

package pp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessBraceFragmentGetsOwnLines(t *testing.T) {
	result := Preprocess("main.glsl", []byte("{ x; }\n"), Options{})
	require.False(t, IsOutOfMemory(result))
	require.Empty(t, result.Errors)

	lines := strings.Split(strings.Trim(result.Output, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "{", lines[0])
	assert.Contains(t, lines[1], "x")
	assert.Contains(t, lines[1], ";")
	assert.Equal(t, "}", lines[2])
}

func TestPreprocessNestedBracesIndent(t *testing.T) {
	result := Preprocess("main.glsl", []byte("{ { y; } }\n"), Options{})
	require.False(t, IsOutOfMemory(result))
	assert.Contains(t, result.Output, "    {")
	assert.Contains(t, result.Output, "        y")
}

func TestPreprocessCollectsDirectiveErrorsWithPosition(t *testing.T) {
	result := Preprocess("main.glsl", []byte("#error boom\nafter;\n"), Options{})
	require.False(t, IsOutOfMemory(result))
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "#error boom", result.Errors[0].Message)
	assert.Equal(t, "main.glsl", result.Errors[0].Filename)
	assert.Contains(t, result.Output, "after")
}

func TestPreprocessDuplicateDefineYieldsErrorNotOOM(t *testing.T) {
	result := Preprocess("main.glsl", []byte(""), Options{
		Defines: []Define{{Name: "FOO", Value: "1"}, {Name: "FOO", Value: "2"}},
	})
	require.False(t, IsOutOfMemory(result))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "'FOO' already defined")
}

func TestPreprocessBudgetExhaustionReturnsSingleton(t *testing.T) {
	opener := func(kind IncludeKind, path, parent string) (string, []byte, IncludeCloser, bool, error) {
		return path, []byte(strings.Repeat("x", 1024)), nil, true, nil
	}
	result := Preprocess("main.glsl", []byte(`#include "big.glsl"`+"\n"), Options{
		Open:        opener,
		BudgetBytes: 10,
	})
	assert.True(t, IsOutOfMemory(result))
}
