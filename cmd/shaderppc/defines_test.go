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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaderpp/shaderpp/pp"
)

func TestParseDefineBareNameDefaultsToOne(t *testing.T) {
	d, err := parseDefine("FOO")
	require.NoError(t, err)
	assert.Equal(t, pp.Define{Name: "FOO", Value: "1"}, d)
}

func TestParseDefineNameEqualsValue(t *testing.T) {
	d, err := parseDefine("FOO=hello world")
	require.NoError(t, err)
	assert.Equal(t, pp.Define{Name: "FOO", Value: "hello world"}, d)
}

func TestParseDefineTolerateGccPrefix(t *testing.T) {
	d, err := parseDefine("-DFOO=1")
	require.NoError(t, err)
	assert.Equal(t, pp.Define{Name: "FOO", Value: "1"}, d)
}

func TestParseDefineRejectsInvalidIdentifier(t *testing.T) {
	_, err := parseDefine("1FOO=1")
	require.Error(t, err)
}

func TestParseDefinesCollectsAllErrors(t *testing.T) {
	_, err := parseDefines([]string{"1FOO", "2BAR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1FOO")
	assert.Contains(t, err.Error(), "2BAR")
}
