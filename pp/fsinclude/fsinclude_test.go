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

package fsinclude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaderpp/shaderpp/pp"
)

func TestOpenLocalRelativeToParentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.h"), []byte("hello"), 0o644))

	o := New()
	resolved, data, closer, ok, err := o.Open(pp.IncludeLocal, "a.h", filepath.Join(dir, "main.glsl"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, filepath.Join(dir, "a.h"), resolved)
	assert.Nil(t, closer)
}

func TestOpenSystemSearchesRoots(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sys.h"), []byte("sysdata"), 0o644))

	o := New(dir)
	_, data, _, ok, err := o.Open(pp.IncludeSystem, "sys.h", "main.glsl")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("sysdata"), data)
}

func TestOpenMissingFileFails(t *testing.T) {
	o := New()
	_, _, _, ok, err := o.Open(pp.IncludeLocal, "nope.h", "main.glsl")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenCachesSecondRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	o := New()
	_, data1, _, ok, err := o.Open(pp.IncludeLocal, "a.h", filepath.Join(dir, "main.glsl"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data1)
	assert.Equal(t, 1, o.cache.Len())

	_, data2, _, ok, err := o.Open(pp.IncludeLocal, "a.h", filepath.Join(dir, "main.glsl"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data2)
	assert.Equal(t, 1, o.cache.Len())
}
