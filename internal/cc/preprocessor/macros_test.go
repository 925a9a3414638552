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
)

func TestHashDefineIsSumOfBytesMod256(t *testing.T) {
	assert.EqualValues(t, byte('A'), hashDefine("A"))
	assert.EqualValues(t, ('A'+'B')%256, hashDefine("AB"))

	// 256 'a' bytes (0x61 = 97) sums to 97*256 = 24832, which is 0 mod 256.
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	assert.EqualValues(t, 0, hashDefine(string(long)))
}

func TestAddFindRemove(t *testing.T) {
	var tbl macroTable

	_, defined := tbl.find("FOO")
	assert.False(t, defined)

	tbl.add("FOO", "1")
	value, defined := tbl.find("FOO")
	assert.True(t, defined)
	assert.Equal(t, "1", value)

	assert.True(t, tbl.remove("FOO"))
	_, defined = tbl.find("FOO")
	assert.False(t, defined)

	assert.False(t, tbl.remove("FOO"))
}

func TestAddOverwritesExistingValue(t *testing.T) {
	var tbl macroTable
	tbl.add("X", "1")
	tbl.add("X", "2")
	value, defined := tbl.find("X")
	assert.True(t, defined)
	assert.Equal(t, "2", value)
}

func TestBucketCollisionsChainCorrectly(t *testing.T) {
	var tbl macroTable
	// "AB" and "BA" hash identically (sum is commutative) but are distinct
	// names sharing one bucket.
	assert.Equal(t, hashDefine("AB"), hashDefine("BA"))

	tbl.add("AB", "ab")
	tbl.add("BA", "ba")

	v1, ok1 := tbl.find("AB")
	v2, ok2 := tbl.find("BA")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, "ab", v1)
	assert.Equal(t, "ba", v2)

	assert.True(t, tbl.remove("AB"))
	_, ok := tbl.find("AB")
	assert.False(t, ok)
	_, ok = tbl.find("BA")
	assert.True(t, ok)
}

func TestClearEmptiesTable(t *testing.T) {
	var tbl macroTable
	tbl.add("FOO", "1")
	tbl.add("BAR", "2")
	tbl.clear()
	_, ok := tbl.find("FOO")
	assert.False(t, ok)
	_, ok = tbl.find("BAR")
	assert.False(t, ok)
}
