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

// macroEntry is one #define/-D binding. value is kept only so that a
// caller inspecting the table (or a future expansion pass) can see what a
// name was defined to; this engine never substitutes it into tokens —
// expanding function-like or object-like macro bodies is out of scope.
type macroEntry struct {
	name  string
	value string
	next  *macroEntry
}

// macroTable is a fixed 256-bucket hash table of macroEntry chains, keyed
// by hashDefine. The bucket count and hash function are both load-bearing:
// callers that inspect bucket distribution (see the package's tests) rely
// on this exact checksum, not just "some hash or other".
type macroTable struct {
	buckets [256]*macroEntry
}

// hashDefine is the bucket index for name: the sum of its bytes, mod 256.
// This is deliberately the original engine's checksum rather than a
// stronger modern hash (e.g. xxhash) — nothing downstream depends on
// collision resistance, and changing the function would be an invisible
// but unfaithful substitution.
func hashDefine(name string) byte {
	var sum byte
	for i := 0; i < len(name); i++ {
		sum += name[i]
	}
	return sum
}

// add inserts or overwrites the binding for name. Re-defining an existing
// name updates its value in place rather than appending a duplicate node.
func (t *macroTable) add(name, value string) {
	h := hashDefine(name)
	for e := t.buckets[h]; e != nil; e = e.next {
		if e.name == name {
			e.value = value
			return
		}
	}
	t.buckets[h] = &macroEntry{name: name, value: value, next: t.buckets[h]}
}

// remove deletes the binding for name, if any, and reports whether one was
// found (so #undef of an undefined name can be told apart from a no-op, if
// a caller ever wants to distinguish the two).
func (t *macroTable) remove(name string) bool {
	h := hashDefine(name)
	var prev *macroEntry
	for e := t.buckets[h]; e != nil; e = e.next {
		if e.name == name {
			if prev == nil {
				t.buckets[h] = e.next
			} else {
				prev.next = e.next
			}
			return true
		}
		prev = e
	}
	return false
}

// find reports whether name is currently defined, and its value.
func (t *macroTable) find(name string) (value string, defined bool) {
	h := hashDefine(name)
	for e := t.buckets[h]; e != nil; e = e.next {
		if e.name == name {
			return e.value, true
		}
	}
	return "", false
}

// clear empties the table.
func (t *macroTable) clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
}
