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

// Package intern implements the filename cache the preprocessing engine
// uses so that every source frame referring to the same path shares one
// string allocation, and so two frames can be compared for "same file" by
// pointer equality rather than a byte-for-byte string comparison on every
// push. The original engine kept this as a singly linked list rather than
// a hash table on the theory that any one translation unit only ever
// touches a handful of distinct filenames; that shape is kept here rather
// than reached for a map, since the access pattern (a handful of distinct
// names, looked up far more often than inserted) doesn't reward hashing.
package intern

import "sync"

type node struct {
	name string
	next *node
}

// Pool interns filenames. The zero value is ready to use.
type Pool struct {
	mu   sync.Mutex
	head *node
}

// Intern returns a *string for name, returning the very same pointer for
// every prior call with an equal name. Callers that need to know whether
// two frames reference the same file can compare the returned pointers
// with == instead of comparing the strings they point to.
func (p *Pool) Intern(name string) *string {
	p.mu.Lock()
	defer p.mu.Unlock()

	for n := p.head; n != nil; n = n.next {
		if n.name == name {
			return &n.name
		}
	}

	p.head = &node{name: name, next: p.head}
	return &p.head.name
}

// Len reports how many distinct filenames have been interned.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for cur := p.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}
