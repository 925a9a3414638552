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

// Package fsinclude is the default filesystem-backed #include handler:
// stat the file, read it whole, fail cleanly on any error. It is the
// trivial I/O wrapper the core engine deliberately leaves out of scope,
// enriched with a shared content cache (internal/includecache) so a batch
// run over many shaders sharing common headers reads each header once.
// Every Open still stats the file, to key the cache on its current mtime.
package fsinclude

import (
	"os"
	"path/filepath"

	"github.com/shaderpp/shaderpp/internal/includecache"
	"github.com/shaderpp/shaderpp/pp"
)

// Opener resolves #include directives against a filesystem: quoted
// includes ("name") are first tried relative to the including file's own
// directory, then against Roots; angle-bracket includes (<name>) are
// tried against Roots only. Roots are searched in order.
type Opener struct {
	Roots []string
	cache includecache.Cache
}

// New returns an Opener searching roots (in order) for angle-bracket
// includes, and for quoted includes that aren't found relative to the
// including file.
func New(roots ...string) *Opener {
	return &Opener{Roots: roots}
}

// Open implements pp.IncludeOpener.
func (o *Opener) Open(kind pp.IncludeKind, requestedPath, parentFilename string) (string, []byte, pp.IncludeCloser, bool, error) {
	candidates := o.candidates(kind, requestedPath, parentFilename)
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		modTime := info.ModTime().UnixNano()
		if data, ok := o.cache.Get(candidate, modTime); ok {
			return candidate, data, nil, true, nil
		}
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		o.cache.Put(candidate, modTime, info.Size(), data)
		return candidate, data, nil, true, nil
	}
	return "", nil, nil, false, nil
}

func (o *Opener) candidates(kind pp.IncludeKind, requestedPath, parentFilename string) []string {
	var out []string
	if kind == pp.IncludeLocal {
		dir := filepath.Dir(parentFilename)
		out = append(out, filepath.Join(dir, requestedPath))
	}
	for _, root := range o.Roots {
		out = append(out, filepath.Join(root, requestedPath))
	}
	return out
}
