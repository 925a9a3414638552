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
	"runtime"

	"github.com/shaderpp/shaderpp/internal/cc/preprocessor"
)

// lineEnding matches the reference tool's platform split: CRLF under
// Windows, bare LF everywhere else.
func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Error is one diagnostic recorded during Preprocess, positioned at
// wherever the engine was sitting when the failure was reported.
type Error struct {
	Message  string
	Filename string
	Line     int
}

// PreprocessResult is the outcome of one Preprocess call.
type PreprocessResult struct {
	Output string
	Errors []Error
}

// outOfMemoryResult is the shared immutable singleton Preprocess returns
// whenever the run's budget was exceeded, so callers can detect the
// out-of-memory case by identity instead of inspecting Output/Errors.
var outOfMemoryResult = &PreprocessResult{}

// IsOutOfMemory reports whether r is the shared out-of-memory singleton.
func IsOutOfMemory(r *PreprocessResult) bool {
	return r == outOfMemoryResult
}

// Preprocess runs filename/data through a Preprocessor to completion and
// renders the result with a small pretty-printer: a line break is forced
// before and after '{' and after '}' and ';', and '{' increases and '}'
// decreases the indent level. Source newlines
// themselves are not copied to the output verbatim; only the derived
// line breaks around these tokens are, the same deliberately "weird"
// layout behavior documented in the original tool this is ported from.
//
// If the run's resource budget is ever exceeded, Preprocess returns the
// shared out-of-memory singleton instead of a partial result — whatever
// had been buffered is discarded, matching the original's "free
// everything, return the OOM singleton" behavior.
func Preprocess(filename string, data []byte, opts Options) *PreprocessResult {
	p, err := Start(filename, data, opts)
	if err != nil {
		return &PreprocessResult{Errors: []Error{{Message: err.Error(), Filename: filename}}}
	}

	var buf preprocessor.Buffer
	var errs []Error
	endline := lineEnding()
	nl := true
	indent := 0

	for {
		tok, err := p.NextToken()
		if p.OutOfMemory() {
			return outOfMemoryResult
		}
		if err != nil {
			fname, line := p.SourcePos()
			errs = append(errs, Error{Message: err.Error(), Filename: fname, Line: line})
			nl = false
			continue
		}
		if tok.Kind == EOI {
			break
		}

		isNewline := false
		switch {
		case tok.Kind == Newline:
			// Source newlines are not themselves written to the output;
			// they only propagate the "start of line" state forward.
			isNewline = nl

		case tok.Text == "}" || tok.Text == ";":
			if tok.Text == "}" && indent > 0 {
				indent--
			}
			buf.Indent(indent, nl)
			buf.WriteString(tok.Text)
			buf.WriteString(endline)
			isNewline = true

		case tok.Text == "{":
			buf.WriteString(endline)
			buf.Indent(indent, true)
			buf.WriteString("{")
			buf.WriteString(endline)
			indent++
			isNewline = true

		default:
			buf.Indent(indent, nl)
			buf.WriteString(tok.Text)
		}

		nl = isNewline
	}

	if p.OutOfMemory() {
		return outOfMemoryResult
	}
	return &PreprocessResult{Output: buf.String(), Errors: errs}
}
