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

import "fmt"

// maxDiagnosticLen mirrors the original engine's fixed 256-byte failure
// buffer. Messages longer than this are truncated rather than grown
// without bound, so a pathological #error line can't make a failure
// message unbounded in size.
const maxDiagnosticLen = 256

// diagnosticState is a single-slot latch: once a failure is recorded, it
// is held (and reported) until explicitly cleared, and recording a second
// failure before the first is observed simply overwrites it. This matches
// the original "ctx->isfail / ctx->failstr" pair; no caller should depend
// on which of two same-pull failures wins.
type diagnosticState struct {
	failed  bool
	message string
}

// fail latches message (truncated to maxDiagnosticLen) as the current
// diagnostic.
func (d *diagnosticState) fail(message string) {
	if len(message) > maxDiagnosticLen {
		message = message[:maxDiagnosticLen]
	}
	d.failed = true
	d.message = message
}

// failf is fail with fmt.Sprintf formatting.
func (d *diagnosticState) failf(format string, args ...any) {
	d.fail(fmt.Sprintf(format, args...))
}

func (d *diagnosticState) isFailed() bool {
	return d.failed
}

// take returns the latched message and clears the latch, the way a caller
// pulling one diagnostic at a time (e.g. the pump returning an error
// token) is expected to consume it.
func (d *diagnosticState) take() string {
	msg := d.message
	d.failed = false
	d.message = ""
	return msg
}
