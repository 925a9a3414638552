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
	"fmt"
	"regexp"
	"strings"

	"github.com/shaderpp/shaderpp/pp"
)

// macroIdentifierRegex mirrors a C macro identifier: a leading letter or
// underscore, then any run of letters, digits, or underscores.
var macroIdentifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parseDefine parses one "-D name=value" argument into a pp.Define.
// Unlike a real C compiler's conditional-expression evaluator, this engine
// never evaluates a macro's value as an expression — it is substituted
// nowhere and tested only for "defined" / "not defined" — so, unlike the
// integer-literal-only restriction a constant-expression evaluator would need,
// any value text is accepted verbatim rather than just integer literals.
func parseDefine(definition string) (pp.Define, error) {
	definition = strings.TrimPrefix(definition, "-D") // tolerate gcc/clang style
	name, value := definition, ""                     // default: bare macro

	if eqIdx := strings.Index(definition, "="); eqIdx >= 0 {
		name, value = definition[:eqIdx], definition[eqIdx+1:]
	}

	if !macroIdentifierRegex.MatchString(name) {
		return pp.Define{}, fmt.Errorf("invalid macro name %q", name)
	}
	if value == "" {
		value = "1"
	}
	return pp.Define{Name: name, Value: value}, nil
}

// parseDefines parses every -D argument, collecting all parse failures
// rather than stopping at the first one so a batch invocation reports
// every bad -D in one pass.
func parseDefines(definitions []string) ([]pp.Define, error) {
	out := make([]pp.Define, 0, len(definitions))
	var errs []string
	for _, d := range definitions {
		def, err := parseDefine(d)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", d, err))
			continue
		}
		out = append(out, def)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to parse defines: %s", strings.Join(errs, "; "))
	}
	return out, nil
}
