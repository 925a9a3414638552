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
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the shape of a "-config" TOML file: everything a batch
// run can also be told on the command line, so a project can check in a
// shaderppc.toml instead of repeating flags in every build script.
type fileConfig struct {
	Defines      []string `toml:"defines"`
	IncludeRoots []string `toml:"include_roots"`
	Globs        []string `toml:"globs"`
}

// loadConfig reads and parses a TOML config file.
func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}
