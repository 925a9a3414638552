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

// Command shaderppc is a batch preprocessor: given a set of shader
// sources (named directly or matched by glob), it runs each one through
// the preprocessing core concurrently and prints the result, optionally
// watching the sources and their include roots for changes and
// optionally serving the core over HTTP instead of running a batch at
// all.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/shaderpp/shaderpp/internal/collections"
	"github.com/shaderpp/shaderpp/internal/shaderppsrv"
	"github.com/shaderpp/shaderpp/pp"
	"github.com/shaderpp/shaderpp/pp/fsinclude"
)

// stringList accumulates a repeated "-flag value" into a slice, the same
// flag.Value idiom used for repeated selectors elsewhere in this
// ecosystem.
type stringList struct{ values []string }

func (s *stringList) String() string { return strings.Join(s.values, ",") }
func (s *stringList) Set(value string) error {
	s.values = append(s.values, value)
	return nil
}

func main() {
	var defines, includeRoots, globs stringList
	flag.Var(&defines, "D", "define a macro, name or name=value (repeatable)")
	flag.Var(&includeRoots, "I", "include search root (repeatable)")
	flag.Var(&globs, "glob", "glob pattern matching shader sources (repeatable)")
	configPath := flag.String("config", "", "path to a TOML config file")
	watch := flag.Bool("watch", false, "re-run the batch whenever a source or header changes")
	serve := flag.String("serve", "", "serve the preprocessor over HTTP at this address instead of running a batch")
	flag.Parse()

	if *serve != "" {
		router := shaderppsrv.NewRouter()
		log.Printf("shaderppc serving on %s", *serve)
		log.Fatal(http.ListenAndServe(*serve, router))
	}

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		defines.values = append(defines.values, cfg.Defines...)
		includeRoots.values = append(includeRoots.values, cfg.IncludeRoots...)
		globs.values = append(globs.values, cfg.Globs...)
	}

	parsedDefines, err := parseDefines(defines.values)
	if err != nil {
		log.Fatalf("%v", err)
	}

	files, err := resolveFiles(flag.Args(), globs.values)
	if err != nil {
		log.Fatalf("Failed to resolve source files: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("No source files matched (pass files as arguments or -glob patterns)")
	}

	opener := fsinclude.New(includeRoots.values...)
	runBatch(files, parsedDefines, opener)

	if *watch {
		if err := watchAndRerun(files, includeRoots.values, func() {
			runBatch(files, parsedDefines, opener)
		}); err != nil {
			log.Fatalf("Failed to watch for changes: %v", err)
		}
	}
}

// resolveFiles expands positional filenames and glob patterns into a
// deduplicated list of source paths, in first-seen order: positional
// arguments first, then each glob's matches. The list is not sorted.
func resolveFiles(positional, globs []string) ([]string, error) {
	seen := collections.Set[string]{}
	var out []string
	add := func(path string) {
		if !seen.Contains(path) {
			seen.Add(path)
			out = append(out, path)
		}
	}

	for _, p := range positional {
		add(p)
	}
	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

// runBatch preprocesses every file concurrently, bounded by GOMAXPROCS,
// and prints each result (or its diagnostics) as it completes.
func runBatch(files []string, defines []pp.Define, opener *fsinclude.Opener) {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, file := range files {
		file := file
		g.Go(func() error {
			preprocessOne(file, defines, opener)
			return nil
		})
	}
	_ = g.Wait()
}

func preprocessOne(file string, defines []pp.Define, opener *fsinclude.Opener) {
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
		return
	}

	result := pp.Preprocess(file, data, pp.Options{
		Open:    opener.Open,
		Defines: defines,
	})
	if pp.IsOutOfMemory(result) {
		fmt.Fprintf(os.Stderr, "%s: preprocessing exceeded its resource budget\n", file)
		return
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "%s:%d: %s\n", e.Filename, e.Line, e.Message)
	}
	fmt.Printf("=== %s ===\n%s", file, result.Output)
}

// watchAndRerun blocks, re-invoking onChange whenever a file under any of
// the given sources' directories or includeRoots changes.
func watchAndRerun(files, includeRoots []string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for _, root := range includeRoots {
		dirs[root] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
