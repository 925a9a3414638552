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

// Command shaderppd serves the preprocessor over HTTP, giving a
// shader-bytecode pipeline a network-reachable front door instead of a
// CLI invocation per file.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/shaderpp/shaderpp/internal/shaderppsrv"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	router := shaderppsrv.NewRouter()
	log.Printf("shaderppd listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}
