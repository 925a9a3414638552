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

// Package shaderppsrv is the HTTP front door shared by cmd/shaderppd and
// cmd/shaderppc's "-serve" mode: a single POST /v1/preprocess route that
// runs one request's source through pp.Preprocess. Every request gets its
// own pp.Preprocessor instance, so the handler keeps no state between
// requests and needs no locking.
package shaderppsrv

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shaderpp/shaderpp/pp"
)

// request is the body of POST /v1/preprocess.
type request struct {
	Filename string            `json:"filename"`
	Source   string            `json:"source"`
	Defines  map[string]string `json:"defines"`
}

// errorOut is one diagnostic in the response body.
type errorOut struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Line     int    `json:"line"`
}

// response is the body of a successful POST /v1/preprocess.
type response struct {
	Output string     `json:"output"`
	Errors []errorOut `json:"errors"`
}

// NewRouter builds the HTTP routing for the preprocessing service.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/preprocess", handlePreprocess).Methods(http.MethodPost)
	return r
}

func handlePreprocess(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	defines := make([]pp.Define, 0, len(req.Defines))
	for name, value := range req.Defines {
		defines = append(defines, pp.Define{Name: name, Value: value})
	}

	result := pp.Preprocess(req.Filename, []byte(req.Source), pp.Options{Defines: defines})
	if pp.IsOutOfMemory(result) {
		writeError(w, http.StatusInsufficientStorage, "preprocessing exceeded its resource budget")
		return
	}

	out := response{Output: result.Output}
	for _, e := range result.Errors {
		out.Errors = append(out.Errors, errorOut{Message: e.Message, Filename: e.Filename, Line: e.Line})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
