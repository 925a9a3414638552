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

package shaderppsrv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessEndpointReturnsOutput(t *testing.T) {
	router := NewRouter()
	body := `{"filename":"main.glsl","source":"{ x; }\n"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/preprocess", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Output, "{")
	assert.Empty(t, resp.Errors)
}

func TestPreprocessEndpointReportsDirectiveErrors(t *testing.T) {
	router := NewRouter()
	body := `{"filename":"main.glsl","source":"#error bad\n"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/preprocess", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "#error bad", resp.Errors[0].Message)
}

func TestPreprocessEndpointRejectsMissingFilename(t *testing.T) {
	router := NewRouter()
	body := `{"source":"x\n"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/preprocess", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreprocessEndpointRejectsMalformedBody(t *testing.T) {
	router := NewRouter()
	req := httptest.NewRequest(http.MethodPost, "/v1/preprocess", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
