// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-lexicon/internal/config"
	"github.com/ianlewis/go-lexicon/internal/logging"
)

func TestChain(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mw("a"), mw("b"), mw("c"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if diff := cmp.Diff([]string{"a", "b", "c", "handler"}, order); diff != "" {
		t.Fatalf("order (-want, +got):\n%s", diff)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var got string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if got == "" {
			t.Fatal("request ID not set")
		}
		if want := w.Header().Get(RequestIDHeader); want != got {
			t.Fatalf("header; want: %q, got: %q", want, got)
		}
	})

	t.Run("client", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(RequestIDHeader, "abc123")
		h.ServeHTTP(w, r)

		if want := "abc123"; want != got {
			t.Fatalf("request ID; want: %q, got: %q", want, got)
		}
		if want, got := "abc123", w.Header().Get(RequestIDHeader); want != got {
			t.Fatalf("header; want: %q, got: %q", want, got)
		}
	})
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, config.LogConfig{Format: "json"})

	h := Chain(RequestID, Logger(logger))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))
	r := httptest.NewRequest(http.MethodGet, "/api/search?search=horse", nil)
	r.Header.Set(RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), r)

	var rec struct {
		Msg       string `json:"msg"`
		Level     string `json:"level"`
		Method    string `json:"method"`
		Path      string `json:"path"`
		Status    int    `json:"status"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
	}

	want := struct {
		Msg       string `json:"msg"`
		Level     string `json:"level"`
		Method    string `json:"method"`
		Path      string `json:"path"`
		Status    int    `json:"status"`
		RequestID string `json:"request_id"`
	}{
		Msg:       "http.request",
		Level:     "INFO",
		Method:    http.MethodGet,
		Path:      "/api/search",
		Status:    http.StatusTeapot,
		RequestID: "req-1",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("log record (-want, +got):\n%s", diff)
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, config.LogConfig{Format: "json"})

	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if want, got := http.StatusInternalServerError, w.Code; want != got {
		t.Fatalf("status; want: %d, got: %d", want, got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Fatalf("log does not contain panic: %s", buf.String())
	}
}
