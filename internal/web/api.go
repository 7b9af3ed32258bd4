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
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/route"
	"github.com/ianlewis/go-lexicon/search"
	"github.com/ianlewis/go-lexicon/store"
)

// SearchResponse is the JSON response of /api/search.
type SearchResponse[E entry.Record] struct {
	Status  string `json:"status"`
	Results []E    `json:"results"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the JSON response for failed API requests.
type ErrorResponse struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error"`
}

// HealthResponse is the JSON response of /healthz and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

func (s *Server[E]) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	st := search.ParseState(s.schema, r.URL.Query())
	ls := s.loader.State()

	resp := SearchResponse[E]{
		Status:  ls.Status.String(),
		Results: []E{},
	}
	if ls.Status != store.Ready {
		resp.Message = search.Message(ls.Status, st, s.search.Policy, 0)
		if ls.Err != nil {
			resp.Error = ls.Err.Error()
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	if results := search.Filter(ls.Store.All(), st.Query(s.schema), s.search); results != nil {
		resp.Results = results
	}
	resp.Count = len(resp.Results)
	resp.Message = search.Message(ls.Status, st, s.search.Policy, resp.Count)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server[E]) handleAPIEntry(w http.ResponseWriter, r *http.Request) {
	ls := s.loader.State()
	if ls.Status != store.Ready {
		resp := ErrorResponse{
			Status: ls.Status.String(),
			Error:  search.Message(ls.Status, search.State{}, s.search.Policy, 0),
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	key, err := route.KeyFromPath(r.URL.EscapedPath())
	if err != nil {
		s.logger.DebugContext(r.Context(), "bad entry key", slog.String("path", r.URL.EscapedPath()), slog.Any("error", err))
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: entry.NotFoundDescription})
		return
	}
	e, ok := ls.Store.Find(key)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: entry.NotFoundDescription})
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server[E]) handleAPIFacets(w http.ResponseWriter, _ *http.Request) {
	facets := s.loader.State().Store.Facets()
	for _, f := range s.schema.Facets {
		if facets[f] == nil {
			facets[f] = []string{}
		}
	}
	writeJSON(w, http.StatusOK, facets)
}

// handleLive is the liveness probe. It always succeeds.
func (s *Server[E]) handleLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Entries: s.loader.State().Store.Len(),
	})
}

// handleReady is the readiness probe. It fails until the dataset is loaded.
func (s *Server[E]) handleReady(w http.ResponseWriter, _ *http.Request) {
	ls := s.loader.State()
	resp := HealthResponse{
		Status:  ls.Status.String(),
		Entries: ls.Store.Len(),
	}
	if ls.Err != nil {
		resp.Error = ls.Err.Error()
	}

	status := http.StatusOK
	if ls.Status != store.Ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
