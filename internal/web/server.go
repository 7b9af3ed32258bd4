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

// Package web serves the dictionary over HTTP.
//
// The server renders a search page and per-entry detail pages from the
// current loader state and exposes the same operations as a JSON API. Each
// request derives its own search State from the URL; the server holds no
// per-user state.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/route"
	"github.com/ianlewis/go-lexicon/search"
	"github.com/ianlewis/go-lexicon/store"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Options are options for a Server.
type Options struct {
	// Schema describes the dataset variant. It is required.
	Schema *entry.Schema

	// Search are the filter options. DefaultOptions are used if nil.
	Search *search.Options

	// Title is the site title. The schema title is used if empty.
	Title string

	// Logger receives request and error logs. The default logger is used if
	// nil.
	Logger *slog.Logger

	// Data, if set, is served under /data/.
	Data fs.FS
}

// Server serves a dictionary dataset.
type Server[E entry.Record] struct {
	loader *store.Loader[E]
	schema *entry.Schema
	search *search.Options
	title  string
	logger *slog.Logger
	data   fs.FS
}

// New returns a new Server for the dataset loaded by loader.
func New[E entry.Record](loader *store.Loader[E], opts *Options) *Server[E] {
	s := &Server[E]{
		loader: loader,
		schema: opts.Schema,
		search: opts.Search,
		title:  opts.Title,
		logger: opts.Logger,
		data:   opts.Data,
	}
	if s.search == nil {
		s.search = search.DefaultOptions
	}
	if s.title == "" {
		s.title = s.schema.Title
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Handler returns the server's HTTP handler with request logging, panic
// recovery and request IDs.
func (s *Server[E]) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleSearch)
	mux.HandleFunc("GET "+route.EntryPrefix, s.handleEntry)
	mux.HandleFunc("GET /api/search", s.handleAPISearch)
	mux.HandleFunc("GET /api/facets", s.handleAPIFacets)
	mux.Handle("GET /api"+route.EntryPrefix, http.StripPrefix("/api", http.HandlerFunc(s.handleAPIEntry)))
	mux.HandleFunc("GET /healthz", s.handleLive)
	mux.HandleFunc("GET /readyz", s.handleReady)
	if s.data != nil {
		mux.Handle("GET /data/", http.StripPrefix("/data", http.FileServerFS(s.data)))
	}

	return Chain(
		RequestID,
		Logger(s.logger),
		Recovery(s.logger),
	)(mux)
}

// Metadata is the title and description of a rendered page.
type Metadata struct {
	entry.Metadata

	// Refresh asks the browser to reload the page shortly.
	Refresh bool
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type facetSelect struct {
	Name    string
	Label   string
	Options []option
}

type resultRow struct {
	Word     string
	Path     string
	Details  []string
	AudioURL string
}

type searchPage struct {
	Meta        Metadata
	Site        string
	Placeholder string
	State       search.State
	Fields      []option
	Facets      []facetSelect
	Message     string
	Error       string
	Results     []resultRow
}

type entryPage struct {
	Meta     Metadata
	Back     string
	Word     string
	Fields   []entry.Detail
	AudioURL string
}

type statusPage struct {
	Meta    Metadata
	Site    string
	Back    string
	Message string
	Error   string
}

func (s *Server[E]) handleSearch(w http.ResponseWriter, r *http.Request) {
	st := search.ParseState(s.schema, r.URL.Query())
	ls := s.loader.State()

	status := http.StatusOK
	if ls.Status != store.Ready {
		status = http.StatusServiceUnavailable
	}
	s.render(w, r, status, "search.html", s.searchView(st, ls))
}

// searchView derives the search page from the request state and a loader
// snapshot.
func (s *Server[E]) searchView(st search.State, ls store.State[E]) searchPage {
	var results []E
	if ls.Status == store.Ready {
		results = search.Filter(ls.Store.All(), st.Query(s.schema), s.search)
	}

	p := searchPage{
		Meta: Metadata{
			Metadata: entry.Metadata{
				Title:       s.title,
				Description: s.placeholder(),
			},
			Refresh: ls.Status == store.Idle || ls.Status == store.Loading,
		},
		Site:        s.title,
		Placeholder: s.placeholder(),
		State:       st,
		Message:     search.Message(ls.Status, st, s.search.Policy, len(results)),
	}
	if ls.Err != nil {
		p.Error = ls.Err.Error()
	}

	selected := st.SelectedField(s.schema)
	if len(s.schema.SearchFields) > 1 {
		p.Fields = append(p.Fields, option{
			Value:    search.AllFields,
			Label:    "All fields",
			Selected: selected == search.AllFields,
		})
	}
	for _, f := range s.schema.SearchFields {
		p.Fields = append(p.Fields, option{
			Value:    string(f),
			Label:    s.schema.Label(f),
			Selected: selected == string(f),
		})
	}

	for _, f := range s.schema.Facets {
		sel := facetSelect{
			Name:  string(f),
			Label: s.schema.Label(f),
		}
		for _, v := range ls.Store.Facet(f) {
			sel.Options = append(sel.Options, option{
				Value:    v,
				Selected: st.Facets[f] == v,
			})
		}
		p.Facets = append(p.Facets, sel)
	}

	for _, e := range results {
		p.Results = append(p.Results, s.row(e))
	}
	return p
}

func (s *Server[E]) placeholder() string {
	return "Search " + s.schema.Label(entry.Word) + " or " + s.schema.Label(s.schema.Primary) + " words..."
}

func (s *Server[E]) row(e E) resultRow {
	row := resultRow{
		Word:     e.Headword(),
		Path:     route.EntryPath(e.Headword()),
		AudioURL: entry.AudioURL(e),
	}
	for _, f := range s.schema.Display {
		v := e.Value(f)
		if v == "" {
			continue
		}
		if f == entry.IPA {
			v = "[" + v + "]"
		}
		row.Details = append(row.Details, v)
	}
	return row
}

func (s *Server[E]) handleEntry(w http.ResponseWriter, r *http.Request) {
	ls := s.loader.State()
	if ls.Status != store.Ready {
		s.renderStatus(w, r, ls)
		return
	}

	key, err := route.KeyFromPath(r.URL.EscapedPath())
	if err != nil {
		s.logger.DebugContext(r.Context(), "bad entry key", slog.String("path", r.URL.EscapedPath()), slog.Any("error", err))
		s.renderNotFound(w, r)
		return
	}
	e, ok := ls.Store.Find(key)
	if !ok {
		s.renderNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "entry.html", s.entryView(e))
}

func (s *Server[E]) entryView(e E) entryPage {
	return entryPage{
		Meta:     Metadata{Metadata: entry.Describe(s.schema, e)},
		Back:     "/",
		Word:     e.Headword(),
		Fields:   entry.Details(s.schema, e),
		AudioURL: entry.AudioURL(e),
	}
}

func (s *Server[E]) renderNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound.html", statusPage{
		Meta: Metadata{Metadata: entry.NotFound()},
		Site: s.title,
		Back: "/",
	})
}

// renderStatus renders the loading or failure page shown in place of an
// entry while the dataset is unavailable.
func (s *Server[E]) renderStatus(w http.ResponseWriter, r *http.Request, ls store.State[E]) {
	p := statusPage{
		Meta: Metadata{
			Metadata: entry.Metadata{Title: s.title},
			Refresh:  ls.Status != store.Failed,
		},
		Site:    s.title,
		Back:    "/",
		Message: search.Message(ls.Status, search.State{}, s.search.Policy, 0),
	}
	if ls.Err != nil {
		p.Error = ls.Err.Error()
	}
	s.render(w, r, http.StatusServiceUnavailable, "status.html", p)
}

func (s *Server[E]) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.ErrorContext(r.Context(), "rendering page", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
