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

package search

import (
	"net/url"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/store"
)

// URL query parameters of a search. Facets use their field name.
const (
	ParamSearch = "search"
	ParamField  = "field"
)

// AllFields is the field parameter value that selects every search field.
const AllFields = "all"

// Messages shown in place of results.
const (
	MessagePrompt    = "Type to search the dictionary."
	MessageNoResults = "No results found."
	MessageLoading   = "Loading dictionary…"
	MessageFailed    = "The dictionary could not be loaded."
)

// State is the search input of one view, taken from a request URL or the
// command line.
type State struct {
	// Text is the query text, untrimmed.
	Text string

	// Field is a searchable field name, AllFields, or empty for the
	// schema's default.
	Field string

	// Facets holds the selected facet values. Unselected facets are absent.
	Facets map[entry.Field]string
}

// ParseState reads the search state from URL query values. Unknown or
// unsearchable fields select the default, and parameters for fields that
// are not facets are ignored.
func ParseState(schema *entry.Schema, v url.Values) State {
	st := State{
		Text:   v.Get(ParamSearch),
		Facets: map[entry.Field]string{},
	}

	switch name := v.Get(ParamField); name {
	case "":
	case AllFields:
		st.Field = AllFields
	default:
		if f, err := entry.ParseField(name); err == nil && schema.Searchable(f) {
			st.Field = name
		}
	}

	for _, f := range schema.Facets {
		if val := v.Get(string(f)); val != "" {
			st.Facets[f] = val
		}
	}
	return st
}

// SelectedField returns the effective field selection: a field name or
// AllFields.
func (st State) SelectedField(schema *entry.Schema) string {
	if st.Field != "" {
		return st.Field
	}
	if schema.SearchAll {
		return AllFields
	}
	return string(schema.SearchFields[0])
}

// Fields returns the fields searched by the state.
func (st State) Fields(schema *entry.Schema) []entry.Field {
	switch st.Field {
	case "":
		return schema.DefaultFields()
	case AllFields:
		return append([]entry.Field(nil), schema.SearchFields...)
	default:
		return []entry.Field{entry.Field(st.Field)}
	}
}

// Query returns the filter query for the state.
func (st State) Query(schema *entry.Schema) Query {
	return Query{
		Text:   st.Text,
		Fields: st.Fields(schema),
		Facets: st.Facets,
	}
}

// Prompting reports whether the state has too little input to search under
// the given policy.
func (st State) Prompting(policy Policy) bool {
	if st.Text != "" {
		return false
	}
	q := Query{Facets: st.Facets}
	return policy == RequireQuery || !q.HasFacets()
}

// Message returns the informational message shown in place of results, or
// the empty string when there are results to show.
func Message(status store.Status, st State, policy Policy, results int) string {
	switch status {
	case store.Idle, store.Loading:
		return MessageLoading
	case store.Failed:
		return MessageFailed
	}
	if st.Prompting(policy) {
		return MessagePrompt
	}
	if results == 0 {
		return MessageNoResults
	}
	return ""
}
