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

// Package search implements filtering of dictionary entries.
//
// Filtering is a linear scan over the entries in store order. A query matches
// an entry when the folded query text is a substring of the folded value of
// any selected field and every active facet equals the entry's value. Results
// are never ranked; they are truncated to a fixed limit.
package search

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/folding"
)

// MaxResults is the maximum number of results returned by Filter.
const MaxResults = 20

// Policy decides what an empty query text matches.
type Policy int

const (
	// RequireQuery matches nothing when the query text is empty, even if
	// facets are selected.
	RequireQuery Policy = iota

	// AllowFacetsOnly matches every entry satisfying the selected facets when
	// the query text is empty. An empty query with no selected facets still
	// matches nothing.
	AllowFacetsOnly
)

// String implements [fmt.Stringer].
func (p Policy) String() string {
	switch p {
	case RequireQuery:
		return "require"
	case AllowFacetsOnly:
		return "facets"
	default:
		return "unknown"
	}
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "require":
		return RequireQuery, nil
	case "facets":
		return AllowFacetsOnly, nil
	default:
		return RequireQuery, fmt.Errorf("unknown empty query policy %q", name)
	}
}

// Query is a search request.
type Query struct {
	// Text is matched as a substring. Leading and trailing whitespace is
	// significant.
	Text string

	// Fields are the fields Text is matched against. An entry matches if any
	// field matches. No fields matches no entries.
	Fields []entry.Field

	// Facets maps facet fields to required values. Empty values are ignored.
	Facets map[entry.Field]string
}

// HasFacets reports whether any facet value is selected.
func (q Query) HasFacets() bool {
	for _, v := range q.Facets {
		if v != "" {
			return true
		}
	}
	return false
}

// Options are options for Filter.
type Options struct {
	// Folder returns a transformer that folds query and field text before
	// comparison.
	Folder folding.Folder

	// Policy is the empty query policy.
	Policy Policy

	// Limit is the maximum number of results. Values outside 1 to MaxResults
	// are treated as MaxResults.
	Limit int
}

// DefaultOptions is the default options for Filter.
var DefaultOptions = &Options{
	Folder: folding.Lower,
	Policy: RequireQuery,
	Limit:  MaxResults,
}

func (o *Options) folder() folding.Folder {
	if o == nil || o.Folder == nil {
		return DefaultOptions.Folder
	}
	return o.Folder
}

func (o *Options) policy() Policy {
	if o == nil {
		return DefaultOptions.Policy
	}
	return o.Policy
}

func (o *Options) limit() int {
	if o == nil || o.Limit <= 0 || o.Limit > MaxResults {
		return MaxResults
	}
	return o.Limit
}

// Filter returns the entries matching q in their original order, truncated to
// the options' limit. Filter never fails; no match is an empty result.
func Filter[E entry.Record](entries []E, q Query, opts *Options) []E {
	if len(q.Fields) == 0 {
		return nil
	}
	if q.Text == "" && (opts.policy() == RequireQuery || !q.HasFacets()) {
		return nil
	}

	fold := opts.folder()
	needle := folding.String(fold, q.Text)
	limit := opts.limit()

	var results []E
	for _, e := range entries {
		if !matchFacets(e, q.Facets) || !matchText(e, q.Fields, needle, fold) {
			continue
		}
		results = append(results, e)
		if len(results) >= limit {
			break
		}
	}
	return results
}

func matchFacets(e entry.Record, facets map[entry.Field]string) bool {
	for f, v := range facets {
		if v == "" {
			continue
		}
		if e.Value(f) != v {
			return false
		}
	}
	return true
}

func matchText(e entry.Record, fields []entry.Field, needle string, fold folding.Folder) bool {
	for _, f := range fields {
		if strings.Contains(folding.String(fold, e.Value(f)), needle) {
			return true
		}
	}
	return false
}
