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

package store

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/index"
)

// Store is an immutable ordered collection of dictionary entries.
type Store[E entry.Record] struct {
	entries []E

	// facets holds the distinct non-empty values of each facet field.
	facets map[entry.Field][]string

	// headwords indexes entries by headword.
	headwords *index.Index
}

// New returns a new Store holding a copy of entries. Distinct values are
// computed for each of the given facet fields.
func New[E entry.Record](entries []E, facets ...entry.Field) *Store[E] {
	s := &Store[E]{
		entries: slices.Clone(entries),
		facets:  make(map[entry.Field][]string, len(facets)),
	}
	s.headwords = index.New(s.entries, func(e E) string { return e.Headword() }, strings.Compare)
	for _, f := range facets {
		s.facets[f] = distinct(s.entries, f)
	}
	return s
}

// Empty returns a Store with no entries.
func Empty[E entry.Record](facets ...entry.Field) *Store[E] {
	return New[E](nil, facets...)
}

// Len returns the number of entries.
func (s *Store[E]) Len() int {
	return len(s.entries)
}

// Entries returns the entries in dataset order. The returned slice is a copy.
func (s *Store[E]) Entries() []E {
	return slices.Clone(s.entries)
}

// All returns the entries in dataset order without copying. Callers must
// not modify the returned slice.
func (s *Store[E]) All() []E {
	return s.entries[:len(s.entries):len(s.entries)]
}

// Facet returns the distinct non-empty values of the facet field in
// collation order. Fields that were not declared as facets return nil.
func (s *Store[E]) Facet(f entry.Field) []string {
	return slices.Clone(s.facets[f])
}

// Facets returns the distinct values of every facet field.
func (s *Store[E]) Facets() map[entry.Field][]string {
	facets := make(map[entry.Field][]string, len(s.facets))
	for f, values := range s.facets {
		facets[f] = slices.Clone(values)
	}
	return facets
}

// Find returns the first entry whose headword equals key exactly.
func (s *Store[E]) Find(key string) (E, bool) {
	pos, ok := s.headwords.First(key)
	if !ok {
		var zero E
		return zero, false
	}
	return s.entries[pos], true
}

// distinct returns the unique non-empty values of f sorted by the root
// collation order.
func distinct[E entry.Record](entries []E, f entry.Field) []string {
	seen := map[string]struct{}{}
	var values []string
	for _, e := range entries {
		v := e.Value(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	c := collate.New(language.Und)
	slices.SortStableFunc(values, c.CompareString)
	return values
}
