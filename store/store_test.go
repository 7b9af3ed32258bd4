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

package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/store"
)

var lexemes = []entry.Lexeme{
	{Word: "ndute", English: "water", PartOfSpeech: "noun", SemanticDomain: "nature"},
	{Word: "kaa", English: "to eat", PartOfSpeech: "verb", SemanticDomain: "food"},
	{Word: "ita", English: "flower", PartOfSpeech: "noun", SemanticDomain: "nature"},
	{Word: "kaa", English: "metal", PartOfSpeech: "noun", SemanticDomain: ""},
	{Word: "xita", English: "tortilla", PartOfSpeech: "", SemanticDomain: "Food"},
}

// TestStore_Find tests Store.Find.
func TestStore_Find(t *testing.T) {
	t.Parallel()

	s := store.New(lexemes, entry.PartOfSpeech, entry.SemanticDomain)

	tests := []struct {
		name     string
		key      string
		expected entry.Lexeme
		found    bool
	}{
		{
			name:     "found",
			key:      "ita",
			expected: lexemes[2],
			found:    true,
		},
		{
			name:     "first duplicate wins",
			key:      "kaa",
			expected: lexemes[1],
			found:    true,
		},
		{
			name:  "exact match only",
			key:   "Ita",
			found: false,
		},
		{
			name:  "substring is not a match",
			key:   "it",
			found: false,
		},
		{
			name:  "empty key",
			key:   "",
			found: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, ok := s.Find(test.key)
			if ok != test.found {
				t.Fatalf("Find(%q) found; want: %v, got: %v", test.key, test.found, ok)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Find (-want, +got):\n%s", diff)
			}

			// Lookup is idempotent.
			again, ok2 := s.Find(test.key)
			if ok2 != ok {
				t.Fatalf("Find(%q) second lookup found; want: %v, got: %v", test.key, ok, ok2)
			}
			if diff := cmp.Diff(got, again); diff != "" {
				t.Fatalf("Find second lookup (-first, +second):\n%s", diff)
			}
		})
	}
}

// TestStore_Facet tests Store.Facet.
func TestStore_Facet(t *testing.T) {
	t.Parallel()

	s := store.New(lexemes, entry.PartOfSpeech, entry.SemanticDomain)

	if diff := cmp.Diff([]string{"noun", "verb"}, s.Facet(entry.PartOfSpeech)); diff != "" {
		t.Fatalf("Facet(partOfSpeech) (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"food", "Food", "nature"}, s.Facet(entry.SemanticDomain)); diff != "" {
		t.Fatalf("Facet(semanticDomain) (-want, +got):\n%s", diff)
	}
	if got := s.Facet(entry.English); got != nil {
		t.Fatalf("Facet(english); want: nil, got: %v", got)
	}

	want := map[entry.Field][]string{
		entry.PartOfSpeech:   {"noun", "verb"},
		entry.SemanticDomain: {"food", "Food", "nature"},
	}
	if diff := cmp.Diff(want, s.Facets()); diff != "" {
		t.Fatalf("Facets (-want, +got):\n%s", diff)
	}
}

// TestStore_immutable checks that the store is not affected by changes to its
// input or output slices.
func TestStore_immutable(t *testing.T) {
	t.Parallel()

	input := []entry.Gloss{
		{Word: "аът", Translation: "horse", Audio: "at.mp3"},
		{Word: "ыт", Translation: "dog"},
	}
	s := store.New(input)

	input[0].Word = "changed"
	out := s.Entries()
	out[1].Translation = "changed"
	out[0].Audio = "changed.mp3"

	expected := []entry.Gloss{
		{Word: "аът", Translation: "horse", Audio: "at.mp3"},
		{Word: "ыт", Translation: "dog"},
	}
	if diff := cmp.Diff(expected, s.Entries()); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
	if _, ok := s.Find("аът"); !ok {
		t.Fatal("Find: expected match")
	}
	if want, got := 2, s.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
}

// TestEmpty tests Empty.
func TestEmpty(t *testing.T) {
	t.Parallel()

	s := store.Empty[entry.Lexeme](entry.PartOfSpeech)
	if s.Len() != 0 {
		t.Fatalf("Len; want: 0, got: %d", s.Len())
	}
	if got := s.Facet(entry.PartOfSpeech); len(got) != 0 {
		t.Fatalf("Facet; want: empty, got: %v", got)
	}
	if _, ok := s.Find("ndute"); ok {
		t.Fatal("Find: unexpected match")
	}
}
