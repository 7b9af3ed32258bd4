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

package entry_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-lexicon/entry"
)

// TestGloss_Value tests Gloss.Value.
func TestGloss_Value(t *testing.T) {
	t.Parallel()

	g := entry.Gloss{
		Word:        "аът",
		Translation: "horse",
		Audio:       "https://example.com/at.mp3",
	}

	tests := []struct {
		field    entry.Field
		expected string
	}{
		{field: entry.Word, expected: "аът"},
		{field: entry.Translation, expected: "horse"},
		{field: entry.English, expected: ""},
		{field: entry.PartOfSpeech, expected: ""},
	}

	for _, test := range tests {
		t.Run(string(test.field), func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, g.Value(test.field)); diff != "" {
				t.Fatalf("Value (-want, +got):\n%s", diff)
			}
		})
	}

	if want, got := "аът", g.Headword(); want != got {
		t.Fatalf("Headword; want: %q, got: %q", want, got)
	}
}

// TestGloss_AudioURL tests Gloss.AudioURL.
func TestGloss_AudioURL(t *testing.T) {
	t.Parallel()

	if got := (entry.Gloss{Word: "ыт"}).AudioURL(); got != "" {
		t.Fatalf("AudioURL; want: %q, got: %q", "", got)
	}

	g := entry.Gloss{Word: "ыт", Audio: "yt.mp3"}
	if want, got := "yt.mp3", g.AudioURL(); want != got {
		t.Fatalf("AudioURL; want: %q, got: %q", want, got)
	}
}

// TestLexeme_Value tests Lexeme.Value.
func TestLexeme_Value(t *testing.T) {
	t.Parallel()

	l := entry.Lexeme{
		Word:           "ndute",
		Orthography:    "ndúté",
		IPA:            "ⁿdute",
		English:        "water",
		Spanish:        "agua",
		Tone:           "HH",
		PartOfSpeech:   "noun",
		SemanticDomain: "nature",
	}

	got := map[entry.Field]string{}
	for _, f := range []entry.Field{
		entry.Word,
		entry.Translation,
		entry.Orthography,
		entry.IPA,
		entry.English,
		entry.Spanish,
		entry.Tone,
		entry.PartOfSpeech,
		entry.SemanticDomain,
	} {
		got[f] = l.Value(f)
	}

	expected := map[entry.Field]string{
		entry.Word:           "ndute",
		entry.Translation:    "",
		entry.Orthography:    "ndúté",
		entry.IPA:            "ⁿdute",
		entry.English:        "water",
		entry.Spanish:        "agua",
		entry.Tone:           "HH",
		entry.PartOfSpeech:   "noun",
		entry.SemanticDomain: "nature",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Value (-want, +got):\n%s", diff)
	}
}

// TestParseField tests ParseField.
func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := entry.ParseField("semanticDomain")
	if err != nil {
		t.Fatalf("ParseField: %v", err)
	}
	if f != entry.SemanticDomain {
		t.Fatalf("ParseField; want: %q, got: %q", entry.SemanticDomain, f)
	}

	if _, err := entry.ParseField("Semantic Domain"); !errors.Is(err, entry.ErrUnknownField) {
		t.Fatalf("ParseField; want: %v, got: %v", entry.ErrUnknownField, err)
	}
}

// TestSchemaFor tests SchemaFor.
func TestSchemaFor(t *testing.T) {
	t.Parallel()

	s, err := entry.SchemaFor("lexeme")
	if err != nil {
		t.Fatalf("SchemaFor: %v", err)
	}
	if !s.IsFacet(entry.PartOfSpeech) || s.IsFacet(entry.English) {
		t.Fatalf("IsFacet: unexpected facets %v", s.Facets)
	}
	if !s.Searchable(entry.Spanish) || s.Searchable(entry.Tone) {
		t.Fatalf("Searchable: unexpected search fields %v", s.SearchFields)
	}
	if want, got := "Part of Speech", s.Label(entry.PartOfSpeech); want != got {
		t.Fatalf("Label; want: %q, got: %q", want, got)
	}

	if _, err := entry.SchemaFor("stardict"); !errors.Is(err, entry.ErrUnknownVariant) {
		t.Fatalf("SchemaFor; want: %v, got: %v", entry.ErrUnknownVariant, err)
	}
}

func TestSchema_DefaultFields(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]entry.Field{entry.Word, entry.Translation}, entry.GlossSchema.DefaultFields()); diff != "" {
		t.Errorf("GlossSchema.DefaultFields (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]entry.Field{entry.Word}, entry.LexemeSchema.DefaultFields()); diff != "" {
		t.Errorf("LexemeSchema.DefaultFields (-want, +got):\n%s", diff)
	}

	// The returned slice does not alias the schema.
	f := entry.LexemeSchema.DefaultFields()
	f = append(f, entry.Tone)
	if want, got := entry.English, entry.LexemeSchema.SearchFields[1]; want != got {
		t.Errorf("SearchFields[1]; want: %q, got: %q (%v)", want, got, f)
	}
}

func TestFields(t *testing.T) {
	t.Parallel()

	got := entry.Fields()
	if want := 9; len(got) != want {
		t.Fatalf("Fields; want: %d fields, got: %d", want, len(got))
	}
	for _, f := range got {
		if _, err := entry.ParseField(string(f)); err != nil {
			t.Errorf("ParseField(%q): %v", f, err)
		}
	}
}
