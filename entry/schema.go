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

package entry

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownVariant indicates that a dataset variant name is not recognized.
var ErrUnknownVariant = errors.New("unknown variant")

// Schema describes how a dataset variant is searched and displayed.
type Schema struct {
	// Name is the variant name used in configuration.
	Name string

	// Title is the default page title.
	Title string

	// Primary is the field holding the primary translation. It is used as the
	// description of an entry.
	Primary Field

	// SearchFields are the fields that may be selected for searching. The
	// first field is the default selection.
	SearchFields []Field

	// SearchAll selects every search field, rather than the first, when no
	// field is chosen.
	SearchAll bool

	// Facets are the categorical fields usable as exact-match filters.
	Facets []Field

	// Display are the fields shown under the headword in result lists.
	Display []Field

	// Labels are human readable field names.
	Labels map[Field]string
}

// GlossSchema is the schema of Gloss datasets.
var GlossSchema = &Schema{
	Name:         "gloss",
	Title:        "Tuvan-English Dictionary",
	Primary:      Translation,
	SearchFields: []Field{Word, Translation},
	SearchAll:    true,
	Display:      []Field{Translation},
	Labels: map[Field]string{
		Word:        "Tuvan",
		Translation: "English",
	},
}

// LexemeSchema is the schema of Lexeme datasets.
var LexemeSchema = &Schema{
	Name:         "lexeme",
	Title:        "Mixtec-English Dictionary",
	Primary:      English,
	SearchFields: []Field{Word, English, Spanish},
	Facets:       []Field{PartOfSpeech, SemanticDomain},
	Display:      []Field{IPA, English, Spanish},
	Labels: map[Field]string{
		Word:           "Mixtec",
		Orthography:    "Orthography",
		IPA:            "IPA",
		English:        "English",
		Spanish:        "Spanish",
		Tone:           "Tone Melody",
		PartOfSpeech:   "Part of Speech",
		SemanticDomain: "Semantic Domain",
	},
}

// SchemaFor returns the schema for the named variant.
func SchemaFor(variant string) (*Schema, error) {
	switch variant {
	case GlossSchema.Name:
		return GlossSchema, nil
	case LexemeSchema.Name:
		return LexemeSchema, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// DefaultFields returns the fields searched when none is chosen.
func (s *Schema) DefaultFields() []Field {
	if s.SearchAll {
		return slices.Clone(s.SearchFields)
	}
	return s.SearchFields[:1:1]
}

// Searchable reports whether f may be selected as a search field.
func (s *Schema) Searchable(f Field) bool {
	return slices.Contains(s.SearchFields, f)
}

// IsFacet reports whether f is a facet field.
func (s *Schema) IsFacet(f Field) bool {
	return slices.Contains(s.Facets, f)
}

// Label returns the human readable name of the field.
func (s *Schema) Label(f Field) string {
	if l, ok := s.Labels[f]; ok {
		return l
	}
	return string(f)
}
