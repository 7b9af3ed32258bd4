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
	"github.com/k3a/html2text"

	"github.com/ianlewis/go-lexicon/internal/folding"
)

// Metadata for a missing entry.
const (
	NotFoundTitle       = "Entry not found"
	NotFoundDescription = "The requested dictionary entry does not exist."
)

// Metadata is the title and description of an entry.
type Metadata struct {
	Title       string
	Description string
}

// Describe returns the entry's headword and primary translation as plain
// text.
func Describe(schema *Schema, e Record) Metadata {
	return Metadata{
		Title:       plainText(e.Headword()),
		Description: plainText(e.Value(schema.Primary)),
	}
}

// NotFound returns the metadata shown for an entry that does not exist.
func NotFound() Metadata {
	return Metadata{
		Title:       NotFoundTitle,
		Description: NotFoundDescription,
	}
}

// plainText strips markup and collapses whitespace.
func plainText(s string) string {
	return folding.String(folding.Whitespace, html2text.HTML2Text(s))
}

// Detail is a labeled field value.
type Detail struct {
	Label string
	Value string
}

// Details returns the entry's labeled, non-empty fields other than the
// headword in field order.
func Details(schema *Schema, e Record) []Detail {
	var details []Detail
	for _, f := range Fields() {
		if f == Word {
			continue
		}
		if _, ok := schema.Labels[f]; !ok {
			continue
		}
		if v := e.Value(f); v != "" {
			details = append(details, Detail{Label: schema.Label(f), Value: v})
		}
	}
	return details
}

// AudioURL returns the entry's recording URL or the empty string.
func AudioURL(e Record) string {
	if p, ok := e.(Playable); ok {
		return p.AudioURL()
	}
	return ""
}
