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

package data_test

import (
	"context"
	"testing"

	"github.com/ianlewis/go-lexicon/data"
	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/store"
)

func TestFS_glossary(t *testing.T) {
	t.Parallel()

	glosses, err := store.LoadGlossary(context.Background(), &store.FSSource{FS: data.FS, Name: data.Glossary})
	if err != nil {
		t.Fatalf("LoadGlossary: %v", err)
	}
	if len(glosses) == 0 {
		t.Fatal("LoadGlossary: no entries")
	}
	for _, g := range glosses {
		if g.Word == "" || g.Translation == "" {
			t.Errorf("incomplete entry: %#v", g)
		}
	}
}

func TestFS_lexicon(t *testing.T) {
	t.Parallel()

	lexemes, err := store.LoadLexemes(context.Background(), &store.FSSource{FS: data.FS, Name: data.Lexicon})
	if err != nil {
		t.Fatalf("LoadLexemes: %v", err)
	}
	s := store.New(lexemes, entry.LexemeSchema.Facets...)
	if s.Len() == 0 {
		t.Fatal("LoadLexemes: no entries")
	}
	for _, f := range entry.LexemeSchema.Facets {
		if len(s.Facet(f)) == 0 {
			t.Errorf("Facet(%q): no values", f)
		}
	}
}

func TestForVariant(t *testing.T) {
	t.Parallel()

	for _, schema := range []*entry.Schema{entry.GlossSchema, entry.LexemeSchema} {
		name, ok := data.ForVariant(schema.Name)
		if !ok {
			t.Fatalf("ForVariant(%q): not found", schema.Name)
		}
		if _, err := data.FS.Open(name); err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
	}
	if _, ok := data.ForVariant("stardict"); ok {
		t.Fatal("ForVariant(stardict): found")
	}
}
