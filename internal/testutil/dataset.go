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

// Package testutil provides dataset fixtures for tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-lexicon/entry"
)

// LexemeHeader is the standard lexicon CSV header.
var LexemeHeader = []string{
	"Word",
	"Orthography w/ tones",
	"IPA",
	"English",
	"Spanish",
	"Tone Melody",
	"Part of Speech",
	"Semantic Domain",
}

// MakeDatasetOptions are options for MakeTempDataset.
type MakeDatasetOptions struct {
	// Ext is the file extension. Defaults to '.dz' if DictZip is true, '.gz'
	// if Gzip is true, otherwise '.json'.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the file should be compressed with gzip. It is
	// ignored if DictZip is true.
	Gzip bool
}

// GetExt returns the dataset file extension.
func (o *MakeDatasetOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".dz"
		}
		if o.Gzip {
			return ".gz"
		}
	}
	return ".json"
}

// MakeTempDataset writes data to a new file in a temporary directory and
// returns its path.
func MakeTempDataset(t *testing.T, data []byte, opts *MakeDatasetOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDatasetOptions{}
	}

	path := filepath.Join(t.TempDir(), "dataset"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if opts.Gzip {
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
	return path
}

// MakeGlossary encodes glosses as a JSON dataset.
func MakeGlossary(t *testing.T, glosses []entry.Gloss) []byte {
	t.Helper()

	b, err := json.Marshal(glosses)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// MakeLexicon encodes lexemes as a CSV dataset with the standard header.
func MakeLexicon(t *testing.T, lexemes []entry.Lexeme) []byte {
	t.Helper()

	rows := [][]string{LexemeHeader}
	for _, l := range lexemes {
		rows = append(rows, []string{
			l.Word,
			l.Orthography,
			l.IPA,
			l.English,
			l.Spanish,
			l.Tone,
			l.PartOfSpeech,
			l.SemanticDomain,
		})
	}
	return MakeCSV(t, rows)
}

// MakeCSV encodes rows as CSV.
func MakeCSV(t *testing.T, rows [][]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
