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
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-lexicon/entry"
)

var (
	// ErrMissingHeader indicates that a CSV dataset has no header row.
	ErrMissingHeader = errors.New("missing header")

	// ErrMissingColumn indicates that a required CSV column is absent.
	ErrMissingColumn = errors.New("missing column")
)

// Lexicon CSV column names.
const (
	ColumnWord           = "Word"
	ColumnOrthography    = "Orthography w/ tones"
	ColumnIPA            = "IPA"
	ColumnEnglish        = "English"
	ColumnSpanish        = "Spanish"
	ColumnTone           = "Tone Melody"
	ColumnPartOfSpeech   = "Part of Speech"
	ColumnSemanticDomain = "Semantic Domain"
)

// LexemeColumns is the header row of a lexicon CSV file.
var LexemeColumns = []string{
	ColumnWord,
	ColumnOrthography,
	ColumnIPA,
	ColumnEnglish,
	ColumnSpanish,
	ColumnTone,
	ColumnPartOfSpeech,
	ColumnSemanticDomain,
}

type lexemeSetter func(*entry.Lexeme, string)

var lexemeSetters = map[string]lexemeSetter{
	ColumnWord:           func(l *entry.Lexeme, v string) { l.Word = v },
	ColumnOrthography:    func(l *entry.Lexeme, v string) { l.Orthography = v },
	ColumnIPA:            func(l *entry.Lexeme, v string) { l.IPA = v },
	ColumnEnglish:        func(l *entry.Lexeme, v string) { l.English = v },
	ColumnSpanish:        func(l *entry.Lexeme, v string) { l.Spanish = v },
	ColumnTone:           func(l *entry.Lexeme, v string) { l.Tone = v },
	ColumnPartOfSpeech:   func(l *entry.Lexeme, v string) { l.PartOfSpeech = v },
	ColumnSemanticDomain: func(l *entry.Lexeme, v string) { l.SemanticDomain = v },
}

// DecodeGlossary decodes a JSON array of glosses.
func DecodeGlossary(r io.Reader) ([]entry.Gloss, error) {
	var glosses []entry.Gloss
	if err := json.NewDecoder(r).Decode(&glosses); err != nil {
		return nil, fmt.Errorf("decoding glossary: %w", err)
	}
	return glosses, nil
}

// DecodeLexemes decodes a lexicon CSV file. The first row names the columns.
// Columns are mapped to fields by exact name; unknown columns are ignored and
// absent values are stored as the empty string. Blank rows are skipped.
func DecodeLexemes(r io.Reader) ([]entry.Lexeme, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	setters := make([]lexemeSetter, len(header))
	hasWord := false
	for i, name := range header {
		setters[i] = lexemeSetters[name]
		hasWord = hasWord || name == ColumnWord
	}
	if !hasWord {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnWord)
	}

	var lexemes []entry.Lexeme
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		if blank(record) {
			continue
		}

		var l entry.Lexeme
		for i, v := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&l, v)
			}
		}
		lexemes = append(lexemes, l)
	}
	return lexemes, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// LoadGlossary reads and decodes a glossary from src.
func LoadGlossary(ctx context.Context, src Source) ([]entry.Gloss, error) {
	return load(ctx, src, DecodeGlossary)
}

// LoadLexemes reads and decodes a lexicon from src.
func LoadLexemes(ctx context.Context, src Source) ([]entry.Lexeme, error) {
	return load(ctx, src, DecodeLexemes)
}

func load[E any](ctx context.Context, src Source, decode func(io.Reader) ([]E, error)) ([]E, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	entries, err := decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return entries, nil
}
