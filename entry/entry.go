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

// ErrUnknownField indicates that a field name is not recognized.
var ErrUnknownField = errors.New("unknown field")

// Field names an attribute of a dictionary record. Field values are stable
// and are used in URLs, configuration and command line flags.
type Field string

const (
	// Word is the headword in the source language.
	Word = Field("word")

	// Translation is the primary translation of a Gloss.
	Translation = Field("translation")

	// Orthography is the written form with tone marks.
	Orthography = Field("orthography")

	// IPA is the International Phonetic Alphabet transcription.
	IPA = Field("ipa")

	// English is the English translation of a Lexeme.
	English = Field("english")

	// Spanish is the Spanish translation of a Lexeme.
	Spanish = Field("spanish")

	// Tone is the tone melody.
	Tone = Field("tone")

	// PartOfSpeech is the grammatical category.
	PartOfSpeech = Field("partOfSpeech")

	// SemanticDomain is the semantic category.
	SemanticDomain = Field("semanticDomain")
)

var fields = []Field{
	Word,
	Translation,
	Orthography,
	IPA,
	English,
	Spanish,
	Tone,
	PartOfSpeech,
	SemanticDomain,
}

// Fields returns every known field in display order.
func Fields() []Field {
	return slices.Clone(fields)
}

// ParseField returns the Field with the given name.
func ParseField(name string) (Field, error) {
	for _, f := range fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// String implements [fmt.Stringer].
func (f Field) String() string {
	return string(f)
}

// Record is a dictionary entry whose attributes can be read by field name.
type Record interface {
	// Headword returns the entry's lookup key.
	Headword() string

	// Value returns the value of the given field. Fields that the record
	// does not carry return the empty string.
	Value(f Field) string
}

// Playable is implemented by records that may carry an audio recording.
type Playable interface {
	// AudioURL returns the URL of the recording or the empty string.
	AudioURL() string
}

// Gloss is a headword with a single translation.
type Gloss struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`

	// Audio is the recording URL. A null or missing URL decodes as empty.
	Audio string `json:"audio_url,omitempty"`
}

// Headword implements [Record.Headword].
func (g Gloss) Headword() string {
	return g.Word
}

// Value implements [Record.Value].
func (g Gloss) Value(f Field) string {
	switch f {
	case Word:
		return g.Word
	case Translation:
		return g.Translation
	default:
		return ""
	}
}

// AudioURL implements [Playable.AudioURL].
func (g Gloss) AudioURL() string {
	return g.Audio
}

// Lexeme is a headword with linguistic metadata.
type Lexeme struct {
	Word           string `json:"word"`
	Orthography    string `json:"orthography"`
	IPA            string `json:"ipa"`
	English        string `json:"english"`
	Spanish        string `json:"spanish"`
	Tone           string `json:"tone"`
	PartOfSpeech   string `json:"partOfSpeech"`
	SemanticDomain string `json:"semanticDomain"`
}

// Headword implements [Record.Headword].
func (l Lexeme) Headword() string {
	return l.Word
}

// Value implements [Record.Value].
func (l Lexeme) Value(f Field) string {
	switch f {
	case Word:
		return l.Word
	case Orthography:
		return l.Orthography
	case IPA:
		return l.IPA
	case English:
		return l.English
	case Spanish:
		return l.Spanish
	case Tone:
		return l.Tone
	case PartOfSpeech:
		return l.PartOfSpeech
	case SemanticDomain:
		return l.SemanticDomain
	default:
		return ""
	}
}
