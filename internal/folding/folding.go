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

// Package folding provides text folding transformers used to compare
// dictionary text.
package folding

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder returns a new [transform.Transformer]. Transformers are stateful so a
// new one is created for each use.
type Folder func() transform.Transformer

// Lower returns a transformer that lower-cases text using root locale rules.
func Lower() transform.Transformer {
	return cases.Lower(language.Und)
}

// Normalized returns a transformer that converts text to Unicode normalization
// form C and lower-cases it. Precomposed and combining tone marks compare
// equal after this folding.
func Normalized() transform.Transformer {
	return transform.Chain(norm.NFC, cases.Lower(language.Und))
}

// Whitespace returns a transformer that trims leading and trailing whitespace
// and collapses internal whitespace spans to a single space.
func Whitespace() transform.Transformer {
	return &whitespaceFolder{}
}

// ByName returns the folder with the given name. Valid names are "lower" and
// "normalized".
func ByName(name string) (Folder, error) {
	switch name {
	case "", "lower":
		return Lower, nil
	case "normalized":
		return Normalized, nil
	default:
		return nil, fmt.Errorf("unknown folding %q", name)
	}
}

// String applies a new transformer from f to s. If folding fails s is returned
// unchanged.
func String(f Folder, s string) string {
	folded, _, err := transform.String(f(), s)
	if err != nil {
		return s
	}
	return folded
}
