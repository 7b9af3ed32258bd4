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

// Package data bundles sample dictionary datasets.
package data

import "embed"

// Dataset file names.
const (
	Glossary = "tuvan.json"
	Lexicon  = "mixtec.csv"
)

// FS holds the bundled datasets.
//
//go:embed tuvan.json mixtec.csv
var FS embed.FS

// ForVariant returns the bundled dataset file name for the named variant.
func ForVariant(variant string) (string, bool) {
	switch variant {
	case "gloss":
		return Glossary, true
	case "lexeme":
		return Lexicon, true
	default:
		return "", false
	}
}
