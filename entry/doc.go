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

// Package entry defines the dictionary record types.
//
// Two dataset variants are supported:
//  1. A Gloss is a headword with a single translation and an optional audio
//     recording. Gloss lists are distributed as JSON.
//  2. A Lexeme is a headword with orthography, IPA transcription, English and
//     Spanish translations, tone melody, part of speech and semantic domain.
//     Lexicons are distributed as CSV.
//
// Both variants implement [Record], which exposes fields by name so that
// search and lookup code does not depend on the concrete variant.
package entry
