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

// Package route builds and parses entry detail paths.
//
// An entry is addressed by /entries/{word} where word is percent-encoded so
// that reserved characters such as spaces, slashes and apostrophes survive
// the round trip.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// EntryPrefix is the path prefix of entry detail pages.
const EntryPrefix = "/entries/"

// ErrBadKey indicates that a path segment is not a valid encoded entry key.
var ErrBadKey = errors.New("bad entry key")

// EncodeKey percent-encodes word for use as a single path segment. The
// encoding matches JavaScript's encodeURIComponent except that a word made
// only of dots has its dots escaped, since "." and ".." segments are removed
// by path cleaning.
func EncodeKey(word string) string {
	const hex = "0123456789ABCDEF"

	dots := word != "" && strings.Trim(word, ".") == ""

	var b strings.Builder
	for _, c := range []byte(word) {
		if unreserved(c) && !dots {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// DecodeKey reverses EncodeKey.
func DecodeKey(segment string) (string, error) {
	word, err := url.PathUnescape(segment)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadKey, err)
	}
	return word, nil
}

// EntryPath returns the detail page path for word.
func EntryPath(word string) string {
	return EntryPrefix + EncodeKey(word)
}

// KeyFromPath extracts and decodes the entry key from an escaped request path
// such as the value of [url.URL.EscapedPath].
func KeyFromPath(escapedPath string) (string, error) {
	segment, ok := strings.CutPrefix(escapedPath, EntryPrefix)
	if !ok || segment == "" {
		return "", fmt.Errorf("%w: %q", ErrBadKey, escapedPath)
	}
	return DecodeKey(segment)
}
