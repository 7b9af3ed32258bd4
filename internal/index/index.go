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

// Package index implements a sorted key index over a slice of values.
package index

import (
	"slices"
	"sort"
)

type item struct {
	key string
	pos int
}

// Index is a sorted array index. It maps keys to the positions of the values
// that carry them in the original slice.
type Index struct {
	// items is sorted by key. Items with equal keys keep the order of the
	// original slice.
	items []item

	cmp func(string, string) int
}

// New creates an index over values using the given key function and
// comparison function. cmp(a, b) should return a negative number when a < b, a
// positive number when a > b and zero when a == b or a and b are incomparable
// in the sense of a strict weak ordering.
func New[V any](values []V, key func(V) string, cmp func(string, string) int) *Index {
	items := make([]item, len(values))
	for i, v := range values {
		items[i] = item{key: key(v), pos: i}
	}
	slices.SortStableFunc(items, func(a, b item) int {
		return cmp(a.key, b.key)
	})

	return &Index{
		items: items,
		cmp:   cmp,
	}
}

// Search performs a binary search over the index and returns the positions of
// matching values in ascending order.
func (idx *Index) Search(query string) []int {
	i, found := sort.Find(len(idx.items), func(i int) int {
		return idx.cmp(query, idx.items[i].key)
	})

	if !found {
		return nil
	}

	var positions []int
	for j := i; j < len(idx.items) && idx.cmp(query, idx.items[j].key) == 0; j++ {
		positions = append(positions, idx.items[j].pos)
	}
	return positions
}

// First returns the lowest position whose key matches query.
func (idx *Index) First(query string) (int, bool) {
	positions := idx.Search(query)
	if len(positions) == 0 {
		return 0, false
	}
	return positions[0], true
}
