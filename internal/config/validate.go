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

package config

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/folding"
	"github.com/ianlewis/go-lexicon/search"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks the loaded configuration and returns all problems found.
// Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: server.port must be in 0..65535 (got %d)", ErrInvalid, c.Server.Port))
	}

	if _, err := entry.SchemaFor(c.Dataset.Variant); err != nil {
		errs = append(errs, fmt.Errorf("%w: dataset.variant: %w", ErrInvalid, err))
	}

	if c.Search.Limit < 1 || c.Search.Limit > search.MaxResults {
		errs = append(errs, fmt.Errorf("%w: search.limit must be in 1..%d (got %d)", ErrInvalid, search.MaxResults, c.Search.Limit))
	}
	if _, err := search.ParsePolicy(c.Search.EmptyQuery); err != nil {
		errs = append(errs, fmt.Errorf("%w: search.empty_query: %w", ErrInvalid, err))
	}
	if _, err := folding.ByName(c.Search.Folding); err != nil {
		errs = append(errs, fmt.Errorf("%w: search.folding: %w", ErrInvalid, err))
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format must be text or json (got %q)", ErrInvalid, c.Log.Format))
	}

	return errors.Join(errs...)
}

// SearchOptions returns filter options for the search settings. The
// configuration must be valid.
func (c *Config) SearchOptions() *search.Options {
	opts := *search.DefaultOptions
	opts.Limit = c.Search.Limit
	if p, err := search.ParsePolicy(c.Search.EmptyQuery); err == nil {
		opts.Policy = p
	}
	if f, err := folding.ByName(c.Search.Folding); err == nil {
		opts.Folder = f
	}
	return &opts
}
