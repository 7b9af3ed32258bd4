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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/search"
	"github.com/ianlewis/go-lexicon/store"
)

// facetFlags maps command line flags to facet fields.
var facetFlags = map[string]entry.Field{
	"pos":    entry.PartOfSpeech,
	"domain": entry.SemanticDomain,
}

func queryCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "search the dictionary",
		ArgsUsage: "[TEXT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "field",
				Usage:   "search `FIELD` (a field name or \"all\")",
				Aliases: []string{"f"},
			},
			&cli.StringFlag{
				Name:  "pos",
				Usage: "only entries whose part of speech is `VALUE`",
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "only entries whose semantic domain is `VALUE`",
			},
			&cli.BoolFlag{
				Name:               "facets-only",
				Usage:              "match on facets alone when TEXT is empty",
				DisableDefaultText: true,
			},
			&cli.IntFlag{
				Name:    "limit",
				Usage:   fmt.Sprintf("show at most `N` results (max %d)", search.MaxResults),
				Aliases: []string{"n"},
			},
			helpFlag,
		},
		HideHelp:     true,
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if commandHelp(c) {
				return nil
			}
			return withDataset(c, st, query[entry.Gloss], query[entry.Lexeme])
		},
	}
}

func query[E entry.Record](c *cli.Context, e *env[E]) error {
	state := search.State{
		// Arguments are joined as given; the text is not trimmed.
		Text:   strings.Join(c.Args().Slice(), " "),
		Facets: map[entry.Field]string{},
	}

	if name := c.String("field"); name != "" {
		if name != search.AllFields {
			f, err := entry.ParseField(name)
			if err != nil {
				return fmt.Errorf("%w: --field: %w", ErrFlagParse, err)
			}
			if !e.schema.Searchable(f) {
				return fmt.Errorf("%w: --field: %q is not searchable in %s", ErrFlagParse, name, e.schema.Name)
			}
		}
		state.Field = name
	}

	for flag, f := range facetFlags {
		if !c.IsSet(flag) {
			continue
		}
		if !e.schema.IsFacet(f) {
			return fmt.Errorf("%w: --%s: %s has no %s facet", ErrUnsupported, flag, e.schema.Name, f)
		}
		state.Facets[f] = c.String(flag)
	}

	opts := e.cfg.SearchOptions()
	if c.Bool("facets-only") {
		opts.Policy = search.AllowFacetsOnly
	}
	if c.IsSet("limit") {
		opts.Limit = c.Int("limit")
	}

	s, err := e.open(c.Context)
	if err != nil {
		return err
	}

	results := search.Filter(s.All(), state.Query(e.schema), opts)
	if msg := search.Message(store.Ready, state, opts.Policy, len(results)); msg != "" {
		_, err := fmt.Fprintln(c.App.Writer, msg)
		return err
	}

	printResults(c.App.Writer, e.schema, results)
	return nil
}

// printResults prints entries as a table of the headword and the schema's
// display fields.
func printResults[E entry.Record](w io.Writer, schema *entry.Schema, results []E) {
	var zero E
	_, playable := any(zero).(entry.Playable)

	headers := []interface{}{schema.Label(entry.Word)}
	for _, f := range schema.Display {
		headers = append(headers, schema.Label(f))
	}
	if playable {
		headers = append(headers, "Audio")
	}

	tbl := table.New(headers...).WithWriter(w)
	for _, e := range results {
		row := []interface{}{e.Headword()}
		for _, f := range schema.Display {
			row = append(row, e.Value(f))
		}
		if playable {
			row = append(row, entry.AudioURL(e))
		}
		tbl.AddRow(row...)
	}
	tbl.Print()
}
