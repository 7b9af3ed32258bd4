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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/route"
	"github.com/ianlewis/go-lexicon/store"
)

func showCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:         "show",
		Usage:        "show a dictionary entry",
		ArgsUsage:    "WORD",
		Flags:        []cli.Flag{helpFlag},
		HideHelp:     true,
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if commandHelp(c) {
				return nil
			}
			return withDataset(c, st, show[entry.Gloss], show[entry.Lexeme])
		},
	}
}

// find loads the dataset and looks up the entry named by the single command
// argument.
func find[E entry.Record](c *cli.Context, e *env[E]) (E, error) {
	var zero E
	if c.NArg() != 1 {
		return zero, fmt.Errorf("%w: expected WORD", ErrFlagParse)
	}
	key := c.Args().First()

	s, err := e.open(c.Context)
	if err != nil {
		return zero, err
	}

	ent, ok := s.Find(key)
	if !ok {
		fmt.Fprintf(c.App.ErrWriter, "%s: %s\n", entry.NotFoundTitle, entry.NotFoundDescription)
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return ent, nil
}

func show[E entry.Record](c *cli.Context, e *env[E]) error {
	ent, err := find(c, e)
	if err != nil {
		return err
	}

	meta := entry.Describe(e.schema, ent)
	fmt.Fprintln(c.App.Writer, meta.Title)
	if meta.Description != "" {
		fmt.Fprintln(c.App.Writer, meta.Description)
	}
	fmt.Fprintln(c.App.Writer)

	tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
	for _, d := range entry.Details(e.schema, ent) {
		tbl.AddRow(d.Label, d.Value)
	}
	if url := entry.AudioURL(ent); url != "" {
		tbl.AddRow("Audio", url)
	}
	tbl.AddRow("Path", route.EntryPath(ent.Headword()))
	tbl.Print()
	return nil
}

func facetsCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:         "facets",
		Usage:        "list facet values",
		ArgsUsage:    " ",
		Flags:        []cli.Flag{helpFlag},
		HideHelp:     true,
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if commandHelp(c) {
				return nil
			}
			return withDataset(c, st, facets[entry.Gloss], facets[entry.Lexeme])
		},
	}
}

func facets[E entry.Record](c *cli.Context, e *env[E]) error {
	if len(e.schema.Facets) == 0 {
		_, err := fmt.Fprintf(c.App.Writer, "The %s dataset has no facets.\n", e.schema.Name)
		return err
	}

	s, err := e.open(c.Context)
	if err != nil {
		return err
	}
	printFacets(c, e.schema, s)
	return nil
}

func printFacets[E entry.Record](c *cli.Context, schema *entry.Schema, s *store.Store[E]) {
	tbl := table.New("Facet", "Values").WithWriter(c.App.Writer)
	for _, f := range schema.Facets {
		tbl.AddRow(schema.Label(f), strings.Join(s.Facet(f), ", "))
	}
	tbl.Print()
}
