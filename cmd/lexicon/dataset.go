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
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-lexicon/data"
	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/store"
)

// env is the environment of a command running against a dataset with
// entries of type E.
type env[E entry.Record] struct {
	*appState
	loader *store.Loader[E]
}

// source returns the configured dataset source.
func (st *appState) source() (store.Source, error) {
	if loc := st.cfg.Dataset.Location; loc != "" {
		return store.SourceFor(loc), nil
	}
	name, ok := data.ForVariant(st.schema.Name)
	if !ok {
		return nil, fmt.Errorf("%w: no bundled dataset for %q", ErrUnsupported, st.schema.Name)
	}
	return &store.FSSource{FS: data.FS, Name: name}, nil
}

func newEnv[E entry.Record](st *appState, load func(context.Context, store.Source) ([]E, error)) (*env[E], error) {
	src, err := st.source()
	if err != nil {
		return nil, err
	}

	logger := st.logger.With(slog.String("variant", st.schema.Name), slog.String("source", src.String()))
	loader := store.NewLoader(func(ctx context.Context) ([]E, error) {
		logger.Debug("loading dataset")
		entries, err := load(ctx, src)
		if err != nil {
			logger.Error("loading dataset", slog.Any("error", err))
			return nil, err
		}
		logger.Info("dataset loaded", slog.Int("entries", len(entries)))
		return entries, nil
	}, st.schema.Facets...)

	return &env[E]{appState: st, loader: loader}, nil
}

// open loads the dataset and waits for the result.
func (e *env[E]) open(ctx context.Context) (*store.Store[E], error) {
	if err := e.loader.Start(ctx); err != nil {
		return nil, err
	}
	s, err := e.loader.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return s, nil
}

// withDataset runs the variant's implementation of a command.
func withDataset(
	c *cli.Context,
	st *appState,
	gloss func(*cli.Context, *env[entry.Gloss]) error,
	lexeme func(*cli.Context, *env[entry.Lexeme]) error,
) error {
	switch st.schema {
	case entry.GlossSchema:
		e, err := newEnv(st, store.LoadGlossary)
		if err != nil {
			return err
		}
		return gloss(c, e)
	case entry.LexemeSchema:
		e, err := newEnv(st, store.LoadLexemes)
		if err != nil {
			return err
		}
		return lexeme(c, e)
	default:
		return fmt.Errorf("%w: variant %q", ErrUnsupported, st.schema.Name)
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}
