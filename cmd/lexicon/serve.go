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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-lexicon/data"
	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/web"
)

func serveCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve the dictionary over HTTP",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "listen on `HOST`",
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listen on `PORT`",
				Aliases: []string{"p"},
			},
			helpFlag,
		},
		HideHelp:     true,
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if commandHelp(c) {
				return nil
			}
			if c.IsSet("host") {
				st.cfg.Server.Host = c.String("host")
			}
			if c.IsSet("port") {
				st.cfg.Server.Port = c.Int("port")
			}
			return withDataset(c, st, serve[entry.Gloss], serve[entry.Lexeme])
		},
	}
}

// serve runs the HTTP server until interrupted. The dataset loads in the
// background; the server answers with a loading state until it is ready.
func serve[E entry.Record](c *cli.Context, e *env[E]) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := e.loader.Start(ctx); err != nil {
		return err
	}

	srv := web.New(e.loader, &web.Options{
		Schema: e.schema,
		Search: e.cfg.SearchOptions(),
		Title:  e.cfg.Site.Title,
		Logger: e.logger,
		Data:   data.FS,
	})

	server := &http.Server{
		Addr:              e.cfg.Server.Addr(),
		Handler:           srv.Handler(),
		ReadTimeout:       e.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: e.cfg.Server.ReadTimeout,
		WriteTimeout:      e.cfg.Server.WriteTimeout,
		IdleTimeout:       e.cfg.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		e.logger.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), e.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
