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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/config"
	"github.com/ianlewis/go-lexicon/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeConfigError is the exit code for an invalid configuration.
	ExitCodeConfigError

	// ExitCodeLoadError is the exit code for a dataset that failed to load.
	ExitCodeLoadError

	// ExitCodeNotFound is the exit code for an entry that does not exist.
	ExitCodeNotFound

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrLexicon is a parent error for all command errors.
var ErrLexicon = errors.New("lexicon")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrLexicon)

// ErrConfig indicates the configuration could not be loaded.
var ErrConfig = fmt.Errorf("%w: configuration", ErrLexicon)

// ErrLoad indicates the dataset could not be loaded.
var ErrLoad = fmt.Errorf("%w: loading dataset", ErrLexicon)

// ErrNotFound indicates that an entry does not exist.
var ErrNotFound = fmt.Errorf("%w: entry not found", ErrLexicon)

// ErrUnsupported indicates a feature is unsupported.
var ErrUnsupported = fmt.Errorf("%w: unsupported", ErrLexicon)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we handle help ourselves.
	//
	// This is done because `lexicon --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrConfig):
		return ExitCodeConfigError
	case errors.Is(err, ErrLoad):
		return ExitCodeLoadError
	case errors.Is(err, ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}

// appState is shared by the commands of an app. It is populated before any
// command runs.
type appState struct {
	cfg    *config.Config
	schema *entry.Schema
	logger *slog.Logger
}

// helpFlag is added to each command since the default help flag is disabled.
var helpFlag = &cli.BoolFlag{
	Name:               "help",
	Usage:              "print this help text and exit",
	Aliases:            []string{"h"},
	DisableDefaultText: true,
}

func newLexiconApp() *cli.App {
	st := &appState{}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search bilingual dictionaries.",
		Description: strings.Join([]string{
			"Dictionary lookup tool for Tuvan-English and Mixtec-English word lists.",
			"http://github.com/ianlewis/go-lexicon",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				Value:   findConfig(configLocations()),
			},
			&cli.StringFlag{
				Name:    "dataset",
				Usage:   "load entries from `PATH` or URL instead of the bundled dataset",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "dataset `VARIANT` (gloss or lexeme)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Before:          st.setup,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c.App.Writer)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(st),
			queryCommand(st),
			showCommand(st),
			facetsCommand(st),
			playCommand(st),
		},
	}
}

// setup loads the configuration, applies global flag overrides and
// configures logging.
func (st *appState) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if c.IsSet("dataset") {
		cfg.Dataset.Location = c.String("dataset")
	}
	if c.IsSet("variant") {
		cfg.Dataset.Variant = c.String("variant")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	schema, err := entry.SchemaFor(cfg.Dataset.Variant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	st.cfg = cfg
	st.schema = schema
	st.logger = logging.New(cfg.Log)
	return nil
}

// findConfig returns the first existing configuration file or the empty
// string.
func findConfig(locations []string) string {
	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func printVersion(w io.Writer) error {
	info := version.GetVersionInfo()
	_, err := fmt.Fprintln(w, info.String())
	return err
}

// commandHelp shows the command's help if requested.
func commandHelp(c *cli.Context) bool {
	if !c.Bool("help") {
		return false
	}
	check(cli.ShowSubcommandHelp(c))
	return true
}
