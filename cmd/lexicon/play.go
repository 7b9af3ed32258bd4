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
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-lexicon/audio"
	"github.com/ianlewis/go-lexicon/entry"
)

func playCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:         "play",
		Usage:        "play an entry's recording",
		ArgsUsage:    "WORD",
		Flags:        []cli.Flag{helpFlag},
		HideHelp:     true,
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if commandHelp(c) {
				return nil
			}
			return withDataset(c, st, play[entry.Gloss], play[entry.Lexeme])
		},
	}
}

func play[E entry.Record](c *cli.Context, e *env[E]) error {
	ent, err := find(c, e)
	if err != nil {
		return err
	}

	url := entry.AudioURL(ent)
	if url == "" {
		_, err := fmt.Fprintf(c.App.Writer, "No recording for %q.\n", ent.Headword())
		return err
	}

	command := e.cfg.Audio.Command
	if len(command) == 0 {
		command = audio.DefaultCommand
	}
	player := audio.NewPlayer(&audio.ExecBackend{Command: command})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	if err := player.Play(ctx, url); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Playing %s\n", url)

	if err := player.Wait(ctx); err != nil {
		// Interrupted.
		return player.Stop()
	}
	return nil
}
