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

// Package audio plays entry pronunciation recordings.
//
// A Player owns a single playback resource shared by all entries. Playing a
// new recording interrupts the current one.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// ErrNoCommand indicates that an ExecBackend has no command configured.
var ErrNoCommand = errors.New("no player command")

// Playback is a recording being played.
type Playback interface {
	// Stop interrupts the playback.
	Stop() error

	// Done is closed when the playback ends.
	Done() <-chan struct{}
}

// Backend starts playback of recordings.
type Backend interface {
	Start(ctx context.Context, url string) (Playback, error)
}

// Player plays one recording at a time.
type Player struct {
	backend Backend

	mu      sync.Mutex
	current Playback
	url     string
}

// NewPlayer returns a new Player using the given backend.
func NewPlayer(backend Backend) *Player {
	return &Player{backend: backend}
}

// Play stops any current playback and plays the recording at url. Play does
// nothing if url is empty.
func (p *Player) Play(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.stopLocked(); err != nil {
		return err
	}

	pb, err := p.backend.Start(ctx, url)
	if err != nil {
		return fmt.Errorf("playing %q: %w", url, err)
	}
	p.current = pb
	p.url = url
	return nil
}

// Stop interrupts the current playback, if any.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *Player) stopLocked() error {
	if p.current == nil {
		return nil
	}
	pb := p.current
	p.current = nil
	p.url = ""

	select {
	case <-pb.Done():
		return nil
	default:
	}
	if err := pb.Stop(); err != nil {
		return fmt.Errorf("stopping playback: %w", err)
	}
	return nil
}

// Playing returns the URL of the recording being played or the empty string.
func (p *Player) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return ""
	}
	select {
	case <-p.current.Done():
		return ""
	default:
		return p.url
	}
}

// Wait blocks until the current playback ends or ctx is done.
func (p *Player) Wait(ctx context.Context) error {
	p.mu.Lock()
	pb := p.current
	p.mu.Unlock()

	if pb == nil {
		return nil
	}
	select {
	case <-pb.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// URLPlaceholder is replaced by the recording URL in ExecBackend arguments.
const URLPlaceholder = "{url}"

// DefaultCommand is the default external player command.
var DefaultCommand = []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", URLPlaceholder}

// ExecBackend plays recordings by running an external command.
type ExecBackend struct {
	// Command is the program and its arguments. Arguments equal to
	// URLPlaceholder are replaced by the recording URL. If no argument is a
	// placeholder the URL is appended.
	Command []string
}

// Start implements [Backend.Start].
func (b *ExecBackend) Start(ctx context.Context, url string) (Playback, error) {
	if len(b.Command) == 0 {
		return nil, ErrNoCommand
	}

	args := make([]string, 0, len(b.Command))
	replaced := false
	for _, a := range b.Command[1:] {
		if strings.Contains(a, URLPlaceholder) {
			a = strings.ReplaceAll(a, URLPlaceholder, url)
			replaced = true
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, url)
	}

	//nolint:gosec // the command is operator configuration.
	cmd := exec.CommandContext(ctx, b.Command[0], args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", b.Command[0], err)
	}

	pb := &process{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		_ = cmd.Wait()
		close(pb.done)
	}()
	return pb, nil
}

type process struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p *process) Stop() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("killing player: %w", err)
	}
	<-p.done
	return nil
}

func (p *process) Done() <-chan struct{} {
	return p.done
}
