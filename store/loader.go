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

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/ianlewis/go-lexicon/entry"
)

// ErrStarted indicates that a Loader was started more than once.
var ErrStarted = errors.New("loader already started")

// Status is the state of a Loader.
type Status int

const (
	// Idle is the initial state before Start is called.
	Idle Status = iota

	// Loading indicates that the load is in progress.
	Loading

	// Ready indicates that the load succeeded.
	Ready

	// Failed indicates that the load failed. There is no transition out of
	// Failed; a new Loader is required to try again.
	Failed
)

// String implements [fmt.Stringer].
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Loader.
type State[E entry.Record] struct {
	Status Status

	// Store holds the loaded entries. It is empty unless Status is Ready.
	Store *Store[E]

	// Err is the load error when Status is Failed.
	Err error
}

// Loader performs a single asynchronous dataset load.
type Loader[E entry.Record] struct {
	load   func(ctx context.Context) ([]E, error)
	facets []entry.Field

	mu    sync.Mutex
	state State[E]
	done  chan struct{}
}

// NewLoader returns a new idle Loader. The loaded store computes values for
// the given facet fields.
func NewLoader[E entry.Record](load func(ctx context.Context) ([]E, error), facets ...entry.Field) *Loader[E] {
	return &Loader[E]{
		load:   load,
		facets: facets,
		state: State[E]{
			Status: Idle,
			Store:  Empty[E](facets...),
		},
		done: make(chan struct{}),
	}
}

// Start begins loading in a new goroutine. Canceling ctx abandons the load,
// which then fails. Start returns ErrStarted if called more than once.
func (l *Loader[E]) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Status != Idle {
		return ErrStarted
	}
	l.state.Status = Loading

	go l.run(ctx)
	return nil
}

func (l *Loader[E]) run(ctx context.Context) {
	defer close(l.done)

	entries, err := l.load(ctx)
	if err == nil {
		err = ctx.Err()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state.Status = Failed
		l.state.Err = err
		return
	}
	l.state.Status = Ready
	l.state.Store = New(entries, l.facets...)
}

// State returns a snapshot of the loader's state.
func (l *Loader[E]) State() State[E] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Done returns a channel that is closed when the load completes.
func (l *Loader[E]) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the load completes or ctx is done. It returns the loaded
// store or the load error. Wait must be called after Start.
func (l *Loader[E]) Wait(ctx context.Context) (*Store[E], error) {
	select {
	case <-l.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s := l.State()
	if s.Status == Failed {
		return s.Store, s.Err
	}
	return s.Store, nil
}

// Preloaded returns a Loader that is already Ready with the given entries.
// It is used for datasets that are available synchronously.
func Preloaded[E entry.Record](entries []E, facets ...entry.Field) *Loader[E] {
	l := NewLoader[E](nil, facets...)
	l.state = State[E]{
		Status: Ready,
		Store:  New(entries, facets...),
	}
	close(l.done)
	return l
}
