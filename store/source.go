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
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// ErrStatus indicates that a dataset fetch returned a non-success status.
var ErrStatus = errors.New("unexpected status")

// Source is a dataset location.
type Source interface {
	fmt.Stringer

	// Open opens the dataset for reading. The caller must close the
	// returned reader.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// SourceFor returns an HTTPSource for http and https URLs and a FileSource
// otherwise.
func SourceFor(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: location}
}

// FileSource reads a dataset from the local file system. Files with a .gz
// extension are gzip compressed and files with a .dz extension are dictzip
// compressed.
type FileSource struct {
	Path string
}

// String implements [fmt.Stringer].
func (s *FileSource) String() string {
	return s.Path
}

// Open implements [Source.Open].
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening dictzip dataset %q: %w", s.Path, err)
		}
		return &readCloser{
			Reader:  io.NewSectionReader(z, 0, math.MaxInt64),
			closers: []io.Closer{z, f},
		}, nil
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip dataset %q: %w", s.Path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	default:
		return f, nil
	}
}

// FSSource reads a dataset from a file system such as an embedded one.
type FSSource struct {
	FS   fs.FS
	Name string
}

// String implements [fmt.Stringer].
func (s *FSSource) String() string {
	return s.Name
}

// Open implements [Source.Open].
func (s *FSSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := s.FS.Open(s.Name)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	return f, nil
}

// HTTPSource fetches a dataset over HTTP. The fetch is not retried.
type HTTPSource struct {
	URL string

	// Client is the HTTP client used for the request. The default client is
	// used if Client is nil.
	Client *http.Client
}

// String implements [fmt.Stringer].
func (s *HTTPSource) String() string {
	return s.URL
}

// Open implements [Source.Open].
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: %s", ErrStatus, s.URL, resp.Status)
	}
	return resp.Body, nil
}

// readCloser closes a chain of closers in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
