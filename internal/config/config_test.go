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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-lexicon/search"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_defaults(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Dataset: DatasetConfig{Variant: "gloss"},
		Search: SearchConfig{
			Limit:      20,
			EmptyQuery: "require",
			Folding:    "lower",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
	if want, got := "127.0.0.1:8080", cfg.Server.Addr(); want != got {
		t.Fatalf("Addr; want: %q, got: %q", want, got)
	}
}

func TestLoad_file(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
dataset:
  variant: lexeme
  location: https://example.com/mixtec.csv
search:
  limit: 5
  empty_query: facets
  folding: normalized
audio:
  command: ["mpv", "--no-video", "{url}"]
log:
  format: json
site:
  title: Mixtec Dictionary
`)
	t.Setenv(EnvPath, "")
	t.Setenv("LEXICON_SEARCH_LIMIT", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if want, got := 9090, cfg.Server.Port; want != got {
		t.Errorf("Server.Port; want: %d, got: %d", want, got)
	}
	if want, got := "127.0.0.1", cfg.Server.Host; want != got {
		t.Errorf("Server.Host; want: %q, got: %q", want, got)
	}
	want := DatasetConfig{Variant: "lexeme", Location: "https://example.com/mixtec.csv"}
	if diff := cmp.Diff(want, cfg.Dataset); diff != "" {
		t.Errorf("Dataset (-want, +got):\n%s", diff)
	}
	// The environment overrides the file.
	if want, got := 7, cfg.Search.Limit; want != got {
		t.Errorf("Search.Limit; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff([]string{"mpv", "--no-video", "{url}"}, cfg.Audio.Command); diff != "" {
		t.Errorf("Audio.Command (-want, +got):\n%s", diff)
	}
	if want, got := "Mixtec Dictionary", cfg.Site.Title; want != got {
		t.Errorf("Site.Title; want: %q, got: %q", want, got)
	}

	opts := cfg.SearchOptions()
	if want, got := search.AllowFacetsOnly, opts.Policy; want != got {
		t.Errorf("Policy; want: %v, got: %v", want, got)
	}
	if want, got := 7, opts.Limit; want != got {
		t.Errorf("Limit; want: %d, got: %d", want, got)
	}
}

func TestLoad_envPath(t *testing.T) {
	path := writeConfig(t, "dataset:\n  variant: lexeme\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want, got := "lexeme", cfg.Dataset.Variant; want != got {
		t.Fatalf("Dataset.Variant; want: %q, got: %q", want, got)
	}
}

func TestLoad_missingFile(t *testing.T) {
	t.Setenv(EnvPath, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load; want: %v, got: %v", os.ErrNotExist, err)
	}
}

func TestLoad_invalid(t *testing.T) {
	path := writeConfig(t, "dataset:\n  variant: stardict\n")
	t.Setenv(EnvPath, "")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load; want: %v, got: %v", ErrInvalid, err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Server:  ServerConfig{Port: 8080},
			Dataset: DatasetConfig{Variant: "gloss"},
			Search:  SearchConfig{Limit: 20, EmptyQuery: "require", Folding: "lower"},
			Log:     LogConfig{Format: "text"},
		}
	}

	testCases := map[string]struct {
		modify func(*Config)
		errs   int
	}{
		"valid": {
			modify: func(*Config) {},
		},
		"bad port": {
			modify: func(c *Config) { c.Server.Port = 70000 },
			errs:   1,
		},
		"limit over max": {
			modify: func(c *Config) { c.Search.Limit = 21 },
			errs:   1,
		},
		"zero limit": {
			modify: func(c *Config) { c.Search.Limit = 0 },
			errs:   1,
		},
		"unknown policy and folding": {
			modify: func(c *Config) {
				c.Search.EmptyQuery = "all"
				c.Search.Folding = "fold"
			},
			errs: 2,
		},
		"bad log format": {
			modify: func(c *Config) { c.Log.Format = "xml" },
			errs:   1,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.errs == 0 {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate; want: %v, got: %v", ErrInvalid, err)
			}
			var joined interface{ Unwrap() []error }
			if !errors.As(err, &joined) {
				t.Fatalf("Validate: %v is not a joined error", err)
			}
			if want, got := tc.errs, len(joined.Unwrap()); want != got {
				t.Fatalf("Validate errors; want: %d, got: %d (%v)", want, got, err)
			}
		})
	}
}
