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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ianlewis/go-lexicon/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for name, want := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(name); want != got {
				t.Fatalf("ParseLevel(%q); want: %v, got: %v", name, want, got)
			}
		})
	}
}

func TestNewWriter_json(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWriter(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("dropped")
	logger.Warn("dataset failed", slog.String("variant", "gloss"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines; want: 1, got: %d\n%s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want, got := "dataset failed", rec["msg"]; want != got {
		t.Errorf("msg; want: %q, got: %v", want, got)
	}
	if want, got := "gloss", rec["variant"]; want != got {
		t.Errorf("variant; want: %q, got: %v", want, got)
	}
}

func TestNewWriter_text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWriter(&buf, config.LogConfig{Level: "debug", Format: "text"})
	logger.Debug("loading", slog.String("dataset", "embedded"))

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=loading", "dataset=embedded"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
