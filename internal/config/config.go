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

// Package config loads lexicon configuration from a YAML file and the
// environment.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Search  SearchConfig  `yaml:"search"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
	Site    SiteConfig    `yaml:"site"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"LEXICON_SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"LEXICON_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"LEXICON_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"LEXICON_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"LEXICON_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"LEXICON_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatasetConfig selects the dictionary variant and where its data lives.
type DatasetConfig struct {
	// Variant is "gloss" for the word list or "lexeme" for the lexicon.
	Variant string `yaml:"variant" env:"LEXICON_DATASET_VARIANT" env-default:"gloss"`

	// Location is a file path or http(s) URL. Empty selects the bundled
	// dataset for the variant.
	Location string `yaml:"location" env:"LEXICON_DATASET_LOCATION"`
}

// SearchConfig holds filter settings.
type SearchConfig struct {
	Limit int `yaml:"limit" env:"LEXICON_SEARCH_LIMIT" env-default:"20"`

	// EmptyQuery is "require" or "facets".
	EmptyQuery string `yaml:"empty_query" env:"LEXICON_SEARCH_EMPTY_QUERY" env-default:"require"`

	// Folding is "lower" or "normalized".
	Folding string `yaml:"folding" env:"LEXICON_SEARCH_FOLDING" env-default:"lower"`
}

// AudioConfig holds the external player used by the play command.
type AudioConfig struct {
	Command []string `yaml:"command" env:"LEXICON_AUDIO_COMMAND" env-separator:" "`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEXICON_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LEXICON_LOG_FORMAT" env-default:"text"`
}

// SiteConfig holds page presentation settings.
type SiteConfig struct {
	// Title overrides the variant's default page title.
	Title string `yaml:"title" env:"LEXICON_SITE_TITLE"`
}

// Addr returns the server listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
