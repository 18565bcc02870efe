/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the YAML configuration of the problemd server and
// turns it into handler options.
//
// Example:
//
//	listen: ":8080"
//	log_level: info
//	type:
//	  template: "https://errors.example.com/{status}/{title}"
//	metrics: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/typeuri"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "PROBLEMD_CONFIG"

// ErrInvalid is returned (wrapped) for any configuration that fails
// validation.
var ErrInvalid = errors.New("problem: invalid config")

// Config is the root of the YAML document.
type Config struct {
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"`
	Type     Type   `yaml:"type"`
	Metrics  bool   `yaml:"metrics"`
}

// Type configures problem type URIs. Template wins over BaseURL; with both
// empty the default scheme applies.
type Type struct {
	BaseURL  string `yaml:"base_url"`
	Template string `yaml:"template"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Metrics:  true,
	}
}

// Path returns the config path from the environment, or fallback.
func Path(fallback string) string {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p
	}
	return fallback
}

// Load reads and parses the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(b)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the listen address, log level and type URI settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("%w: listen must not be empty", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Type.BaseURL != "" {
		if _, err := url.Parse(c.Type.BaseURL); err != nil {
			return fmt.Errorf("%w: type.base_url: %v", ErrInvalid, err)
		}
	}
	if c.Type.Template != "" && !strings.Contains(c.Type.Template, typeuri.StatusPlaceholder) {
		return fmt.Errorf("%w: type.template must contain %s", ErrInvalid, typeuri.StatusPlaceholder)
	}
	return nil
}

// Level returns the slog level. Call after Validate.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel maps debug|info|warn|error (case-insensitive, empty = info).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalid, s)
}

// HandlerOptions translates the configuration into handler options. A nil
// logger or observer is skipped.
func (c Config) HandlerOptions(logger *slog.Logger, obs apis.Observer) []handler.Option {
	var opts []handler.Option
	switch {
	case c.Type.Template != "":
		opts = append(opts, handler.WithTitledTypeResolver(typeuri.Template(c.Type.Template)))
	case c.Type.BaseURL != "":
		opts = append(opts, handler.WithTypeResolver(typeuri.BaseURL(c.Type.BaseURL)))
	}
	if logger != nil {
		opts = append(opts, handler.WithSlog(logger))
	}
	if obs != nil {
		opts = append(opts, handler.WithObserver(obs))
	}
	return opts
}
