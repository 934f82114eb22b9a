// Package config resolves frame settings from defaults and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by WithEnvConfig.
const (
	EnvManifest  = "FRAME_MANIFEST"
	EnvLayoutDir = "FRAME_LAYOUT_DIR"
	EnvLargeText = "FRAME_LARGE_TEXT"
	EnvLogLevel  = "FRAME_LOG_LEVEL"
)

// Config holds settings shared by the CLI commands.
type Config struct {
	// ManifestPath is a YAML route manifest. Empty uses the built-in manifest.
	ManifestPath string

	// LayoutDir is checked for layout template overrides.
	LayoutDir string

	// LargeText selects the 3:1 threshold instead of 4.5:1.
	LargeText bool

	// LogLevel is an hclog level name; empty derives it from --verbose/--quiet.
	LogLevel string
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a new Config builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		lookup: os.LookupEnv,
	}
}

// WithConfig sets the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig applies FRAME_* environment variables on top of the base config.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build constructs the Config.
func (b *Builder) Build() Config {
	config := b.config

	if b.useEnv {
		if v, ok := b.lookup(EnvManifest); ok && v != "" {
			config.ManifestPath = v
		}
		if v, ok := b.lookup(EnvLayoutDir); ok && v != "" {
			config.LayoutDir = v
		}
		if v, ok := b.lookup(EnvLargeText); ok {
			if large, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				config.LargeText = large
			}
		}
		if v, ok := b.lookup(EnvLogLevel); ok && v != "" {
			config.LogLevel = v
		}
	}

	return config
}

// EnvFileLookup reads KEY=VALUE pairs from a dotenv file and returns a lookup
// for WithLookup. Non-empty variables in the process environment take
// precedence over the file.
func EnvFileLookup(path string) (func(string) (string, bool), error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %q: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}
