// Package config loads sheetgraph CLI settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// DefaultPath is the config file looked up in the working directory.
	DefaultPath = ".sheetgraph.toml"
	// EnvFile is loaded into the environment when present. Values holding
	// ${left}-style placeholders must be single-quoted there.
	EnvFile = ".env"
	// DiffCommandEnv overrides Config.DiffCommand.
	DiffCommandEnv = "SHEETGRAPH_DIFF_COMMAND"
)

// Config holds CLI settings. Command-line flags take precedence over it.
type Config struct {
	// DiffCommand is the external diff command template, with ${left},
	// ${right} and ${quote} placeholders.
	DiffCommand string `toml:"diff_command"`
	// Trim trims string values when reading workbooks.
	Trim bool `toml:"trim"`
	// Pretty indents JSON snapshots.
	Pretty bool `toml:"pretty"`
	// WithMetadata keeps cell metadata in JSON snapshots.
	WithMetadata bool `toml:"with_metadata"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{Pretty: true}
}

// Load reads the .env file and the TOML config at path. A missing file at
// either location is not an error; explicit is true when path was chosen
// by the user and must exist.
func Load(path string, explicit bool) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", EnvFile, err)
	}

	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if cmd := os.Getenv(DiffCommandEnv); cmd != "" {
		cfg.DiffCommand = cmd
	}
	return &cfg, nil
}
