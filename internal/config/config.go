// Package config loads mazewalk's layered configuration.
//
// Values are resolved in order, later layers overriding earlier ones:
//
//  1. compiled defaults ([Default])
//  2. a TOML file (~/.config/mazewalk/config.toml, or --config)
//  3. a .env file in the working directory, then MAZEWALK_* variables
//  4. command-line flags, applied by the CLI
//
// A typical file:
//
//	rows = 40
//	columns = 60
//	mode = "dfs"
//	delay = "30ms"
//
//	[server]
//	addr = ":9090"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

const (
	appName  = "mazewalk"
	fileName = "config.toml"

	// DefaultDelay is the pause between animation frames in the player.
	DefaultDelay = 15 * time.Millisecond

	// DefaultAddr is the HTTP listen address.
	DefaultAddr = ":8080"
)

// Config is the effective configuration.
type Config struct {
	Rows         int      `toml:"rows"`
	Columns      int      `toml:"columns"`
	Seed         uint64   `toml:"seed"` // 0 = random
	Mode         string   `toml:"mode"`
	Delay        Duration `toml:"delay"`
	Visualize    bool     `toml:"visualize"`
	Size         int      `toml:"size"`
	MaxDimension int      `toml:"max_dimension"` // negative = no cap
	Server       Server   `toml:"server"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the compiled defaults.
func Default() Config {
	return Config{
		Rows:         pipeline.DefaultRows,
		Columns:      pipeline.DefaultColumns,
		Mode:         pipeline.DefaultMode,
		Delay:        Duration(DefaultDelay),
		Visualize:    true,
		Size:         pipeline.DefaultSize,
		MaxDimension: pipeline.DefaultMaxDimension,
		Server:       Server{Addr: DefaultAddr},
	}
}

// Path returns the default config file location, following the XDG base
// directory convention (~/.config/mazewalk/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load resolves defaults, the config file, .env and the environment.
//
// If path is empty the default location is used and a missing file is not an
// error. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if p, err := Path(); err == nil && exists(p) {
			path = p
		}
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := LoadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks dimensions, mode, delay and size.
func (c Config) Validate() error {
	limit := c.MaxDimension
	if limit == 0 {
		limit = pipeline.DefaultMaxDimension
	}
	if err := errors.ValidateDimensions(c.Rows, c.Columns, limit); err != nil {
		return err
	}
	if _, err := search.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Delay < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "delay must not be negative, got %s", c.Delay)
	}
	if c.Size < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "size must be positive, got %d", c.Size)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server address is required")
	}
	return nil
}

// Options converts the configuration to pipeline options.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Rows:         c.Rows,
		Columns:      c.Columns,
		Seed:         c.Seed,
		Mode:         c.Mode,
		Size:         c.Size,
		Visualize:    c.Visualize,
		MaxDimension: c.MaxDimension,
	}
}
