package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/matzehuels/mazewalk/pkg/errors"
)

// Environment variables read by [Config.ApplyEnv].
const (
	EnvRows    = "MAZEWALK_ROWS"
	EnvColumns = "MAZEWALK_COLUMNS"
	EnvSeed    = "MAZEWALK_SEED"
	EnvMode    = "MAZEWALK_MODE"
	EnvDelay   = "MAZEWALK_DELAY"
	EnvAddr    = "MAZEWALK_ADDR"
)

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is
// ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return nil
}

// ApplyEnv overrides c with MAZEWALK_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRows); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvRows, v, err)
		}
		c.Rows = n
	}
	if v, ok := lookup(EnvColumns); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvColumns, v, err)
		}
		c.Columns = n
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, v, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvMode); ok {
		c.Mode = v
	}
	if v, ok := lookup(EnvDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError(EnvDelay, v, err)
		}
		c.Delay = Duration(d)
	}
	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = v
	}
	return nil
}

func envError(key, value string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s=%q", key, value)
}
