package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nestgraph/pkg/errors"
	"github.com/matzehuels/nestgraph/pkg/pipeline"
)

// Config is the contents of config.toml:
//
//	[render]
//	format = "svg"
//	direction = "LR"
//	detailed = false
//	recompute = true
//
//	[cache]
//	enabled = true
//	ttl = "72h"
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig holds defaults for the render, inspect and check flags.
type RenderConfig struct {
	Format    string `toml:"format"`
	Direction string `toml:"direction"`
	Detailed  bool   `toml:"detailed"`
	Recompute bool   `toml:"recompute"`
}

// CacheConfig controls the artifact cache.
type CacheConfig struct {
	Enabled *bool  `toml:"enabled"`
	TTL     string `toml:"ttl"`
}

func defaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Format:    pipeline.DefaultFormat,
			Direction: pipeline.DefaultDirection,
		},
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields the defaults; a missing
// explicit file is an error. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the config values.
func (c Config) Validate() error {
	if err := pipeline.ValidateFormat(c.Render.Format); err != nil {
		return err
	}
	if err := pipeline.ValidateDirection(c.Render.Direction); err != nil {
		return err
	}
	if c.Cache.TTL != "" {
		d, err := time.ParseDuration(c.Cache.TTL)
		if err != nil {
			return err
		}
		if d <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "cache ttl must be positive, got %s", c.Cache.TTL)
		}
	}
	return nil
}

func (c CacheConfig) enabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// ttl returns the configured lifetime, or zero for the pipeline default.
func (c CacheConfig) ttl() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}
