// Package config loads regcanon settings.
//
// Precedence, highest first: explicitly set flags, REGCANON_* environment
// variables, the YAML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	DefaultConfigFile = "regcanon.yaml"
	EnvPrefix         = "REGCANON_"
)

// GenConfig holds the expression generator settings.
type GenConfig struct {
	Count      int    `koanf:"count"`
	Alphabet   int    `koanf:"alphabet"`
	StarHeight int    `koanf:"star_height"`
	Letters    int    `koanf:"letters"`
	Seed       uint64 `koanf:"seed"`
}

// Config holds all settings.
type Config struct {
	Workers   int       `koanf:"workers"`
	MaxStates int       `koanf:"max_states"`
	LogLevel  string    `koanf:"log_level"`
	LogFormat string    `koanf:"log_format"`
	Gen       GenConfig `koanf:"gen"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"workers":         0,
		"max_states":      10000,
		"log_level":       "warn",
		"log_format":      "text",
		"gen.count":       10,
		"gen.alphabet":    2,
		"gen.star_height": 2,
		"gen.letters":     6,
		"gen.seed":        1,
	}
}

// flagKeys maps flag names to config keys where they differ beyond
// kebab-case to snake_case.
var flagKeys = map[string]string{
	"count":       "gen.count",
	"alphabet":    "gen.alphabet",
	"star-height": "gen.star_height",
	"letters":     "gen.letters",
	"seed":        "gen.seed",
}

// Load reads the configuration. cfgFile may be empty, in which case
// regcanon.yaml is used when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// REGCANON_GEN_STAR_HEIGHT -> gen.star_height
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if rest, ok := strings.CutPrefix(key, "gen_"); ok {
			return "gen." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}
	return "", nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.MaxStates < 1 {
		errs = append(errs, fmt.Errorf("max_states must be positive, got %d", c.MaxStates))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.Gen.Count < 0 {
		errs = append(errs, fmt.Errorf("gen.count must not be negative, got %d", c.Gen.Count))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
