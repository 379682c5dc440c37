package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PATTERNLAB_"

// Load builds the configuration: defaults, then the YAML file at path if it
// exists, then PATTERNLAB_* environment overrides.
//
// Environment variables map to config keys by stripping the prefix,
// lowercasing, and turning underscores into dots:
//
//	PATTERNLAB_LOGGING_LEVEL        -> logging.level
//	PATTERNLAB_HISTORY_LIMIT        -> history.limit
//	PATTERNLAB_OBSERVER_SUBSCRIBERS -> observer.subscribers (comma-separated)
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file is fine; defaults and env still apply.
		case err != nil:
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		default:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", transformEnv), nil); err != nil {
		return cfg, fmt.Errorf("load environment overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// transformEnv maps an environment variable to a koanf key and value.
// List-valued keys are split on commas.
func transformEnv(key, value string) (string, interface{}) {
	key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
	if key == "observer.subscribers" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return key, out
	}
	return key, value
}
