// Package config loads the optional collaborator-layer configuration
// file (-c/--config) that supplies defaults for the CLI's ambient flags.
// The scheduling kernel never reads this package; it is pure plumbing
// between a config file/environment and cmd/scheduler's flag defaults.
// Grounded on the teacher's config.Load (koanf file+env layering).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the ambient defaults a config file may override.
type Config struct {
	LogLevel    string `json:"log_level" yaml:"log_level"`
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"`
	Strategy    string `json:"strategy" yaml:"strategy"`
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() Config {
	return Config{LogLevel: "info", MetricsAddr: "", Strategy: "combined"}
}

// Load reads path (YAML or JSON, by extension) and layers SCHED_-prefixed
// environment variables on top, starting from Defaults(). An empty path
// is not an error: Load starts from the defaults and still applies the
// environment overrides, so -c is optional.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return applyEnv(cfg)
	}

	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, fmt.Errorf("config: unsupported format %q", ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	loaded, err := applyEnvKoanf(k, cfg)
	if err != nil {
		return cfg, err
	}
	return loaded, nil
}

func applyEnv(cfg Config) (Config, error) {
	k := koanf.New(".")
	return applyEnvKoanf(k, cfg)
}

// applyEnvKoanf layers SCHED_-prefixed environment variables (e.g.
// SCHED_LOG_LEVEL) over whatever cfg already holds.
func applyEnvKoanf(k *koanf.Koanf, cfg Config) (Config, error) {
	if err := k.Load(env.Provider("SCHED_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sched_")
		return strings.ReplaceAll(s, "_", ".")
	}), nil); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if k.Exists("log.level") {
		cfg.LogLevel = k.String("log.level")
	}
	if k.Exists("metrics.addr") {
		cfg.MetricsAddr = k.String("metrics.addr")
	}
	if k.Exists("strategy") {
		cfg.Strategy = k.String("strategy")
	}
	return cfg, nil
}
