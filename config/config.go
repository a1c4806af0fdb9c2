// Package config loads purl-component settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ortelius/purl-component/util"
	"gopkg.in/yaml.v2"
)

// Config holds the settings for the server and the CLI
type Config struct {
	Port        string        `yaml:"port"`
	LogLevel    string        `yaml:"log_level"`
	BodyLimit   int           `yaml:"body_limit"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
	ServerURL   string        `yaml:"server_url"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Port:        "3000",
		LogLevel:    "info",
		BodyLimit:   1024 * 1024, // a request carries a single PURL
		ReadTimeout: 10 * time.Second,
	}
}

// Load applies the YAML file at path (if any) over the defaults, then the
// environment over both. Environment variables:
//
//	MS_PORT              listen port
//	LOG_LEVEL            zap level name
//	PURLCOMP_BODY_LIMIT  maximum request body in bytes
//	PURLCOMP_SERVER      base URL used by the CLI's remote mode
//
// A blank server URL is treated as unset.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("config file %s is not valid YAML: %w", path, err)
		}
	}

	cfg.Port = util.GetEnvDefault("MS_PORT", cfg.Port)
	cfg.LogLevel = util.GetEnvDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.ServerURL = util.GetEnvDefault("PURLCOMP_SERVER", cfg.ServerURL)
	if util.IsEmpty(cfg.ServerURL) {
		cfg.ServerURL = ""
	}

	if limit := util.GetEnvDefault("PURLCOMP_BODY_LIMIT", ""); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return Config{}, fmt.Errorf("PURLCOMP_BODY_LIMIT must be an integer: %w", err)
		}
		cfg.BodyLimit = n
	}

	if cfg.BodyLimit <= 0 {
		return Config{}, fmt.Errorf("body_limit must be positive, got %d", cfg.BodyLimit)
	}

	return cfg, nil
}
