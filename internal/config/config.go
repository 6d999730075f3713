// Package config loads and saves the citynews configuration.
//
// Values are layered, later layers overriding earlier ones:
//
//  1. model.DefaultConfig
//  2. the INI file (application.DefaultConfigPath unless overridden)
//  3. a .env file in the working directory, then CITYNEWS_* environment variables
//  4. command-line flags, applied by the cmd package
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inovacc/citynews/internal/application"
	"github.com/inovacc/citynews/internal/common"
	"github.com/inovacc/citynews/internal/model"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Configuration keys, shared by the INI file, the environment and `config set`.
const (
	KeyBaseURL   = "base_url"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Keys lists every configuration key in display order.
var Keys = []string{KeyBaseURL, KeyTimeout, KeyLogLevel, KeyLogFormat}

var sectionFor = map[string]string{
	KeyBaseURL:   "backend",
	KeyTimeout:   "backend",
	KeyLogLevel:  "log",
	KeyLogFormat: "log",
}

var iniKeyFor = map[string]string{
	KeyBaseURL:   "base_url",
	KeyTimeout:   "timeout",
	KeyLogLevel:  "level",
	KeyLogFormat: "format",
}

// Load builds the effective configuration from defaults, the INI file at
// path and the environment. A missing file is not an error.
func Load(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if err := LoadFile(path, &cfg); err != nil {
		return cfg, err
	}

	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFile overlays the values found in the INI file at path onto cfg.
func LoadFile(path string, cfg *model.Config) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	for _, key := range Keys {
		sec := file.Section(sectionFor[key])
		if !sec.HasKey(iniKeyFor[key]) {
			continue
		}

		if err := Set(cfg, key, sec.Key(iniKeyFor[key]).String()); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}

	return nil
}

// LoadDotEnv loads .env from the working directory into the process
// environment. Variables that are already set win. A missing file is ignored.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	return nil
}

// EnvName returns the environment variable for a configuration key.
func EnvName(key string) string {
	return application.EnvPrefix + strings.ToUpper(key)
}

// ApplyEnv overlays CITYNEWS_* variables onto cfg using lookup.
func ApplyEnv(cfg *model.Config, lookup func(string) (string, bool)) error {
	for _, key := range Keys {
		value, ok := lookup(EnvName(key))
		if !ok || value == "" {
			continue
		}

		if err := Set(cfg, key, value); err != nil {
			return fmt.Errorf("%s: %w", EnvName(key), err)
		}
	}

	return nil
}

// Set assigns value to the configuration key after validating it.
func Set(cfg *model.Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyBaseURL:
		base, err := common.NormalizeBaseURL(value)
		if err != nil {
			return err
		}

		cfg.BaseURL = base
	case KeyTimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		if d < 0 {
			return fmt.Errorf("invalid timeout %q: must not be negative", value)
		}

		cfg.Timeout = d
	case KeyLogLevel:
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log level %q: use debug, info, warn or error", value)
		}
	case KeyLogFormat:
		switch strings.ToLower(value) {
		case model.LogFormatText, model.LogFormatJSON:
			cfg.LogFormat = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log format %q: use text or json", value)
		}
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}

	return nil
}

// Get returns the string form of a configuration key.
func Get(cfg model.Config, key string) (string, error) {
	switch key {
	case KeyBaseURL:
		return cfg.BaseURL, nil
	case KeyTimeout:
		return cfg.Timeout.String(), nil
	case KeyLogLevel:
		return cfg.LogLevel, nil
	case KeyLogFormat:
		return cfg.LogFormat, nil
	}

	return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
}

// Save writes cfg to the INI file at path, creating parent directories.
func Save(path string, cfg model.Config) error {
	file := ini.Empty()

	for _, key := range Keys {
		value, err := Get(cfg, key)
		if err != nil {
			return err
		}

		if _, err := file.Section(sectionFor[key]).NewKey(iniKeyFor[key], value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return os.Chmod(path, 0o600)
}
