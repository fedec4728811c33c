package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "github.com/go-ini/ini"
	"github.com/samber/lo"

	"github.com/gg582/hancomb/internal/layout"
)

type Config struct {
	Layout    string
	Keypairs  string
	LogLevel  string
	LogFormat string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

func Default() Config {
	return Config{
		Layout:    layout.DefaultLayoutName,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load reads an INI file on top of the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Layout = file.Section("layout").Key("name").MustString(cfg.Layout)
	cfg.Keypairs = file.Section("layout").Key("keypairs").MustString(cfg.Keypairs)
	cfg.LogLevel = file.Section("log").Key("level").MustString(cfg.LogLevel)
	cfg.LogFormat = file.Section("log").Key("format").MustString(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate normalizes the layout name and log settings in place.
func (c *Config) Validate() error {
	name, err := layout.Normalize(c.Layout)
	if err != nil {
		return ConfigError{msg: err.Error()}
	}
	c.Layout = name

	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !lo.Contains(logLevels, level) {
		return ConfigError{msg: fmt.Sprintf("unknown log level '%s' (expected one of %s)", c.LogLevel, strings.Join(logLevels, ", "))}
	}
	c.LogLevel = level

	format := strings.ToLower(strings.TrimSpace(c.LogFormat))
	if !lo.Contains(logFormats, format) {
		return ConfigError{msg: fmt.Sprintf("unknown log format '%s' (expected one of %s)", c.LogFormat, strings.Join(logFormats, ", "))}
	}
	c.LogFormat = format
	return nil
}
