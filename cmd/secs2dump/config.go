package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/go-secs2/logger"
)

// Output formats.
const (
	FormatSML  = "sml"
	FormatYAML = "yaml"
	FormatAddr = "addr"
)

// Config holds the secs2dump runtime settings.
type Config struct {
	Format      string
	Hex         bool
	StrictASCII bool
	SingleQuote bool
	Workers     int
	LogLevel    logger.Level
}

// secs2dump config.toml key mapping to Config.
type fileConfig struct {
	Format      string `toml:"format"`
	Hex         bool   `toml:"hex"`
	StrictASCII bool   `toml:"strict_ascii"`
	SingleQuote bool   `toml:"single_quote"`
	Workers     int    `toml:"workers"`
	LogLevel    string `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Format:   FormatSML,
		Workers:  runtime.GOMAXPROCS(0),
		LogLevel: logger.InfoLevel,
	}
}

// loadConfig overlays the keys defined in the TOML file at path onto cfg.
func loadConfig(path string, cfg Config) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load secs2dump config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load secs2dump config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("hex") {
		cfg.Hex = raw.Hex
	}
	if meta.IsDefined("strict_ascii") {
		cfg.StrictASCII = raw.StrictASCII
	}
	if meta.IsDefined("single_quote") {
		cfg.SingleQuote = raw.SingleQuote
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("log_level") {
		level, err := logger.ParseLevel(raw.LogLevel)
		if err != nil {
			return Config{}, fmt.Errorf("load secs2dump config: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSML, FormatYAML, FormatAddr:
	default:
		return fmt.Errorf("unsupported format %q (expected %s, %s or %s)", c.Format, FormatSML, FormatYAML, FormatAddr)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}
