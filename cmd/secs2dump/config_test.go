package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-secs2/logger"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	path := writeFile(t, "secs2dump.toml", []byte(`
format = "YAML"
hex = true
strict_ascii = true
workers = 3
log_level = "debug"
`))

	cfg, err := loadConfig(path, DefaultConfig())
	require.NoError(err)
	require.Equal(FormatYAML, cfg.Format)
	require.True(cfg.Hex)
	require.True(cfg.StrictASCII)
	require.False(cfg.SingleQuote)
	require.Equal(3, cfg.Workers)
	require.Equal(logger.DebugLevel, cfg.LogLevel)
}

func TestLoadConfig_KeepsDefaults(t *testing.T) {
	require := require.New(t)

	path := writeFile(t, "secs2dump.toml", []byte(`single_quote = true`))

	def := DefaultConfig()
	cfg, err := loadConfig(path, def)
	require.NoError(err)
	require.True(cfg.SingleQuote)
	require.Equal(def.Format, cfg.Format)
	require.Equal(def.Workers, cfg.Workers)
	require.Equal(logger.InfoLevel, cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		description string
		content     string
	}{
		{"unknown format", `format = "json"`},
		{"zero workers", `workers = 0`},
		{"unknown log level", `log_level = "loud"`},
		{"unknown key", `colour = true`},
		{"malformed toml", `format = `},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		path := writeFile(t, "secs2dump.toml", []byte(test.content))
		_, err := loadConfig(path, DefaultConfig())
		require.Error(err)
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), DefaultConfig())
	require.Error(err)
}

func TestParseArgs(t *testing.T) {
	require := require.New(t)

	path := writeFile(t, "secs2dump.toml", []byte("format = \"yaml\"\nworkers = 2\n"))

	cfg, inputs, err := parseArgs([]string{"-config", path, "-format", "addr", "-hex", "a.hex", "b.hex"})
	require.NoError(err)
	require.Equal(FormatAddr, cfg.Format)
	require.True(cfg.Hex)
	require.Equal(2, cfg.Workers)
	require.Equal([]string{"a.hex", "b.hex"}, inputs)

	cfg, _, err = parseArgs([]string{"-workers", "4", "-log-level", "warn", "-"})
	require.NoError(err)
	require.Equal(FormatSML, cfg.Format)
	require.Equal(4, cfg.Workers)
	require.Equal(logger.WarnLevel, cfg.LogLevel)

	_, _, err = parseArgs([]string{"-format", "sml"})
	require.Error(err)

	_, _, err = parseArgs([]string{"-workers", "0", "x"})
	require.Error(err)

	_, _, err = parseArgs([]string{"-log-level", "loud", "x"})
	require.Error(err)
}
