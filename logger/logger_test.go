package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"", InfoLevel},
		{" warn ", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %q", i, test.input)
		level, err := ParseLevel(test.input)
		require.NoError(err)
		require.Equal(test.expected, level)
	}

	_, err := ParseLevel("verbose")
	require.Error(err)
	require.Equal("warn", WarnLevel.String())
}

func TestSlogLogger_JSON(t *testing.T) {
	t.Setenv("ENV", "")
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false)

	l.Debug("hidden")
	require.Zero(buf.Len())

	l.With("file", "a.bin").Info("decoded", "items", 3)

	var record map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &record))
	require.Equal("decoded", record["msg"])
	require.Equal("INFO", record["level"])
	require.Equal("a.bin", record["file"])
	require.InDelta(3, record["items"], 0)
	require.Contains(record, "ts")
	require.NotContains(record, "time")
}

func TestSlogLogger_Level(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, WarnLevel, false)
	require.Equal(WarnLevel, l.Level())

	child := l.With("k", "v")
	l.SetLevel(DebugLevel)
	require.Equal(DebugLevel, child.Level())

	child.Debug("now visible")
	require.Contains(buf.String(), "now visible")
}

func TestDefaultLogger(t *testing.T) {
	require := require.New(t)

	prev := GetLogger()
	defer SetLogger(prev)

	m := NewMockLogger()
	m.On("Info", "hello", []any{"k", 1}).Return()
	SetLogger(m)
	SetLogger(nil)

	Info("hello", "k", 1)
	m.AssertExpectations(t)
	require.Same(m, GetLogger())
}
